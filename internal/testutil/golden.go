package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "rewrite golden files under testdata/")

// Golden compares got with testdata/<name>.golden. Run the tests with
// -update (or GOLDEN_UPDATE=1) to rewrite the file instead. Line endings are
// normalized so checkouts with CRLF still compare equal.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")
	if *update || os.Getenv("GOLDEN_UPDATE") != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, got, 0o644))
		return
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err, "missing golden file %s; got:\n%s", path, got)

	assert.Equal(t, normalize(string(want)), normalize(string(got)), "output mismatch for %s", name)
}

func normalize(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
