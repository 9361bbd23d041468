// Package firestore implements service.Store using the Firestore REST API.
package firestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	fsv1 "google.golang.org/api/firestore/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"gtodo/internal/service"
)

const (
	// DefaultDatabaseID is the ID of a project's default database.
	DefaultDatabaseID = "(default)"

	// DefaultEndpoint is the production Firestore REST endpoint.
	DefaultEndpoint = "https://firestore.googleapis.com/"

	// OAuth scope for Cloud Firestore
	datastoreScope = "https://www.googleapis.com/auth/datastore"
)

// Config selects the Firestore project and how to reach it.
type Config struct {
	ProjectID  string
	DatabaseID string

	// CredentialsFile is a service account key. Empty uses application
	// default credentials.
	CredentialsFile string

	// EmulatorHost is host:port of a Firestore emulator. When set, requests
	// are sent there without authentication.
	EmulatorHost string
}

// Client implements service.Store using Firestore.
type Client struct {
	svc      *fsv1.Service
	http     *http.Client
	endpoint string
	root     string // projects/{p}/databases/{d}/documents
}

// New creates a Firestore client from cfg.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("firestore project_id is required")
	}

	if cfg.EmulatorHost != "" {
		return NewWithHTTPClient(ctx, http.DefaultClient, "http://"+cfg.EmulatorHost+"/", cfg.ProjectID, cfg.DatabaseID)
	}

	var creds *google.Credentials
	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		creds, err = google.CredentialsFromJSON(ctx, data, datastoreScope)
		if err != nil {
			return nil, fmt.Errorf("invalid credentials file: %w", err)
		}
	} else {
		var err error
		creds, err = google.FindDefaultCredentials(ctx, datastoreScope)
		if err != nil {
			return nil, fmt.Errorf("no firestore credentials: %w", err)
		}
	}

	// Create HTTP client with a token source that auto-refreshes
	httpClient := oauth2.NewClient(ctx, creds.TokenSource)

	return NewWithHTTPClient(ctx, httpClient, DefaultEndpoint, cfg.ProjectID, cfg.DatabaseID)
}

// NewWithHTTPClient creates a client with a custom HTTP client and endpoint
// (for the emulator and for testing). endpoint must end with a slash.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, endpoint, projectID, databaseID string) (*Client, error) {
	if databaseID == "" {
		databaseID = DefaultDatabaseID
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	svc, err := fsv1.NewService(ctx, option.WithHTTPClient(httpClient), option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore service: %w", err)
	}

	return &Client{
		svc:      svc,
		http:     httpClient,
		endpoint: endpoint,
		root:     fmt.Sprintf("projects/%s/databases/%s/documents", projectID, databaseID),
	}, nil
}

func (c *Client) docName(collection, id string) string {
	return c.root + "/" + collection + "/" + id
}

// Find implements service.Store with a structured query on a single
// equality filter.
func (c *Client) Find(ctx context.Context, collection, field string, value any) ([]service.Document, error) {
	req := &fsv1.RunQueryRequest{
		StructuredQuery: &fsv1.StructuredQuery{
			From: []*fsv1.CollectionSelector{{CollectionId: collection}},
			Where: &fsv1.Filter{
				FieldFilter: &fsv1.FieldFilter{
					Field: &fsv1.FieldReference{FieldPath: field},
					Op:    "EQUAL",
					Value: toValue(value),
				},
			},
		},
	}

	results, err := c.runQuery(ctx, req)
	if err != nil {
		return nil, wrapError(err)
	}

	var docs []service.Document
	for _, r := range results {
		// Entries without a document only report progress.
		if r.Document == nil {
			continue
		}
		docs = append(docs, fromDocument(r.Document))
	}
	return docs, nil
}

// runQuery posts a runQuery request. The endpoint streams a JSON array of
// responses, which is decoded here in one piece.
func (c *Client) runQuery(ctx context.Context, q *fsv1.RunQueryRequest) ([]*fsv1.RunQueryResponse, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	url := c.endpoint + "v1/" + c.root + ":runQuery"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if err := googleapi.CheckResponse(res); err != nil {
		return nil, err
	}

	var out []*fsv1.RunQueryResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}
	return out, nil
}

// Get implements service.Store.
func (c *Client) Get(ctx context.Context, collection, id string) (service.Document, error) {
	doc, err := c.svc.Projects.Databases.Documents.Get(c.docName(collection, id)).Context(ctx).Do()
	if err != nil {
		return service.Document{}, wrapError(err)
	}
	return fromDocument(doc), nil
}

// Insert implements service.Store. Firestore assigns the document ID.
func (c *Client) Insert(ctx context.Context, collection string, fields service.Fields) (string, error) {
	doc, err := c.svc.Projects.Databases.Documents.
		CreateDocument(c.root, collection, &fsv1.Document{Fields: toFields(fields)}).
		Context(ctx).
		Do()
	if err != nil {
		return "", wrapError(err)
	}
	return path.Base(doc.Name), nil
}

// Update implements service.Store. Only the supplied leaf fields are
// written; the document must already exist.
func (c *Client) Update(ctx context.Context, collection, id string, fields service.Fields) error {
	paths := fieldPaths("", fields)
	if len(paths) == 0 {
		_, err := c.Get(ctx, collection, id)
		return err
	}

	_, err := c.svc.Projects.Databases.Documents.
		Patch(c.docName(collection, id), &fsv1.Document{Fields: toFields(fields)}).
		UpdateMaskFieldPaths(paths...).
		CurrentDocumentExists(true).
		Context(ctx).
		Do()
	if err != nil {
		return wrapError(err)
	}
	return nil
}

// Delete implements service.Store.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	_, err := c.svc.Projects.Databases.Documents.Delete(c.docName(collection, id)).Context(ctx).Do()
	if err != nil {
		return wrapError(err)
	}
	return nil
}

// Close implements service.Store. The HTTP client holds no resources to
// release.
func (c *Client) Close() error {
	return nil
}

// wrapError maps API errors onto store errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return service.ErrDocumentNotFound
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("permission denied (check firestore credentials): %w", err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out: %w", err)
	}
	return err
}
