package commands

// optionalString is a string flag that records whether it was given, so
// edits only touch supplied fields and an explicit empty value can reset.
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(s string) error {
	o.value = s
	o.set = true
	return nil
}

// ptr returns the value, or nil if the flag was not given.
func (o *optionalString) ptr() *string {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// or returns the value if given, otherwise def.
func (o *optionalString) or(def string) string {
	if o.set {
		return o.value
	}
	return def
}
