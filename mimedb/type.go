package mimedb

import "strings"

// Kind discriminates a MIME lookup result.
type Kind int

const (
	// None means the extension has no registered MIME type.
	None Kind = iota
	// Single means exactly one MIME type is registered.
	Single
	// Many means several MIME types share the extension.
	Many
)

// Type is the tagged result of a MIME lookup. Callers switch on Kind
// instead of sniffing the shape of the value.
type Type struct {
	Kind   Kind
	Values []string
}

// First returns the first MIME value, or "" for None.
func (t Type) First() string {
	if len(t.Values) == 0 {
		return ""
	}
	return t.Values[0]
}

// Contains reports whether s occurs as a substring of any MIME value.
func (t Type) Contains(s string) bool {
	for _, v := range t.Values {
		if strings.Contains(v, s) {
			return true
		}
	}
	return false
}

// String renders the values comma-joined, "" for None.
func (t Type) String() string {
	return strings.Join(t.Values, ", ")
}

// Lookup returns the MIME types registered for ext as a tagged value.
func (r *Registry) Lookup(ext string) Type {
	mimes := r.ExtToMIME[ext]
	switch len(mimes) {
	case 0:
		return Type{Kind: None}
	case 1:
		return Type{Kind: Single, Values: mimes}
	default:
		return Type{Kind: Many, Values: mimes}
	}
}
