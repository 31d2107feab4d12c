package contact

import "errors"

// Touched records which fields the visitor has left at least once. Errors
// are only shown for touched fields.
type Touched map[string]bool

// TouchAll marks every field, as a submit attempt does.
func (t Touched) TouchAll() {
	for _, f := range Fields {
		t[f] = true
	}
}

// Visible returns the error message to display for field, if any.
func (t Touched) Visible(err error, field string) string {
	if !t[field] {
		return ""
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return ""
	}
	return verr.For(field)
}
