package apierrors

// FieldErrors maps a payload field name to its translated validation
// messages. It serializes directly as the 400 response body.
type FieldErrors map[string][]string

// Add appends a translated message to a field.
func (e FieldErrors) Add(field, msgKey, lang string) {
	e[field] = append(e[field], GetTransMsg(msgKey, lang))
}

// Empty reports whether no field has accumulated an error.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}
