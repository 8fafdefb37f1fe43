package invoice

// Result is the terminal outcome of a mutation pipeline run. Exactly one
// variant comes back: Redirect is the only success, and after it nothing
// else in the pipeline executes.
type Result interface {
	result()
}

// ValidationFailed reports per-field violations; storage was not touched.
type ValidationFailed struct {
	FieldErrors map[string][]string
	Message     string
}

// WriteFailed reports a failed database write. Writes are single-statement
// atomic, so no partial state is assumed.
type WriteFailed struct {
	Message string
}

// Redirect signals a navigation transition to the given path.
type Redirect struct {
	Path string
}

func (ValidationFailed) result() {}
func (WriteFailed) result()      {}
func (Redirect) result()         {}
