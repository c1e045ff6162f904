package render

// ParseError means the input was not well-formed markup. No output tree is
// produced.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parse document: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StructureError means the markup parsed but lacks the required act root.
// No output tree is produced.
type StructureError struct {
	Msg string
}

func (e *StructureError) Error() string {
	return e.Msg
}
