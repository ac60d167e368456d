package document

import "fmt"

// UnsupportedFormatError indicates a document type the parser does not
// recognize. Fatal; there is no degraded-mode fallback for an unknown
// container format.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %s", e.Format)
}

// DecodeError indicates the document bytes could not be turned into text,
// including after the fallback encoding attempt.
type DecodeError struct {
	Format  string
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error (%s): %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error (%s): %s", e.Format, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
