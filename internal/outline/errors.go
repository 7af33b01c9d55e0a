package outline

import "errors"

var (
	ErrFileTooLarge         = errors.New("uploaded file exceeds the size limit")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrEmptyUpload          = errors.New("uploaded file is empty")
)

// ParseError reports input the scanner could not process at all.
// Structurally odd documents (missing headers, malformed checkboxes)
// never produce one; only genuinely unreadable content does.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Reason
}
