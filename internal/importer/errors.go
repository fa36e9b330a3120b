package importer

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned by Open when no registered parser's header
// matches the file.
var ErrUnsupportedFormat = errors.New("unsupported CSV format")

// ErrFormat matches any *FormatError via errors.Is.
var ErrFormat = errors.New("malformed field")

// ErrImportFinished is returned when Import is called on a finished importer.
var ErrImportFinished = errors.New("import already finished")

// FormatError reports a date or amount that the bank's format cannot parse.
type FormatError struct {
	Row    int    // 1-based line number counting the header; 0 if unknown
	Kind   string // "date" or "amount"
	Column string
	Value  string
	Err    error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("parsing %s %q (column %q)", e.Kind, e.Value, e.Column)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %s", e.Row, msg)
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrFormat) match any FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }
