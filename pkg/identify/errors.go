package identify

import "fmt"

// SheetError wraps a failure while processing one input sheet.
type SheetError struct {
	Sheet string
	Stage string // "read", "classify", "write"
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
