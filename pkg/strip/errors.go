package strip

import "fmt"

// MalformedInputError reports an input stream that contains no header row.
// An input with a header but zero data rows is valid and is not this error.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e == nil || e.Reason == "" {
		return "malformed input: no header row"
	}
	return "malformed input: " + e.Reason
}

// RowWidthError reports a data row with more cells than the header row.
// Short rows are a documented property of the export format and are
// tolerated; over-wide rows indicate a corrupt or re-escaped export and
// must not be silently truncated.
type RowWidthError struct {
	Row         int // 1-based data row number, excluding the header
	Cells       int
	HeaderCells int
}

func (e *RowWidthError) Error() string {
	if e == nil {
		return "row width error"
	}
	return fmt.Sprintf("row %d has %d cells but the header has only %d", e.Row, e.Cells, e.HeaderCells)
}
