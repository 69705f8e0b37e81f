package strip

// Schema is the ordered list of logical column names the projection
// targets. Output columns appear in exactly this order regardless of
// their position in the input.
type Schema []string

// DefaultSchema returns the ticket-export projection consumed by the
// tickets analyser. Names refer to the deduplicated header space, so
// Labels_2 selects the second Labels column of the raw export.
func DefaultSchema() Schema {
	return Schema{
		"Summary",
		"Issue key",
		"Issue Type",
		"Status",
		"Status Category",
		"Project key",
		"Priority",
		"Assignee",
		"Reporter",
		"Created",
		"Resolved",
		"Labels",
		"Labels_2",
		"Sprint",
		"Sprint_2",
		"Sprint_3",
		"Custom field (Story Points)",
		"Parent key",
		"Parent summary",
		"Description",
	}
}

// Result carries the projected records plus transform bookkeeping for
// the completion summary.
type Result struct {
	// Records holds the output: the schema header first, then one row
	// per input data row, in input order.
	Records [][]string

	// InputColumns is the raw header width before projection.
	InputColumns int

	// Rows is the number of data rows (header excluded).
	Rows int

	// MissingColumns lists schema columns never seen in the deduplicated
	// input header, in schema order. Missing columns degrade to
	// empty-string output cells rather than failing the transform, so
	// callers should surface them as warnings before trusting
	// downstream statistics.
	MissingColumns []string
}

// Project dedupes the header of records and reduces every data row to
// the schema columns. Short rows are padded with empty strings; a row
// wider than the header fails the whole transform with *RowWidthError.
// Empty input (no header row) fails with *MalformedInputError.
//
// The transform is pure and single-pass: for fixed input and schema the
// output is byte-for-byte reproducible.
func Project(records [][]string, schema Schema) (*Result, error) {
	if len(records) == 0 {
		return nil, &MalformedInputError{}
	}

	header := DedupeHeader(records[0])
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	cols := make([]int, len(schema))
	var missing []string
	for i, name := range schema {
		idx, ok := index[name]
		if !ok {
			idx = -1
			missing = append(missing, name)
		}
		cols[i] = idx
	}

	out := make([][]string, 0, len(records))
	outHeader := make([]string, len(schema))
	copy(outHeader, schema)
	out = append(out, outHeader)

	for n, rec := range records[1:] {
		if len(rec) > len(header) {
			return nil, &RowWidthError{Row: n + 1, Cells: len(rec), HeaderCells: len(header)}
		}
		row := make([]string, len(schema))
		for i, idx := range cols {
			if idx >= 0 && idx < len(rec) {
				row[i] = rec[idx]
			}
		}
		out = append(out, row)
	}

	return &Result{
		Records:        out,
		InputColumns:   len(header),
		Rows:           len(out) - 1,
		MissingColumns: missing,
	}, nil
}
