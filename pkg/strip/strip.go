package strip

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Transform reads a raw export CSV from r, applies the schema
// projection, and writes the reduced CSV to w. Nothing is written to w
// unless the whole transform succeeds.
func Transform(r io.Reader, w io.Writer, schema Schema) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read input csv: %w", err)
	}

	res, err := Project(records, schema)
	if err != nil {
		return nil, err
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(res.Records); err != nil {
		return nil, fmt.Errorf("write output csv: %w", err)
	}
	return res, nil
}

// File runs Transform from inputPath to outputPath. The output is
// staged in a temporary file in the destination directory and renamed
// into place only after the transform succeeds, so a failed run never
// leaves a partial or stale output file behind.
func File(inputPath, outputPath string, schema Schema) (*Result, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = in.Close()
	}()

	var buf bytes.Buffer
	res, err := Transform(in, &buf, schema)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	tmp, err := os.CreateTemp(dir, ".strip-*.csv")
	if err != nil {
		return nil, err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return nil, err
	}
	if err := os.Rename(tmpName, outputPath); err != nil {
		_ = os.Remove(tmpName)
		return nil, err
	}
	return res, nil
}
