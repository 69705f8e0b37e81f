package strip_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/benkalmus/contribstats/pkg/strip"
)

func TestDedupeHeader(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no duplicates pass through",
			in:   []string{"Summary", "Status", "Priority"},
			want: []string{"Summary", "Status", "Priority"},
		},
		{
			name: "repeated names get positional suffixes",
			in:   []string{"Labels", "Sprint", "Labels", "Sprint", "Sprint"},
			want: []string{"Labels", "Sprint", "Labels_2", "Sprint_2", "Sprint_3"},
		},
		{
			name: "empty names dedupe like any other",
			in:   []string{"", "Summary", ""},
			want: []string{"", "Summary", "_2"},
		},
		{
			name: "empty header row",
			in:   []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strip.DedupeHeader(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("DedupeHeader(%v)=%v want=%v", tt.in, got, tt.want)
			}
			// Deterministic: repeated application of the same input.
			again := strip.DedupeHeader(tt.in)
			if !reflect.DeepEqual(again, got) {
				t.Fatalf("second run differs: %v vs %v", again, got)
			}
			seen := map[string]bool{}
			for _, h := range got {
				if seen[h] {
					t.Fatalf("duplicate name %q in output %v", h, got)
				}
				seen[h] = true
			}
		})
	}
}

func TestDedupeHeaderDoesNotMutateInput(t *testing.T) {
	in := []string{"A", "A"}
	_ = strip.DedupeHeader(in)
	if in[1] != "A" {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestProject(t *testing.T) {
	t.Run("projects schema columns in schema order", func(t *testing.T) {
		records := [][]string{
			{"b", "a", "c"},
			{"2", "1", "3"},
			{"5", "4", "6"},
		}
		res, err := strip.Project(records, strip.Schema{"a", "b"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := [][]string{
			{"a", "b"},
			{"1", "2"},
			{"4", "5"},
		}
		if !reflect.DeepEqual(res.Records, want) {
			t.Fatalf("records=%v want=%v", res.Records, want)
		}
		if res.Rows != 2 || res.InputColumns != 3 {
			t.Fatalf("rows=%d cols=%d want 2 and 3", res.Rows, res.InputColumns)
		}
		if len(res.MissingColumns) != 0 {
			t.Fatalf("unexpected missing columns: %v", res.MissingColumns)
		}
	})

	t.Run("selects deduplicated columns by position", func(t *testing.T) {
		records := [][]string{
			{"Sprint", "Sprint", "Sprint"},
			{"s1", "s2", "s3"},
		}
		res, err := strip.Project(records, strip.Schema{"Sprint_3", "Sprint"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := res.Records[1]; got[0] != "s3" || got[1] != "s1" {
			t.Fatalf("unexpected row: %v", got)
		}
	})

	t.Run("short rows pad with empty strings", func(t *testing.T) {
		records := [][]string{
			{"a", "b", "c", "d", "e"},
			{"1", "2"},
		}
		res, err := strip.Project(records, strip.Schema{"a", "b", "c", "d", "e"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"1", "2", "", "", ""}
		if !reflect.DeepEqual(res.Records[1], want) {
			t.Fatalf("row=%v want=%v", res.Records[1], want)
		}
	})

	t.Run("missing schema columns degrade to empty and are reported", func(t *testing.T) {
		records := [][]string{
			{"a"},
			{"1"},
			{"2"},
		}
		res, err := strip.Project(records, strip.Schema{"a", "ghost"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, row := range res.Records[1:] {
			if row[1] != "" {
				t.Fatalf("row %d ghost cell=%q want empty", i, row[1])
			}
		}
		if !reflect.DeepEqual(res.MissingColumns, []string{"ghost"}) {
			t.Fatalf("missing=%v want=[ghost]", res.MissingColumns)
		}
	})

	t.Run("over-wide row fails with RowWidthError", func(t *testing.T) {
		records := [][]string{
			{"a", "b", "c"},
			{"1", "2", "3"},
			{"1", "2", "3", "4"},
		}
		_, err := strip.Project(records, strip.Schema{"a"})
		var rwe *strip.RowWidthError
		if !errors.As(err, &rwe) {
			t.Fatalf("want RowWidthError, got %v", err)
		}
		if rwe.Row != 2 || rwe.Cells != 4 || rwe.HeaderCells != 3 {
			t.Fatalf("unexpected error detail: %+v", rwe)
		}
	})

	t.Run("empty input fails with MalformedInputError", func(t *testing.T) {
		_, err := strip.Project(nil, strip.DefaultSchema())
		var mie *strip.MalformedInputError
		if !errors.As(err, &mie) {
			t.Fatalf("want MalformedInputError, got %v", err)
		}
	})

	t.Run("header-only input is valid", func(t *testing.T) {
		res, err := strip.Project([][]string{{"a", "b"}}, strip.Schema{"a"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Rows != 0 || len(res.Records) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("row count is conserved", func(t *testing.T) {
		records := [][]string{{"a"}}
		for i := 0; i < 137; i++ {
			records = append(records, []string{"x"})
		}
		res, err := strip.Project(records, strip.Schema{"a"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Rows != 137 {
			t.Fatalf("rows=%d want=137", res.Rows)
		}
	})
}

func TestTransform(t *testing.T) {
	t.Run("quoted fields survive the round trip", func(t *testing.T) {
		in := "Summary,Issue key\n\"hello, world\",T-1\n"
		var out bytes.Buffer
		res, err := strip.Transform(strings.NewReader(in), &out, strip.Schema{"Issue key", "Summary"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Issue key,Summary\nT-1,\"hello, world\"\n"
		if out.String() != want {
			t.Fatalf("output=%q want=%q", out.String(), want)
		}
		if res.Rows != 1 {
			t.Fatalf("rows=%d want=1", res.Rows)
		}
	})

	t.Run("empty stream is malformed", func(t *testing.T) {
		var out bytes.Buffer
		_, err := strip.Transform(strings.NewReader(""), &out, strip.DefaultSchema())
		var mie *strip.MalformedInputError
		if !errors.As(err, &mie) {
			t.Fatalf("want MalformedInputError, got %v", err)
		}
		if out.Len() != 0 {
			t.Fatalf("output written on error: %q", out.String())
		}
	})
}

func TestFile(t *testing.T) {
	t.Run("writes output and is idempotent", func(t *testing.T) {
		dir := t.TempDir()
		inPath := filepath.Join(dir, "raw.csv")
		outPath := filepath.Join(dir, "stripped.csv")
		raw := "Labels,Sprint,Labels,Sprint\nbug,s1,infra,s2\nui,s3\n"
		if err := os.WriteFile(inPath, []byte(raw), 0o644); err != nil {
			t.Fatal(err)
		}

		schema := strip.Schema{"Labels", "Labels_2", "Sprint_2"}
		res, err := strip.File(inPath, outPath, schema)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Rows != 2 || res.InputColumns != 4 {
			t.Fatalf("unexpected result: %+v", res)
		}
		first, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatal(err)
		}
		want := "Labels,Labels_2,Sprint_2\nbug,infra,s2\nui,,\n"
		if string(first) != want {
			t.Fatalf("output=%q want=%q", first, want)
		}

		if _, err := strip.File(inPath, outPath, schema); err != nil {
			t.Fatalf("second run: %v", err)
		}
		second, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first, second) {
			t.Fatalf("second run output differs")
		}
	})

	t.Run("leaves no output file on error", func(t *testing.T) {
		dir := t.TempDir()
		inPath := filepath.Join(dir, "raw.csv")
		outPath := filepath.Join(dir, "stripped.csv")
		raw := "a,b\n1,2,3\n"
		if err := os.WriteFile(inPath, []byte(raw), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := strip.File(inPath, outPath, strip.Schema{"a"})
		var rwe *strip.RowWidthError
		if !errors.As(err, &rwe) {
			t.Fatalf("want RowWidthError, got %v", err)
		}
		if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
			t.Fatalf("output file exists after failed run")
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Fatalf("stray files left behind: %v", entries)
		}
	})

	t.Run("missing input file", func(t *testing.T) {
		dir := t.TempDir()
		_, err := strip.File(filepath.Join(dir, "nope.csv"), filepath.Join(dir, "out.csv"), strip.DefaultSchema())
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}
