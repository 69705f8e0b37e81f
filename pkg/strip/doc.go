// Package strip normalizes wide, ragged ticket-export CSVs into a narrow,
// analyzable schema.
//
// Issue-tracker exports are hostile to column-oriented processing: the
// header row can carry on the order of a thousand columns, multi-value
// custom fields repeat the same column name at several positions, and
// data rows may be shorter than the header when trailing optional fields
// are blank. The package splits the cleanup into two pure steps —
// DedupeHeader makes header names unique, Project reduces the records to
// a fixed ordered Schema — composed by Transform and the file-level File
// runner.
package strip
