// Package lookup answers "which source tables contain all of these columns?"
// against a cross-reference table.
//
// The reference table has one row per source table. Its first column holds the
// table (file) name and every other column is named after a dataset column; a
// non-missing cell means the table in that row contains that column:
//
//	file_name     IDEHR  AGE  SYSTOLIC  HBA1C
//	demographics  x      x
//	vitals        x           x
//	labs          x                     x
//
// FilesWithColumns([]string{"IDEHR", "SYSTOLIC"}, ref) returns ["vitals"].
//
// # One-off and repeated queries
//
// FilesWithColumns is the one-shot form. When a notebook issues many queries
// against the same reference table, build an Index once with NewIndex and call
// Index.Files; the index stores one presence bitset per column so each query
// is a handful of word-wide AND operations.
//
// # Result ordering
//
// Results are set-valued. They are returned de-duplicated and sorted
// ascending so output is deterministic.
package lookup
