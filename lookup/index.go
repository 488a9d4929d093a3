package lookup

import (
	"fmt"
	"slices"

	"github.com/go-gota/gota/dataframe"

	"github.com/arloliu/ehrlens/errs"
	"github.com/arloliu/ehrlens/internal/collision"
	"github.com/arloliu/ehrlens/internal/frame"
	"github.com/arloliu/ehrlens/internal/hash"
	"github.com/arloliu/ehrlens/internal/pool"
)

// Index is a precomputed column → source table presence map built from a
// reference table. It is immutable after NewIndex and safe for concurrent use.
type Index struct {
	files   []string // file name per reference row; "" when missing
	named   bitset   // rows with a non-missing file name
	columns []string // reference column names in table order

	// Presence bitsets are keyed by the xxHash of the column name. When two
	// names collide the index keys by name instead.
	byID   map[uint64]columnEntry
	byName map[string]bitset
}

type columnEntry struct {
	name string
	rows bitset
}

// NewIndex builds an Index from a reference table.
//
// Column 0 is the file-name column. Every column, including column 0, gets a
// presence bitset; a row is present for a column when its cell is not NA.
//
// Parameters:
//   - ref: Reference table (e.g. loaded from cross_ref_cols_tabs.csv)
//
// Returns:
//   - *Index: The built index
//   - error: errs.ErrInvalidInput if the table failed to load or has no columns
func NewIndex(ref dataframe.DataFrame) (*Index, error) {
	if err := frame.RequireColumns(ref); err != nil {
		return nil, fmt.Errorf("reference table: %w", err)
	}

	nrow, ncol := ref.Dims()
	if ncol == 0 {
		return nil, fmt.Errorf("%w: reference table has no columns", errs.ErrInvalidInput)
	}

	names := ref.Names()
	ids := hash.IDs(names)
	tracker := collision.NewTracker(ncol)
	presence := make([]bitset, ncol)

	for j, name := range names {
		if err := tracker.Track(name, ids[j]); err != nil {
			return nil, err
		}

		bs := newBitset(nrow)
		col := ref.Col(name)
		for i := 0; i < nrow; i++ {
			if !frame.IsMissing(col.Elem(i)) {
				bs.set(i)
			}
		}
		presence[j] = bs
	}

	idx := &Index{
		files:   make([]string, nrow),
		named:   presence[0],
		columns: slices.Clone(names),
	}

	fileCol := ref.Col(names[0])
	for i := 0; i < nrow; i++ {
		if idx.named.has(i) {
			idx.files[i] = fileCol.Elem(i).String()
		}
	}

	if tracker.HasCollision() {
		idx.byName = make(map[string]bitset, ncol)
		for j, name := range names {
			idx.byName[name] = presence[j]
		}
	} else {
		idx.byID = make(map[uint64]columnEntry, ncol)
		for j, name := range names {
			idx.byID[ids[j]] = columnEntry{name: name, rows: presence[j]}
		}
	}

	return idx, nil
}

func (idx *Index) presence(column string) (bitset, bool) {
	if idx.byName != nil {
		bs, ok := idx.byName[column]
		return bs, ok
	}

	e, ok := idx.byID[hash.ID(column)]
	if !ok || e.name != column {
		return nil, false
	}

	return e.rows, true
}

// Files returns the names of the source tables that contain every requested column.
//
// Parameters:
//   - columns: Requested column names; at least one is required
//
// Returns:
//   - []string: Matching file names, de-duplicated and sorted ascending
//   - error: errs.ErrEmptyColumns when no columns are given, errs.ErrColumnNotFound
//     when a column is not in the reference table (both with errs.ErrInvalidInput)
func (idx *Index) Files(columns ...string) ([]string, error) {
	if len(columns) == 0 {
		return nil, errs.Invalid(errs.ErrEmptyColumns, "at least one column is required")
	}

	acc, cleanup := pool.GetUint64Slice(len(idx.named))
	defer cleanup()
	copy(acc, idx.named)
	result := bitset(acc)

	for _, col := range columns {
		bs, ok := idx.presence(col)
		if !ok {
			return nil, errs.Invalid(errs.ErrColumnNotFound, "column %q is not in the reference table", col)
		}
		result.and(bs)
	}

	seen := make(map[string]struct{}, result.count())
	files := make([]string, 0, result.count())
	for i, name := range idx.files {
		if !result.has(i) {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		files = append(files, name)
	}
	slices.Sort(files)

	return files, nil
}

// Columns returns the reference table's column names in table order.
func (idx *Index) Columns() []string {
	return slices.Clone(idx.columns)
}

// Len returns the number of reference rows (source table descriptors).
func (idx *Index) Len() int {
	return len(idx.files)
}

// FilesWithColumns returns the names of the source tables in ref that contain
// every column in columns.
//
// For each requested column the rows with a non-missing value are selected and
// their file names collected; the result is the intersection over all
// requested columns. See Index.Files for the result and error contract.
//
// Example:
//
//	files, err := lookup.FilesWithColumns([]string{"IDEHR", "HBA1C"}, ref)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(files) // [labs]
func FilesWithColumns(columns []string, ref dataframe.DataFrame) ([]string, error) {
	if len(columns) == 0 {
		return nil, errs.Invalid(errs.ErrEmptyColumns, "at least one column is required")
	}

	idx, err := NewIndex(ref)
	if err != nil {
		return nil, err
	}

	return idx.Files(columns...)
}
