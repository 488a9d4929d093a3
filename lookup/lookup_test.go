package lookup

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/ehrlens/errs"
	"github.com/arloliu/ehrlens/internal/frame"
)

// referenceTable mirrors a small cross_ref_cols_tabs.csv.
func referenceTable() dataframe.DataFrame {
	nan := math.NaN()

	return dataframe.New(
		series.New([]string{"demographics", "vitals", "labs", "vitals_2019", "NaN"}, series.String, "file_name"),
		series.New([]float64{1, 1, 1, 1, 1}, series.Float, "IDEHR"),
		series.New([]float64{1, nan, nan, nan, 1}, series.Float, "AGE"),
		series.New([]float64{nan, 1, nan, 1, 1}, series.Float, "SYSTOLIC"),
		series.New([]float64{nan, nan, 1, 1, nan}, series.Float, "HBA1C"),
	)
}

func TestFilesWithColumns(t *testing.T) {
	ref := referenceTable()

	tests := []struct {
		name    string
		columns []string
		want    []string
	}{
		{
			name:    "single column reduces to filtering",
			columns: []string{"SYSTOLIC"},
			want:    []string{"vitals", "vitals_2019"},
		},
		{
			name:    "intersection across columns",
			columns: []string{"SYSTOLIC", "HBA1C"},
			want:    []string{"vitals_2019"},
		},
		{
			name:    "shared identifier column matches every named table",
			columns: []string{"IDEHR"},
			want:    []string{"demographics", "labs", "vitals", "vitals_2019"},
		},
		{
			name:    "no table has all columns",
			columns: []string{"AGE", "HBA1C"},
			want:    []string{},
		},
		{
			name:    "repeated column is harmless",
			columns: []string{"AGE", "AGE"},
			want:    []string{"demographics"},
		},
		{
			name:    "file name column itself",
			columns: []string{"file_name"},
			want:    []string{"demographics", "labs", "vitals", "vitals_2019"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilesWithColumns(tt.columns, ref)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFilesWithColumnsErrors(t *testing.T) {
	ref := referenceTable()

	t.Run("unknown column", func(t *testing.T) {
		_, err := FilesWithColumns([]string{"SYSTOLIC", "CHOLESTEROL"}, ref)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
		require.ErrorIs(t, err, errs.ErrColumnNotFound)
		require.Contains(t, err.Error(), "CHOLESTEROL")
	})

	t.Run("empty column list", func(t *testing.T) {
		_, err := FilesWithColumns(nil, ref)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
		require.ErrorIs(t, err, errs.ErrEmptyColumns)
	})

	t.Run("reference table with load error", func(t *testing.T) {
		bad := dataframe.DataFrame{Err: errs.ErrInvalidInput}
		_, err := FilesWithColumns([]string{"AGE"}, bad)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestFilesWithColumnsDuplicateFileNames(t *testing.T) {
	ref := dataframe.New(
		series.New([]string{"vitals", "vitals", "labs"}, series.String, "file_name"),
		series.New([]float64{1, math.NaN(), 1}, series.Float, "SYSTOLIC"),
	)

	got, err := FilesWithColumns([]string{"SYSTOLIC"}, ref)
	require.NoError(t, err)
	require.Equal(t, []string{"labs", "vitals"}, got)
}

// Every returned file must appear in the reference table and have a
// non-missing entry for every requested column.
func TestFilesWithColumnsSubsetProperty(t *testing.T) {
	ref := referenceTable()
	idx, err := NewIndex(ref)
	require.NoError(t, err)

	queries := [][]string{
		{"IDEHR"}, {"AGE"}, {"SYSTOLIC"}, {"HBA1C"},
		{"IDEHR", "AGE"}, {"IDEHR", "SYSTOLIC", "HBA1C"}, {"AGE", "SYSTOLIC"},
	}

	files := ref.Col("file_name")
	for _, q := range queries {
		got, err := idx.Files(q...)
		require.NoError(t, err)

		for _, name := range got {
			found := false
			for i := 0; i < ref.Nrow(); i++ {
				if frame.IsMissing(files.Elem(i)) || files.Elem(i).String() != name {
					continue
				}
				ok := true
				for _, c := range q {
					if frame.IsMissing(ref.Col(c).Elem(i)) {
						ok = false
					}
				}
				found = found || ok
			}
			require.True(t, found, "query %v returned %q without a qualifying row", q, name)
		}
	}
}

func TestIndex(t *testing.T) {
	idx, err := NewIndex(referenceTable())
	require.NoError(t, err)

	require.Equal(t, 5, idx.Len())
	require.Equal(t, []string{"file_name", "IDEHR", "AGE", "SYSTOLIC", "HBA1C"}, idx.Columns())

	got, err := idx.Files("IDEHR", "SYSTOLIC")
	require.NoError(t, err)
	require.Equal(t, []string{"vitals", "vitals_2019"}, got)

	// Queries do not disturb each other.
	got, err = idx.Files("AGE")
	require.NoError(t, err)
	require.Equal(t, []string{"demographics"}, got)

	_, err = idx.Files()
	require.ErrorIs(t, err, errs.ErrEmptyColumns)
}

func TestIndexNameFallback(t *testing.T) {
	idx, err := NewIndex(referenceTable())
	require.NoError(t, err)

	// Force the collision path; results must not change.
	idx.byName = map[string]bitset{}
	for _, e := range idx.byID {
		idx.byName[e.name] = e.rows
	}

	got, err := idx.Files("SYSTOLIC", "HBA1C")
	require.NoError(t, err)
	require.Equal(t, []string{"vitals_2019"}, got)

	_, err = idx.Files("MISSING")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)
}

func TestBitset(t *testing.T) {
	a := newBitset(130)
	b := newBitset(130)
	for _, i := range []int{0, 63, 64, 129} {
		a.set(i)
	}
	b.set(63)
	b.set(129)
	b.set(5)

	require.Equal(t, 4, a.count())
	a.and(b)
	require.Equal(t, 2, a.count())
	require.True(t, a.has(63))
	require.True(t, a.has(129))
	require.False(t, a.has(0))
	require.False(t, a.has(5))
}
