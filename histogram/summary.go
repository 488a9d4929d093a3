package histogram

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/arloliu/ehrlens/internal/frame"
)

// IDCount is the number of observations retained for one entity.
type IDCount struct {
	ID    string
	Count int
}

// Summary describes the per-entity observation counts of one column.
type Summary struct {
	// Column is the observation column that was summarized.
	Column string
	// UniqueIDs is the number of distinct identifiers with at least one observation.
	UniqueIDs int
	// Counts holds one entry per identifier, sorted by ID.
	Counts []IDCount
	// Rows is the number of table rows kept after dropping missing values.
	Rows int
}

// Values returns the per-entity counts in ID order, ready for binning.
func (s *Summary) Values() []float64 {
	vals := make([]float64, len(s.Counts))
	for i, c := range s.Counts {
		vals[i] = float64(c.Count)
	}

	return vals
}

// String returns a string representation of the summary.
func (s *Summary) String() string {
	return fmt.Sprintf("Summary{Column: %s, UniqueIDs: %d, Rows: %d}", s.Column, s.UniqueIDs, s.Rows)
}

// Summarize counts observations of column per entity.
//
// Rows where either the identifier or the observation is missing are dropped
// first. The table itself is not modified.
//
// Parameters:
//   - table: Observation table with an identifier column
//   - column: Observation column to summarize
//   - opts: WithIDColumn, WithLogger; style options are validated but unused
//
// Returns:
//   - *Summary: Unique identifiers, per-ID counts and retained row count
//   - error: errs.ErrInvalidInput (with errs.ErrColumnNotFound) when the
//     identifier column or column is absent
func Summarize(table dataframe.DataFrame, column string, opts ...Option) (*Summary, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return summarize(table, column, cfg)
}

func summarize(table dataframe.DataFrame, column string, cfg Config) (*Summary, error) {
	if err := frame.RequireColumns(table, cfg.IDColumn, column); err != nil {
		return nil, err
	}

	ids := table.Col(cfg.IDColumn)
	obs := table.Col(column)

	perID := make(map[string]int)
	rows := 0
	for i, n := 0, table.Nrow(); i < n; i++ {
		id, v := ids.Elem(i), obs.Elem(i)
		if frame.IsMissing(id) || frame.IsMissing(v) {
			continue
		}
		perID[id.String()]++
		rows++
	}

	counts := make([]IDCount, 0, len(perID))
	for id, n := range perID {
		counts = append(counts, IDCount{ID: id, Count: n})
	}
	slices.SortFunc(counts, func(a, b IDCount) int {
		return strings.Compare(a.ID, b.ID)
	})

	s := &Summary{
		Column:    column,
		UniqueIDs: len(counts),
		Counts:    counts,
		Rows:      rows,
	}

	cfg.Logger.Debug().
		Str("column", column).
		Str("id_column", cfg.IDColumn).
		Int("rows", rows).
		Int("dropped", table.Nrow()-rows).
		Int("unique_ids", s.UniqueIDs).
		Msg("summarized observations")

	return s, nil
}
