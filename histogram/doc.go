// Package histogram summarizes how many observations each entity has for a
// column of an observation table and renders the distribution as a chart.
//
// # Overview
//
// An observation table has one row per recorded observation and an identifier
// column (IDEHR by default) naming the entity it belongs to. For a chosen
// observation column, Summarize drops every row where the identifier or the
// observation is missing, then counts the remaining rows per identifier.
// Render bins those per-entity counts into a histogram:
//
//   - x axis: number of observations per entity
//   - y axis: number of entities with that many observations
//
// RenderObservationHistogram runs both steps and reports the number of unique
// entities with at least one observation:
//
//	No. of unique IDEHR: 1412
//
// # Styling
//
// Chart dimensions, font size, bin count and output format are carried in a
// Style value instead of global plotting state:
//
//	style := histogram.DefaultStyle()
//	style.Format = "svg"
//	s, err := histogram.RenderObservationHistogram(f, obs, "SYSTOLIC", "Systolic BP",
//	    histogram.WithStyle(style),
//	    histogram.WithBins(20),
//	)
//
// Charts are drawn with gonum.org/v1/plot; any format its WriterTo accepts
// can be requested.
package histogram
