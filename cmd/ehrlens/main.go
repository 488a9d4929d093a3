// Command ehrlens runs the EHR exploration helpers from the command line.
//
// Usage:
//
//	ehrlens lookup -ref cross_ref_cols_tabs.csv SYSTOLIC DIASTOLIC
//	ehrlens hist   -data obs.csv.zst -column SYSTOLIC -label "Systolic BP" -out systolic.png
//	ehrlens scale  -min 10 -max 1000 3 1 2
//	ehrlens trend  -data heatmap.csv -n 11 -parallel > trends.csv
//
// Set PRETTY=1 for console logs and DEBUG=1 for debug events.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/arloliu/ehrlens/internal/logger"
)

const usage = `usage: ehrlens <command> [flags] [args]

commands:
  lookup  list files containing every given column
  hist    render the per-IDEHR observation count histogram of a column
  scale   rescale values into marker sizes
  trend   append degree-1/degree-2 fit coefficients to a heatmap table
`

var errUsage = errors.New("usage")

func main() {
	log := logger.New()

	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		log.Error().Err(err).Msg("ehrlens failed")
		os.Exit(1)
	}
}

// run dispatches args[0] to its subcommand, writing command output to stdout.
func run(args []string, stdout io.Writer, log zerolog.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, rest := args[0], args[1:]
	log = log.With().Str("command", cmd).Logger()

	switch cmd {
	case "lookup":
		return runLookup(rest, stdout, log)
	case "hist":
		return runHist(rest, stdout, log)
	case "scale":
		return runScale(rest, stdout, log)
	case "trend":
		return runTrend(rest, stdout, log)
	case "help", "-h", "-help", "--help":
		_, err := fmt.Fprint(stdout, usage)
		return err
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}
