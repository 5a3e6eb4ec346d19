package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/baseball-stats/internal/config"
	"github.com/riskibarqy/baseball-stats/internal/domain/batting"
)

// Render writes report to w as plain text or JSON.
func Render(w io.Writer, report Report, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case config.OutputJSON:
		return sonic.ConfigDefault.NewEncoder(w).Encode(report)
	case config.OutputText, "":
		return renderText(w, report)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderText(w io.Writer, report Report) error {
	bw := bufio.NewWriter(w)

	improved := report.MostImproved
	fmt.Fprintf(bw, "Most improved batting average (%d to %d)\n", improved.FromYear, improved.ToYear)
	if improved.PlayerID == nil || improved.Difference == nil {
		fmt.Fprintln(bw, batting.NoWinnerLabel)
	} else {
		fmt.Fprintf(bw, "%s %+.3f\n", *improved.PlayerID, *improved.Difference)
	}

	slugging := report.Slugging
	fmt.Fprintf(bw, "Slugging percentage for %s during %d\n", slugging.Team, slugging.Year)
	if slugging.Average == nil {
		fmt.Fprintln(bw, "n/a")
	} else {
		fmt.Fprintf(bw, "%.3f\n", *slugging.Average)
	}

	for _, crown := range report.TripleCrowns {
		fmt.Fprintf(bw, "Triple crown winner for %d\n", crown.Year)
		fmt.Fprintln(bw, batting.TripleCrownWinners(crown.Winners...).String())
	}

	return bw.Flush()
}
