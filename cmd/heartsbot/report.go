package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/0x4D44/mdhearts-sub002/engine"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	chosenStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	cardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// printReport renders a DecisionReport as a card-by-candidate table
// followed by a stats summary line.
func printReport(report engine.DecisionReport) {
	fmt.Printf("%s %s  (%s style)\n\n",
		headerStyle.Render("chosen:"),
		chosenStyle.Render(report.Chosen.String()),
		report.Style)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("card"),
		headerStyle.Render("base"),
		headerStyle.Render("continuation"),
		headerStyle.Render("total"))

	for _, c := range report.Candidates {
		marker := cardStyle.Render(c.Card.String())
		if c.Card == report.Chosen {
			marker = chosenStyle.Render(c.Card.String() + " *")
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", marker, c.BaseScore, c.ContinuationScore, c.Total)
	}
	w.Flush()

	fmt.Println()
	printStats(report.Stats)
}

func printStats(s engine.Stats) {
	fmt.Printf("%s scannedA=%d scannedB=%d skipped=%d tt=%d/%d depth=%d steps=%d elapsed=%dms\n",
		statStyle.Render("stats:"),
		s.ScannedPhaseA, s.ScannedPhaseB, s.CandidatesSkipped,
		s.TranspositionHits, s.TranspositionTotal, s.DepthReached, s.StepsUsed, s.ElapsedMs)

	var flags []string
	if s.BudgetExhausted {
		flags = append(flags, "budget-exhausted")
	}
	if s.Cancelled {
		flags = append(flags, "cancelled")
	}
	if s.SamplingFailed {
		flags = append(flags, "sampling-failed")
	}
	if s.OverflowGuarded {
		flags = append(flags, "overflow-guarded")
	}
	if s.UsedFallback {
		flags = append(flags, "used-fallback")
	}
	if len(flags) > 0 {
		fmt.Printf("%s %v\n", statStyle.Render("flags:"), flags)
	}
}
