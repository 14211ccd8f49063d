// Package observability provides formatted terminal output for analysis
// results.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mihai/cvscope/internal/lexicon"
	"github.com/mihai/cvscope/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted result output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// truncate on runes, not bytes: Romanian keywords carry ă/ș/ț
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs the ranked keywords of one job-description analysis.
func (p *Printer) PrintAnalysis(a *types.Analysis) {
	if a == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Language: %s\n", a.Language))
	sb.WriteString(fmt.Sprintf("Keywords: %d\n\n", len(a.Keywords)))

	count := min(len(a.Keywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		kw := a.Keywords[i]
		marker := " "
		if kw.Source == types.KeywordSourceLibrary {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%2d. %s %s (%.1f)\n", i+1, marker, kw.Keyword, kw.Score))
	}
	if len(a.Keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(a.Keywords)-maxItemsToShow))
	}
	sb.WriteString("\n* = from the active keyword library")

	p.printBox("JOB DESCRIPTION ANALYSIS", sb.String())
}

// PrintCoverage outputs a coverage report as a percentage plus the present
// and missing keyword lists.
func (p *Printer) PrintCoverage(r types.CoverageReport) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Coverage: %.0f%% (%d of %d keywords)\n",
		r.Ratio*100, len(r.Present), r.Total()))

	writeList := func(header string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString("\n" + header + "\n")
		count := min(len(items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
	}
	writeList("Present:", r.Present)
	writeList("Missing:", r.Missing)

	p.printBox("CV COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the ranked profile suggestions.
func (p *Printer) PrintSuggestions(scores []types.ProfileScore) {
	if len(scores) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(scores), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := scores[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, s.Label, s.Domain))
		sb.WriteString(fmt.Sprintf("    Score: %.2f", s.Score))
		if len(s.Matched) > 0 {
			matched := strings.Join(s.Matched, ", ")
			if len(matched) > 40 {
				matched = matched[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  [%s]", matched))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(scores) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more profiles", len(scores)-maxItemsToShow))
	}

	p.printBox("SUGGESTED PROFILES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfile outputs one resolved profile with its merged content.
func (p *Printer) PrintProfile(prof *lexicon.ResolvedProfile) {
	if prof == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Profile:  %s\n", prof.ID))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", prof.Title.For(prof.Language)))
	sb.WriteString(fmt.Sprintf("Domain:   %s\n", prof.Domain))
	sb.WriteString(fmt.Sprintf("Keywords: %d\n", len(prof.Keywords)))

	count := min(len(prof.Keywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", prof.Keywords[i]))
	}
	if len(prof.Keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(prof.Keywords)-maxItemsToShow))
	}
	if len(prof.JobTitles) > 0 {
		sb.WriteString(fmt.Sprintf("\nJob titles: %s\n", strings.Join(prof.JobTitles, ", ")))
	}

	p.printBox("PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLintReport outputs a lexicon tree lint report, one line per finding.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintLintReport(r *lexicon.Report) {
	if r == nil || len(r.Findings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ LIBRARY TREE OK")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors, %d warnings\n\n",
		r.CountLevel(lexicon.LevelError), r.CountLevel(lexicon.LevelWarning)))
	for i, f := range r.Findings {
		mark := "⚠"
		if f.Level == lexicon.LevelError {
			mark = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, f.File))
		sb.WriteString(fmt.Sprintf("  %s\n", f.Message))
		if i < len(r.Findings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LIBRARY TREE FINDINGS", strings.TrimSuffix(sb.String(), "\n"))
}
