package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/archlint/archlint/internal/core/domain"
)

// renderJSON writes the structured report. The payload is sorted and
// carries no run metadata, so identical input yields identical bytes.
func renderJSON(w io.Writer, report *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// styles groups the lipgloss styles used by the text renderer. All
// styles collapse to plain text when color is off.
type styles struct {
	severity map[domain.Severity]lipgloss.Style
	pass     lipgloss.Style
	fail     lipgloss.Style
	path     lipgloss.Style
	hint     lipgloss.Style
}

func newStyles(color bool) *styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &styles{
			severity: map[domain.Severity]lipgloss.Style{
				domain.SeverityError:    plain,
				domain.SeverityWarning:  plain,
				domain.SeverityAdvisory: plain,
			},
			pass: plain, fail: plain, path: plain, hint: plain,
		}
	}
	return &styles{
		severity: map[domain.Severity]lipgloss.Style{
			domain.SeverityError:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			domain.SeverityWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			domain.SeverityAdvisory: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		},
		pass: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		fail: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		path: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		hint: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
	}
}

// colorEnabled reports whether the writer is an interactive terminal.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderText writes the human-readable report.
func renderText(w io.Writer, report *domain.Report, wantColor bool) error {
	st := newStyles(wantColor && colorEnabled(w))

	if len(report.Findings) == 0 {
		fmt.Fprintf(w, "%s  no findings in %d files\n",
			st.pass.Render("PASS"), report.Summary.TotalFiles)
		return nil
	}

	for _, f := range report.Findings {
		if err := renderFinding(w, st, f); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Files: %d  Edges: %d  External: %d  Violations: %d  Cycles: %d\n",
		report.Summary.TotalFiles, report.Summary.TotalEdges,
		report.Summary.ExternalCount, report.Summary.ViolationCount,
		report.Summary.CycleCount)

	verdict := st.pass.Render("PASS")
	if report.Summary.Verdict == domain.VerdictFail {
		verdict = st.fail.Render("FAIL")
	}
	fmt.Fprintf(w, "Verdict: %s\n", verdict)
	return nil
}

func renderFinding(w io.Writer, st *styles, f domain.Finding) error {
	label := st.severity[f.Severity].Render(string(f.Severity))

	switch f.Reason {
	case domain.ReasonBrokenImport:
		fmt.Fprintf(w, "%s  %s: %s imports %q which resolves to no file\n",
			label, f.Reason, st.path.Render(f.Source), f.Specifier)
	case domain.ReasonLayerBoundary:
		fmt.Fprintf(w, "%s  %s: %s (%s) imports %s (%s)\n",
			label, f.Reason,
			st.path.Render(f.Source), f.SourceLayer,
			st.path.Render(f.Target), f.TargetLayer)
	case domain.ReasonUnclassified:
		fmt.Fprintf(w, "%s  %s: %s matches no layer rule\n",
			label, f.Reason, st.path.Render(f.Source))
	case domain.ReasonCycle:
		fmt.Fprintf(w, "%s  %s: %s\n",
			label, f.Reason, strings.Join(f.Cycle, " -> "))
	default:
		fmt.Fprintf(w, "%s  %s: %s\n", label, f.Reason, f.Source)
	}

	if f.Hint != "" {
		fmt.Fprintf(w, "       %s\n", st.hint.Render(f.Hint))
	}
	return nil
}
