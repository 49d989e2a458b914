// Package tui is the interactive findings browser, following the Elm
// architecture on top of Bubbletea. It renders the result of one
// completed analysis run; it never re-runs the analysis itself.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/archlint/archlint/internal/core/domain"
)

// findingItem adapts a domain.Finding to the bubbles list.
type findingItem struct {
	finding domain.Finding
}

func (i findingItem) Title() string {
	return fmt.Sprintf("[%s] %s", i.finding.Severity, i.finding.Reason)
}

func (i findingItem) Description() string {
	f := i.finding
	switch f.Reason {
	case domain.ReasonBrokenImport:
		return fmt.Sprintf("%s imports %q", f.Source, f.Specifier)
	case domain.ReasonLayerBoundary:
		return fmt.Sprintf("%s (%s) -> %s (%s)", f.Source, f.SourceLayer, f.Target, f.TargetLayer)
	case domain.ReasonCycle:
		return strings.Join(f.Cycle, " -> ")
	default:
		return f.Source
	}
}

func (i findingItem) FilterValue() string {
	return i.finding.Source + " " + string(i.finding.Reason)
}

// App is the findings browser. It implements tea.Model.
type App struct {
	report *domain.Report
	list   list.Model

	// detail is the finding shown full screen, nil when browsing.
	detail *domain.Finding

	width  int
	height int

	titleStyle  lipgloss.Style
	detailStyle lipgloss.Style
	labelStyle  lipgloss.Style
	passStyle   lipgloss.Style
	failStyle   lipgloss.Style
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the findings browser for a completed report.
func NewApp(report *domain.Report) *App {
	items := make([]list.Item, len(report.Findings))
	for i, f := range report.Findings {
		items[i] = findingItem{finding: f}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = listTitle(report)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return &App{
		report: report,
		list:   l,

		titleStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		detailStyle: lipgloss.NewStyle().Padding(1, 2),
		labelStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(12),
		passStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		failStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

func listTitle(report *domain.Report) string {
	return fmt.Sprintf("archlint %s: %d finding(s), verdict %s",
		report.Root, len(report.Findings), report.Summary.Verdict)
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Keys pass through to the list while its filter input is open.
		if a.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit

		case "enter":
			if a.detail == nil {
				if item, ok := a.list.SelectedItem().(findingItem); ok {
					f := item.finding
					a.detail = &f
				}
				return a, nil
			}

		case "esc":
			if a.detail != nil {
				a.detail = nil
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if a.detail != nil {
		return a.detailView()
	}
	return a.list.View()
}

// detailView renders one finding full screen.
func (a *App) detailView() string {
	f := a.detail
	var b strings.Builder

	b.WriteString(a.titleStyle.Render(string(f.Reason)))
	b.WriteString("\n\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(a.labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Severity", string(f.Severity))
	row("Source", f.Source)
	row("Target", f.Target)
	row("Specifier", f.Specifier)
	row("From layer", string(f.SourceLayer))
	row("To layer", string(f.TargetLayer))
	if len(f.Cycle) > 0 {
		row("Cycle", strings.Join(f.Cycle, " -> "))
	}
	row("Hint", f.Hint)

	b.WriteString("\n")
	b.WriteString(a.labelStyle.Render(""))
	b.WriteString("esc to go back, q to quit")

	return a.detailStyle.Render(b.String())
}

// SelectedFinding returns the finding currently shown in detail, nil
// when browsing the list.
func (a *App) SelectedFinding() *domain.Finding {
	return a.detail
}
