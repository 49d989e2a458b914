package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archlint/archlint/internal/core/domain"
)

func testReport() *domain.Report {
	return &domain.Report{
		Root: "/work/project",
		Findings: []domain.Finding{
			{
				Reason:      domain.ReasonLayerBoundary,
				Severity:    domain.SeverityError,
				Source:      "src/domain/order.ts",
				Target:      "src/infrastructure/pg.ts",
				SourceLayer: domain.LayerDomain,
				TargetLayer: domain.LayerInfrastructure,
				Hint:        "invert the dependency",
			},
			{
				Reason:   domain.ReasonCycle,
				Severity: domain.SeverityAdvisory,
				Source:   "src/a.ts",
				Cycle:    []string{"src/a.ts", "src/b.ts"},
			},
		},
		Summary: domain.Summary{
			TotalFiles:     12,
			ViolationCount: 1,
			CycleCount:     1,
			Verdict:        domain.VerdictFail,
		},
	}
}

func keyMsg(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewApp_ListsFindings(t *testing.T) {
	app := NewApp(testReport())

	require.NotNil(t, app)
	assert.Len(t, app.list.Items(), 2)
	assert.Equal(t, "archlint /work/project: 2 finding(s), verdict fail", app.list.Title)
}

func TestApp_QuitKey(t *testing.T) {
	app := NewApp(testReport())

	_, cmd := app.Update(keyMsg("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_EnterShowsDetailEscReturns(t *testing.T) {
	app := NewApp(testReport())
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	model, _ := app.Update(keyMsg("enter"))
	app = model.(*App)

	require.NotNil(t, app.SelectedFinding())
	assert.Equal(t, domain.ReasonLayerBoundary, app.SelectedFinding().Reason)
	assert.Contains(t, app.View(), "src/domain/order.ts")
	assert.Contains(t, app.View(), "invert the dependency")

	model, _ = app.Update(keyMsg("esc"))
	app = model.(*App)

	assert.Nil(t, app.SelectedFinding())
}

func TestFindingItem_Rendering(t *testing.T) {
	boundary := findingItem{finding: testReport().Findings[0]}
	assert.Equal(t, "[error] LayerBoundaryViolation", boundary.Title())
	assert.Contains(t, boundary.Description(), "src/domain/order.ts (domain) -> src/infrastructure/pg.ts (infrastructure)")

	cycle := findingItem{finding: testReport().Findings[1]}
	assert.Equal(t, "[advisory] CycleFinding", cycle.Title())
	assert.Equal(t, "src/a.ts -> src/b.ts", cycle.Description())

	broken := findingItem{finding: domain.Finding{
		Reason: domain.ReasonBrokenImport, Severity: domain.SeverityError,
		Source: "src/a.ts", Specifier: "./missing",
	}}
	assert.Contains(t, broken.Description(), `src/a.ts imports "./missing"`)
}

func TestApp_WindowSizePropagates(t *testing.T) {
	app := NewApp(testReport())

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	app = model.(*App)

	assert.Equal(t, 100, app.width)
	assert.Equal(t, 40, app.height)
}

func TestApp_EmptyReport(t *testing.T) {
	app := NewApp(&domain.Report{
		Root:    ".",
		Summary: domain.Summary{Verdict: domain.VerdictPass},
	})

	assert.Empty(t, app.list.Items())
	assert.Contains(t, app.list.Title, "0 finding(s)")
}
