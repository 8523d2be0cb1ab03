package results

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/joshtsang/fopo/internal/form"
	"github.com/joshtsang/fopo/internal/insight"
	"github.com/joshtsang/fopo/internal/router"
	"github.com/joshtsang/fopo/internal/scoring"
	"github.com/joshtsang/fopo/internal/screen"
	"github.com/joshtsang/fopo/internal/ui/layout"
	"github.com/joshtsang/fopo/internal/ui/theme"
)

// reflectionMsg is sent when the AI reflection request resolves.
type reflectionMsg struct {
	Reflection *insight.Reflection
	Err        error
}

// Params configures a results screen for one completed assessment.
type Params struct {
	Score    int
	Tier     scoring.Tier
	Snapshot form.Snapshot
	Insight  *insight.Service // nil hides the reflection option
	Retake   func() screen.Screen
}

// ResultsScreen shows the score, tier guidance, and an optional
// model-generated reflection.
type ResultsScreen struct {
	params Params

	loadingReflection bool
	reflection        *insight.Reflection
	reflectionErr     error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.ProgressProvider = (*ResultsScreen)(nil)

// New creates a results screen.
func New(params Params) *ResultsScreen {
	return &ResultsScreen{params: params}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Your Results"
}

func (r *ResultsScreen) Progress() int {
	return 100
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "R", Description: "Retake"},
	}
	if r.params.Insight != nil && r.reflection == nil && !r.loadingReflection {
		hints = append(hints, layout.KeyHint{Key: "I", Description: "Reflection"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reflectionMsg:
		r.loadingReflection = false
		r.reflection = msg.Reflection
		r.reflectionErr = msg.Err
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r", "esc":
			return r, r.retake()
		case "i":
			if r.params.Insight != nil && r.reflection == nil && !r.loadingReflection {
				return r, r.generateReflection()
			}
		}
	}
	return r, nil
}

// retake swaps in a fresh, empty assessment.
func (r *ResultsScreen) retake() tea.Cmd {
	fresh := r.params.Retake()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: fresh}
	}
}

func (r *ResultsScreen) generateReflection() tea.Cmd {
	r.loadingReflection = true
	svc := r.params.Insight
	snap := r.params.Snapshot
	score := r.params.Score
	tier := r.params.Tier
	return func() tea.Msg {
		refl, err := svc.Generate(context.Background(), snap, score, tier)
		return reflectionMsg{Reflection: refl, Err: err}
	}
}

func (r *ResultsScreen) View(width, height int) string {
	tier := r.params.Tier

	banner := theme.Title.Render(fmt.Sprintf("%d / %d", r.params.Score, scoring.MaxScore))
	label := lipgloss.NewStyle().Foreground(tierColor(tier)).Bold(true).Render(tier.Label())
	desc := lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-12, 64)).Render(tier.Description())

	var b strings.Builder
	b.WriteString(banner + "\n" + label + "\n\n" + desc + "\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Things to try") + "\n")
	for _, s := range tier.Suggestions() {
		b.WriteString("  • " + s + "\n")
	}

	switch {
	case r.loadingReflection:
		b.WriteString("\n" + theme.Hint.Render("Thinking about your answers..."))
	case r.reflectionErr != nil:
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("Reflection unavailable right now."))
	case r.reflection != nil:
		b.WriteString("\n" + r.renderReflection(width))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(b.String()))
}

func (r *ResultsScreen) renderReflection(width int) string {
	wrap := lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-16, 60))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("A reflection for you") + "\n")
	b.WriteString(wrap.Render(r.reflection.Summary) + "\n\n")
	b.WriteString(wrap.Italic(true).Render(r.reflection.Encouragement) + "\n")
	for _, p := range r.reflection.Practices {
		b.WriteString("  • " + p + "\n")
	}
	return b.String()
}

func tierColor(t scoring.Tier) color.Color {
	switch t {
	case scoring.TierLow:
		return theme.Success
	case scoring.TierMedium:
		return theme.Accent
	default:
		return theme.Error
	}
}
