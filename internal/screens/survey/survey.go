package survey

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/joshtsang/fopo/internal/form"
	"github.com/joshtsang/fopo/internal/insight"
	"github.com/joshtsang/fopo/internal/router"
	"github.com/joshtsang/fopo/internal/screen"
	"github.com/joshtsang/fopo/internal/screens/results"
	"github.com/joshtsang/fopo/internal/submit"
	"github.com/joshtsang/fopo/internal/ui/components"
	"github.com/joshtsang/fopo/internal/ui/layout"
)

// Step indices. Steps 0..9 are the scored questions.
const (
	stepSelfValues = form.QuestionCount + iota
	stepBeliefs
	stepEmail
	stepReview
)

// Notice lifetimes.
const (
	validationNoticeDur = 5 * time.Second
	successNoticeDur    = 3 * time.Second
	errorNoticeDur      = 10 * time.Second
	resultsDelay        = 1500 * time.Millisecond
)

// Deps carries the services the assessment flow needs.
type Deps struct {
	Pipeline *submit.Pipeline
	Insight  *insight.Service
}

// SurveyScreen walks through the questionnaire one step at a time and
// hands the completed form to the submission pipeline.
type SurveyScreen struct {
	deps  Deps
	state *form.State
	step  int

	likert       components.Likert
	checklist    components.Checklist
	otherInput   components.TextInput
	beliefsInput components.TextInput
	emailInput   components.TextInput
	otherFocused bool

	notice         *components.Notice
	noticeSeq      int
	submitting     bool
	pendingOutcome *submit.Outcome
}

var _ screen.Screen = (*SurveyScreen)(nil)
var _ screen.KeyHintProvider = (*SurveyScreen)(nil)
var _ screen.ProgressProvider = (*SurveyScreen)(nil)

// New creates a fresh assessment flow.
func New(deps Deps) *SurveyScreen {
	state := form.NewState()
	s := &SurveyScreen{
		deps:         deps,
		state:        state,
		checklist:    components.NewChecklist("My sense of self-worth comes from...", form.SelfValueTags(), state.SelfValueSelected),
		otherInput:   components.NewTextInput("Something else? Tell us here...", "", 200),
		beliefsInput: components.NewTextInput("What do you believe in, beyond others' opinions?", "", 500),
		emailInput:   components.NewTextInput("you@example.com", "", 120),
	}
	s.likert = s.likertFor(1)
	return s
}

func (s *SurveyScreen) likertFor(n int) components.Likert {
	q := form.Questions()[n-1]
	return components.NewLikert(q.Text, form.OptionLabels, s.state.Answer(n))
}

func (s *SurveyScreen) Init() tea.Cmd {
	return nil
}

func (s *SurveyScreen) Title() string {
	return "FOPO Assessment"
}

// Progress returns the overall completion percentage for the header.
func (s *SurveyScreen) Progress() int {
	return form.ComputeProgress(s.state.Snapshot()).Percent
}

func (s *SurveyScreen) KeyHints() []layout.KeyHint {
	if s.submitting {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	switch {
	case s.step < form.QuestionCount:
		return []layout.KeyHint{
			{Key: "1-5", Description: "Choose"},
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	case s.step == stepSelfValues:
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "Tab", Description: "Other"},
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	case s.step == stepReview:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *SurveyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitFinishedMsg:
		return s.handleSubmitFinished(msg)

	case noticeExpiredMsg:
		if msg.Seq == s.noticeSeq {
			s.notice = nil
		}
		return s, nil

	case showResultsMsg:
		return s.handleShowResults()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, s.forwardToInput(msg)
}

// forwardToInput passes non-key messages (cursor blinks) to whichever
// text input is live on the current step.
func (s *SurveyScreen) forwardToInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case s.step == stepSelfValues && s.otherFocused:
		s.otherInput, cmd = s.otherInput.Update(msg)
	case s.step == stepBeliefs:
		s.beliefsInput, cmd = s.beliefsInput.Update(msg)
	case s.step == stepEmail:
		s.emailInput, cmd = s.emailInput.Update(msg)
	}
	return cmd
}

func (s *SurveyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// An error notice can be dismissed early with any key.
	if s.notice != nil && s.notice.Kind == components.NoticeError {
		s.noticeSeq++
		s.notice = nil
		return s, nil
	}

	if s.submitting {
		return s, nil
	}

	switch key {
	case "esc":
		return s.stepBack()
	case "enter":
		return s.handleEnter(msg)
	}

	switch {
	case s.step < form.QuestionCount:
		s.likert, _ = s.likert.Update(msg)
		if s.likert.Answered() {
			s.state.SetAnswer(s.step+1, s.likert.Chosen)
		}
		return s, nil

	case s.step == stepSelfValues:
		if key == "tab" {
			s.otherFocused = !s.otherFocused
			if s.otherFocused {
				return s, s.otherInput.Init()
			}
			return s, nil
		}
		if s.otherFocused {
			var cmd tea.Cmd
			s.otherInput, cmd = s.otherInput.Update(msg)
			s.state.SetSelfValueOther(s.otherInput.Value())
			return s, cmd
		}
		var toggled int
		s.checklist, toggled = s.checklist.Update(msg)
		if toggled >= 0 {
			s.state.ToggleSelfValue(form.SelfValueTags()[toggled])
		}
		return s, nil

	case s.step == stepBeliefs:
		var cmd tea.Cmd
		s.beliefsInput, cmd = s.beliefsInput.Update(msg)
		s.state.SetBeliefs(s.beliefsInput.Value())
		return s, cmd

	case s.step == stepEmail:
		var cmd tea.Cmd
		s.emailInput, cmd = s.emailInput.Update(msg)
		s.state.SetEmail(s.emailInput.Value())
		return s, cmd
	}

	return s, nil
}

func (s *SurveyScreen) handleEnter(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case s.step < form.QuestionCount:
		// Enter confirms the highlighted option, then advances.
		s.likert, _ = s.likert.Update(msg)
		if !s.likert.Answered() {
			return s, nil
		}
		s.state.SetAnswer(s.step+1, s.likert.Chosen)
		return s.stepForward()

	case s.step == stepSelfValues:
		if s.otherFocused {
			s.state.SetSelfValueOther(s.otherInput.Value())
		}
		return s.stepForward()

	case s.step == stepBeliefs:
		s.state.SetBeliefs(s.beliefsInput.Value())
		return s.stepForward()

	case s.step == stepEmail:
		s.state.SetEmail(s.emailInput.Value())
		s.emailInput.Submit(form.EmailValid(s.state.Snapshot().Email))
		return s.stepForward()

	case s.step == stepReview:
		if !form.ComputeProgress(s.state.Snapshot()).CanSubmit {
			return s, nil
		}
		return s, s.submitCmd()
	}

	return s, nil
}

func (s *SurveyScreen) stepForward() (screen.Screen, tea.Cmd) {
	if s.step >= stepReview {
		return s, nil
	}
	s.step++
	return s.enterStep()
}

func (s *SurveyScreen) stepBack() (screen.Screen, tea.Cmd) {
	if s.step == 0 {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.step--
	return s.enterStep()
}

func (s *SurveyScreen) enterStep() (screen.Screen, tea.Cmd) {
	switch {
	case s.step < form.QuestionCount:
		s.likert = s.likertFor(s.step + 1)
		return s, nil
	case s.step == stepSelfValues:
		s.otherFocused = false
		return s, nil
	case s.step == stepBeliefs:
		return s, s.beliefsInput.Init()
	case s.step == stepEmail:
		return s, s.emailInput.Init()
	}
	return s, nil
}

// submitCmd runs the pipeline off the UI loop. The pipeline rejects the
// attempt itself when the form is incomplete or one is already in flight.
func (s *SurveyScreen) submitCmd() tea.Cmd {
	s.submitting = true
	snap := s.state.Snapshot()
	pipeline := s.deps.Pipeline
	return func() tea.Msg {
		out, err := pipeline.Submit(context.Background(), snap)
		return submitFinishedMsg{Outcome: out, Err: err}
	}
}

func (s *SurveyScreen) handleSubmitFinished(msg submitFinishedMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false

	if msg.Err != nil {
		var vErr *submit.ValidationError
		if errors.As(msg.Err, &vErr) {
			return s, s.showNotice(components.Notice{
				Kind:  components.NoticeInfo,
				Title: "Almost there",
				Lines: vErr.Messages,
			}, validationNoticeDur)
		}
		return s, s.showNotice(components.Notice{
			Kind:  components.NoticeError,
			Title: "Submission failed",
			Lines: []string{
				"Your answers could not be sent. Nothing was lost.",
				msg.Err.Error(),
				"Press Enter on the review step to try again.",
			},
		}, errorNoticeDur)
	}

	s.submitting = true // hold the form while the thank-you shows
	outcome := msg.Outcome
	s.pendingOutcome = outcome

	return s, tea.Batch(
		s.showNotice(components.Notice{
			Kind:  components.NoticeSuccess,
			Title: "Thank you!",
			Lines: []string{"Your responses have been submitted."},
		}, successNoticeDur),
		tea.Tick(resultsDelay, func(time.Time) tea.Msg { return showResultsMsg{} }),
	)
}

func (s *SurveyScreen) handleShowResults() (screen.Screen, tea.Cmd) {
	if s.pendingOutcome == nil {
		return s, nil
	}
	deps := s.deps
	resultsScreen := results.New(results.Params{
		Score:    s.pendingOutcome.Score,
		Tier:     s.pendingOutcome.Tier,
		Snapshot: s.state.Snapshot(),
		Insight:  deps.Insight,
		Retake:   func() screen.Screen { return New(deps) },
	})
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: resultsScreen}
	}
}

// showNotice installs a notice and schedules its expiry. Bumping the
// sequence invalidates any timer still pending for an older notice.
func (s *SurveyScreen) showNotice(n components.Notice, d time.Duration) tea.Cmd {
	s.noticeSeq++
	seq := s.noticeSeq
	s.notice = &n
	return tea.Tick(d, func(time.Time) tea.Msg { return noticeExpiredMsg{Seq: seq} })
}
