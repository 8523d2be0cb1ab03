package survey

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/joshtsang/fopo/internal/form"
	"github.com/joshtsang/fopo/internal/router"
	"github.com/joshtsang/fopo/internal/scoring"
	"github.com/joshtsang/fopo/internal/screen"
	"github.com/joshtsang/fopo/internal/submit"
	"github.com/joshtsang/fopo/internal/ui/components"
)

// okSender accepts every payload.
type okSender struct{}

func (okSender) Send(_ context.Context, _ submit.Payload) (map[string]any, error) {
	return map[string]any{}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSurvey() *SurveyScreen {
	pipeline := submit.NewPipeline(okSender{}, nil, "test")
	return New(Deps{Pipeline: pipeline})
}

func TestSurveyStartsAtFirstQuestion(t *testing.T) {
	s := testSurvey()
	if s.step != 0 {
		t.Errorf("step = %d, want 0", s.step)
	}
	if got := s.Progress(); got != 0 {
		t.Errorf("Progress = %d, want 0", got)
	}
}

func TestSurveyAnswerAdvances(t *testing.T) {
	s := testSurvey()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('3'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SurveyScreen)

	if ss.step != 1 {
		t.Errorf("step = %d, want 1 after answering", ss.step)
	}
	if got := ss.state.Answer(1); got != 3 {
		t.Errorf("Answer(1) = %d, want 3", got)
	}
	if ss.Progress() == 0 {
		t.Error("expected progress to move after first answer")
	}
}

func TestSurveyEnterConfirmsHighlighted(t *testing.T) {
	s := testSurvey()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SurveyScreen)

	if ss.step != 1 {
		t.Errorf("step = %d, want 1 after confirming the highlighted option", ss.step)
	}
	if got := ss.state.Answer(1); got != 1 {
		t.Errorf("Answer(1) = %d, want 1", got)
	}
}

func TestSurveyEscAtFirstStepPops(t *testing.T) {
	s := testSurvey()

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg at the first step")
	}
}

func TestSurveyEscStepsBack(t *testing.T) {
	s := testSurvey()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SurveyScreen)

	if ss.step != 0 {
		t.Errorf("step = %d, want 0 after stepping back", ss.step)
	}
	// The earlier answer is preserved when revisiting.
	if !ss.likert.Answered() {
		t.Error("expected the earlier choice to be preselected")
	}
}

func TestSurveyReviewSubmitGated(t *testing.T) {
	s := testSurvey()
	s.step = stepReview

	// Incomplete form: the submit affordance must do nothing.
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Fatal("expected no command while the form is incomplete")
	}
	if s.submitting {
		t.Error("expected no attempt to start while the form is incomplete")
	}

	// Complete the form: Enter now starts an attempt.
	for i := 1; i <= form.QuestionCount; i++ {
		s.state.SetAnswer(i, 2)
	}
	s.state.SetEmail("someone@example.com")
	_, cmd = s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a submit command once eligible")
	}
	if !s.submitting {
		t.Error("expected the attempt to be marked in flight")
	}
}

func TestSurveyValidationNotice(t *testing.T) {
	s := testSurvey()

	var scr screen.Screen = s
	scr, _ = scr.Update(submitFinishedMsg{
		Err: &submit.ValidationError{Messages: []string{"Question 1 has not been answered"}},
	})
	ss := scr.(*SurveyScreen)

	if ss.notice == nil {
		t.Fatal("expected a notice")
	}
	if ss.notice.Kind != components.NoticeInfo {
		t.Errorf("notice kind = %v, want info", ss.notice.Kind)
	}
	if ss.submitting {
		t.Error("expected submitting to clear on validation failure")
	}
}

func TestSurveyTransmissionErrorNotice(t *testing.T) {
	s := testSurvey()

	var scr screen.Screen = s
	scr, _ = scr.Update(submitFinishedMsg{
		Err: &submit.TransmissionError{StatusCode: 500},
	})
	ss := scr.(*SurveyScreen)

	if ss.notice == nil || ss.notice.Kind != components.NoticeError {
		t.Fatal("expected an error notice")
	}

	// Any key dismisses an error notice early.
	scr, _ = ss.Update(keyPress('x'))
	ss = scr.(*SurveyScreen)
	if ss.notice != nil {
		t.Error("expected error notice to dismiss on keypress")
	}
}

func TestSurveyStaleNoticeTimerIgnored(t *testing.T) {
	s := testSurvey()

	var scr screen.Screen = s
	scr, _ = scr.Update(submitFinishedMsg{
		Err: &submit.TransmissionError{StatusCode: 500},
	})
	ss := scr.(*SurveyScreen)

	scr, _ = ss.Update(noticeExpiredMsg{Seq: ss.noticeSeq - 1})
	ss = scr.(*SurveyScreen)
	if ss.notice == nil {
		t.Error("stale expiry must not dismiss the current notice")
	}

	scr, _ = ss.Update(noticeExpiredMsg{Seq: ss.noticeSeq})
	ss = scr.(*SurveyScreen)
	if ss.notice != nil {
		t.Error("matching expiry should dismiss the notice")
	}
}

func TestSurveySuccessLeadsToResults(t *testing.T) {
	s := testSurvey()

	outcome := &submit.Outcome{Score: 38, Tier: scoring.TierHigh}
	var scr screen.Screen = s
	scr, cmd := scr.Update(submitFinishedMsg{Outcome: outcome})
	ss := scr.(*SurveyScreen)

	if cmd == nil {
		t.Fatal("expected notice + transition commands")
	}
	if ss.notice == nil || ss.notice.Kind != components.NoticeSuccess {
		t.Error("expected a success notice")
	}
	if ss.pendingOutcome != outcome {
		t.Error("expected outcome to be held for the transition")
	}

	scr, cmd = ss.Update(showResultsMsg{})
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the results screen")
	}
	_ = scr
}

func TestSurveyProgressDenominatorGrowsWithEmail(t *testing.T) {
	s := testSurvey()
	for i := 1; i <= form.QuestionCount; i++ {
		s.state.SetAnswer(i, 2)
	}
	if got := s.Progress(); got != 100 {
		t.Errorf("Progress = %d, want 100 without email", got)
	}

	s.state.SetEmail("someone@example.com")
	if got := s.Progress(); got != 100 {
		t.Errorf("Progress = %d, want 100 with email answered too", got)
	}
}

func TestSurveyViewNonEmpty(t *testing.T) {
	s := testSurvey()
	for step := 0; step <= stepReview; step++ {
		s.step = step
		if s.View(80, 24) == "" {
			t.Errorf("empty view at step %d", step)
		}
	}
}
