package form

import "strings"

// State is the mutable model behind the questionnaire form. The UI layer
// writes selections into it; everything else reads point-in-time Snapshots.
type State struct {
	answers        [QuestionCount]int // 0 = unanswered, else 1..5
	selfValues     map[string]bool
	selfValueOther string
	beliefs        string
	email          string
}

// NewState returns an empty form.
func NewState() *State {
	return &State{selfValues: make(map[string]bool)}
}

// SetAnswer records the value for question number n (1-based).
// Values outside 1..5 are ignored.
func (s *State) SetAnswer(n, value int) {
	if n < 1 || n > QuestionCount {
		return
	}
	if value < MinOptionValue || value > MaxOptionValue {
		return
	}
	s.answers[n-1] = value
}

// Answer returns the recorded value for question n, or 0 if unanswered.
func (s *State) Answer(n int) int {
	if n < 1 || n > QuestionCount {
		return 0
	}
	return s.answers[n-1]
}

// ToggleSelfValue flips membership of a self-worth tag.
func (s *State) ToggleSelfValue(tag string) {
	if s.selfValues[tag] {
		delete(s.selfValues, tag)
		return
	}
	s.selfValues[tag] = true
}

// SelfValueSelected reports whether a tag is currently selected.
func (s *State) SelfValueSelected(tag string) bool {
	return s.selfValues[tag]
}

// SetSelfValueOther records the free-text companion to the tag selection.
func (s *State) SetSelfValueOther(v string) { s.selfValueOther = v }

// SetBeliefs records the free-text narrative field.
func (s *State) SetBeliefs(v string) { s.beliefs = v }

// SetEmail records the email field.
func (s *State) SetEmail(v string) { s.email = v }

// Email returns the raw email field value.
func (s *State) Email() string { return s.email }

// Reset restores the initial empty state.
func (s *State) Reset() {
	*s = State{selfValues: make(map[string]bool)}
}

// Snapshot builds a point-in-time value of the whole form. Free-text fields
// are trimmed here so that downstream progress/validation/scoring all see
// the same normalized view.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Answers:        s.answers,
		SelfValueOther: strings.TrimSpace(s.selfValueOther),
		Beliefs:        strings.TrimSpace(s.beliefs),
		Email:          strings.TrimSpace(s.email),
	}
	for _, tag := range SelfValueTags() {
		if s.selfValues[tag] {
			snap.SelfValues = append(snap.SelfValues, tag)
		}
	}
	return snap
}

// Snapshot is an immutable read of the form at one instant.
type Snapshot struct {
	Answers        [QuestionCount]int // 0 = unanswered
	SelfValues     []string           // selected tags, in tag order
	SelfValueOther string
	Beliefs        string
	Email          string // trimmed
}

// Answered reports whether question n (1-based) has a selection.
func (s Snapshot) Answered(n int) bool {
	return n >= 1 && n <= QuestionCount && s.Answers[n-1] != 0
}

// AnsweredCount returns how many of the scored questions have a selection.
func (s Snapshot) AnsweredCount() int {
	count := 0
	for _, v := range s.Answers {
		if v != 0 {
			count++
		}
	}
	return count
}

// EmailPresent reports whether the email field is non-empty. Presence is
// deliberately weaker than validity: progress counts a non-empty email as
// answered even when Validate would still reject its shape.
func (s Snapshot) EmailPresent() bool {
	return s.Email != ""
}
