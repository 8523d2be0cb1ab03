package form

import (
	"fmt"
	"regexp"
)

// emailPattern accepts local@domain.tld shapes: no spaces, no extra "@",
// at least one dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailValid reports whether the address matches the required shape.
func EmailValid(email string) bool {
	return emailPattern.MatchString(email)
}

// Validate checks every required field and returns one message per unmet
// condition, in form order: questions 1..10 first, then the email. A nil
// return means the snapshot is ready for submission. The whole list is
// returned, not just the first failure, so the UI can show every problem
// at once.
func Validate(s Snapshot) []string {
	var msgs []string

	for i := 1; i <= QuestionCount; i++ {
		if !s.Answered(i) {
			msgs = append(msgs, fmt.Sprintf("Question %d has not been answered", i))
		}
	}

	if s.Email == "" {
		msgs = append(msgs, "Please provide your email address")
	} else if !EmailValid(s.Email) {
		msgs = append(msgs, "Please provide a valid email address")
	}

	return msgs
}
