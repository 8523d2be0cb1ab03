package form

import "math"

// Progress describes completion of the form at one instant.
type Progress struct {
	Percent     int // 0..100, rounded
	Answered    int // answered units, email included when present
	Denominator int // 10, or 11 when the email field is non-empty
	CanSubmit   bool
}

// ComputeProgress derives completion from a snapshot. The denominator grows
// to 11 only once the email field is non-empty, so an untouched form reads
// 0/10 rather than 0/11. Submission requires all ten questions plus a
// non-empty email; email shape is checked later by Validate.
func ComputeProgress(s Snapshot) Progress {
	answered := s.AnsweredCount()
	questionsDone := answered

	denominator := QuestionCount
	if s.EmailPresent() {
		denominator = QuestionCount + 1
		answered++
	}

	percent := int(math.Round(100 * float64(answered) / float64(denominator)))

	return Progress{
		Percent:     percent,
		Answered:    answered,
		Denominator: denominator,
		CanSubmit:   questionsDone >= QuestionCount && s.EmailPresent(),
	}
}
