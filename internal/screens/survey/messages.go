package survey

import (
	"github.com/joshtsang/fopo/internal/submit"
)

// submitFinishedMsg is sent when the submission attempt completes.
type submitFinishedMsg struct {
	Outcome *submit.Outcome
	Err     error
}

// noticeExpiredMsg dismisses the notice identified by Seq. Stale timers
// from an earlier notice carry an older Seq and are ignored.
type noticeExpiredMsg struct {
	Seq int
}

// showResultsMsg triggers the transition to the results screen.
type showResultsMsg struct{}
