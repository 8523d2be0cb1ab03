package submit

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/joshtsang/fopo/internal/form"
	"github.com/joshtsang/fopo/internal/scoring"
)

// Payload is the immutable JSON body of one submission attempt. It is
// built once per attempt and discarded when the attempt resolves.
type Payload struct {
	SubmissionID   string          `json:"submissionId"`
	Timestamp      string          `json:"timestamp"` // RFC 3339, UTC
	Score          int             `json:"score"`
	Level          scoring.Tier    `json:"level"`
	LevelText      string          `json:"levelText"`
	Answers        map[string]*int `json:"answers"` // q1..q10, null when unanswered
	AdditionalData AdditionalData  `json:"additionalData"`
	BrowserInfo    ClientInfo      `json:"browserInfo"`
}

// AdditionalData carries the unscored free-form responses.
type AdditionalData struct {
	SelfValue      []string `json:"selfValue"`
	SelfValueOther string   `json:"selfValueOther"`
	Beliefs        string   `json:"beliefs"`
	Email          string   `json:"email"`
}

// ClientInfo describes the submitting environment. The field names match
// the collection endpoint's browser-oriented schema.
type ClientInfo struct {
	UserAgent string `json:"userAgent"`
	Language  string `json:"language"`
	Timezone  string `json:"timezone"`
}

// BuildPayload assembles the submission body from a snapshot and its
// computed score. Answers are keyed q1..q10; an unanswered question maps
// to null, which the gating upstream should have made impossible.
func BuildPayload(snap form.Snapshot, score int, tier scoring.Tier, now time.Time, client ClientInfo) Payload {
	answers := make(map[string]*int, form.QuestionCount)
	for i := 1; i <= form.QuestionCount; i++ {
		if snap.Answered(i) {
			v := snap.Answers[i-1]
			answers[fmt.Sprintf("q%d", i)] = &v
		} else {
			answers[fmt.Sprintf("q%d", i)] = nil
		}
	}

	selfValues := snap.SelfValues
	if selfValues == nil {
		selfValues = []string{}
	}

	return Payload{
		SubmissionID: uuid.New().String(),
		Timestamp:    now.UTC().Format(time.RFC3339),
		Score:        score,
		Level:        tier,
		LevelText:    tier.Label(),
		Answers:      answers,
		AdditionalData: AdditionalData{
			SelfValue:      selfValues,
			SelfValueOther: snap.SelfValueOther,
			Beliefs:        snap.Beliefs,
			Email:          snap.Email,
		},
		BrowserInfo: client,
	}
}

// CollectClientInfo captures environment metadata at submit time.
func CollectClientInfo(version string) ClientInfo {
	if version == "" {
		version = "(devel)"
	}

	language := os.Getenv("LC_ALL")
	if language == "" {
		language = os.Getenv("LANG")
	}

	timezone := os.Getenv("TZ")
	if timezone == "" {
		timezone, _ = time.Now().Zone()
	}

	return ClientInfo{
		UserAgent: fmt.Sprintf("fopo/%s (%s; %s)", version, runtime.GOOS, runtime.GOARCH),
		Language:  language,
		Timezone:  timezone,
	}
}
