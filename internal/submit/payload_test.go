package submit

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshtsang/fopo/internal/form"
	"github.com/joshtsang/fopo/internal/scoring"
)

func TestBuildPayloadNullsForUnanswered(t *testing.T) {
	st := form.NewState()
	st.SetAnswer(1, 2)
	st.SetAnswer(2, 3)
	snap := st.Snapshot()

	p := BuildPayload(snap, 0, scoring.TierLow, time.Now(), ClientInfo{})

	b, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded struct {
		Answers map[string]*int `json:"answers"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Len(t, decoded.Answers, form.QuestionCount)

	require.NotNil(t, decoded.Answers["q1"])
	assert.Equal(t, 2, *decoded.Answers["q1"])
	assert.Nil(t, decoded.Answers["q3"])
	assert.Nil(t, decoded.Answers["q10"])
}

func TestBuildPayloadUniqueSubmissionIDs(t *testing.T) {
	snap := form.NewState().Snapshot()
	a := BuildPayload(snap, 0, scoring.TierLow, time.Now(), ClientInfo{})
	b := BuildPayload(snap, 0, scoring.TierLow, time.Now(), ClientInfo{})
	assert.NotEmpty(t, a.SubmissionID)
	assert.NotEqual(t, a.SubmissionID, b.SubmissionID)
}

func TestBuildPayloadCarriesAdditionalData(t *testing.T) {
	st := form.NewState()
	tags := form.SelfValueTags()
	st.ToggleSelfValue(tags[1])
	st.ToggleSelfValue(tags[4])
	st.SetSelfValueOther("my garden")
	st.SetBeliefs("honesty above comfort")
	st.SetEmail("a@b.com")

	p := BuildPayload(st.Snapshot(), 0, scoring.TierLow, time.Now(), ClientInfo{})

	assert.Equal(t, []string{tags[1], tags[4]}, p.AdditionalData.SelfValue)
	assert.Equal(t, "my garden", p.AdditionalData.SelfValueOther)
	assert.Equal(t, "honesty above comfort", p.AdditionalData.Beliefs)
	assert.Equal(t, "a@b.com", p.AdditionalData.Email)
}

func TestCollectClientInfo(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "en_GB.UTF-8")
	t.Setenv("TZ", "Europe/London")

	info := CollectClientInfo("1.2.3")
	assert.Contains(t, info.UserAgent, "fopo/1.2.3")
	assert.Equal(t, "en_GB.UTF-8", info.Language)
	assert.Equal(t, "Europe/London", info.Timezone)

	devel := CollectClientInfo("")
	assert.Contains(t, devel.UserAgent, "fopo/(devel)")
}
