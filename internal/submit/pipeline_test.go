package submit

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshtsang/fopo/internal/form"
	"github.com/joshtsang/fopo/internal/scoring"
	"github.com/joshtsang/fopo/internal/store"
)

// fakeSender records payloads and returns a scripted error.
type fakeSender struct {
	mu       sync.Mutex
	payloads []Payload
	err      error
	started  chan struct{} // receives one value when Send begins, when set
	release  chan struct{} // when set, Send blocks until closed
}

func (f *fakeSender) Send(_ context.Context, p Payload) (map[string]any, error) {
	f.mu.Lock()
	f.payloads = append(f.payloads, p)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return map[string]any{}, nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payloads)
}

// fakeResultRepo is an in-memory single slot.
type fakeResultRepo struct {
	mu    sync.Mutex
	slot  *store.StoredResult
	saves int
}

func (f *fakeResultRepo) Save(_ context.Context, r store.StoredResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slot = &r
	f.saves++
	return nil
}

func (f *fakeResultRepo) Latest(_ context.Context) (*store.StoredResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.slot, nil
}

func (f *fakeResultRepo) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slot = nil
	return nil
}

func completeState() *form.State {
	st := form.NewState()
	for i := 1; i <= form.QuestionCount; i++ {
		st.SetAnswer(i, 1)
	}
	st.SetEmail("a@b.com")
	return st
}

func TestSubmitSuccess(t *testing.T) {
	sender := &fakeSender{}
	repo := &fakeResultRepo{}
	p := NewPipeline(sender, repo, "test")

	outcome, err := p.Submit(context.Background(), completeState().Snapshot())
	require.NoError(t, err)
	require.NotNil(t, outcome)

	assert.Equal(t, 10, outcome.Score)
	assert.Equal(t, scoring.TierLow, outcome.Tier)
	assert.Equal(t, 1, sender.count())
	assert.Equal(t, StateIdle, p.State())

	// Cache write happened before Submit returned.
	require.NotNil(t, repo.slot)
	assert.Equal(t, 10, repo.slot.Score)
	assert.Equal(t, "low", repo.slot.Level)
	assert.JSONEq(t, string(outcome.Stored.AdditionalData), string(repo.slot.AdditionalData))
}

func TestSubmitValidationFailureSkipsNetwork(t *testing.T) {
	sender := &fakeSender{}
	repo := &fakeResultRepo{}
	p := NewPipeline(sender, repo, "test")

	st := completeState()
	st.SetEmail("not-an-email")

	_, err := p.Submit(context.Background(), st.Snapshot())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Messages, 1)

	assert.Zero(t, sender.count(), "no network call on validation failure")
	assert.Nil(t, repo.slot)
	assert.Equal(t, StateIdle, p.State())
}

func TestSubmitTransmissionFailureLeavesNoResult(t *testing.T) {
	sender := &fakeSender{err: &TransmissionError{StatusCode: 500}}
	repo := &fakeResultRepo{}
	p := NewPipeline(sender, repo, "test")

	_, err := p.Submit(context.Background(), completeState().Snapshot())
	var terr *TransmissionError
	require.ErrorAs(t, err, &terr)

	assert.Nil(t, repo.slot, "failed attempt must not write the cache")
	assert.Equal(t, StateIdle, p.State(), "pipeline re-enables after failure")

	// Same data, retried manually, now succeeds.
	sender.err = nil
	outcome, err := p.Submit(context.Background(), completeState().Snapshot())
	require.NoError(t, err)
	assert.Equal(t, 10, outcome.Score)
	assert.Equal(t, 1, repo.saves)
}

func TestSubmitReentrantGuard(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	sender := &fakeSender{release: release, started: started}
	p := NewPipeline(sender, nil, "test")

	snap := completeState().Snapshot()
	done := make(chan error, 1)
	go func() {
		_, err := p.Submit(context.Background(), snap)
		done <- err
	}()

	// Wait for the first attempt to reach Sending.
	<-started

	_, err := p.Submit(context.Background(), snap)
	assert.ErrorIs(t, err, ErrAttemptInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateIdle, p.State())

	// Guard lifts once the attempt resolves.
	_, err = p.Submit(context.Background(), snap)
	require.NoError(t, err)
}

func TestSubmitNilRepoSkipsCache(t *testing.T) {
	sender := &fakeSender{}
	p := NewPipeline(sender, nil, "test")

	outcome, err := p.Submit(context.Background(), completeState().Snapshot())
	require.NoError(t, err)
	assert.NotNil(t, outcome)
}
