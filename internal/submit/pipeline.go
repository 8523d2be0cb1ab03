package submit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joshtsang/fopo/internal/form"
	"github.com/joshtsang/fopo/internal/scoring"
	"github.com/joshtsang/fopo/internal/store"
)

// State is the pipeline phase. A submission moves Idle → Validating →
// Scoring → Sending and returns to Idle on every exit path.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateScoring
	StateSending
)

// ErrAttemptInFlight is returned when Submit is called while a previous
// attempt has not yet resolved.
var ErrAttemptInFlight = errors.New("a submission attempt is already in flight")

// ValidationError carries the full ordered list of unmet requirements.
// It never reaches the network: the pipeline aborts before Sending.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("form incomplete: %s", strings.Join(e.Messages, "; "))
}

// Sender transmits a payload to the collection endpoint.
type Sender interface {
	Send(ctx context.Context, p Payload) (map[string]any, error)
}

// Outcome is the result of a successful submission attempt.
type Outcome struct {
	Score   int
	Tier    scoring.Tier
	Payload Payload
	Stored  store.StoredResult
}

// Pipeline orchestrates validate → score → payload → transmit → cache.
type Pipeline struct {
	sender  Sender
	results store.ResultRepo // nil disables the cache write
	version string
	clock   func() time.Time

	mu    sync.Mutex
	state State
}

// NewPipeline creates a Pipeline. version tags the client metadata sent
// with each payload.
func NewPipeline(sender Sender, results store.ResultRepo, version string) *Pipeline {
	return &Pipeline{
		sender:  sender,
		results: results,
		version: version,
		clock:   time.Now,
	}
}

// State returns the current pipeline phase.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Pipeline) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// Submit runs one full attempt on the given snapshot. Errors are either
// *ValidationError (no network activity happened) or *TransmissionError
// (the single POST failed); in both cases the form data is untouched and
// the caller may resubmit. On success the result slot has been written
// before Submit returns, so a UI transition ordered after Submit is also
// ordered after the cache write.
func (p *Pipeline) Submit(ctx context.Context, snap form.Snapshot) (*Outcome, error) {
	p.mu.Lock()
	if p.state != StateIdle {
		p.mu.Unlock()
		return nil, ErrAttemptInFlight
	}
	p.state = StateValidating
	p.mu.Unlock()

	// The attempt always resolves back to Idle, whatever the exit path.
	defer p.setState(StateIdle)

	if msgs := form.Validate(snap); msgs != nil {
		return nil, &ValidationError{Messages: msgs}
	}

	p.setState(StateScoring)

	complete, ok := scoring.Complete(snap)
	if !ok {
		// Unreachable: Validate guarantees a full answer set.
		return nil, &ValidationError{Messages: []string{"form is incomplete"}}
	}
	score := complete.Score()
	tier := scoring.Classify(score)

	now := p.clock()
	payload := BuildPayload(snap, score, tier, now, CollectClientInfo(p.version))

	p.setState(StateSending)

	if _, err := p.sender.Send(ctx, payload); err != nil {
		return nil, err
	}

	stored := store.StoredResult{
		Timestamp:      now,
		Score:          score,
		Level:          string(tier),
		AdditionalData: marshalAdditional(payload.AdditionalData),
	}
	if p.results != nil {
		_ = p.results.Save(ctx, stored)
	}

	return &Outcome{
		Score:   score,
		Tier:    tier,
		Payload: payload,
		Stored:  stored,
	}, nil
}

func marshalAdditional(a AdditionalData) json.RawMessage {
	b, err := json.Marshal(a)
	if err != nil {
		return json.RawMessage("{}")
	}
	return b
}
