// internal/forms/submit.go
package forms

import (
	"context"
	"sync"
	"time"

	xerrors "rxautos-service/internal/pkg/errors"
)

// State of a form's submit orchestration.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
)

// Kind names the form a pipeline instance belongs to.
type Kind string

const (
	KindSignup  Kind = "signup"
	KindLogin   Kind = "login"
	KindProfile Kind = "profile"
)

// Success notifications auto-dismiss after a fixed, per-form delay.
const (
	SignupSuccessDelay = 5 * time.Second
	LoginSuccessDelay  = 2 * time.Second
)

// Pipeline drives one open form: Idle -> Submitting -> Success or back to
// Idle with errors. One instance per open form; discarded when the form
// closes. A close while submitting is allowed and simply discards the
// in-flight result when it later resolves — the remote call itself is not
// cancelled.
type Pipeline struct {
	mu           sync.Mutex
	kind         Kind
	state        State
	fieldErrors  map[string]string
	generalError string
	emailExists  bool
	closed       bool
	generation   int
	successDelay time.Duration
}

func NewPipeline(kind Kind) *Pipeline {
	delay := time.Duration(0)
	switch kind {
	case KindSignup:
		delay = SignupSuccessDelay
	case KindLogin:
		delay = LoginSuccessDelay
	}
	return NewPipelineWithDelay(kind, delay)
}

// NewPipelineWithDelay builds a pipeline with an explicit success-display
// delay instead of the per-kind default.
func NewPipelineWithDelay(kind Kind, successDelay time.Duration) *Pipeline {
	return &Pipeline{
		kind:         kind,
		state:        StateIdle,
		fieldErrors:  map[string]string{},
		successDelay: successDelay,
	}
}

// Submit runs one submission: validate, then fire the remote operation, then
// map its outcome onto the form state. It reports whether the submission
// reached the success state. The remote operation only fires when validation
// passes and the pipeline is idle.
func (p *Pipeline) Submit(ctx context.Context, validate func() map[string]string, op func(context.Context) error) bool {
	p.mu.Lock()
	if p.closed || p.state != StateIdle {
		p.mu.Unlock()
		return false
	}
	if errs := validate(); !Valid(errs) {
		p.fieldErrors = errs
		p.mu.Unlock()
		return false
	}
	p.fieldErrors = map[string]string{}
	p.generalError = ""
	p.emailExists = false
	p.state = StateSubmitting
	p.generation++
	gen := p.generation
	p.mu.Unlock()

	err := op(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	// The form closed (or was resubmitted) while the call was in flight:
	// the resolution is not rendered.
	if p.closed || gen != p.generation {
		return false
	}

	if err != nil {
		p.state = StateIdle
		if xerrors.Is(err, xerrors.ErrDuplicateEntry) {
			p.emailExists = true
		} else {
			p.generalError = err.Error()
		}
		return false
	}

	p.state = StateSuccess
	if p.successDelay > 0 {
		time.AfterFunc(p.successDelay, p.Close)
	} else {
		p.closeLocked()
	}
	return true
}

// ClearError empties a field's error slot along with the general one, the way
// a form clears messages as soon as the user types again.
func (p *Pipeline) ClearError(field string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.fieldErrors, field)
	p.generalError = ""
}

// Close discards the form. Safe in any state, including Submitting.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
}

func (p *Pipeline) closeLocked() {
	p.closed = true
}

func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Pipeline) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// FieldErrors returns a copy of the current per-field messages.
func (p *Pipeline) FieldErrors() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]string, len(p.fieldErrors))
	for k, v := range p.fieldErrors {
		out[k] = v
	}
	return out
}

func (p *Pipeline) GeneralError() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generalError
}

// EmailExists reports whether the last submission hit the dedicated
// duplicate-email path rather than the generic error slot.
func (p *Pipeline) EmailExists() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.emailExists
}
