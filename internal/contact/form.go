// Package contact implements the contact form: field validation and the
// idle → sending → sent → idle submission cycle.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/27piyush27/folio/internal/clock"
)

// State is the form's submission state.
type State string

const (
	Idle    State = "idle"
	Sending State = "sending"
	Sent    State = "sent"
)

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// ErrBusy is returned when Submit is called outside the idle state.
var ErrBusy = errors.New("contact: submission already in progress")

// ErrClosed is returned by Submit after Close.
var ErrClosed = errors.New("contact: form closed")

// FieldError reports the first invalid field.
type FieldError struct {
	Field  Field
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Submission holds the field values.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate checks the required fields in display order: a non-empty name,
// then an email containing "@".
func Validate(s Submission) error {
	if strings.TrimSpace(s.Name) == "" {
		return &FieldError{Field: FieldName, Reason: "name is required"}
	}
	if !strings.Contains(s.Email, "@") {
		return &FieldError{Field: FieldEmail, Reason: "email address must contain @"}
	}
	return nil
}

// Timing holds the fixed delays of the submission cycle.
type Timing struct {
	// Sending is how long the form stays in Sending.
	Sending time.Duration
	// Sent is how long the confirmation is displayed.
	Sent time.Duration
	// Shake is how long an invalid field is flagged.
	Shake time.Duration
}

var DefaultTiming = Timing{
	Sending: 1500 * time.Millisecond,
	Sent:    3000 * time.Millisecond,
	Shake:   600 * time.Millisecond,
}

// Snapshot is the form as a view renders it.
type Snapshot struct {
	State          State      `json:"state"`
	Submission     Submission `json:"submission"`
	Invalid        Field      `json:"invalid,omitempty"`
	SubmitDisabled bool       `json:"submit_disabled"`
}

// Form is the contact form state machine. It is safe for concurrent use;
// timer transitions run on the clock's goroutines.
type Form struct {
	clk    clock.Clock
	timing Timing

	mu       sync.Mutex
	state    State
	sub      Submission
	invalid  Field
	phase    clock.Timer
	shake    clock.Timer
	closed   bool
	onChange func(Snapshot)
}

// NewForm returns an idle form.
func NewForm(clk clock.Clock, timing Timing) *Form {
	return &Form{clk: clk, timing: timing, state: Idle}
}

// OnChange registers fn to receive every snapshot after a transition.
func (f *Form) OnChange(fn func(Snapshot)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onChange = fn
}

// Set replaces a field value. Values may be edited in any state.
func (f *Form) Set(field Field, value string) {
	f.mu.Lock()
	switch field {
	case FieldName:
		f.sub.Name = value
	case FieldEmail:
		f.sub.Email = value
	case FieldMessage:
		f.sub.Message = value
	}
	f.mu.Unlock()
}

// Fill replaces every field value.
func (f *Form) Fill(s Submission) {
	f.mu.Lock()
	f.sub = s
	f.mu.Unlock()
}

// Submit validates the fields and starts the submission cycle. An invalid
// field is flagged for the shake duration and its *FieldError returned;
// the state stays Idle.
func (f *Form) Submit() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	if f.state != Idle {
		f.mu.Unlock()
		return ErrBusy
	}

	if err := Validate(f.sub); err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			f.invalid = fe.Field
			if f.shake != nil {
				f.shake.Stop()
			}
			f.shake = f.clk.AfterFunc(f.timing.Shake, f.clearInvalid)
		}
		snap, fn := f.snapshotLocked(), f.onChange
		f.mu.Unlock()
		notify(fn, snap)
		return err
	}

	f.invalid = ""
	if f.shake != nil {
		f.shake.Stop()
		f.shake = nil
	}
	f.state = Sending
	f.phase = f.clk.AfterFunc(f.timing.Sending, f.markSent)
	snap, fn := f.snapshotLocked(), f.onChange
	f.mu.Unlock()
	notify(fn, snap)
	return nil
}

// Snapshot returns the current view state.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// State returns the submission state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SubmitDisabled reports whether the submit control is disabled.
func (f *Form) SubmitDisabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state != Idle
}

// Close cancels pending transitions. The form rejects further submissions.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.phase != nil {
		f.phase.Stop()
		f.phase = nil
	}
	if f.shake != nil {
		f.shake.Stop()
		f.shake = nil
	}
}

func (f *Form) markSent() {
	f.transition(Sending, Sent, func() {
		f.phase = f.clk.AfterFunc(f.timing.Sent, f.markIdle)
	})
}

func (f *Form) markIdle() {
	f.transition(Sent, Idle, func() { f.phase = nil })
}

func (f *Form) transition(from, to State, then func()) {
	f.mu.Lock()
	if f.closed || f.state != from {
		f.mu.Unlock()
		return
	}
	f.state = to
	then()
	snap, fn := f.snapshotLocked(), f.onChange
	f.mu.Unlock()
	notify(fn, snap)
}

func (f *Form) clearInvalid() {
	f.mu.Lock()
	if f.closed || f.invalid == "" {
		f.mu.Unlock()
		return
	}
	f.invalid = ""
	f.shake = nil
	snap, fn := f.snapshotLocked(), f.onChange
	f.mu.Unlock()
	notify(fn, snap)
}

func (f *Form) snapshotLocked() Snapshot {
	return Snapshot{
		State:          f.state,
		Submission:     f.sub,
		Invalid:        f.invalid,
		SubmitDisabled: f.state != Idle,
	}
}

func notify(fn func(Snapshot), s Snapshot) {
	if fn != nil {
		fn(s)
	}
}
