// Package inquiry implements the inquiry form engine: field state, validation,
// touched tracking, the submission lifecycle and the location lookup.
package inquiry

import (
	"context"
	"sync"
	"time"

	"go-landing-backend/internal/domain"
	"go-landing-backend/pkg/logger"
	"go-landing-backend/pkg/sanitize"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
)

const (
	DefaultSubmitDelay   = 1500 * time.Millisecond
	DefaultLocateDelay   = 1000 * time.Millisecond
	DefaultResolvedPlace = "Hyderabad, Telangana"

	// LocationNotice is shown when the device refuses or cannot provide a position
	LocationNotice = "Could not detect location. Please enter manually."
)

// lifecycle events
const (
	eventSubmit   = "submit"
	eventComplete = "complete"
	eventReset    = "reset"
)

// Config tunes an Engine. Zero values fall back to the defaults above.
type Config struct {
	SubmitDelay   time.Duration
	LocateDelay   time.Duration
	ResolvedPlace string
	Scheduler     Scheduler
	Validator     *Validator
	Notifier      domain.Notifier
	Now           func() time.Time
	NewReference  func() string
}

func (c Config) withDefaults() Config {
	if c.SubmitDelay <= 0 {
		c.SubmitDelay = DefaultSubmitDelay
	}
	if c.LocateDelay <= 0 {
		c.LocateDelay = DefaultLocateDelay
	}
	if c.ResolvedPlace == "" {
		c.ResolvedPlace = DefaultResolvedPlace
	}
	if c.Scheduler == nil {
		c.Scheduler = SystemScheduler()
	}
	if c.Validator == nil {
		c.Validator = DefaultValidator()
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.NewReference == nil {
		c.NewReference = uuid.NewString
	}
	return c
}

// Engine owns the state of one visitor's inquiry form.
// All state sits behind mu; timer and geolocation completions carry the
// generation they were started under and are dropped once it is stale.
type Engine struct {
	mu  sync.Mutex
	cfg Config

	form    domain.FormState
	errors  map[domain.Field]string
	touched map[domain.Field]bool

	lifecycle *fsm.FSM

	isLocating       bool
	locationDetected bool
	notice           string
	receipt          *domain.Receipt

	submitGen   uint64
	locateGen   uint64
	submitTimer Timer
	locateTimer Timer
	closed      bool
}

var _ domain.InquiryEngine = (*Engine)(nil)

// NewEngine creates an engine with an empty form in the idle state
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:     cfg.withDefaults(),
		errors:  make(map[domain.Field]string),
		touched: make(map[domain.Field]bool),
		lifecycle: fsm.NewFSM(
			string(domain.StatusIdle),
			fsm.Events{
				{Name: eventSubmit, Src: []string{string(domain.StatusIdle)}, Dst: string(domain.StatusSubmitting)},
				{Name: eventComplete, Src: []string{string(domain.StatusSubmitting)}, Dst: string(domain.StatusSuccess)},
				{Name: eventReset, Src: []string{string(domain.StatusSuccess)}, Dst: string(domain.StatusIdle)},
			},
			fsm.Callbacks{},
		),
	}
}

// OnFieldChange stores value; a touched field is re-validated live.
// The form is frozen once the submission succeeded, until Reset.
func (e *Engine) OnFieldChange(field domain.Field, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozen() {
		return
	}
	e.form.Set(field, value)
	if e.touched[field] {
		e.storeError(field, e.cfg.Validator.ValidateField(field, value))
	}
}

// OnFieldBlur marks field touched and stores its validation result
func (e *Engine) OnFieldBlur(field domain.Field, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.frozen() {
		return
	}
	e.touched[field] = true
	e.storeError(field, e.cfg.Validator.ValidateField(field, value))
}

func (e *Engine) frozen() bool {
	return e.closed || e.lifecycle.Is(string(domain.StatusSuccess))
}

func (e *Engine) storeError(field domain.Field, msg string) {
	if msg == "" {
		delete(e.errors, field)
		return
	}
	e.errors[field] = msg
}

// Submit validates the whole form. An invalid form stays idle with every field
// touched; a valid one moves to submitting and completes after the submit delay.
func (e *Engine) Submit() domain.SubmitOutcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || !e.lifecycle.Is(string(domain.StatusIdle)) {
		return domain.SubmitIgnored
	}

	errs := e.cfg.Validator.ValidateAll(e.form)
	e.errors = errs
	if len(errs) > 0 {
		for _, field := range domain.AllFields {
			e.touched[field] = true
		}
		return domain.SubmitInvalid
	}

	if err := e.lifecycle.Event(context.Background(), eventSubmit); err != nil {
		logger.Log.Error("inquiry submit transition failed", "error", err)
		return domain.SubmitIgnored
	}

	e.submitGen++
	gen := e.submitGen
	e.submitTimer = e.cfg.Scheduler.AfterFunc(e.cfg.SubmitDelay, func() {
		e.completeSubmission(gen)
	})
	return domain.SubmitAccepted
}

func (e *Engine) completeSubmission(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || gen != e.submitGen || !e.lifecycle.Is(string(domain.StatusSubmitting)) {
		return
	}
	if err := e.lifecycle.Event(context.Background(), eventComplete); err != nil {
		logger.Log.Error("inquiry completion transition failed", "error", err)
		return
	}
	e.submitTimer = nil
	e.receipt = &domain.Receipt{
		Reference:   e.cfg.NewReference(),
		SubmittedAt: e.cfg.Now(),
		Summary:     sanitizeForm(e.form),
	}
}

// Reset clears the form after a successful submission
func (e *Engine) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.lifecycle.Is(string(domain.StatusSuccess)) {
		return domain.ErrResetNotAllowed
	}
	if err := e.lifecycle.Event(context.Background(), eventReset); err != nil {
		return err
	}

	e.invalidatePending()
	e.form = domain.FormState{}
	e.errors = make(map[domain.Field]string)
	e.touched = make(map[domain.Field]bool)
	e.locationDetected = false
	e.notice = ""
	e.receipt = nil
	return nil
}

// invalidatePending drops every in-flight completion. Caller holds mu.
func (e *Engine) invalidatePending() {
	e.submitGen++
	e.locateGen++
	if e.submitTimer != nil {
		e.submitTimer.Stop()
		e.submitTimer = nil
	}
	if e.locateTimer != nil {
		e.locateTimer.Stop()
		e.locateTimer = nil
	}
	e.isLocating = false
}

// LocateMe starts a one-shot location lookup through geo.
// Only one lookup may be in flight; a second call returns ErrAlreadyLocating.
func (e *Engine) LocateMe(ctx context.Context, geo domain.Geolocator) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	if e.isLocating {
		e.mu.Unlock()
		return domain.ErrAlreadyLocating
	}
	e.isLocating = true
	e.notice = ""
	e.locateGen++
	gen := e.locateGen
	e.mu.Unlock()

	if geo == nil {
		e.locateFailed(ctx, gen, domain.ErrLocationUnavailable)
		return nil
	}

	var once sync.Once
	geo.CurrentPosition(ctx,
		func(domain.Position) {
			once.Do(func() { e.positionResolved(gen) })
		},
		func(err error) {
			once.Do(func() { e.locateFailed(ctx, gen, err) })
		},
	)
	return nil
}

// positionResolved simulates the reverse lookup latency before filling the field
func (e *Engine) positionResolved(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || gen != e.locateGen {
		return
	}
	e.locateTimer = e.cfg.Scheduler.AfterFunc(e.cfg.LocateDelay, func() {
		e.finishLocate(gen)
	})
}

func (e *Engine) finishLocate(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || gen != e.locateGen {
		return
	}
	e.form.Location = e.cfg.ResolvedPlace
	e.isLocating = false
	e.locationDetected = true
	e.locateTimer = nil
}

func (e *Engine) locateFailed(ctx context.Context, gen uint64, cause error) {
	e.mu.Lock()
	if e.closed || gen != e.locateGen {
		e.mu.Unlock()
		return
	}
	e.isLocating = false
	e.notice = LocationNotice
	notifier := e.cfg.Notifier
	e.mu.Unlock()

	logger.Log.Info("location lookup failed", "error", cause)
	if notifier != nil {
		notifier.Notify(context.WithoutCancel(ctx), LocationNotice)
	}
}

// Snapshot returns a copy of the current state for rendering
func (e *Engine) Snapshot() domain.InquirySnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := domain.InquirySnapshot{
		Form:             e.form,
		Errors:           make(map[domain.Field]string, len(e.errors)),
		VisibleErrors:    make(map[domain.Field]string),
		Touched:          make([]domain.Field, 0, len(e.touched)),
		Status:           domain.SubmissionStatus(e.lifecycle.Current()),
		IsLocating:       e.isLocating,
		LocationDetected: e.locationDetected,
		Notice:           e.notice,
	}
	for field, msg := range e.errors {
		snap.Errors[field] = msg
		if e.touched[field] {
			snap.VisibleErrors[field] = msg
		}
	}
	for _, field := range domain.AllFields {
		if e.touched[field] {
			snap.Touched = append(snap.Touched, field)
		}
	}
	if e.receipt != nil {
		receipt := *e.receipt
		snap.Receipt = &receipt
	}
	return snap
}

// Close stops pending timers; later completions are dropped
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	e.invalidatePending()
}

func sanitizeForm(form domain.FormState) domain.FormState {
	var out domain.FormState
	for _, field := range domain.AllFields {
		out.Set(field, sanitize.Text(form.Get(field)))
	}
	return out
}
