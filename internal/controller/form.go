package controller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"job-board-web/internal/storage"
)

// FormState is the display state of a submission form.
type FormState int

const (
	// FormIdle is an untouched or edited form with no message.
	FormIdle FormState = iota
	// FormSubmitting disables the submit trigger.
	FormSubmitting
	// FormSuccess shows the confirmation before navigating away.
	FormSuccess
	// FormError is editable and shows a message.
	FormError
)

func (s FormState) String() string {
	switch s {
	case FormIdle:
		return "idle"
	case FormSubmitting:
		return "submitting"
	case FormSuccess:
		return "success"
	case FormError:
		return "error"
	}
	return fmt.Sprintf("FormState(%d)", int(s))
}

const (
	// HomePath is where forms navigate after a successful submission.
	HomePath = "/"
	// RedirectDelay is how long the confirmation stays visible.
	RedirectDelay = 2 * time.Second
)

// Navigator moves the user to another page.
type Navigator interface {
	Navigate(path string)
}

// Recorder receives the outcome of every submission attempt that reached
// the network.
type Recorder interface {
	RecordSubmission(ctx context.Context, record storage.SubmissionRecord) error
}

// formConfig holds the collaborators shared by every form.
type formConfig struct {
	navigator Navigator
	afterFunc func(time.Duration, func())
	recorder  Recorder
	logger    *slog.Logger
	now       func() time.Time
}

// FormOption customises a form controller.
type FormOption func(*formConfig)

// WithNavigator sets where successful forms navigate.
func WithNavigator(n Navigator) FormOption {
	return func(c *formConfig) {
		c.navigator = n
	}
}

// WithAfterFunc replaces time.AfterFunc for the post-success delay.
func WithAfterFunc(fn func(time.Duration, func())) FormOption {
	return func(c *formConfig) {
		c.afterFunc = fn
	}
}

// WithRecorder reports submission outcomes to r.
func WithRecorder(r Recorder) FormOption {
	return func(c *formConfig) {
		c.recorder = r
	}
}

// WithLogger sets the logger for submission failures.
func WithLogger(l *slog.Logger) FormOption {
	return func(c *formConfig) {
		c.logger = l
	}
}

func newFormConfig(opts []FormOption) formConfig {
	cfg := formConfig{
		afterFunc: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Form is the submit lifecycle shared by the registration and posting
// pages: local validation, one in-flight submission, then success or an
// editable error that keeps the draft.
type Form[D any] struct {
	mu      sync.Mutex
	name    string
	state   FormState
	draft   D
	message string
	confirm string

	validate func(D) error
	submit   func(context.Context, D) (string, error)

	serverFallback    string
	transportFallback string

	cfg formConfig
}

func newForm[D any](name string, draft D, validate func(D) error, submit func(context.Context, D) (string, error), serverFallback, transportFallback string, cfg formConfig) *Form[D] {
	return &Form[D]{
		name:              name,
		draft:             draft,
		validate:          validate,
		submit:            submit,
		serverFallback:    serverFallback,
		transportFallback: transportFallback,
		cfg:               cfg,
	}
}

func (f *Form[D]) Name() string {
	return f.name
}

func (f *Form[D]) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Message is the error shown in FormError.
func (f *Form[D]) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Confirmation is the server's message for an accepted submission.
func (f *Form[D]) Confirmation() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirm
}

// Draft returns a copy of the current field values.
func (f *Form[D]) Draft() D {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// edit applies one field change. Inputs are disabled while submitting and
// gone after success.
func (f *Form[D]) edit(apply func(*D) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case FormSubmitting:
		return ErrSubmitInProgress
	case FormSuccess:
		return ErrAlreadySubmitted
	}
	return apply(&f.draft)
}

// Submit validates the draft and, when it passes, sends it. It returns nil
// once the server accepted the submission; navigation home follows after
// RedirectDelay.
func (f *Form[D]) Submit(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case FormSubmitting:
		f.mu.Unlock()
		return ErrSubmitInProgress
	case FormSuccess:
		f.mu.Unlock()
		return ErrAlreadySubmitted
	}

	f.message = ""
	if err := f.validate(f.draft); err != nil {
		f.state = FormError
		f.message = UserMessage(err, f.serverFallback, f.transportFallback)
		f.mu.Unlock()
		return err
	}

	f.state = FormSubmitting
	draft := f.draft
	f.mu.Unlock()

	confirm, err := f.submit(ctx, draft)

	f.mu.Lock()
	if err != nil {
		f.state = FormError
		f.message = UserMessage(err, f.serverFallback, f.transportFallback)
		message := f.message
		f.mu.Unlock()

		if isTransport(err) {
			f.cfg.logger.Error("form submission failed", "form", f.name, "error", err)
		} else {
			f.cfg.logger.Warn("form submission rejected", "form", f.name, "message", message)
		}
		f.record(ctx, err, message)
		return err
	}

	f.state = FormSuccess
	f.confirm = confirm
	f.mu.Unlock()

	f.cfg.logger.Info("form submitted", "form", f.name)
	f.record(ctx, nil, confirm)
	if f.cfg.navigator != nil {
		nav := f.cfg.navigator
		f.cfg.afterFunc(RedirectDelay, func() { nav.Navigate(HomePath) })
	}
	return nil
}

func (f *Form[D]) record(ctx context.Context, err error, message string) {
	if f.cfg.recorder == nil {
		return
	}

	outcome := storage.OutcomeAccepted
	switch {
	case err == nil:
	case isTransport(err):
		outcome = storage.OutcomeFailed
	default:
		outcome = storage.OutcomeRejected
	}

	record := storage.SubmissionRecord{
		Form:        f.name,
		Outcome:     outcome,
		Message:     message,
		SubmittedAt: f.cfg.now(),
	}
	if rerr := f.cfg.recorder.RecordSubmission(ctx, record); rerr != nil {
		f.cfg.logger.Warn("failed to record submission", "form", f.name, "error", rerr)
	}
}
