// Package contact turns a contact form into a submission: it validates the
// form and hands it to a Submitter only when every field passed.
package contact

import (
    "context"
    "time"

    "github.com/rs/zerolog"

    "github.com/iliyamo/sanadimo/internal/queue"
    "github.com/iliyamo/sanadimo/internal/validation"
)

// Submitter delivers a validated form.  It is called at most once per
// Submit and is never retried.
type Submitter interface {
    Submit(ctx context.Context, f validation.Form) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, f validation.Form) error

func (fn SubmitterFunc) Submit(ctx context.Context, f validation.Form) error { return fn(ctx, f) }

// Service validates and submits contact forms.
type Service struct {
    validator validation.Validator
    submitter Submitter
    timeout   time.Duration
}

// NewService returns a Service submitting through s.  A timeout <= 0
// leaves the caller's deadline alone.
func NewService(s Submitter, v validation.Validator, timeout time.Duration) *Service {
    return &Service{validator: v, submitter: s, timeout: timeout}
}

// Submit sanitizes and validates f.  When any field is invalid it returns
// the field errors and does not call the submitter.  Otherwise the
// submitter's error, if any, is returned as is.
func (s *Service) Submit(ctx context.Context, f validation.Form) (validation.FieldErrors, error) {
    f = validation.Sanitized(f)
    if errs := s.validator.Validate(f); errs.HasErrors() {
        return errs, nil
    }
    if s.timeout > 0 {
        var cancel context.CancelFunc
        ctx, cancel = context.WithTimeout(ctx, s.timeout)
        defer cancel()
    }
    return nil, s.submitter.Submit(ctx, f)
}

// ValidateField exposes the live single-field check.
func (s *Service) ValidateField(field, value string) (string, bool) {
    return s.validator.ValidateField(field, value)
}

// LogSubmitter only logs the submission.  It is used when neither the
// broker nor the database is configured.
type LogSubmitter struct {
    Log zerolog.Logger
}

func (l LogSubmitter) Submit(_ context.Context, f validation.Form) error {
    c := f.ContactInfo()
    l.Log.Info().
        Str("type", string(f.Type())).
        Str("name", c.Name).
        Str("email", c.Email).
        Msg("contact form received")
    return nil
}

// StoreSubmitter writes the submission straight to the database, for
// deployments without a broker.
type StoreSubmitter struct {
    Saver queue.MessageSaver
    Now   func() time.Time
}

func (s StoreSubmitter) Submit(ctx context.Context, f validation.Form) error {
    now := time.Now
    if s.Now != nil {
        now = s.Now
    }
    t := now()
    return s.Saver.Create(ctx, queue.NewContactSubmitted(f, t).ToMessage(t))
}
