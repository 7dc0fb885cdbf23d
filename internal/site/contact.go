package site

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/model"
)

// Status is where a contact form is in its submit cycle.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

const (
	successMessage = "Message sent successfully! I'll get back to you soon."
	errorMessage   = "Sorry, there was an error sending your message. Please try again later."
)

// Sender delivers a contact message to the backend.
type Sender interface {
	SendContact(ctx context.Context, msg model.ContactMessage) error
}

// Form holds the four contact fields and the submit status.
type Form struct {
	sender Sender
	log    *zap.Logger

	mu     sync.Mutex
	fields model.ContactMessage
	status Status
}

func NewForm(sender Sender, log *zap.Logger) *Form {
	return &Form{sender: sender, log: log, status: StatusIdle}
}

// Fill replaces the field values, as typing into the form would.
func (f *Form) Fill(fields model.ContactMessage) {
	f.mu.Lock()
	f.fields = fields
	f.mu.Unlock()
}

func (f *Form) Fields() model.ContactMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Submit posts the current fields. On success the fields are cleared; on
// any failure they are kept so the visitor can retry.
func (f *Form) Submit(ctx context.Context) Status {
	f.mu.Lock()
	f.status = StatusSubmitting
	fields := f.fields
	f.mu.Unlock()

	err := f.sender.SendContact(ctx, fields)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.log.Error("contact submit failed", zap.Error(err))
		f.status = StatusError
		return f.status
	}
	f.fields = model.ContactMessage{}
	f.status = StatusSuccess
	return f.status
}

// Notice is the message shown under the form for the current status.
func (f *Form) Notice() string {
	switch f.Status() {
	case StatusSuccess:
		return successMessage
	case StatusError:
		return errorMessage
	default:
		return ""
	}
}
