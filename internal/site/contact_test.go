package site

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/model"
)

type senderFunc func(ctx context.Context, msg model.ContactMessage) error

func (f senderFunc) SendContact(ctx context.Context, msg model.ContactMessage) error {
	return f(ctx, msg)
}

var filled = model.ContactMessage{
	Name:    "Ada",
	Email:   "ada@example.com",
	Subject: "Hello",
	Message: "Let's build something",
}

func TestFormSubmitSuccess(t *testing.T) {
	var got model.ContactMessage
	form := NewForm(senderFunc(func(_ context.Context, msg model.ContactMessage) error {
		got = msg
		return nil
	}), zap.NewNop())

	assert.Equal(t, StatusIdle, form.Status())
	assert.Empty(t, form.Notice())

	form.Fill(filled)
	assert.Equal(t, StatusSuccess, form.Submit(context.Background()))
	assert.Equal(t, filled, got)
	assert.Equal(t, model.ContactMessage{}, form.Fields())
	assert.Equal(t, successMessage, form.Notice())
}

func TestFormSubmitFailureKeepsFields(t *testing.T) {
	form := NewForm(senderFunc(func(context.Context, model.ContactMessage) error {
		return errors.New("connection refused")
	}), zap.NewNop())

	form.Fill(filled)
	assert.Equal(t, StatusError, form.Submit(context.Background()))
	assert.Equal(t, filled, form.Fields())
	assert.Equal(t, errorMessage, form.Notice())
}

func TestFormSubmittingIsObservable(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	form := NewForm(senderFunc(func(context.Context, model.ContactMessage) error {
		close(entered)
		<-release
		return nil
	}), zap.NewNop())
	form.Fill(filled)

	done := make(chan Status)
	go func() { done <- form.Submit(context.Background()) }()

	<-entered
	assert.Equal(t, StatusSubmitting, form.Status())
	close(release)
	assert.Equal(t, StatusSuccess, <-done)
}

func TestFormRetryAfterError(t *testing.T) {
	fail := true
	form := NewForm(senderFunc(func(context.Context, model.ContactMessage) error {
		if fail {
			return errors.New("status 422")
		}
		return nil
	}), zap.NewNop())

	form.Fill(filled)
	require.Equal(t, StatusError, form.Submit(context.Background()))

	fail = false
	assert.Equal(t, StatusSuccess, form.Submit(context.Background()))
	assert.Equal(t, model.ContactMessage{}, form.Fields())
}
