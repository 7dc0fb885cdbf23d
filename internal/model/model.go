// Package model holds the records served by the portfolio API and rendered by the site.
package model

import (
	"errors"
	"strings"
	"time"
)

// Project is a portfolio project card.
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	TechStack   []string `json:"tech_stack" yaml:"tech_stack"`
	ImageURL    string   `json:"image_url" yaml:"image_url"`
	GithubURL   string   `json:"github_url,omitempty" yaml:"github_url"`
	DemoURL     string   `json:"demo_url,omitempty" yaml:"demo_url"`
	Category    string   `json:"category" yaml:"category"`
	Featured    bool     `json:"featured" yaml:"featured"`
}

type Certificate struct {
	ID            string `json:"id" yaml:"id"`
	Title         string `json:"title" yaml:"title"`
	Issuer        string `json:"issuer" yaml:"issuer"`
	Date          string `json:"date" yaml:"date"`
	ImageURL      string `json:"image_url" yaml:"image_url"`
	CredentialURL string `json:"credential_url,omitempty" yaml:"credential_url"`
}

type Talk struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	EventName   string `json:"event_name" yaml:"event_name"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
	ImageURL    string `json:"image_url" yaml:"image_url"`
	VideoURL    string `json:"video_url,omitempty" yaml:"video_url"`
}

// ContactMessage is what a visitor submits through the contact form.
type ContactMessage struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required"`
	Subject string `json:"subject" form:"subject" binding:"required"`
	Message string `json:"message" form:"message" binding:"required"`
}

// ErrIncompleteMessage is returned by Validate when a field is blank.
var ErrIncompleteMessage = errors.New("name, email, subject and message are required")

// ErrLineBreak is returned by Validate when a single-line field contains
// a carriage return or line feed.
var ErrLineBreak = errors.New("name, email and subject must be a single line")

// Validate reports whether every field carries a non-blank value and the
// fields that end up in mail headers stay on one line.
func (m ContactMessage) Validate() error {
	for _, v := range []string{m.Name, m.Email, m.Subject, m.Message} {
		if strings.TrimSpace(v) == "" {
			return ErrIncompleteMessage
		}
	}
	for _, v := range []string{m.Name, m.Email, m.Subject} {
		if strings.ContainsAny(v, "\r\n") {
			return ErrLineBreak
		}
	}
	return nil
}

// ContactRecord is a stored ContactMessage.
type ContactRecord struct {
	ContactMessage
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
