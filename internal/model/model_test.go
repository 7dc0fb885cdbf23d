package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleProjects() []Project {
	return []Project{
		{ID: "1", Title: "Content Generator", Category: "Natural Language Processing"},
		{ID: "2", Title: "Shop Bot", Category: "Conversational AI"},
		{ID: "3", Title: "Art Generator", Category: "Computer Vision"},
		{ID: "4", Title: "Summariser", Category: "Natural Language Processing"},
	}
}

func TestFilterProjects(t *testing.T) {
	projects := sampleProjects()

	tests := []struct {
		name     string
		category string
		wantIDs  []string
	}{
		{"all returns everything", CategoryAll, []string{"1", "2", "3", "4"}},
		{"exact match keeps order", "Natural Language Processing", []string{"1", "4"}},
		{"single match", "Computer Vision", []string{"3"}},
		{"no match", "Machine Learning", []string{}},
		{"case sensitive", "computer vision", []string{}},
		{"empty is not a wildcard", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProjects(projects, tt.category)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterProjectsDoesNotMutateInput(t *testing.T) {
	projects := sampleProjects()
	FilterProjects(projects, "Conversational AI")
	assert.Equal(t, sampleProjects(), projects)
}

func TestContactMessageValidate(t *testing.T) {
	ok := ContactMessage{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}
	assert.NoError(t, ok.Validate())

	blank := ok
	blank.Subject = "   "
	assert.ErrorIs(t, blank.Validate(), ErrIncompleteMessage)

	assert.ErrorIs(t, ContactMessage{}.Validate(), ErrIncompleteMessage)

	multiline := ok
	multiline.Message = "line one\r\nline two"
	assert.NoError(t, multiline.Validate())
}

func TestContactMessageValidateRejectsLineBreaks(t *testing.T) {
	ok := ContactMessage{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}

	tests := map[string]func(*ContactMessage){
		"name":    func(m *ContactMessage) { m.Name = "Ada\nLovelace" },
		"email":   func(m *ContactMessage) { m.Email = "a@b.c\r\nBcc: victim@example.com" },
		"subject": func(m *ContactMessage) { m.Subject = "hi\rX-Injected: yes" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			m := ok
			mutate(&m)
			assert.ErrorIs(t, m.Validate(), ErrLineBreak)
		})
	}
}
