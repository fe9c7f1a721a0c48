// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"strings"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
)

// Generator is a mock implementation of ports.Generator.
type Generator struct {
	// Generate return values
	Text string
	Err  error

	// Call tracking
	CallCount  int
	LastPrompt string
}

// Generate returns the configured text or error.
func (m *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	m.CallCount++
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

// PromptBuilder is a mock implementation of ports.PromptBuilder. It renders
// the persona name, birth year presence, beliefs and question on one line
// each.
type PromptBuilder struct {
	LastPhilosopher entities.Philosopher
}

// Build records the philosopher and returns a simple rendering.
func (m *PromptBuilder) Build(p entities.Philosopher, question string) string {
	m.LastPhilosopher = p
	var b strings.Builder
	b.WriteString("name: " + p.Name + "\n")
	if p.BirthYear != nil {
		b.WriteString("born: " + entities.FormatYear(*p.BirthYear) + "\n")
	}
	b.WriteString("beliefs: " + strings.Join(p.Beliefs, ", ") + "\n")
	b.WriteString("question: " + question)
	return b.String()
}
