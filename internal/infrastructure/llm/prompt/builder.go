// Package prompt renders philosopher personas into generation prompts.
package prompt

import (
	"fmt"
	"strings"

	"github.com/wjcesaretti/altergeist/internal/domain/entities"
	"github.com/wjcesaretti/altergeist/internal/domain/vocabulary"
)

const personaPrompt = `You are %s. %s

Your core philosophical beliefs include:
%s

Your key concepts include:
%s

Given this context and your philosophical framework, please answer the following question:
%s

Please respond in a way that:
1. Maintains consistency with your core philosophical principles
2. Considers the historical and cultural context of your new timeline
3. Applies your theoretical framework to the modern question
4. Acknowledges any tensions between your original views and the new context`

// LabelFunc resolves an identifier to its display name.
type LabelFunc func(id string) string

// Builder implements the PromptBuilder interface.
type Builder struct {
	label LabelFunc
}

// NewBuilder creates a new Builder. A nil label func displays the local
// name of each identifier.
func NewBuilder(label LabelFunc) *Builder {
	if label == nil {
		label = vocabulary.LocalName
	}
	return &Builder{label: label}
}

// Build renders the persona prompt for p answering question.
func (b *Builder) Build(p entities.Philosopher, question string) string {
	return fmt.Sprintf(personaPrompt,
		p.Name,
		b.contextSentence(p),
		b.bullets(p.Beliefs),
		b.bullets(p.KeyConcepts),
		strings.TrimSpace(question),
	)
}

// contextSentence names the birth year and at most two contexts.
func (b *Builder) contextSentence(p entities.Philosopher) string {
	born := "an unknown year"
	if p.BirthYear != nil {
		born = entities.FormatYear(*p.BirthYear)
	}

	switch len(p.Contexts) {
	case 0:
		return fmt.Sprintf("You were born in %s.", born)
	case 1:
		return fmt.Sprintf("You were born in %s during the %s.", born, b.display(p.Contexts[0]))
	default:
		return fmt.Sprintf("You were born in %s during the %s and %s.",
			born, b.display(p.Contexts[0]), b.display(p.Contexts[1]))
	}
}

func (b *Builder) bullets(ids []string) string {
	if len(ids) == 0 {
		return "- none recorded"
	}
	lines := make([]string, len(ids))
	for i, id := range ids {
		lines[i] = "- " + b.display(id)
	}
	return strings.Join(lines, "\n")
}

// display labels identifiers and passes free text through.
func (b *Builder) display(value string) string {
	if !vocabulary.IsAbsolute(value) {
		return value
	}
	if label := b.label(value); label != "" {
		return label
	}
	return value
}
