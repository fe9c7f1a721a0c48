package entities

import "time"

// ModificationRequest describes a counterfactual change to a philosopher.
// Nil fields mean no change on that axis.
type ModificationRequest struct {
	Year        *int     `json:"year,omitempty"`
	Region      *string  `json:"region,omitempty"`
	Event       *string  `json:"event,omitempty"`
	CoreBeliefs []string `json:"core_beliefs,omitempty"`
}

// IsEmpty reports whether the request changes nothing.
func (m ModificationRequest) IsEmpty() bool {
	return m.Year == nil && m.Region == nil && m.Event == nil && len(m.CoreBeliefs) == 0
}

// Transformation is the outcome of applying a ModificationRequest.
// Derived never shares mutable state with Original.
type Transformation struct {
	ID          string              `json:"id"`
	Original    Philosopher         `json:"original"`
	Derived     Philosopher         `json:"derived"`
	Request     ModificationRequest `json:"request"`
	Dropped     []string            `json:"dropped_influences,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	PeriodLabel string              `json:"period_label,omitempty"`
}

// SimulatedContext is the fully specified setting a derived philosopher is
// placed in.
type SimulatedContext struct {
	Year        int    `json:"year"`
	Region      string `json:"region"`
	PeriodLabel string `json:"period_label"`
}
