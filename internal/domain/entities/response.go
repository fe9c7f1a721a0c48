package entities

import "time"

// Response is a generated answer kept in the archive.
type Response struct {
	ID               string    `json:"id"`
	Philosopher      string    `json:"philosopher"`
	Question         string    `json:"question"`
	Prompt           string    `json:"prompt"`
	Text             string    `json:"text"`
	TransformationID string    `json:"transformation_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
