package core

import "github.com/google/uuid"

// RunID identifies one validation run in log output.
type RunID string

// NewRunID creates a time-ordered run identifier, falling back to a
// random UUID when v7 generation is unavailable.
func NewRunID() RunID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return RunID(id.String())
}

// String returns the string representation.
func (id RunID) String() string {
	return string(id)
}
