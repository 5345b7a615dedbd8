package minimarket

import "github.com/google/uuid"

// newID returns a unique, time-ordered identifier for sales and movements.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}
