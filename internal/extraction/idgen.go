package extraction

import "github.com/google/uuid"

type uuidGenerator struct{}

// NewUUIDGenerator returns the production identifier generator.
func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}
