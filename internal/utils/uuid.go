package utils

import "github.com/google/uuid"

// UUIDGenerator produces request identifiers. It prefers time-ordered v7
// identifiers and falls back to random v4 ones.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
