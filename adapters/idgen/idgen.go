// Package idgen provides request id generation.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/devboost/leaderboard/ports"
	"github.com/google/uuid"
)

// UUID generates UUID v4 identifiers.
type UUID struct{}

// New generates a new UUID v4.
func (UUID) New() string {
	return uuid.New().String()
}

var _ ports.IDGenerator = UUID{}

// Sequential generates predictable ids for testing.
type Sequential struct {
	prefix  string
	counter uint64
}

// NewSequential creates a sequential id generator.
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// New generates the next sequential id.
func (s *Sequential) New() string {
	return fmt.Sprintf("%s%d", s.prefix, atomic.AddUint64(&s.counter, 1))
}

var _ ports.IDGenerator = (*Sequential)(nil)
