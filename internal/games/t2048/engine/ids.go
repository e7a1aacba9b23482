package engine

import (
	"strconv"

	"github.com/google/uuid"
)

// IDSource hands out unique tile identifiers.
type IDSource interface {
	NextID() string
}

// CounterIDs is a monotonic id source producing "t1", "t2", ...
// The zero value is ready to use.
type CounterIDs struct {
	next uint64
}

// NextID returns the next identifier.
func (c *CounterIDs) NextID() string {
	c.next++
	return "t" + strconv.FormatUint(c.next, 10)
}

// UUIDs hands out random UUIDv4 identifiers.
type UUIDs struct{}

// NextID returns a new random UUID string.
func (UUIDs) NextID() string {
	return uuid.NewString()
}
