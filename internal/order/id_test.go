package order

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomIDGenerator_Format(t *testing.T) {
	gen := RandomIDGenerator{}
	pattern := regexp.MustCompile(`^ORD[0-9A-Z]{9}$`)

	for i := 0; i < 100; i++ {
		id := gen.NewOrderID()
		assert.Len(t, id, 12)
		assert.Regexp(t, pattern, id)
	}
}

func TestRandomIDGenerator_IdsVary(t *testing.T) {
	gen := RandomIDGenerator{}

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[gen.NewOrderID()] = struct{}{}
	}

	// best-effort random, but 100 collisions in a 36^9 space would mean
	// something is very wrong
	assert.Greater(t, len(seen), 90)
}
