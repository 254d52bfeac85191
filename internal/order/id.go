package order

import "math/rand/v2"

// IDGenerator produces opaque order identifiers. Implementations are
// injectable so tests can substitute deterministic ids.
type IDGenerator interface {
	NewOrderID() string
}

const (
	idPrefix    = "ORD"
	idSuffixLen = 9
	idAlphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// RandomIDGenerator generates ids of the form ORD followed by 9 random
// base36 characters. Uniqueness is best-effort only: there is no collision
// check and no backing store to enforce one.
type RandomIDGenerator struct{}

func (RandomIDGenerator) NewOrderID() string {
	suffix := make([]byte, idSuffixLen)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return idPrefix + string(suffix)
}
