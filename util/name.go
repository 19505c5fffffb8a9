package util

import (
	"fmt"
	"math/rand"
	"time"
)

// Namer generates the file names used by EatInodes. Names from one Namer never
// repeat for distinct indexes; Namers with different prefixes never collide.
type Namer struct {
	Prefix uint32
}

func NewNamer(r *rand.Rand) Namer {
	return Namer{Prefix: uint32(r.Int31())}
}

// RandomNamer picks a prefix from a time seeded source.
func RandomNamer() Namer {
	return NewNamer(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func (n Namer) Name(i uint64) string {
	return fmt.Sprintf("file-%d-%d", n.Prefix, i)
}
