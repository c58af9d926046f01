package core

import (
	"math"
	"math/rand/v2"
)

// ID identifies a person or interactable within a level.
type ID uint32

const minGeneratedID = 100

// NewID returns a random id. Authored ids in level files are expected to be
// small, so generated ones start above them.
func NewID() ID {
	return ID(minGeneratedID + rand.Uint32N(math.MaxUint32-minGeneratedID))
}
