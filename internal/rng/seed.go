package rng

import (
	"errors"
	"fmt"
)

// InvMultiplier is the multiplicative inverse of Multiplier modulo Modulus:
// (Multiplier * InvMultiplier) mod Modulus == 1. It lets the derivation step
// the generator backward exactly once without replaying the whole sequence.
const InvMultiplier int64 = 1407677000

// seedOffset is the additive constant of the level-seed line, recovered from
// the original binary's replay trace. The first draw at the start of a level
// with draw index K is (Multiplier*K + seedOffset) mod Modulus.
const seedOffset int64 = 0x0FCDD36

// Level/set bounds of the shipped game. The HUD encodes both as three
// decimal digits.
const (
	MinLevel = 1
	MaxLevel = 25
	MinSet   = 1
	MaxSet   = 999
)

// ErrInvalidLevel is returned for a (set, level) pair outside the game's
// draw-index mapping.
var ErrInvalidLevel = errors.New("rng: no such set/level")

// DrawIndex maps a (set, level) pair to the game's linear draw index
// K = set + 8*(level-1). Distinct pairs can collide: (41,1), (33,2) and
// (25,3) all map to the same index and therefore replay the same sequence.
func DrawIndex(set, level int) (int, error) {
	if set < MinSet || set > MaxSet || level < MinLevel || level > MaxLevel {
		return 0, fmt.Errorf("rng: set %d level %d: %w", set, level, ErrInvalidLevel)
	}
	return set + 8*(level-1), nil
}

// SeedForLevel computes, in closed form, the pre-call generator state at the
// start of the given level: the first Next from the returned state equals
// (Multiplier*K + seedOffset) mod Modulus for draw index K. Equivalent to
// replaying the game's canonical sequence up to that level, without the
// replay.
func SeedForLevel(set, level int) (int32, error) {
	k, err := DrawIndex(set, level)
	if err != nil {
		return 0, err
	}
	first := (int64(Multiplier)*int64(k) + seedOffset) % int64(Modulus)
	// Step backward once to the pre-call state.
	state := int32(first * InvMultiplier % int64(Modulus))
	if state <= 0 || state >= Modulus {
		return 0, fmt.Errorf("rng: derived state %d for set %d level %d: %w",
			state, set, level, ErrInvalidState)
	}
	return state, nil
}
