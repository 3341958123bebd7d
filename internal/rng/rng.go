// Package rng implements the Park-Miller generator the 1993 game used for
// level generation, including its 16-bit output reduction. The sequence is
// reproduced bit for bit; every quirk here is load-bearing for the grids
// built on top of it.
package rng

import (
	"errors"
	"fmt"
)

// Park-Miller (minimal standard) generator constants.
const (
	Modulus    int32 = 0x7FFFFFFF // 2^31 - 1
	Multiplier int32 = 16807

	// Schrage approximate-factoring decomposition of Modulus:
	// Modulus = Multiplier*schrageQ + schrageR.
	schrageQ int32 = 127773
	schrageR int32 = 2836
)

// ErrInvalidState is returned when a generator state is zero or outside the
// open interval (0, 2^31-1). Zero is absorbing for a multiplicative
// generator, so reaching it indicates a seeding or arithmetic bug.
var ErrInvalidState = errors.New("rng: invalid generator state")

// Rand is a stateful Park-Miller generator. Each call advances the 31-bit
// state first and then returns it, matching the Toolbox _Random trap the
// original binary called: the constructor therefore takes the pre-call
// state, and the first Next observes its successor.
//
// Rand is not safe for concurrent use; each generation run owns its own
// instance.
type Rand struct {
	state int32
}

// New creates a generator from a pre-call state.
func New(state int32) (*Rand, error) {
	if state <= 0 || state >= Modulus {
		return nil, fmt.Errorf("rng: state %d out of range: %w", state, ErrInvalidState)
	}
	return &Rand{state: state}, nil
}

// State returns the current 31-bit register value.
func (r *Rand) State() int32 {
	return r.state
}

// Next advances the state once and returns the new value.
//
// The update is Schrage's method, not a wide multiply: the original ran on
// 16-bit hardware and this exact factoring is what it computed. A valid
// state can never step to zero, so the result stays in (0, 2^31-1).
// A register outside that range is only reachable by bypassing New, e.g.
// through a zero-value Rand; Next panics with ErrInvalidState rather than
// cycle on the fixed point at zero.
func (r *Rand) Next() int32 {
	if r.state <= 0 || r.state >= Modulus {
		panic(fmt.Errorf("rng: state %d out of range: %w", r.state, ErrInvalidState))
	}
	hi := r.state / schrageQ
	lo := r.state % schrageQ
	s := Multiplier*lo - schrageR*hi
	if s <= 0 {
		s += Modulus
	}
	r.state = s
	return s
}

// Bounded draws once and reduces the result to 1..n via the game's
// truncate-to-signed-16 rule. The one-based range matches the original
// helper; call sites offset from it.
func (r *Rand) Bounded(n int) int {
	return Low16SignedAbs(r.Next())%n + 1
}

// Low16SignedAbs truncates x to its low 16 bits, reinterprets them as a
// signed two's-complement value and returns the absolute value. The most
// negative pattern 0x8000 wraps under 16-bit negation; widening after the
// reinterpretation keeps the observable result at 32768, which is what the
// original arithmetic produced.
func Low16SignedAbs(x int32) int {
	w := int16(x)
	v := int(w)
	if v < 0 {
		v = -v
	}
	return v
}
