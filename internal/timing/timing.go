// Package timing reproduces the classic Mac TickCount comparison the carve
// loop's wall-clock guard used: unsigned 16-bit rollover with signed 16-bit
// comparisons. The guard is diagnostic only and never changes tile output.
package timing

// S16 reinterprets the low 16 bits of v as a signed value.
func S16(v int) int16 {
	return int16(uint16(v))
}

// TickOver reports whether cur exceeds start+delta in signed 16-bit space,
// the exact termination test of the original carve loop.
func TickOver(start, cur, delta int) bool {
	return int(S16(cur)) > int(S16(start))+delta
}

// Provider yields the tick value observed at a given carve step. Step 0 is
// sampled once before the walk begins.
type Provider func(step int) int

// LinearProvider returns a deterministic provider that advances one tick
// per step from the given start, wrapping at 16 bits. Used in tests.
func LinearProvider(start int) Provider {
	return func(step int) int {
		return (start + step) & 0xFFFF
	}
}
