// Package tiles defines the numeric tile codes of the original tilemap and
// their level-dependent numbering. Codes are stored raw in the grid buffer;
// this package is the only place that interprets them.
package tiles

// Tile is a raw tilemap code (0..255).
type Tile uint8

// Fixed codes shared by every level.
const (
	Player Tile = 60
	Cop    Tile = 66
	Leaf   Tile = 80
	Exit   Tile = 241

	JailTL Tile = 250
	JailTR Tile = 251
	JailBL Tile = 252
	JailBR Tile = 253
)

const (
	wallBase  Tile = 200
	superBase Tile = 80 // super code is Leaf + level

	// Open floor is strictly 10..199; nothing outside the band walks.
	openMin Tile = 10
	openMax Tile = 199
)

// WallForLevel returns the wall code for a level: 200+L for levels 1..20,
// saturating to 255 from level 21 on.
func WallForLevel(level int) Tile {
	if level >= 21 {
		return 255
	}
	return wallBase + Tile(level)
}

// SuperForLevel returns the super-pickup code: 80+L for levels 1..14,
// saturating to 255 from level 15 on. From there the code collides with the
// late-level wall code; the original shipped that way.
func SuperForLevel(level int) Tile {
	if level >= 15 {
		return 255
	}
	return superBase + Tile(level)
}

// IsOpen reports whether a code is walkable open floor (strictly 10..199).
func IsOpen(t Tile) bool {
	return t >= openMin && t <= openMax
}

// IsJail reports whether a code belongs to the reserved 2x2 jail band.
func IsJail(t Tile) bool {
	return t >= JailTL && t <= JailBR
}

// Kind is the semantic classification of a tile code for a given level.
type Kind int

const (
	KindDigit Kind = iota // HUD digit overlay, codes 0..9
	KindActor             // player start or pursuer
	KindOpen              // walkable floor, including the leaf trail
	KindExit
	KindWall
	KindSuper
	KindJail
)

// String returns the classification name.
func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindActor:
		return "actor"
	case KindOpen:
		return "open"
	case KindExit:
		return "exit"
	case KindWall:
		return "wall"
	case KindSuper:
		return "super"
	case KindJail:
		return "jail"
	default:
		return "unknown"
	}
}

// Classify maps a code to exactly one Kind under the given level's
// numbering. Actor codes sit inside the open band and win over KindOpen;
// on levels where super and wall both saturate to 255 the shared code
// classifies as wall, matching how the original engine treated it.
func Classify(t Tile, level int) Kind {
	switch {
	case t <= 9:
		return KindDigit
	case t == Player || t == Cop:
		return KindActor
	case IsJail(t):
		return KindJail
	case t == Exit:
		return KindExit
	case t == WallForLevel(level):
		return KindWall
	case t == SuperForLevel(level):
		return KindSuper
	case IsOpen(t):
		return KindOpen
	default:
		return KindWall
	}
}
