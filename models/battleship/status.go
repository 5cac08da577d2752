package battleship

// Status is the state of a single grid cell. The glyphs returned by
// String() are the contract with the terminal renderer, so they must
// not change.
type Status uint8

const (
	// Ship segment present, not revealed to the opponent
	StatusLive Status = iota
	StatusMiss
	// Segment struck, ship still afloat elsewhere
	StatusHit
	// Segment of a fully sunk ship
	StatusKill
	// Empty water, not revealed
	StatusSpace
)

func (s Status) String() string {
	switch s {
	case StatusLive:
		return "🚀"
	case StatusMiss:
		return "❌"
	case StatusHit:
		return "💥"
	case StatusKill:
		return "💀"
	default:
		return " "
	}
}
