package board

import "fmt"

// Score is a signed position or move score in centi-pawns, positive favors
// the mover. Mate scores run well past ordinary material totals (a king
// weighs 100000 on its own), so this needs more headroom than a material-only
// evaluation would: int32 comfortably holds CHECKMATE_UPPER/CHECKMATE_LOWER
// plus search-accumulated adjustments without overflow.
type Score int32

const (
	MinScore Score = -1000000
	MaxScore Score = 1000000

	// CheckmateUpper and CheckmateLower bound the window a score must fall
	// in to be considered a forced mate rather than a material evaluation:
	// king value (100000) padded by up to ten queens either way.
	CheckmateUpper Score = 100000 + 10*1141
	CheckmateLower Score = 100000 - 10*1141
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s)/100)
}
