// Package gamelist models a snapshot of the GL spreadsheet: the games on it,
// the people it tracks, and the rules for matching games to a group. The
// spreadsheet is the source of truth, so a snapshot is fetched fresh for
// every command that needs one and never cached or mutated.
package gamelist

// Game is one row of the spreadsheet. MaxPlayers and GoodPlayers are nil
// when the row leaves them blank (or they failed to parse); nil means
// unconstrained, not zero.
type Game struct {
	Title       string
	Platform    string
	MaxPlayers  *int
	GoodPlayers *Range
	Owns        map[string]bool
}

// GameList is one parsed snapshot. Names holds the ownership sub-headings in
// spreadsheet column order; Games holds the rows in spreadsheet order.
type GameList struct {
	Names []string
	Games []Game
}

// HasName reports whether the spreadsheet has an ownership column for name.
// Matching is exact, including case.
func (gl *GameList) HasName(name string) bool {
	for _, n := range gl.Names {
		if n == name {
			return true
		}
	}
	return false
}
