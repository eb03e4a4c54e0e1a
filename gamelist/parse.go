package gamelist

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mapleleafu/gamenight-bot/responses"
)

// The sheet layout: headings on the first row, ownership names on the third,
// games from the fourth down. Row 1 is free-form (the sheet uses it for
// notes) and ignored.
const (
	headingRow    = 0
	subHeadingRow = 2
	dataBeginRow  = 3
)

const (
	fieldTitle = iota
	fieldPlatform
	fieldMaxPlayers
	fieldGoodPlayers
	fieldOwns
	numFields
)

type fieldSpec struct {
	pattern  string // shown verbatim in layout error messages
	re       *regexp.Regexp
	required bool
	subs     bool // heading spans continuation columns keyed by sub-headings
}

func newField(pattern string, required, subs bool) fieldSpec {
	return fieldSpec{
		pattern:  pattern,
		re:       regexp.MustCompile("(?i)" + pattern),
		required: required,
		subs:     subs,
	}
}

var fields = [numFields]fieldSpec{
	fieldTitle:       newField("title", true, false),
	fieldPlatform:    newField("platform", false, false),
	fieldMaxPlayers:  newField("max.+player", false, false),
	fieldGoodPlayers: newField("good.+player", false, false),
	fieldOwns:        newField("who.+owns", false, true),
}

type colSpan struct {
	begin, end int
	found      bool
}

type layout struct {
	spans     [numFields]colSpan
	ownsNames []string
}

// Parse turns raw sheet cells into a GameList. Layout problems come back as
// UserErrors: fixing them means editing the spreadsheet, not the bot.
func Parse(rows [][]string) (*GameList, error) {
	rows = normalize(rows)

	lay, err := locate(rows)
	if err != nil {
		return nil, err
	}

	gl := &GameList{Names: lay.ownsNames}
	for _, row := range rows[dataBeginRow:] {
		if game, ok := parseGame(row, lay); ok {
			gl.Games = append(gl.Games, game)
		}
	}
	return gl, nil
}

// normalize trims every cell and pads the grid so each row has the same
// width and the header rows exist even on a near-empty sheet. The rest of
// the parser can then index freely.
func normalize(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	out := make([][]string, max(len(rows), dataBeginRow))
	for i := range out {
		cells := make([]string, width)
		if i < len(rows) {
			for j, s := range rows[i] {
				cells[j] = strings.TrimSpace(s)
			}
		}
		out[i] = cells
	}
	return out
}

// locate finds the column (or column span) for each field. A field with
// sub-headings extends rightward over heading-less columns for as long as
// the sub-heading row underneath stays non-blank.
func locate(rows [][]string) (*layout, error) {
	lay := &layout{}

	var cont *colSpan
	for col, heading := range rows[headingRow] {
		if heading == "" {
			if cont != nil {
				if rows[subHeadingRow][col] != "" {
					cont.end = col + 1
				} else {
					cont = nil
				}
			}
			continue
		}

		cont = nil
		for i := range fields {
			if !fields[i].re.MatchString(heading) {
				continue
			}
			span := &lay.spans[i]
			if span.found {
				return nil, responses.Userf("I found multiple headings matching %q in the GL spreadsheet.", fields[i].pattern)
			}
			span.begin, span.end, span.found = col, col+1, true
			if fields[i].subs {
				cont = span
			}
			break
		}
	}

	for i := range fields {
		if !lay.spans[i].found {
			return nil, responses.Userf("I couldn't find a heading matching %q in the GL spreadsheet.", fields[i].pattern)
		}
	}

	owns := lay.spans[fieldOwns]
	ownsHeading := rows[headingRow][owns.begin]
	lay.ownsNames = rows[subHeadingRow][owns.begin:owns.end]

	seen := make(map[string]bool, len(lay.ownsNames))
	anyName := false
	for _, sub := range lay.ownsNames {
		if seen[sub] {
			return nil, responses.Userf("There are multiple columns in the GL spreadsheet under %s with the same sub-heading (%s).", ownsHeading, sub)
		}
		seen[sub] = true
		anyName = anyName || sub != ""
	}
	if !anyName {
		return nil, responses.Userf("I couldn't find any names under %s in the GL spreadsheet.", ownsHeading)
	}

	return lay, nil
}

// parseGame reads one data row. ok is false when the row is missing a
// required field and should be skipped.
func parseGame(row []string, lay *layout) (Game, bool) {
	for i := range fields {
		if fields[i].required && row[lay.spans[i].begin] == "" {
			return Game{}, false
		}
	}

	game := Game{
		Title:       row[lay.spans[fieldTitle].begin],
		Platform:    row[lay.spans[fieldPlatform].begin],
		MaxPlayers:  maxNum(row[lay.spans[fieldMaxPlayers].begin]),
		GoodPlayers: parseNumRange(row[lay.spans[fieldGoodPlayers].begin]),
		Owns:        make(map[string]bool, len(lay.ownsNames)),
	}
	ownsBegin := lay.spans[fieldOwns].begin
	for i, name := range lay.ownsNames {
		game.Owns[name] = row[ownsBegin+i] != ""
	}
	return fixup(game), true
}

// fixup squeezes the good-players range into the bounds the game implies.
// If nothing survives, the cell presumably didn't mean what we parsed, so
// the range is dropped rather than ruling the game out entirely.
func fixup(game Game) Game {
	if game.GoodPlayers == nil {
		return game
	}
	if simplified := game.GoodPlayers.Simplified(1, game.MaxPlayers); !simplified.Empty() {
		game.GoodPlayers = simplified
	} else {
		game.GoodPlayers = nil
	}
	return game
}

var (
	numRe     = regexp.MustCompile("[0-9]+")
	numPlusRe = regexp.MustCompile(`([0-9]+)\+`)
)

// nums extracts every run of digits in s as an int, in order.
func nums(s string) []int {
	var out []int
	for _, digits := range numRe.FindAllString(s, -1) {
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue // digit run too long for an int
		}
		out = append(out, n)
	}
	return out
}

// maxNum is the largest number mentioned in s, or nil if there is none.
// "2-4 players (6 with the expansion)" gives 6.
func maxNum(s string) *int {
	ns := nums(s)
	if len(ns) == 0 {
		return nil
	}
	top := ns[0]
	for _, n := range ns[1:] {
		top = max(top, n)
	}
	return &top
}

// parseNumRange reads a free-form player-count cell. "3+" style means
// unbounded above; otherwise the smallest and largest numbers mentioned
// bound the range; the word "even" anywhere restricts it to even counts.
// A cell with no numbers gives nil.
func parseNumRange(s string) *Range {
	multipleOf := 1
	if strings.Contains(strings.ToLower(s), "even") {
		multipleOf = 2
	}

	if m := numPlusRe.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return AtLeast(n, multipleOf)
		}
	}

	ns := nums(s)
	if len(ns) == 0 {
		return nil
	}
	low, high := ns[0], ns[0]
	for _, n := range ns[1:] {
		low = min(low, n)
		high = max(high, n)
	}
	return NewRange(low, high, multipleOf)
}
