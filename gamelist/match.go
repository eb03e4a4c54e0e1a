package gamelist

import (
	"strings"

	"github.com/mapleleafu/gamenight-bot/responses"
)

// GamesForNames picks the games a party could play together. A game is ok
// when everyone in the party owns it and the party fits under its player
// cap; it is good when on top of that the party size is one of its
// good-player counts. Good games are preferred: the ok tier is only offered
// when no game is good for this party size. Order follows the spreadsheet.
//
// names must be non-empty and deduplicated; callers resolve and dedup before
// calling.
func GamesForNames(names []string, gl *GameList) ([]Game, error) {
	for _, name := range names {
		if !gl.HasName(name) {
			return nil, responses.Userf("I couldn't find %s in the GL spreadsheet.", name)
		}
	}

	size := len(names)
	var goodGames, okGames []Game
	for _, game := range gl.Games {
		if !ownedByAll(game, names) {
			continue
		}
		if game.MaxPlayers != nil && size > *game.MaxPlayers {
			continue
		}
		okGames = append(okGames, game)
		if game.GoodPlayers == nil || game.GoodPlayers.Contains(size) {
			goodGames = append(goodGames, game)
		}
	}

	if len(goodGames) > 0 {
		return goodGames, nil
	}
	if len(okGames) > 0 {
		return okGames, nil
	}
	return nil, responses.UserError{Msg: "I can't think of a game you could all play. Sorry!"}
}

func ownedByAll(game Game, names []string) bool {
	for _, name := range names {
		if !game.Owns[name] {
			return false
		}
	}
	return true
}

// MatchingGames returns every game whose title contains query, ignoring
// case, in spreadsheet order.
func MatchingGames(query string, gl *GameList) ([]Game, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, responses.UserError{Msg: "Which game? Tell me part of the title."}
	}

	needle := strings.ToLower(query)
	var out []Game
	for _, game := range gl.Games {
		if strings.Contains(strings.ToLower(game.Title), needle) {
			out = append(out, game)
		}
	}
	if len(out) == 0 {
		return nil, responses.Userf("I couldn't find any game matching %q in the GL spreadsheet.", query)
	}
	return out, nil
}
