package handlers

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/mapleleafu/gamenight-bot/gamelist"
	"github.com/mapleleafu/gamenight-bot/utils"
)

// partyNames resolves the sender plus everyone mentioned in args to their
// spreadsheet names. mentioned keeps the raw mention order for the reply
// pings; the sender and repeats are deduplicated before lookup, so the
// party size is the number of distinct people.
func partyNames(ctx context.Context, env *Env, senderID, args string) (names, mentioned []string, err error) {
	mentioned = utils.MentionIDs(args)
	ids := utils.DedupPreserveOrder(append([]string{senderID}, mentioned...))
	for _, id := range ids {
		name, err := env.Store.UserName(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		names = append(names, name)
	}
	return names, mentioned, nil
}

func fetchCatalog(ctx context.Context, env *Env) (*gamelist.GameList, error) {
	return env.Catalog.Fetch(ctx, env.Config.SpreadsheetID)
}

func gamesHandler(ctx context.Context, env *Env, senderID, args string) (*Reply, error) {
	names, mentioned, err := partyNames(ctx, env, senderID, args)
	if err != nil {
		return nil, err
	}
	gl, err := fetchCatalog(ctx, env)
	if err != nil {
		return nil, err
	}
	games, err := gamelist.GamesForNames(names, gl)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(games))
	for i, g := range games {
		titles[i] = g.Title
	}
	return &Reply{
		Text:     fmt.Sprintf("Perhaps %s?", utils.JoinWithConjunction(titles, "or")),
		Mentions: mentioned,
	}, nil
}

func gameHandler(ctx context.Context, env *Env, senderID, args string) (*Reply, error) {
	names, mentioned, err := partyNames(ctx, env, senderID, args)
	if err != nil {
		return nil, err
	}
	gl, err := fetchCatalog(ctx, env)
	if err != nil {
		return nil, err
	}
	games, err := gamelist.GamesForNames(names, gl)
	if err != nil {
		return nil, err
	}

	pick := games[rand.Intn(len(games))]
	return &Reply{
		Text:     fmt.Sprintf("Perhaps %s?", pick.Title),
		Mentions: mentioned,
	}, nil
}

func deetsHandler(ctx context.Context, env *Env, _, args string) (*Reply, error) {
	gl, err := fetchCatalog(ctx, env)
	if err != nil {
		return nil, err
	}
	games, err := gamelist.MatchingGames(args, gl)
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(games))
	for i, g := range games {
		lines[i] = deetsLine(g)
	}
	return &Reply{Text: strings.Join(lines, "\n")}, nil
}

// deetsLine renders one game's details, skipping fields the sheet leaves
// blank.
func deetsLine(g gamelist.Game) string {
	var facts []string
	if g.Platform != "" {
		facts = append(facts, "platform "+g.Platform)
	}
	if g.MaxPlayers != nil {
		facts = append(facts, fmt.Sprintf("max players %d", *g.MaxPlayers))
	}
	if g.GoodPlayers != nil {
		facts = append(facts, "good players "+g.GoodPlayers.String())
	}
	if len(facts) == 0 {
		return g.Title + ": no details filled in."
	}
	return g.Title + ": " + strings.Join(facts, "; ") + "."
}

func whohasHandler(ctx context.Context, env *Env, _, args string) (*Reply, error) {
	gl, err := fetchCatalog(ctx, env)
	if err != nil {
		return nil, err
	}
	games, err := gamelist.MatchingGames(args, gl)
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(games))
	for i, g := range games {
		line, err := ownerLine(ctx, env, gl, g)
		if err != nil {
			return nil, err
		}
		lines[i] = line
	}
	return &Reply{Text: strings.Join(lines, "\n")}, nil
}

// ownerLine lists a game's owners in spreadsheet column order. Owners whose
// name is bound to a Discord account are shown as a mention; the rest keep
// their plain spreadsheet name.
func ownerLine(ctx context.Context, env *Env, gl *gamelist.GameList, g gamelist.Game) (string, error) {
	var owners []string
	for _, name := range gl.Names {
		if !g.Owns[name] {
			continue
		}
		id, ok, err := env.Store.UserIDByName(ctx, name)
		if err != nil {
			return "", err
		}
		if ok {
			owners = append(owners, utils.Mention(id))
		} else {
			owners = append(owners, name)
		}
	}
	if len(owners) == 0 {
		return fmt.Sprintf("Who owns %s? Nobody, it seems.", g.Title), nil
	}
	return fmt.Sprintf("Who owns %s? %s.", g.Title, utils.JoinWithConjunction(owners, "and")), nil
}
