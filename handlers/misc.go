package handlers

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/mapleleafu/gamenight-bot/gamelist"
	"github.com/mapleleafu/gamenight-bot/responses"
)

func sheetHandler(_ context.Context, env *Env, _, _ string) (*Reply, error) {
	url := gamelist.SheetURL(env.Config.SpreadsheetID)
	return &Reply{Text: fmt.Sprintf("The GL spreadsheet lives at %s.", url)}, nil
}

const defaultDieSides = 100

var dieSidesRe = regexp.MustCompile("[0-9]+")

// rollHandler rolls one die. The side count is the largest number anywhere
// in the arguments, so "!roll d20" and "!roll 20" both work.
func rollHandler(_ context.Context, _ *Env, _, args string) (*Reply, error) {
	sides := defaultDieSides
	if runs := dieSidesRe.FindAllString(args, -1); len(runs) > 0 {
		sides = 0
		for _, digits := range runs {
			n, err := strconv.Atoi(digits)
			if err != nil {
				return nil, responses.UserError{Msg: "That die is too big for me."}
			}
			sides = max(sides, n)
		}
	}
	if sides < 2 {
		return nil, responses.Userf("A %d-sided die isn't much of a die.", sides)
	}
	return &Reply{Text: fmt.Sprintf("You rolled %d.", rand.Intn(sides)+1)}, nil
}

// helpReply lists every command in registration order.
func helpReply(r *Registry) *Reply {
	var b strings.Builder
	for i, c := range r.All() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("!" + c.Name)
		if c.ArgHint != "" {
			b.WriteString(" " + c.ArgHint)
		}
		b.WriteString(": " + c.Help)
	}
	return &Reply{Text: b.String()}
}
