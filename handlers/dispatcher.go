package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"runtime/debug"
	"strings"

	"github.com/mapleleafu/gamenight-bot/responses"
	"github.com/mapleleafu/gamenight-bot/utils"
)

// commandRe matches "!name args" and "name args", with or without the
// arguments. The name is a run of lowercase letters; anything shaped
// differently is ordinary chat, not a command. (?s) lets arguments span
// lines.
var commandRe = regexp.MustCompile(`(?s)^!?([a-z]+)(?:\s+(.*))?$`)

// nudge is the answer to someone mentioning the bot without a usable
// command.
const nudge = "You rang? Say !help to see what I can do."

// Dispatch routes one incoming message and renders the outgoing text.
// handled is false when the message isn't a command invocation at all, in
// which case the transport decides whether to stay silent or nudge.
func (r *Registry) Dispatch(ctx context.Context, env *Env, senderID, content string) (text string, handled bool) {
	m := commandRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	name := m[1]
	args := strings.TrimRight(m[2], " \t\r\n")

	cmd, ok := r.Lookup(name)
	if !ok {
		err := responses.Userf("I don't know the command %q. Try !help.", name)
		return utils.RenderReply(senderID, nil, errorBody(name, senderID, err)), true
	}

	reply, err := runCommand(ctx, cmd, env, senderID, args)
	if err != nil {
		return utils.RenderReply(senderID, nil, errorBody(name, senderID, err)), true
	}
	return utils.RenderReply(senderID, reply.Mentions, reply.Text), true
}

// runCommand invokes a handler, turning a panic into an ordinary error so a
// handler bug fails its own invocation instead of the process. The stack goes
// to the operator log; the returned error carries only the panic value.
func runCommand(ctx context.Context, cmd Command, env *Env, senderID, args string) (reply *Reply, err error) {
	defer func() {
		if v := recover(); v != nil {
			log.Printf("command %q panicked: %v\n%s", cmd.Name, v, debug.Stack())
			err = fmt.Errorf("the %s command hit a bug (%v)", cmd.Name, v)
		}
	}()
	return cmd.Run(ctx, env, senderID, args)
}

// errorBody turns a handler failure into reply text. A UserError speaks for
// itself; anything else gets logged for the operator and summarized for the
// user, who can't do anything about it anyway.
func errorBody(name, senderID string, err error) string {
	var ue responses.UserError
	if errors.As(err, &ue) {
		return ue.Msg
	}
	log.Printf("command %q from user %s failed: %v", name, senderID, err)
	return "Something went wrong: " + err.Error() + "."
}
