package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/mapleleafu/gamenight-bot/responses"
)

func iamHandler(ctx context.Context, env *Env, senderID, args string) (*Reply, error) {
	name := strings.TrimSpace(args)
	if name == "" {
		return nil, responses.UserError{Msg: "Tell me a name, like: !iam Alice"}
	}
	if err := env.Store.SetUserName(ctx, senderID, name); err != nil {
		return nil, err
	}
	return &Reply{Text: fmt.Sprintf("Got it, you go by %s in the GL spreadsheet.", name)}, nil
}

func whoamiHandler(ctx context.Context, env *Env, senderID, _ string) (*Reply, error) {
	name, err := env.Store.UserName(ctx, senderID)
	if err != nil {
		return nil, err
	}
	return &Reply{Text: fmt.Sprintf("You go by %s in the GL spreadsheet.", name)}, nil
}

func forgetmeHandler(ctx context.Context, env *Env, senderID, _ string) (*Reply, error) {
	if err := env.Store.DeleteUser(ctx, senderID); err != nil {
		return nil, err
	}
	return &Reply{Text: "Done, I've forgotten you."}, nil
}
