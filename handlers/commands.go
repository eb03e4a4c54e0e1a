package handlers

import (
	"context"

	"github.com/mapleleafu/gamenight-bot/config"
	"github.com/mapleleafu/gamenight-bot/gamelist"
)

// IdentityStore is what the handlers need from the users table.
type IdentityStore interface {
	UserName(ctx context.Context, id string) (string, error)
	SetUserName(ctx context.Context, id, name string) error
	DeleteUser(ctx context.Context, id string) error
	UserIDByName(ctx context.Context, name string) (id string, ok bool, err error)
	Count(ctx context.Context) (int, error)
}

// CatalogFetcher pulls a fresh GameList snapshot. The spreadsheet is the
// source of truth, so there is deliberately no caching behind this.
type CatalogFetcher interface {
	Fetch(ctx context.Context, spreadsheetID string) (*gamelist.GameList, error)
}

// Env carries everything a command handler may need. Handlers get it
// explicitly so tests can hand them fakes.
type Env struct {
	Config  *config.Config
	Store   IdentityStore
	Catalog CatalogFetcher
}

// Reply is what a handler wants said back: the body text plus any users
// beyond the sender who should be pinged in front of it.
type Reply struct {
	Text     string
	Mentions []string
}

// HandlerFunc runs one command invocation. args is the raw argument string
// with trailing whitespace already trimmed; it is "" when the command came
// with no arguments.
type HandlerFunc func(ctx context.Context, env *Env, senderID, args string) (*Reply, error)

// Command is one entry in the registry.
type Command struct {
	Name    string
	ArgHint string // shown in help, "" for commands without arguments
	Help    string
	Run     HandlerFunc
}

// Registry is the command table. Help lists commands in registration order.
type Registry struct {
	commands []Command
	byName   map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

func (r *Registry) Register(c Command) {
	r.commands = append(r.commands, c)
	r.byName[c.Name] = c
}

func (r *Registry) Lookup(name string) (Command, bool) {
	c, ok := r.byName[name]
	return c, ok
}

func (r *Registry) All() []Command {
	return r.commands
}

// DefaultRegistry builds the full command table.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Command{
		Name:    "iam",
		ArgHint: "<name>",
		Help:    "Tell me the name you go by in the GL spreadsheet.",
		Run:     iamHandler,
	})
	r.Register(Command{
		Name: "whoami",
		Help: "Ask me what name I think you go by.",
		Run:  whoamiHandler,
	})
	r.Register(Command{
		Name: "forgetme",
		Help: "Make me forget who you are.",
		Run:  forgetmeHandler,
	})
	r.Register(Command{
		Name: "sheet",
		Help: "Get a link to the GL spreadsheet.",
		Run:  sheetHandler,
	})
	r.Register(Command{
		Name:    "games",
		ArgHint: "<mentions>",
		Help:    "Suggest games for you and the people you mention.",
		Run:     gamesHandler,
	})
	r.Register(Command{
		Name:    "game",
		ArgHint: "<mentions>",
		Help:    "Pick one game for you and the people you mention.",
		Run:     gameHandler,
	})
	r.Register(Command{
		Name:    "deets",
		ArgHint: "<title>",
		Help:    "Look up a game's details in the GL spreadsheet.",
		Run:     deetsHandler,
	})
	r.Register(Command{
		Name:    "whohas",
		ArgHint: "<title>",
		Help:    "Find out who owns a game.",
		Run:     whohasHandler,
	})
	r.Register(Command{
		Name:    "roll",
		ArgHint: "<sides>",
		Help:    "Roll a die, 100 sides unless you say otherwise.",
		Run:     rollHandler,
	})
	r.Register(Command{
		Name: "help",
		Help: "Show this list.",
		Run: func(context.Context, *Env, string, string) (*Reply, error) {
			return helpReply(r), nil
		},
	})
	return r
}
