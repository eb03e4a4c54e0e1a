package handlers

import (
	"strconv"
	"strings"
	"testing"
)

func replyText(t *testing.T, env *Env, content string) string {
	t.Helper()
	text, handled := dispatch(t, env, "1", content)
	if !handled {
		t.Fatalf("%q not handled", content)
	}
	return text
}

func rolled(t *testing.T, text string) int {
	t.Helper()
	const prefix = "You rolled "
	i := strings.Index(text, prefix)
	if i < 0 || !strings.HasSuffix(text, ".") {
		t.Fatalf("reply = %q, want a roll result", text)
	}
	n, err := strconv.Atoi(text[i+len(prefix) : len(text)-1])
	if err != nil {
		t.Fatalf("reply = %q: %v", text, err)
	}
	return n
}

func TestRollDefaultsTo100(t *testing.T) {
	env := testEnv(newFakeStore(nil), nil)
	for i := 0; i < 50; i++ {
		n := rolled(t, replyText(t, env, "!roll"))
		if n < 1 || n > 100 {
			t.Fatalf("rolled %d, want 1..100", n)
		}
	}
}

func TestRollReadsSidesFromAnywhere(t *testing.T) {
	env := testEnv(newFakeStore(nil), nil)
	for i := 0; i < 50; i++ {
		n := rolled(t, replyText(t, env, "!roll d6"))
		if n < 1 || n > 6 {
			t.Fatalf("rolled %d, want 1..6", n)
		}
	}
}

func TestRollTakesLargestNumber(t *testing.T) {
	env := testEnv(newFakeStore(nil), nil)
	n := rolled(t, replyText(t, env, "!roll 2 or 3"))
	if n < 1 || n > 3 {
		t.Errorf("rolled %d, want 1..3", n)
	}
}

func TestRollNoDigitsDefaults(t *testing.T) {
	env := testEnv(newFakeStore(nil), nil)
	n := rolled(t, replyText(t, env, "!roll the dice"))
	if n < 1 || n > 100 {
		t.Errorf("rolled %d, want 1..100", n)
	}
}

func TestRollTooFewSides(t *testing.T) {
	env := testEnv(newFakeStore(nil), nil)
	for _, content := range []string{"!roll 1", "!roll 0"} {
		text, _ := dispatch(t, env, "1", content)
		if strings.Contains(text, "You rolled") {
			t.Errorf("%q rolled anyway: %q", content, text)
		}
		if !strings.Contains(text, "die") {
			t.Errorf("%q: reply = %q, want a die-size complaint", content, text)
		}
	}
}

func TestSheetCommand(t *testing.T) {
	env := testEnv(newFakeStore(nil), nil)
	text, _ := dispatch(t, env, "1", "!sheet")
	want := "<@1> The GL spreadsheet lives at https://docs.google.com/spreadsheets/d/sheet123."
	if text != want {
		t.Errorf("reply = %q, want %q", text, want)
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	env := testEnv(newFakeStore(nil), nil)
	text, _ := dispatch(t, env, "1", "!help")

	lines := strings.Split(text, "\n")
	if lines[0] != "<@1>" {
		t.Fatalf("multi-line reply should put the ping on its own line, got %q", lines[0])
	}
	body := lines[1:]

	reg := DefaultRegistry()
	if len(body) != len(reg.All()) {
		t.Fatalf("help has %d lines, want %d", len(body), len(reg.All()))
	}
	for i, c := range reg.All() {
		if !strings.HasPrefix(body[i], "!"+c.Name) {
			t.Errorf("line %d = %q, want it to describe %q", i, body[i], c.Name)
		}
		if !strings.Contains(body[i], ": "+c.Help) {
			t.Errorf("line %d = %q, want the help text for %q", i, body[i], c.Name)
		}
	}

	if body[0] != "!iam <name>: Tell me the name you go by in the GL spreadsheet." {
		t.Errorf("first line = %q", body[0])
	}
}
