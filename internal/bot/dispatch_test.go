package bot

import (
	"errors"
	"strings"
	"testing"

	"github.com/jkivela/construct/internal/bot/commands"
	"github.com/jkivela/construct/internal/config"

	"go.uber.org/zap"
)

func testBot(t *testing.T, cmds ...commands.Command) *Bot {
	t.Helper()
	reg := commands.NewRegistry()
	for _, cmd := range cmds {
		if err := reg.Register(cmd); err != nil {
			t.Fatalf("Register error = %v", err)
		}
	}
	return &Bot{
		cfg:      config.Settings{Token: "t", Prefix: "!"},
		log:      zap.NewNop(),
		registry: reg,
	}
}

func testCtx() *commands.Context {
	return &commands.Context{
		AuthorID:    "u1",
		Username:    "tester",
		DisplayName: "Tester",
		ChannelID:   "c1",
		Prefix:      "!",
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		prefix    string
		wantToken string
		wantArgs  string
		wantOK    bool
	}{
		{name: "bare command", content: "!ping", prefix: "!", wantToken: "ping", wantOK: true},
		{name: "command with args", content: "!help ping", prefix: "!", wantToken: "help", wantArgs: "ping", wantOK: true},
		{name: "args trimmed", content: "!help   ping  ", prefix: "!", wantToken: "help", wantArgs: "ping", wantOK: true},
		{name: "no prefix", content: "ping", prefix: "!", wantOK: false},
		{name: "prefix only", content: "!", prefix: "!", wantOK: false},
		{name: "prefix then space", content: "! ping", prefix: "!", wantOK: false},
		{name: "multi-char prefix", content: "?>info", prefix: "?>", wantToken: "info", wantOK: true},
		{name: "wrong prefix", content: "?ping", prefix: "!", wantOK: false},
		{name: "empty message", content: "", prefix: "!", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, args, ok := splitCommand(tt.content, tt.prefix)
			if ok != tt.wantOK {
				t.Fatalf("splitCommand(%q, %q) ok = %v, want %v", tt.content, tt.prefix, ok, tt.wantOK)
			}
			if token != tt.wantToken || args != tt.wantArgs {
				t.Errorf("splitCommand(%q, %q) = (%q, %q), want (%q, %q)",
					tt.content, tt.prefix, token, args, tt.wantToken, tt.wantArgs)
			}
		})
	}
}

func TestDispatch_NoPrefixNeverLooksUp(t *testing.T) {
	invoked := false
	b := testBot(t, commands.Command{
		Name: "hello",
		Handler: func(ctx *commands.Context) (*commands.Reply, error) {
			invoked = true
			return &commands.Reply{Content: "hi"}, nil
		},
	})

	if reply := b.dispatch(testCtx(), "hello"); reply != nil {
		t.Errorf("dispatch of unprefixed message replied: %+v", reply)
	}
	if invoked {
		t.Error("handler invoked for unprefixed message")
	}
}

func TestDispatch_UnknownCommandHints(t *testing.T) {
	b := testBot(t, commands.Ping())

	reply := b.dispatch(testCtx(), "!nosuch")
	if reply == nil {
		t.Fatal("dispatch returned nil for unknown command")
	}
	if !strings.Contains(reply.Content, "!help") {
		t.Errorf("unknown-command reply %q does not hint at !help", reply.Content)
	}
}

func TestDispatch_PassesArgs(t *testing.T) {
	var gotArgs string
	b := testBot(t, commands.Command{
		Name: "echo",
		Handler: func(ctx *commands.Context) (*commands.Reply, error) {
			gotArgs = ctx.Args
			return &commands.Reply{Content: ctx.Args}, nil
		},
	})

	reply := b.dispatch(testCtx(), "!echo some argument text")
	if reply == nil || reply.Content != "some argument text" {
		t.Fatalf("reply = %+v, want echoed args", reply)
	}
	if gotArgs != "some argument text" {
		t.Errorf("ctx.Args = %q", gotArgs)
	}
}

func TestDispatch_HandlerErrorDoesNotStopNextCommand(t *testing.T) {
	b := testBot(t,
		commands.Command{
			Name: "boom",
			Handler: func(ctx *commands.Context) (*commands.Reply, error) {
				return nil, errors.New("kaput")
			},
		},
		commands.Ping(),
	)

	reply := b.dispatch(testCtx(), "!boom")
	if reply == nil || reply.Content == "" {
		t.Fatal("failing handler produced no failure reply")
	}
	if strings.Contains(reply.Content, "kaput") {
		t.Errorf("failure reply %q leaks the internal error", reply.Content)
	}

	next := b.dispatch(testCtx(), "!ping")
	if next == nil || next.Embed == nil {
		t.Fatalf("dispatch after a failed handler = %+v, want ping embed", next)
	}
}

func TestDispatch_HandlerPanicRecovered(t *testing.T) {
	b := testBot(t,
		commands.Command{
			Name: "panic",
			Handler: func(ctx *commands.Context) (*commands.Reply, error) {
				panic("boom")
			},
		},
		commands.Ping(),
	)

	reply := b.dispatch(testCtx(), "!panic")
	if reply == nil || reply.Content == "" {
		t.Fatal("panicking handler produced no failure reply")
	}

	next := b.dispatch(testCtx(), "!ping")
	if next == nil || next.Embed == nil {
		t.Fatalf("dispatch after a panicking handler = %+v, want ping embed", next)
	}
}

func TestDispatch_AliasMatchesPrimary(t *testing.T) {
	b := testBot(t, commands.Hello())

	byName := b.dispatch(testCtx(), "!hello")
	byAlias := b.dispatch(testCtx(), "!hi")
	if byName == nil || byAlias == nil {
		t.Fatal("dispatch returned nil")
	}
	if byName.Embed.Description != byAlias.Embed.Description {
		t.Errorf("alias reply %q differs from name reply %q",
			byAlias.Embed.Description, byName.Embed.Description)
	}
}

func TestNew_StartsDisconnected(t *testing.T) {
	b, err := New(config.Settings{Token: "t", Prefix: "!", LogLevel: "info"}, zap.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := b.State(); got != StateDisconnected {
		t.Errorf("State() = %v, want disconnected", got)
	}

	// The built-in surface must be resolvable by name and alias.
	for _, token := range []string{"ping", "hello", "hi", "hey", "info", "about", "botinfo", "say", "echo", "help", "commands"} {
		if _, ok := b.registry.Lookup(token); !ok {
			t.Errorf("built-in token %q not registered", token)
		}
	}
}
