// Package commands defines the command registry and the built-in
// command set.
package commands

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

const embedColor = 0x3498DB

// Context carries everything a handler may need about the triggering
// message. One is built per inbound message and discarded after the
// handler returns.
type Context struct {
	AuthorID    string
	Username    string
	DisplayName string
	Mention     string
	ChannelID   string
	GuildID     string

	// Args is the raw text after the command token.
	Args string

	// Prefix is the invocation prefix, for help and usage strings.
	Prefix string

	// Latency is the gateway heartbeat round-trip at dispatch time.
	Latency time.Duration

	// GuildCount is how many guilds the session currently sees.
	GuildCount int
}

// Reply is what a handler hands back to the dispatcher. Either Content
// or Embed may be set; both empty means nothing gets sent.
type Reply struct {
	Content string
	Embed   *discordgo.MessageEmbed
}

// Handler runs one command invocation. Handlers never touch the
// session; sending the reply is the dispatcher's job.
type Handler func(ctx *Context) (*Reply, error)

// Command is one registry entry. Entries are registered at startup and
// never mutated afterwards.
type Command struct {
	Name    string
	Aliases []string
	Help    string
	Usage   string
	Handler Handler
}

// Registry maps command names and aliases to their entries. Populated
// at startup, read-only afterwards, so lookups need no locking.
type Registry struct {
	index map[string]*Command
	order []*Command
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]*Command)}
}

// Register adds a command. A duplicate name or alias, an empty name,
// or a nil handler is a configuration error.
func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" {
		return fmt.Errorf("command with empty name")
	}
	if cmd.Handler == nil {
		return fmt.Errorf("command %q has no handler", cmd.Name)
	}

	c := cmd
	tokens := append([]string{c.Name}, c.Aliases...)
	seen := make(map[string]bool, len(tokens))
	for _, key := range tokens {
		if prev, ok := r.index[key]; ok {
			return fmt.Errorf("command %q conflicts with %q on token %q", c.Name, prev.Name, key)
		}
		if seen[key] {
			return fmt.Errorf("command %q repeats token %q", c.Name, key)
		}
		seen[key] = true
	}
	for _, key := range tokens {
		r.index[key] = &c
	}
	r.order = append(r.order, &c)
	return nil
}

// Lookup resolves a token against names and aliases. Exact and
// case-sensitive; no fuzzy fallback.
func (r *Registry) Lookup(token string) (*Command, bool) {
	cmd, ok := r.index[token]
	return cmd, ok
}

// Commands returns the entries in registration order.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, len(r.order))
	copy(out, r.order)
	return out
}
