package bot

import (
	"fmt"
	"strings"

	"github.com/jkivela/construct/internal/bot/commands"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// onMessageCreate is the single translation point from gateway events
// to registry lookups.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}

	ctx := &commands.Context{
		AuthorID:    m.Author.ID,
		Username:    m.Author.Username,
		DisplayName: displayName(m),
		Mention:     m.Author.Mention(),
		ChannelID:   m.ChannelID,
		GuildID:     m.GuildID,
		Prefix:      b.cfg.Prefix,
		Latency:     s.HeartbeatLatency(),
		GuildCount:  len(s.State.Guilds),
	}

	reply := b.dispatch(ctx, m.Content)
	if reply == nil {
		return
	}
	b.send(s, m.ChannelID, reply)
}

// dispatch resolves the message against the registry and runs the
// handler. A nil return means the message was not a command for us.
// Handler failures are logged and answered with a generic line; one
// bad command never takes the process down.
func (b *Bot) dispatch(ctx *commands.Context, content string) *commands.Reply {
	token, args, ok := splitCommand(content, b.cfg.Prefix)
	if !ok {
		return nil
	}

	cmd, found := b.registry.Lookup(token)
	if !found {
		b.log.Debug("unknown command", zap.String("token", token))
		return &commands.Reply{
			Content: fmt.Sprintf("Unknown command. Use `%shelp` to see available commands.", b.cfg.Prefix),
		}
	}

	ctx.Args = args
	reply, err := b.runHandler(cmd, ctx)
	if err != nil {
		b.log.Error("command failed",
			zap.String("command", cmd.Name),
			zap.String("author", ctx.AuthorID),
			zap.Error(err))
		return &commands.Reply{Content: "Something went wrong running that command."}
	}
	return reply
}

// runHandler invokes the handler, converting a panic into an error so
// the dispatch boundary swallows both the same way.
func (b *Bot) runHandler(cmd *commands.Command, ctx *commands.Context) (reply *commands.Reply, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return cmd.Handler(ctx)
}

// splitCommand extracts the command token and the remaining argument
// text. ok is false when the message is not prefixed, or is only the
// prefix; no registry lookup happens in either case.
func splitCommand(content, prefix string) (token, args string, ok bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", "", false
	}
	rest := strings.TrimPrefix(content, prefix)
	if rest == "" {
		return "", "", false
	}

	token, args, _ = strings.Cut(rest, " ")
	if token == "" {
		return "", "", false
	}
	return token, strings.TrimSpace(args), true
}

func (b *Bot) send(s *discordgo.Session, channelID string, reply *commands.Reply) {
	var err error
	switch {
	case reply.Embed != nil:
		_, err = s.ChannelMessageSendEmbed(channelID, reply.Embed)
	case reply.Content != "":
		_, err = s.ChannelMessageSend(channelID, reply.Content)
	default:
		return
	}
	if err != nil {
		b.log.Error("sending reply failed",
			zap.String("channel", channelID),
			zap.Error(err))
	}
}

// displayName prefers the guild nick, then the global display name,
// then the plain username.
func displayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}
