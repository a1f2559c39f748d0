package commands

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Help lists registered commands, or details one of them when given an
// argument. It reads the registry at invoke time, so it lists itself.
func Help(reg *Registry) Command {
	return Command{
		Name:    "help",
		Aliases: []string{"commands"},
		Help:    "List available commands, or describe one",
		Usage:   "help [command]",
		Handler: func(ctx *Context) (*Reply, error) {
			arg := strings.TrimSpace(ctx.Args)
			if arg != "" {
				return helpFor(reg, ctx.Prefix, arg), nil
			}

			var b strings.Builder
			for _, cmd := range reg.Commands() {
				fmt.Fprintf(&b, "`%s%s` - %s\n", ctx.Prefix, cmd.Name, cmd.Help)
			}
			embed := &discordgo.MessageEmbed{
				Title:       "Commands",
				Description: b.String(),
				Color:       embedColor,
				Footer: &discordgo.MessageEmbedFooter{
					Text: fmt.Sprintf("Use %shelp <command> for details", ctx.Prefix),
				},
			}
			return &Reply{Embed: embed}, nil
		},
	}
}

func helpFor(reg *Registry, prefix, token string) *Reply {
	cmd, ok := reg.Lookup(token)
	if !ok {
		return &Reply{Content: fmt.Sprintf("Unknown command `%s`. Try `%shelp`.", token, prefix)}
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Help: %s", cmd.Name),
		Description: cmd.Help,
		Color:       embedColor,
	}
	if len(cmd.Aliases) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Aliases",
			Value: strings.Join(cmd.Aliases, ", "),
		})
	}
	usage := cmd.Usage
	if usage == "" {
		usage = cmd.Name
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Usage",
		Value: fmt.Sprintf("`%s%s`", prefix, usage),
	})
	return &Reply{Embed: embed}
}
