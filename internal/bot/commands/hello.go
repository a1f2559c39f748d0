package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Hello greets the invoking user.
func Hello() Command {
	return Command{
		Name:    "hello",
		Aliases: []string{"hi", "hey"},
		Help:    "Get a friendly greeting from the bot",
		Handler: func(ctx *Context) (*Reply, error) {
			embed := &discordgo.MessageEmbed{
				Title:       "Hello!",
				Description: fmt.Sprintf("Hello, %s! Nice to meet you!", ctx.DisplayName),
				Color:       embedColor,
				Footer: &discordgo.MessageEmbedFooter{
					Text: fmt.Sprintf("Requested by %s", ctx.Username),
				},
			}
			return &Reply{Embed: embed}, nil
		},
	}
}
