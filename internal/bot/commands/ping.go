package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Ping reports the gateway heartbeat latency.
func Ping() Command {
	return Command{
		Name: "ping",
		Help: "Check if the bot is alive and how fast the gateway is",
		Handler: func(ctx *Context) (*Reply, error) {
			ms := ctx.Latency.Milliseconds()
			if ms < 0 {
				ms = 0
			}
			embed := &discordgo.MessageEmbed{
				Title: "Pong!",
				Color: embedColor,
				Fields: []*discordgo.MessageEmbedField{
					{Name: "Gateway Latency", Value: fmt.Sprintf("%dms", ms), Inline: true},
				},
			}
			return &Reply{Embed: embed}, nil
		},
	}
}
