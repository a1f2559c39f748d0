package commands

import (
	"fmt"
	"strings"
)

// Say repeats the argument text back into the channel.
func Say() Command {
	return Command{
		Name:    "say",
		Aliases: []string{"echo"},
		Help:    "Make the bot repeat your message",
		Usage:   "say <message>",
		Handler: func(ctx *Context) (*Reply, error) {
			msg := strings.TrimSpace(ctx.Args)
			if msg == "" {
				return &Reply{Content: fmt.Sprintf("Nothing to say. Usage: `%ssay <message>`", ctx.Prefix)}, nil
			}
			return &Reply{Content: msg}, nil
		},
	}
}
