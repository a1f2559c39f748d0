package commands

import (
	"fmt"
	"time"

	"github.com/jkivela/construct/internal/sysinfo"

	"github.com/bwmarrin/discordgo"
)

// Info reports process uptime and host resource usage. started is the
// process start timestamp; collect is the stats probe, injected so the
// handler stays testable.
func Info(started time.Time, collect func() sysinfo.Stats) Command {
	return Command{
		Name:    "info",
		Aliases: []string{"about", "botinfo"},
		Help:    "Show bot uptime and host resource usage",
		Handler: func(ctx *Context) (*Reply, error) {
			stats := collect()
			uptime := time.Since(started).Round(time.Second)

			embed := &discordgo.MessageEmbed{
				Title:       "Bot Information",
				Description: "A prefix-command Discord bot written in Go",
				Color:       embedColor,
				Fields: []*discordgo.MessageEmbedField{
					{Name: "Uptime", Value: uptime.String(), Inline: true},
					{Name: "Guilds", Value: fmt.Sprintf("%d", ctx.GuildCount), Inline: true},
					{Name: "Go Version", Value: stats.GoVersion, Inline: true},
					{Name: "Platform", Value: stats.Platform, Inline: true},
					{Name: "Memory Usage", Value: fmt.Sprintf("%.1f%%", stats.MemoryUsedPercent), Inline: true},
					{Name: "CPU Usage", Value: fmt.Sprintf("%.1f%%", stats.CPUPercent), Inline: true},
					{Name: "Heap", Value: fmt.Sprintf("%.1f MB", stats.HeapAllocMB), Inline: true},
					{Name: "Goroutines", Value: fmt.Sprintf("%d", stats.Goroutines), Inline: true},
					{Name: "Host Uptime", Value: stats.HostUptime.Round(time.Second).String(), Inline: true},
				},
				Footer: &discordgo.MessageEmbedFooter{
					Text: fmt.Sprintf("Requested by %s", ctx.Username),
				},
			}
			return &Reply{Embed: embed}, nil
		},
	}
}
