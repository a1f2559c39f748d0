package bot

import "github.com/bwmarrin/discordgo"

// setStatus publishes the configured presence text as a watching
// activity.
func setStatus(s *discordgo.Session, text string) error {
	activity := discordgo.Activity{
		Name: text,
		Type: discordgo.ActivityTypeWatching,
	}

	updateData := discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{&activity},
		Status:     string(discordgo.StatusOnline),
		AFK:        false,
	}

	return s.UpdateStatusComplex(updateData)
}
