package bot

import "github.com/bwmarrin/discordgo"

// Commands returns the slash command set registered on startup.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "clockin",
			Description: "Clock in to a project",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "project",
					Description:  "The project to clock in to",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
		{
			Name:        "clockout",
			Description: "Clock out from a project",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "project",
					Description:  "The project to clock out from (defaults to your open entry)",
					Required:     false,
					Autocomplete: true,
				},
			},
		},
		{
			Name:        "createproject",
			Description: "Create a new project (Admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "The name of the project",
					Required:    true,
				},
			},
		},
		{
			Name:        "deleteproject",
			Description: "Delete a project (Admin only)",
		},
		{
			Name:        "editproject",
			Description: "Edit a project name (Admin only)",
		},
		{
			Name:        "edit",
			Description: "Edit your time entries",
		},
		{
			Name:        "report",
			Description: "View your time tracking report",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "project",
					Description:  "Filter by specific project (optional)",
					Required:     false,
					Autocomplete: true,
				},
			},
		},
	}
}
