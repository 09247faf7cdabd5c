package bot

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

// Bot manages the Discord gateway connection and slash command registration.
type Bot struct {
	session *discordgo.Session
	handler *CommandHandler
	guildID string
}

// New creates a Bot around a fresh gateway session. guildID may be empty to
// register the commands globally.
func New(token, guildID string, handler *CommandHandler) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	b := &Bot{session: session, handler: handler, guildID: guildID}
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("[bot] logged in as %s#%s", r.User.Username, r.User.Discriminator)
	})
	session.AddHandler(b.onInteraction)
	return b, nil
}

// Start opens the gateway connection and registers the command set.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	commands, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.guildID, Commands())
	if err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	log.Printf("[bot] registered %d commands", len(commands))
	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() {
	log.Println("[bot] shutting down")
	if err := b.session.Close(); err != nil {
		log.Printf("[bot] close session: %v", err)
	}
}
