package bot

import (
	"context"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const genericError = "There was an error while executing this command!"

// onInteraction routes every incoming interaction to a handler method and
// sends the reply. Handler errors are logged and answered with a generic
// failure message.
func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	if i.Type == discordgo.InteractionApplicationCommandAutocomplete {
		b.respondAutocomplete(s, i)
		return
	}

	reply, err := b.dispatch(ctx, invocationFrom(i), i)
	if err != nil {
		log.Printf("[bot] handle interaction: %v", err)
		b.sendError(s, i)
		return
	}
	if reply == nil {
		return
	}
	if err := send(s, i, reply); err != nil {
		log.Printf("[bot] send reply: %v", err)
	}
}

func (b *Bot) dispatch(ctx context.Context, inv Invocation, i *discordgo.InteractionCreate) (*Reply, error) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		switch data.Name {
		case "clockin":
			return b.handler.ClockIn(ctx, inv, stringOption(data, "project"))
		case "clockout":
			return b.handler.ClockOut(ctx, inv, stringOption(data, "project"))
		case "createproject":
			return b.handler.CreateProject(ctx, inv, stringOption(data, "name"))
		case "deleteproject":
			return b.handler.DeleteProject(ctx, inv)
		case "editproject":
			return b.handler.EditProject(ctx, inv)
		case "edit":
			return b.handler.EditEntries(ctx, inv)
		case "report":
			return b.handler.Report(ctx, inv, stringOption(data, "project"))
		}
		log.Printf("[bot] unknown command: %s", data.Name)
		return nil, nil

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		switch {
		case customID == idDeleteProjectSelect:
			return b.handler.DeleteProjectSelect(ctx, inv, firstValue(i))
		case customID == idEditProjectSelect:
			return b.handler.EditProjectSelect(ctx, inv, firstValue(i))
		case customID == idEditEntrySelect:
			return b.handler.EditEntrySelect(ctx, inv, firstValue(i))
		case customID == idDeleteProjectCancel:
			return b.handler.DeleteProjectCancel(ctx, inv)
		case strings.HasPrefix(customID, idDeleteProjectConfirm):
			return b.handler.DeleteProjectConfirm(ctx, inv, strings.TrimPrefix(customID, idDeleteProjectConfirm))
		}
		log.Printf("[bot] unknown component: %s", customID)
		return nil, nil

	case discordgo.InteractionModalSubmit:
		data := i.ModalSubmitData()
		switch {
		case strings.HasPrefix(data.CustomID, idEditProjectModal):
			token := strings.TrimPrefix(data.CustomID, idEditProjectModal)
			return b.handler.EditProjectSubmit(ctx, inv, token, textInput(data, "project_name"))
		case strings.HasPrefix(data.CustomID, idEditEntryModal):
			token := strings.TrimPrefix(data.CustomID, idEditEntryModal)
			return b.handler.EditEntrySubmit(ctx, inv, token, textInput(data, "clock_in"), textInput(data, "clock_out"))
		}
		log.Printf("[bot] unknown modal: %s", data.CustomID)
		return nil, nil
	}
	return nil, nil
}

func (b *Bot) respondAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	choices, err := b.handler.ProjectChoices(focusedOption(i.ApplicationCommandData()))
	if err != nil {
		log.Printf("[bot] autocomplete: %v", err)
		choices = nil
	}
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		log.Printf("[bot] autocomplete respond: %v", err)
	}
}

// send converts a Reply to the matching interaction response.
func send(s *discordgo.Session, i *discordgo.InteractionCreate, r *Reply) error {
	if r.Modal != nil {
		rows := make([]discordgo.MessageComponent, 0, len(r.Modal.Inputs))
		for _, input := range r.Modal.Inputs {
			rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{input}})
		}
		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseModal,
			Data: &discordgo.InteractionResponseData{
				CustomID:   r.Modal.CustomID,
				Title:      r.Modal.Title,
				Components: rows,
			},
		})
	}

	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if r.Update {
		responseType = discordgo.InteractionResponseUpdateMessage
	}

	components := r.Components
	if components == nil {
		// Explicit empty slice so component updates clear the buttons/menus.
		components = []discordgo.MessageComponent{}
	}
	data := &discordgo.InteractionResponseData{
		Content:    r.Content,
		Components: components,
	}
	if r.Embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{r.Embed}
	}
	if r.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{Type: responseType, Data: data})
}

// sendError replies with the generic failure message, falling back to a
// followup when the initial response was already sent.
func (b *Bot) sendError(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: genericError,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		if _, ferr := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: genericError,
			Flags:   discordgo.MessageFlagsEphemeral,
		}); ferr != nil {
			log.Printf("[bot] error followup: %v", ferr)
		}
	}
}

func invocationFrom(i *discordgo.InteractionCreate) Invocation {
	user := i.User
	if i.Member != nil && i.Member.User != nil {
		user = i.Member.User
	}
	if user == nil {
		return Invocation{}
	}
	return Invocation{UserID: user.ID, Username: user.Username}
}

func stringOption(data discordgo.ApplicationCommandInteractionData, name string) string {
	for _, opt := range data.Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func focusedOption(data discordgo.ApplicationCommandInteractionData) string {
	for _, opt := range data.Options {
		if opt.Focused {
			return opt.StringValue()
		}
	}
	return ""
}

func firstValue(i *discordgo.InteractionCreate) string {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func textInput(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, component := range data.Components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}
