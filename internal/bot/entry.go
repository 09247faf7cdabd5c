package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Benjafo/TimeClock/internal/flow"
	"github.com/Benjafo/TimeClock/internal/timeutil"
	"github.com/bwmarrin/discordgo"
)

const (
	glyphClosed = "✅"
	glyphOpen   = "⏱️"
)

// EditEntries lists the user's recent entries as a select menu.
func (h *CommandHandler) EditEntries(ctx context.Context, inv Invocation) (*Reply, error) {
	if _, err := h.users.GetOrCreate(inv.UserID, inv.Username); err != nil {
		return nil, err
	}

	entries, err := h.entries.List(inv.UserID, nil, editListLimit)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return ephemeral("You have no time entries to edit."), nil
	}

	options := make([]discordgo.SelectMenuOption, 0, len(entries))
	for _, e := range entries {
		if len(options) == maxSelectOptions {
			break
		}
		status := glyphOpen
		description := "Still clocked in"
		if e.ClockOut != nil {
			status = glyphClosed
			description = "Out: " + timeutil.FormatDate(*e.ClockOut)
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       truncate(fmt.Sprintf("%s %s - %s", status, e.ProjectName(), timeutil.FormatDate(e.ClockIn)), maxOptionLabel),
			Description: truncate(description, maxOptionLabel),
			Value:       strconv.FormatUint(uint64(e.ID), 10),
		})
	}

	return &Reply{
		Content: "Select a time entry to edit:",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    idEditEntrySelect,
						Placeholder: "Select a time entry to edit",
						Options:     options,
					},
				},
			},
		},
		Ephemeral: true,
	}, nil
}

// EditEntrySelect opens the edit modal pre-filled with the entry's current
// timestamps. Ownership is checked here and again at submission.
func (h *CommandHandler) EditEntrySelect(ctx context.Context, inv Invocation, value string) (*Reply, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return ephemeral("Time entry not found."), nil
	}
	entry, err := h.entries.Get(uint(id))
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return ephemeral("Time entry not found."), nil
	}
	if entry.UserID != inv.UserID {
		return ephemeral("You can only edit your own time entries."), nil
	}

	token, err := h.flows.Create(ctx, flow.State{Kind: flow.KindEditEntry, EntityID: entry.ID, UserID: inv.UserID})
	if err != nil {
		return nil, err
	}

	clockOut := ""
	if entry.ClockOut != nil {
		clockOut = timeutil.FormatInput(*entry.ClockOut)
	}

	return &Reply{
		Modal: &Modal{
			CustomID: idEditEntryModal + token,
			Title:    truncate(fmt.Sprintf("Edit Time Entry - %s", entry.ProjectName()), 45),
			Inputs: []discordgo.TextInput{
				{
					CustomID: "clock_in",
					Label:    "Clock In Time (YYYY-MM-DD HH:MM:SS)",
					Style:    discordgo.TextInputShort,
					Value:    timeutil.FormatInput(entry.ClockIn),
					Required: true,
				},
				{
					CustomID: "clock_out",
					Label:    "Clock Out Time (YYYY-MM-DD HH:MM:SS)",
					Style:    discordgo.TextInputShort,
					Value:    clockOut,
					Required: false,
				},
			},
		},
	}, nil
}

// EditEntrySubmit validates and applies the rewritten timestamps.
func (h *CommandHandler) EditEntrySubmit(ctx context.Context, inv Invocation, token, clockInStr, clockOutStr string) (*Reply, error) {
	state, err := h.flows.Consume(ctx, token)
	if err != nil {
		return nil, err
	}
	if state == nil || state.Kind != flow.KindEditEntry || state.UserID != inv.UserID {
		return ephemeral(expiredMessage), nil
	}

	entry, err := h.entries.Get(state.EntityID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return ephemeral("Time entry not found."), nil
	}
	if entry.UserID != inv.UserID {
		return ephemeral("You can only edit your own time entries."), nil
	}

	clockIn, err := timeutil.ParseInput(clockInStr)
	if err != nil {
		return ephemeral("Invalid clock in time format. Please use YYYY-MM-DD HH:MM:SS"), nil
	}

	var clockOut *time.Time
	if strings.TrimSpace(clockOutStr) != "" {
		t, err := timeutil.ParseInput(clockOutStr)
		if err != nil {
			return ephemeral("Invalid clock out time format. Please use YYYY-MM-DD HH:MM:SS"), nil
		}
		if !t.After(clockIn) {
			return ephemeral("Clock out time must be after clock in time."), nil
		}
		clockOut = &t
	}

	if err := h.entries.Update(entry.ID, clockIn, clockOut); err != nil {
		return nil, err
	}

	out := "Not clocked out"
	if clockOut != nil {
		out = timeutil.FormatDate(*clockOut)
	}
	return ephemeral(fmt.Sprintf("Time entry updated successfully!\n**%s**\nIn: %s\nOut: %s",
		entry.ProjectName(), timeutil.FormatDate(clockIn), out)), nil
}
