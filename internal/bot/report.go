package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Benjafo/TimeClock/internal/service"
	"github.com/Benjafo/TimeClock/internal/timeutil"
	"github.com/bwmarrin/discordgo"
)

// Report renders a time summary embed for the invoking user, optionally
// filtered to one project. Totals cover completed entries only.
func (h *CommandHandler) Report(ctx context.Context, inv Invocation, projectName string) (*Reply, error) {
	if _, err := h.users.GetOrCreate(inv.UserID, inv.Username); err != nil {
		return nil, err
	}

	var projectID *uint
	if projectName != "" {
		project, err := h.projects.GetByName(projectName)
		if err != nil {
			return nil, err
		}
		if project == nil {
			return ephemeral(fmt.Sprintf("Project %q does not exist.", projectName)), nil
		}
		projectID = &project.ID
	}

	entries, err := h.entries.List(inv.UserID, projectID, reportListLimit)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		if projectName != "" {
			return ephemeral(fmt.Sprintf("No time entries found for project %q.", projectName)), nil
		}
		return ephemeral("No time entries found."), nil
	}

	completed := 0
	for _, e := range entries {
		if e.ClockOut != nil {
			completed++
		}
	}
	hours, minutes := service.TotalDuration(entries)

	description := "All Projects"
	if projectName != "" {
		description = fmt.Sprintf("Project: **%s**", projectName)
	}

	embed := &discordgo.MessageEmbed{
		Color:       0x0099FF,
		Title:       fmt.Sprintf("Time Report for %s", inv.Username),
		Description: description,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Total Time", Value: timeutil.FormatDuration(hours, minutes), Inline: true},
			{Name: "Total Entries", Value: strconv.Itoa(len(entries)), Inline: true},
			{Name: "Completed", Value: strconv.Itoa(completed), Inline: true},
		},
	}

	var detail strings.Builder
	for i, e := range entries {
		if i == reportDetail {
			break
		}
		status := glyphOpen
		clockOut := "Still clocked in"
		duration := ""
		if e.ClockOut != nil {
			status = glyphClosed
			clockOut = timeutil.FormatDate(*e.ClockOut)
			dh, dm := timeutil.SplitDuration(e.ClockOut.Sub(e.ClockIn))
			duration = fmt.Sprintf(" (%s)", timeutil.FormatDuration(dh, dm))
		}
		fmt.Fprintf(&detail, "%s **%s**\n", status, e.ProjectName())
		fmt.Fprintf(&detail, "   In: %s\n", timeutil.FormatDate(e.ClockIn))
		fmt.Fprintf(&detail, "   Out: %s%s\n\n", clockOut, duration)
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Recent Entries", Value: detail.String()})

	if len(entries) > reportDetail {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Showing %d of %d entries", reportDetail, len(entries)),
		}
	}

	return &Reply{Embed: embed, Ephemeral: true}, nil
}

// ProjectChoices backs the project-name autocomplete on /clockin, /clockout
// and /report: case-insensitive contains, capped at 25.
func (h *CommandHandler) ProjectChoices(partial string) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	projects, err := h.projects.List()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(partial)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxSelectOptions)
	for _, p := range projects {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: p.Name, Value: p.Name})
		if len(choices) == maxSelectOptions {
			break
		}
	}
	return choices, nil
}
