package bot

import (
	"context"
	"fmt"

	"github.com/Benjafo/TimeClock/internal/model"
	"github.com/Benjafo/TimeClock/internal/timeutil"
)

// ClockIn opens a time entry on the named project. A user can hold at most
// one open entry system-wide, across all projects.
func (h *CommandHandler) ClockIn(ctx context.Context, inv Invocation, projectName string) (*Reply, error) {
	if _, err := h.users.GetOrCreate(inv.UserID, inv.Username); err != nil {
		return nil, err
	}

	project, err := h.projects.GetByName(projectName)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return ephemeral(fmt.Sprintf("Project %q does not exist.", projectName)), nil
	}

	assigned, err := h.projects.IsAssigned(inv.UserID, project.ID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return ephemeral(fmt.Sprintf("You are not assigned to project %q. Please contact an administrator.", projectName)), nil
	}

	open, err := h.entries.Open(inv.UserID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		// Re-fetch with the project joined so the message can name it.
		withProject, err := h.entries.Get(open.ID)
		if err != nil {
			return nil, err
		}
		return ephemeral(fmt.Sprintf("You are already clocked in to project %q. Please clock out first.", withProject.ProjectName())), nil
	}

	entry, err := h.entries.ClockIn(inv.UserID, project.ID)
	if err != nil {
		return nil, err
	}

	return &Reply{
		Content: fmt.Sprintf("Successfully clocked in to project **%s** at %s.", projectName, timeutil.FormatClock(entry.ClockIn)),
	}, nil
}

// ClockOut closes an open entry. With a project name it closes the entry on
// that exact project; without one it closes the user's single open entry.
func (h *CommandHandler) ClockOut(ctx context.Context, inv Invocation, projectName string) (*Reply, error) {
	if _, err := h.users.GetOrCreate(inv.UserID, inv.Username); err != nil {
		return nil, err
	}

	var entry *model.TimeEntry
	var name string

	if projectName != "" {
		project, err := h.projects.GetByName(projectName)
		if err != nil {
			return nil, err
		}
		if project == nil {
			return ephemeral(fmt.Sprintf("Project %q does not exist.", projectName)), nil
		}
		entry, err = h.entries.OpenForProject(inv.UserID, project.ID)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return ephemeral(fmt.Sprintf("You are not currently clocked in to project %q.", projectName)), nil
		}
		name = project.Name
	} else {
		open, err := h.entries.Open(inv.UserID)
		if err != nil {
			return nil, err
		}
		if open == nil {
			return ephemeral("You are not currently clocked in to any project."), nil
		}
		withProject, err := h.entries.Get(open.ID)
		if err != nil {
			return nil, err
		}
		entry = withProject
		name = withProject.ProjectName()
	}

	out, err := h.entries.ClockOut(entry.ID)
	if err != nil {
		return nil, err
	}

	hours, minutes := timeutil.SplitDuration(out.Sub(entry.ClockIn))
	return &Reply{
		Content: fmt.Sprintf("Successfully clocked out from project **%s** at %s.\nTime worked: %s",
			name, timeutil.FormatClock(out), timeutil.FormatDuration(hours, minutes)),
	}, nil
}
