package bot

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Benjafo/TimeClock/internal/flow"
	"github.com/Benjafo/TimeClock/internal/model"
	"github.com/Benjafo/TimeClock/internal/timeutil"
	"github.com/bwmarrin/discordgo"
)

// CreateProject creates a project and auto-assigns the creator. Admin only.
func (h *CommandHandler) CreateProject(ctx context.Context, inv Invocation, name string) (*Reply, error) {
	if _, err := h.users.GetOrCreate(inv.UserID, inv.Username); err != nil {
		return nil, err
	}
	if deny, err := h.requireAdmin(inv.UserID); deny != nil || err != nil {
		return deny, err
	}

	existing, err := h.projects.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return ephemeral(fmt.Sprintf("Project %q already exists.", name)), nil
	}

	if _, err := h.projects.Create(name, inv.UserID); err != nil {
		return nil, err
	}

	return &Reply{
		Content: fmt.Sprintf("Project **%s** has been created successfully! You have been automatically assigned to this project.", name),
	}, nil
}

// DeleteProject starts the delete flow with a project select menu. Admin only.
func (h *CommandHandler) DeleteProject(ctx context.Context, inv Invocation) (*Reply, error) {
	if _, err := h.users.GetOrCreate(inv.UserID, inv.Username); err != nil {
		return nil, err
	}
	if deny, err := h.requireAdmin(inv.UserID); deny != nil || err != nil {
		return deny, err
	}

	menu, empty, err := h.projectSelectMenu(idDeleteProjectSelect, "Select a project to delete")
	if err != nil {
		return nil, err
	}
	if empty {
		return ephemeral("No projects exist yet."), nil
	}

	return &Reply{
		Content:    "⚠️ Select a project to delete. This will also delete all associated time entries!",
		Components: []discordgo.MessageComponent{menu},
		Ephemeral:  true,
	}, nil
}

// DeleteProjectSelect turns the selection into a confirm/cancel prompt. The
// chosen project id is parked in the flow store behind the confirm token.
func (h *CommandHandler) DeleteProjectSelect(ctx context.Context, inv Invocation, value string) (*Reply, error) {
	if deny, err := h.requireAdmin(inv.UserID); deny != nil || err != nil {
		return deny, err
	}

	project, err := h.projectFromValue(value)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return ephemeral("Project not found."), nil
	}

	token, err := h.flows.Create(ctx, flow.State{Kind: flow.KindDeleteProject, EntityID: project.ID, UserID: inv.UserID})
	if err != nil {
		return nil, err
	}

	return &Reply{
		Update: true,
		Content: fmt.Sprintf("⚠️ Are you sure you want to delete project **%s**?\n\nThis will permanently delete all time entries associated with this project!",
			project.Name),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						CustomID: idDeleteProjectConfirm + token,
						Label:    "Confirm Delete",
						Style:    discordgo.DangerButton,
					},
					discordgo.Button{
						CustomID: idDeleteProjectCancel,
						Label:    "Cancel",
						Style:    discordgo.SecondaryButton,
					},
				},
			},
		},
	}, nil
}

// DeleteProjectConfirm performs the cascading delete. The project is
// re-fetched so a concurrent deletion degrades to "not found".
func (h *CommandHandler) DeleteProjectConfirm(ctx context.Context, inv Invocation, token string) (*Reply, error) {
	if deny, err := h.requireAdmin(inv.UserID); deny != nil || err != nil {
		return deny, err
	}

	state, err := h.flows.Consume(ctx, token)
	if err != nil {
		return nil, err
	}
	if state == nil || state.Kind != flow.KindDeleteProject || state.UserID != inv.UserID {
		return &Reply{Update: true, Content: expiredMessage}, nil
	}

	project, err := h.projects.GetByID(state.EntityID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return &Reply{Update: true, Content: "Project not found."}, nil
	}

	if err := h.projects.Delete(project.ID); err != nil {
		return nil, err
	}

	return &Reply{
		Update:  true,
		Content: fmt.Sprintf("Project **%s** has been deleted successfully.", project.Name),
	}, nil
}

func (h *CommandHandler) DeleteProjectCancel(ctx context.Context, inv Invocation) (*Reply, error) {
	return &Reply{Update: true, Content: "Project deletion cancelled."}, nil
}

// EditProject starts the rename flow with a project select menu. Admin only.
func (h *CommandHandler) EditProject(ctx context.Context, inv Invocation) (*Reply, error) {
	if _, err := h.users.GetOrCreate(inv.UserID, inv.Username); err != nil {
		return nil, err
	}
	if deny, err := h.requireAdmin(inv.UserID); deny != nil || err != nil {
		return deny, err
	}

	menu, empty, err := h.projectSelectMenu(idEditProjectSelect, "Select a project to edit")
	if err != nil {
		return nil, err
	}
	if empty {
		return ephemeral("No projects exist yet."), nil
	}

	return &Reply{
		Content:    "Select a project to edit:",
		Components: []discordgo.MessageComponent{menu},
		Ephemeral:  true,
	}, nil
}

// EditProjectSelect opens the rename modal pre-filled with the current name.
func (h *CommandHandler) EditProjectSelect(ctx context.Context, inv Invocation, value string) (*Reply, error) {
	if deny, err := h.requireAdmin(inv.UserID); deny != nil || err != nil {
		return deny, err
	}

	project, err := h.projectFromValue(value)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return ephemeral("Project not found."), nil
	}

	token, err := h.flows.Create(ctx, flow.State{Kind: flow.KindEditProject, EntityID: project.ID, UserID: inv.UserID})
	if err != nil {
		return nil, err
	}

	return &Reply{
		Modal: &Modal{
			CustomID: idEditProjectModal + token,
			Title:    "Edit Project",
			Inputs: []discordgo.TextInput{
				{
					CustomID: "project_name",
					Label:    "New Project Name",
					Style:    discordgo.TextInputShort,
					Value:    project.Name,
					Required: true,
				},
			},
		},
	}, nil
}

// EditProjectSubmit applies the rename, rejecting a name already used by a
// different project.
func (h *CommandHandler) EditProjectSubmit(ctx context.Context, inv Invocation, token, newName string) (*Reply, error) {
	if deny, err := h.requireAdmin(inv.UserID); deny != nil || err != nil {
		return deny, err
	}

	state, err := h.flows.Consume(ctx, token)
	if err != nil {
		return nil, err
	}
	if state == nil || state.Kind != flow.KindEditProject || state.UserID != inv.UserID {
		return ephemeral(expiredMessage), nil
	}

	project, err := h.projects.GetByID(state.EntityID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return ephemeral("Project not found."), nil
	}

	existing, err := h.projects.GetByName(newName)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != project.ID {
		return ephemeral(fmt.Sprintf("A project named %q already exists.", newName)), nil
	}

	if err := h.projects.Rename(project.Name, newName); err != nil {
		return nil, err
	}

	return &Reply{
		Content: fmt.Sprintf("Project renamed from **%s** to **%s**.", project.Name, newName),
	}, nil
}

// projectSelectMenu builds the select menu shared by the delete and edit
// flows. empty reports that there are no projects at all.
func (h *CommandHandler) projectSelectMenu(customID, placeholder string) (discordgo.MessageComponent, bool, error) {
	projects, err := h.projects.List()
	if err != nil {
		return nil, false, err
	}
	if len(projects) == 0 {
		return nil, true, nil
	}

	options := make([]discordgo.SelectMenuOption, 0, len(projects))
	for _, p := range projects {
		if len(options) == maxSelectOptions {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       truncate(p.Name, maxOptionLabel),
			Description: "Created " + timeutil.FormatDateOnly(p.CreatedAt),
			Value:       strconv.FormatUint(uint64(p.ID), 10),
		})
	}

	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    customID,
				Placeholder: placeholder,
				Options:     options,
			},
		},
	}, false, nil
}

// projectFromValue resolves a select menu value back to a project, returning
// nil when it no longer exists.
func (h *CommandHandler) projectFromValue(value string) (*model.Project, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, nil
	}
	return h.projects.GetByID(uint(id))
}
