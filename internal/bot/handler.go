package bot

import (
	"time"

	"github.com/Benjafo/TimeClock/internal/flow"
	"github.com/Benjafo/TimeClock/internal/model"
	"github.com/bwmarrin/discordgo"
)

// Storage dependencies of the command handlers. The gorm-backed services in
// internal/service satisfy these; tests may substitute anything else.

type UserStore interface {
	GetOrCreate(discordID, username string) (*model.User, error)
	IsAdmin(discordID string) (bool, error)
}

type ProjectStore interface {
	GetByName(name string) (*model.Project, error)
	GetByID(id uint) (*model.Project, error)
	List() ([]model.Project, error)
	Create(name, creatorID string) (*model.Project, error)
	Rename(oldName, newName string) error
	Delete(id uint) error
	IsAssigned(userID string, projectID uint) (bool, error)
}

type EntryStore interface {
	Open(userID string) (*model.TimeEntry, error)
	OpenForProject(userID string, projectID uint) (*model.TimeEntry, error)
	ClockIn(userID string, projectID uint) (*model.TimeEntry, error)
	ClockOut(entryID uint) (time.Time, error)
	List(userID string, projectID *uint, limit int) ([]model.TimeEntry, error)
	Get(id uint) (*model.TimeEntry, error)
	Update(id uint, clockIn time.Time, clockOut *time.Time) error
}

// Invocation is the identity behind an interaction.
type Invocation struct {
	UserID   string
	Username string
}

// Reply is the payload a handler wants sent back. Exactly one shape applies:
// a modal when Modal is set, an edit of the originating message when Update
// is set, otherwise a new message.
type Reply struct {
	Content    string
	Embed      *discordgo.MessageEmbed
	Components []discordgo.MessageComponent
	Ephemeral  bool
	Update     bool
	Modal      *Modal
}

type Modal struct {
	CustomID string
	Title    string
	Inputs   []discordgo.TextInput
}

// Component custom IDs. The confirm/modal IDs carry a flow token after the
// colon.
const (
	idDeleteProjectSelect  = "delete_project_select"
	idDeleteProjectConfirm = "delete_project_confirm:"
	idDeleteProjectCancel  = "delete_project_cancel"
	idEditProjectSelect    = "edit_project_select"
	idEditProjectModal     = "edit_project_modal:"
	idEditEntrySelect      = "edit_entry_select"
	idEditEntryModal       = "edit_entry_modal:"
)

const (
	maxSelectOptions = 25
	maxOptionLabel   = 100
	editListLimit    = 20
	reportListLimit  = 50
	reportDetail     = 10
)

const expiredMessage = "This action has expired. Please run the command again."

// CommandHandler implements one method per user-facing action. Methods return
// the reply payload; only the dispatcher talks to Discord.
type CommandHandler struct {
	users    UserStore
	projects ProjectStore
	entries  EntryStore
	flows    flow.Store
}

func NewCommandHandler(users UserStore, projects ProjectStore, entries EntryStore, flows flow.Store) *CommandHandler {
	return &CommandHandler{
		users:    users,
		projects: projects,
		entries:  entries,
		flows:    flows,
	}
}

// requireAdmin is the shared permission gate for project-management actions.
// It returns a denial reply for non-admins and nil for admins; it must run
// before any mutating operation.
func (h *CommandHandler) requireAdmin(userID string) (*Reply, error) {
	isAdmin, err := h.users.IsAdmin(userID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return ephemeral("You do not have permission to use this command. Only administrators can use this command."), nil
	}
	return nil, nil
}

func ephemeral(content string) *Reply {
	return &Reply{Content: content, Ephemeral: true}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
