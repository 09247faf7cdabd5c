package bot_test

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Benjafo/TimeClock/internal/bot"
	"github.com/Benjafo/TimeClock/internal/flow"
	"github.com/Benjafo/TimeClock/internal/model"
	"github.com/Benjafo/TimeClock/internal/service"
	"github.com/bwmarrin/discordgo"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	handler  *bot.CommandHandler
	users    *service.UserService
	projects *service.ProjectService
	entries  *service.TimeEntryService
	flows    *flow.MemoryStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Project{}, &model.Assignment{}, &model.TimeEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := &fixture{
		users:    service.NewUserService(db),
		projects: service.NewProjectService(db),
		entries:  service.NewTimeEntryService(db),
		flows:    flow.NewMemoryStore(),
	}
	f.handler = bot.NewCommandHandler(f.users, f.projects, f.entries, f.flows)
	return f
}

func (f *fixture) admin(t *testing.T, id, name string) bot.Invocation {
	t.Helper()
	if _, err := f.users.GetOrCreate(id, name); err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if err := f.users.SetAdmin(id, true); err != nil {
		t.Fatalf("SetAdmin: %v", err)
	}
	return bot.Invocation{UserID: id, Username: name}
}

// closedEntry creates an entry with fixed timestamps.
func (f *fixture) closedEntry(t *testing.T, userID string, projectID uint, in time.Time, d time.Duration) *model.TimeEntry {
	t.Helper()
	entry, err := f.entries.ClockIn(userID, projectID)
	if err != nil {
		t.Fatalf("ClockIn: %v", err)
	}
	out := in.Add(d)
	if err := f.entries.Update(entry.ID, in, &out); err != nil {
		t.Fatalf("Update: %v", err)
	}
	return entry
}

func TestClockCycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.admin(t, "u1", "alice")

	reply, err := f.handler.CreateProject(ctx, inv, "Infra")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if !strings.Contains(reply.Content, "created successfully") {
		t.Fatalf("CreateProject reply: %q", reply.Content)
	}

	// Creator is auto-assigned, so the clock in goes through.
	reply, err = f.handler.ClockIn(ctx, inv, "Infra")
	if err != nil {
		t.Fatalf("ClockIn: %v", err)
	}
	if !strings.Contains(reply.Content, "Successfully clocked in to project **Infra**") {
		t.Fatalf("ClockIn reply: %q", reply.Content)
	}

	reply, err = f.handler.ClockIn(ctx, inv, "Infra")
	if err != nil {
		t.Fatalf("ClockIn again: %v", err)
	}
	if reply.Content != `You are already clocked in to project "Infra". Please clock out first.` {
		t.Fatalf("double clock in reply: %q", reply.Content)
	}
	if !reply.Ephemeral {
		t.Error("rejection is not ephemeral")
	}

	reply, err = f.handler.ClockOut(ctx, inv, "Infra")
	if err != nil {
		t.Fatalf("ClockOut: %v", err)
	}
	if !strings.Contains(reply.Content, "Successfully clocked out from project **Infra**") ||
		!strings.Contains(reply.Content, "Time worked:") {
		t.Fatalf("ClockOut reply: %q", reply.Content)
	}

	if open, _ := f.entries.Open("u1"); open != nil {
		t.Error("entry still open after the cycle")
	}
}

func TestClockInSingleOpenEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.admin(t, "u1", "alice")

	f.handler.CreateProject(ctx, inv, "Infra")
	f.handler.CreateProject(ctx, inv, "Docs")

	if _, err := f.handler.ClockIn(ctx, inv, "Infra"); err != nil {
		t.Fatalf("ClockIn: %v", err)
	}
	// One open entry system-wide: a second project is also refused, and the
	// refusal names the project currently holding the open entry.
	reply, err := f.handler.ClockIn(ctx, inv, "Docs")
	if err != nil {
		t.Fatalf("ClockIn second project: %v", err)
	}
	if reply.Content != `You are already clocked in to project "Infra". Please clock out first.` {
		t.Fatalf("cross-project reply: %q", reply.Content)
	}
}

func TestClockInUnknownProject(t *testing.T) {
	f := newFixture(t)
	inv := f.admin(t, "u1", "alice")

	reply, err := f.handler.ClockIn(context.Background(), inv, "Nope")
	if err != nil {
		t.Fatalf("ClockIn: %v", err)
	}
	if reply.Content != `Project "Nope" does not exist.` {
		t.Fatalf("reply: %q", reply.Content)
	}
}

func TestClockInRequiresAssignment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.admin(t, "u1", "alice")
	f.handler.CreateProject(ctx, admin, "Infra")

	outsider := bot.Invocation{UserID: "u2", Username: "bob"}
	reply, err := f.handler.ClockIn(ctx, outsider, "Infra")
	if err != nil {
		t.Fatalf("ClockIn: %v", err)
	}
	if reply.Content != `You are not assigned to project "Infra". Please contact an administrator.` {
		t.Fatalf("reply: %q", reply.Content)
	}

	// Assignment unlocks it.
	project, _ := f.projects.GetByName("Infra")
	if err := f.projects.Assign("u2", project.ID); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	reply, err = f.handler.ClockIn(ctx, outsider, "Infra")
	if err != nil {
		t.Fatalf("ClockIn after assign: %v", err)
	}
	if !strings.Contains(reply.Content, "Successfully clocked in") {
		t.Fatalf("reply: %q", reply.Content)
	}
}

func TestClockOutVariants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.admin(t, "u1", "alice")
	f.handler.CreateProject(ctx, inv, "Infra")

	reply, err := f.handler.ClockOut(ctx, inv, "")
	if err != nil {
		t.Fatalf("ClockOut: %v", err)
	}
	if reply.Content != "You are not currently clocked in to any project." {
		t.Fatalf("no open entry reply: %q", reply.Content)
	}

	reply, err = f.handler.ClockOut(ctx, inv, "Infra")
	if err != nil {
		t.Fatalf("ClockOut named: %v", err)
	}
	if reply.Content != `You are not currently clocked in to project "Infra".` {
		t.Fatalf("named no open entry reply: %q", reply.Content)
	}

	reply, err = f.handler.ClockOut(ctx, inv, "Nope")
	if err != nil {
		t.Fatalf("ClockOut unknown: %v", err)
	}
	if reply.Content != `Project "Nope" does not exist.` {
		t.Fatalf("unknown project reply: %q", reply.Content)
	}

	// The bare variant resolves the single open entry and names its project.
	f.handler.ClockIn(ctx, inv, "Infra")
	reply, err = f.handler.ClockOut(ctx, inv, "")
	if err != nil {
		t.Fatalf("ClockOut open: %v", err)
	}
	if !strings.Contains(reply.Content, "Successfully clocked out from project **Infra**") {
		t.Fatalf("reply: %q", reply.Content)
	}
}

func TestAdminGate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := bot.Invocation{UserID: "u2", Username: "bob"}
	const denial = "You do not have permission to use this command. Only administrators can use this command."

	reply, err := f.handler.CreateProject(ctx, inv, "Infra")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if reply.Content != denial || !reply.Ephemeral {
		t.Fatalf("CreateProject reply: %+v", reply)
	}
	if p, _ := f.projects.GetByName("Infra"); p != nil {
		t.Error("denied create still inserted the project")
	}

	if reply, _ := f.handler.DeleteProject(ctx, inv); reply.Content != denial {
		t.Errorf("DeleteProject reply: %q", reply.Content)
	}
	if reply, _ := f.handler.EditProject(ctx, inv); reply.Content != denial {
		t.Errorf("EditProject reply: %q", reply.Content)
	}
	// Component steps re-check, so a stale select cannot bypass the gate.
	if reply, _ := f.handler.DeleteProjectSelect(ctx, inv, "1"); reply.Content != denial {
		t.Errorf("DeleteProjectSelect reply: %q", reply.Content)
	}
	if reply, _ := f.handler.DeleteProjectConfirm(ctx, inv, "token"); reply.Content != denial {
		t.Errorf("DeleteProjectConfirm reply: %q", reply.Content)
	}
}

func TestCreateProjectDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.admin(t, "u1", "alice")

	f.handler.CreateProject(ctx, inv, "Infra")
	reply, err := f.handler.CreateProject(ctx, inv, "Infra")
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if reply.Content != `Project "Infra" already exists.` {
		t.Fatalf("reply: %q", reply.Content)
	}
}

// confirmToken digs the flow token out of the confirm button.
func confirmToken(t *testing.T, reply *bot.Reply) string {
	t.Helper()
	if len(reply.Components) == 0 {
		t.Fatalf("reply has no components: %+v", reply)
	}
	row, ok := reply.Components[0].(discordgo.ActionsRow)
	if !ok {
		t.Fatalf("component is %T", reply.Components[0])
	}
	button, ok := row.Components[0].(discordgo.Button)
	if !ok {
		t.Fatalf("row component is %T", row.Components[0])
	}
	token := strings.TrimPrefix(button.CustomID, "delete_project_confirm:")
	if token == button.CustomID || token == "" {
		t.Fatalf("unexpected button id %q", button.CustomID)
	}
	return token
}

func TestDeleteProjectFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.admin(t, "u1", "alice")

	f.handler.CreateProject(ctx, inv, "Infra")
	project, _ := f.projects.GetByName("Infra")
	entry := f.closedEntry(t, "u1", project.ID, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), time.Hour)

	reply, err := f.handler.DeleteProject(ctx, inv)
	if err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if len(reply.Components) == 0 || !reply.Ephemeral {
		t.Fatalf("DeleteProject reply: %+v", reply)
	}

	reply, err = f.handler.DeleteProjectSelect(ctx, inv, fmt.Sprint(project.ID))
	if err != nil {
		t.Fatalf("DeleteProjectSelect: %v", err)
	}
	if !reply.Update || !strings.Contains(reply.Content, "Are you sure you want to delete project **Infra**") {
		t.Fatalf("DeleteProjectSelect reply: %+v", reply)
	}
	token := confirmToken(t, reply)

	reply, err = f.handler.DeleteProjectConfirm(ctx, inv, token)
	if err != nil {
		t.Fatalf("DeleteProjectConfirm: %v", err)
	}
	if !reply.Update || reply.Content != "Project **Infra** has been deleted successfully." {
		t.Fatalf("DeleteProjectConfirm reply: %+v", reply)
	}
	if p, _ := f.projects.GetByID(project.ID); p != nil {
		t.Error("project survived")
	}
	if e, _ := f.entries.Get(entry.ID); e != nil {
		t.Error("entry survived the cascade")
	}

	// The token was consumed by the confirm; replaying it is refused.
	reply, err = f.handler.DeleteProjectConfirm(ctx, inv, token)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if reply.Content != "This action has expired. Please run the command again." {
		t.Fatalf("replay reply: %q", reply.Content)
	}
}

func TestDeleteProjectCancel(t *testing.T) {
	f := newFixture(t)
	inv := f.admin(t, "u1", "alice")

	reply, err := f.handler.DeleteProjectCancel(context.Background(), inv)
	if err != nil {
		t.Fatalf("DeleteProjectCancel: %v", err)
	}
	if !reply.Update || reply.Content != "Project deletion cancelled." {
		t.Fatalf("reply: %+v", reply)
	}
}

func TestDeleteProjectTokenForeignUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.admin(t, "u1", "alice")
	bob := f.admin(t, "u2", "bob")

	f.handler.CreateProject(ctx, alice, "Infra")
	project, _ := f.projects.GetByName("Infra")

	reply, _ := f.handler.DeleteProjectSelect(ctx, alice, fmt.Sprint(project.ID))
	token := confirmToken(t, reply)

	// Even another admin cannot redeem a token minted for someone else.
	reply, err := f.handler.DeleteProjectConfirm(ctx, bob, token)
	if err != nil {
		t.Fatalf("DeleteProjectConfirm: %v", err)
	}
	if reply.Content != "This action has expired. Please run the command again." {
		t.Fatalf("reply: %q", reply.Content)
	}
	if p, _ := f.projects.GetByID(project.ID); p == nil {
		t.Error("project deleted through a foreign token")
	}
}

func TestDeleteProjectConcurrentlyRemoved(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.admin(t, "u1", "alice")

	f.handler.CreateProject(ctx, inv, "Infra")
	project, _ := f.projects.GetByName("Infra")
	reply, _ := f.handler.DeleteProjectSelect(ctx, inv, fmt.Sprint(project.ID))
	token := confirmToken(t, reply)

	// Someone else deletes it between the select and the confirm.
	if err := f.projects.Delete(project.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	reply, err := f.handler.DeleteProjectConfirm(ctx, inv, token)
	if err != nil {
		t.Fatalf("DeleteProjectConfirm: %v", err)
	}
	if reply.Content != "Project not found." {
		t.Fatalf("reply: %q", reply.Content)
	}
}

func TestEditProjectFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.admin(t, "u1", "alice")

	f.handler.CreateProject(ctx, inv, "Alpha")
	f.handler.CreateProject(ctx, inv, "Beta")
	alpha, _ := f.projects.GetByName("Alpha")

	reply, err := f.handler.EditProjectSelect(ctx, inv, fmt.Sprint(alpha.ID))
	if err != nil {
		t.Fatalf("EditProjectSelect: %v", err)
	}
	if reply.Modal == nil {
		t.Fatalf("expected a modal, got %+v", reply)
	}
	if reply.Modal.Inputs[0].Value != "Alpha" {
		t.Errorf("modal prefill = %q", reply.Modal.Inputs[0].Value)
	}
	token := strings.TrimPrefix(reply.Modal.CustomID, "edit_project_modal:")

	// Renaming onto another project's name is rejected and nothing changes.
	reply, err = f.handler.EditProjectSubmit(ctx, inv, token, "Beta")
	if err != nil {
		t.Fatalf("EditProjectSubmit: %v", err)
	}
	if reply.Content != `A project named "Beta" already exists.` {
		t.Fatalf("collision reply: %q", reply.Content)
	}
	if p, _ := f.projects.GetByName("Alpha"); p == nil {
		t.Error("Alpha renamed despite the rejection")
	}

	// Fresh token, valid rename.
	reply, _ = f.handler.EditProjectSelect(ctx, inv, fmt.Sprint(alpha.ID))
	token = strings.TrimPrefix(reply.Modal.CustomID, "edit_project_modal:")
	reply, err = f.handler.EditProjectSubmit(ctx, inv, token, "Gamma")
	if err != nil {
		t.Fatalf("EditProjectSubmit: %v", err)
	}
	if reply.Content != "Project renamed from **Alpha** to **Gamma**." {
		t.Fatalf("rename reply: %q", reply.Content)
	}
	if p, _ := f.projects.GetByName("Gamma"); p == nil || p.ID != alpha.ID {
		t.Error("rename did not land")
	}

	// The token went with the first submission.
	reply, err = f.handler.EditProjectSubmit(ctx, inv, token, "Delta")
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if reply.Content != "This action has expired. Please run the command again." {
		t.Fatalf("replay reply: %q", reply.Content)
	}
}

func TestEditEntriesEmpty(t *testing.T) {
	f := newFixture(t)
	inv := f.admin(t, "u1", "alice")

	reply, err := f.handler.EditEntries(context.Background(), inv)
	if err != nil {
		t.Fatalf("EditEntries: %v", err)
	}
	if reply.Content != "You have no time entries to edit." {
		t.Fatalf("reply: %q", reply.Content)
	}
}

func TestEditEntryOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.admin(t, "u1", "alice")
	bob := bot.Invocation{UserID: "u2", Username: "bob"}
	f.users.GetOrCreate("u2", "bob")

	f.handler.CreateProject(ctx, alice, "Infra")
	project, _ := f.projects.GetByName("Infra")
	entry := f.closedEntry(t, "u1", project.ID, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), time.Hour)

	// Select path.
	reply, err := f.handler.EditEntrySelect(ctx, bob, fmt.Sprint(entry.ID))
	if err != nil {
		t.Fatalf("EditEntrySelect: %v", err)
	}
	if reply.Content != "You can only edit your own time entries." {
		t.Fatalf("select reply: %q", reply.Content)
	}

	// Submit path: even a token bound to bob cannot touch alice's entry.
	token, err := f.flows.Create(ctx, flow.State{Kind: flow.KindEditEntry, EntityID: entry.ID, UserID: "u2"})
	if err != nil {
		t.Fatalf("flows.Create: %v", err)
	}
	reply, err = f.handler.EditEntrySubmit(ctx, bob, token, "2024-03-01 08:00:00", "")
	if err != nil {
		t.Fatalf("EditEntrySubmit: %v", err)
	}
	if reply.Content != "You can only edit your own time entries." {
		t.Fatalf("submit reply: %q", reply.Content)
	}
	got, _ := f.entries.Get(entry.ID)
	if !got.ClockIn.Equal(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)) {
		t.Error("foreign submit modified the entry")
	}
}

func TestEditEntrySubmitValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.admin(t, "u1", "alice")

	f.handler.CreateProject(ctx, inv, "Infra")
	project, _ := f.projects.GetByName("Infra")
	entry := f.closedEntry(t, "u1", project.ID, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), time.Hour)

	submit := func(clockIn, clockOut string) *bot.Reply {
		t.Helper()
		token, err := f.flows.Create(ctx, flow.State{Kind: flow.KindEditEntry, EntityID: entry.ID, UserID: "u1"})
		if err != nil {
			t.Fatalf("flows.Create: %v", err)
		}
		reply, err := f.handler.EditEntrySubmit(ctx, inv, token, clockIn, clockOut)
		if err != nil {
			t.Fatalf("EditEntrySubmit: %v", err)
		}
		return reply
	}

	if reply := submit("yesterday", ""); reply.Content != "Invalid clock in time format. Please use YYYY-MM-DD HH:MM:SS" {
		t.Errorf("bad clock in reply: %q", reply.Content)
	}
	if reply := submit("2024-03-01 09:00:00", "later"); reply.Content != "Invalid clock out time format. Please use YYYY-MM-DD HH:MM:SS" {
		t.Errorf("bad clock out reply: %q", reply.Content)
	}
	if reply := submit("2024-03-01 09:00:00", "2024-03-01 09:00:00"); reply.Content != "Clock out time must be after clock in time." {
		t.Errorf("equal timestamps reply: %q", reply.Content)
	}
	if reply := submit("2024-03-01 09:00:00", "2024-03-01 08:00:00"); reply.Content != "Clock out time must be after clock in time." {
		t.Errorf("inverted timestamps reply: %q", reply.Content)
	}

	reply := submit("2024-03-02 10:00:00", "2024-03-02 12:30:00")
	if !strings.Contains(reply.Content, "Time entry updated successfully!") {
		t.Fatalf("success reply: %q", reply.Content)
	}
	got, _ := f.entries.Get(entry.ID)
	if !got.ClockIn.Equal(time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("clock in = %v", got.ClockIn)
	}
	if got.ClockOut == nil || !got.ClockOut.Equal(time.Date(2024, 3, 2, 12, 30, 0, 0, time.UTC)) {
		t.Errorf("clock out = %v", got.ClockOut)
	}

	// Empty clock out reopens the entry.
	reply = submit("2024-03-02 10:00:00", "  ")
	if !strings.Contains(reply.Content, "Not clocked out") {
		t.Fatalf("reopen reply: %q", reply.Content)
	}
	got, _ = f.entries.Get(entry.ID)
	if !got.IsOpen() {
		t.Error("entry not reopened")
	}
}

func TestReport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.admin(t, "u1", "alice")

	reply, err := f.handler.Report(ctx, inv, "")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if reply.Content != "No time entries found." {
		t.Fatalf("empty report reply: %q", reply.Content)
	}

	reply, _ = f.handler.Report(ctx, inv, "Nope")
	if reply.Content != `Project "Nope" does not exist.` {
		t.Fatalf("unknown project reply: %q", reply.Content)
	}

	f.handler.CreateProject(ctx, inv, "Infra")
	project, _ := f.projects.GetByName("Infra")
	f.closedEntry(t, "u1", project.ID, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), 2*time.Hour)
	f.handler.ClockIn(ctx, inv, "Infra") // one open entry

	reply, err = f.handler.Report(ctx, inv, "Infra")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if reply.Embed == nil {
		t.Fatalf("expected an embed, got %+v", reply)
	}
	if reply.Embed.Title != "Time Report for alice" {
		t.Errorf("title = %q", reply.Embed.Title)
	}
	if reply.Embed.Description != "Project: **Infra**" {
		t.Errorf("description = %q", reply.Embed.Description)
	}
	fields := map[string]string{}
	for _, field := range reply.Embed.Fields {
		fields[field.Name] = field.Value
	}
	// The open entry counts toward the total count but not the worked time.
	if fields["Total Time"] != "2 hours" {
		t.Errorf("Total Time = %q", fields["Total Time"])
	}
	if fields["Total Entries"] != "2" {
		t.Errorf("Total Entries = %q", fields["Total Entries"])
	}
	if fields["Completed"] != "1" {
		t.Errorf("Completed = %q", fields["Completed"])
	}
	if !strings.Contains(fields["Recent Entries"], "Still clocked in") {
		t.Errorf("Recent Entries = %q", fields["Recent Entries"])
	}
	if reply.Embed.Footer != nil {
		t.Error("footer present with only 2 entries")
	}
}

func TestReportFooter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.admin(t, "u1", "alice")
	f.handler.CreateProject(ctx, inv, "Infra")
	project, _ := f.projects.GetByName("Infra")

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		f.closedEntry(t, "u1", project.ID, base.Add(time.Duration(i)*time.Hour), 30*time.Minute)
	}

	reply, err := f.handler.Report(ctx, inv, "")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if reply.Embed.Footer == nil || reply.Embed.Footer.Text != "Showing 10 of 12 entries" {
		t.Fatalf("footer = %+v", reply.Embed.Footer)
	}
}

func TestProjectChoices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.admin(t, "u1", "alice")

	f.handler.CreateProject(ctx, inv, "Alpha")
	f.handler.CreateProject(ctx, inv, "beta")
	f.handler.CreateProject(ctx, inv, "Gamma")

	choices, err := f.handler.ProjectChoices("mm")
	if err != nil {
		t.Fatalf("ProjectChoices: %v", err)
	}
	if len(choices) != 1 || choices[0].Name != "Gamma" {
		t.Fatalf("choices = %+v", choices)
	}

	// Matching is case-insensitive even though names are case-sensitive.
	choices, _ = f.handler.ProjectChoices("ALPHA")
	if len(choices) != 1 || choices[0].Name != "Alpha" {
		t.Fatalf("choices = %+v", choices)
	}

	choices, _ = f.handler.ProjectChoices("")
	if len(choices) != 3 {
		t.Fatalf("unfiltered choices = %d", len(choices))
	}
}

func TestProjectChoicesCap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv := f.admin(t, "u1", "alice")

	for i := 0; i < 30; i++ {
		f.handler.CreateProject(ctx, inv, fmt.Sprintf("Project %02d", i))
	}
	choices, err := f.handler.ProjectChoices("project")
	if err != nil {
		t.Fatalf("ProjectChoices: %v", err)
	}
	if len(choices) != 25 {
		t.Fatalf("choices = %d, want 25", len(choices))
	}
}
