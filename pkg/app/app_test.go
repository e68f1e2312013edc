package app

import (
	"testing"
	"time"

	"github.com/cyclehq/cycle/pkg/store"
	"github.com/cyclehq/cycle/pkg/task"
)

func newTestService() (*Service, *store.Memory) {
	m := store.NewMemory()
	return New(m), m
}

func TestAddEntryTrimsAndRejectsBlank(t *testing.T) {
	s, m := newTestService()

	if _, ok := s.AddEntry("   "); ok {
		t.Fatal("blank text must be a silent no-op")
	}
	if got := len(m.LoadEntries()); got != 0 {
		t.Fatalf("nothing should persist, found %d entries", got)
	}

	e, ok := s.AddEntry("  went for a run  ", "health")
	if !ok {
		t.Fatal("expected the entry")
	}
	if e.Text != "went for a run" {
		t.Fatalf("text = %q", e.Text)
	}
	if got := m.LoadEntries(); len(got) != 1 || got[0].ID != e.ID {
		t.Fatalf("persisted entries = %v", got)
	}
}

func TestUpdateAndDeleteEntry(t *testing.T) {
	s, m := newTestService()

	e, _ := s.AddEntry("first draft", "work")
	if err := s.UpdateEntry(e.ID, "second draft", []string{"work", "wins"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := s.FindEntry(e.ID.String()[:8])
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Text != "second draft" || !got.HasTag("wins") {
		t.Fatalf("entry = %+v", got)
	}

	if err := s.DeleteEntry(e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := m.LoadEntries(); len(got) != 0 {
		t.Fatalf("persisted entries = %v", got)
	}
	if err := s.DeleteEntry(e.ID); err == nil {
		t.Fatal("deleting twice should fail")
	}
}

func TestUpdateTaskBlankTitleIsNoOp(t *testing.T) {
	s, _ := newTestService()

	tk, _ := s.AddTask("write retro notes", "", nil)
	if err := s.UpdateTask(tk.ID, "   ", "new description"); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := s.FindTask(tk.ID.String())
	if got.Title != "write retro notes" || got.Description != "" {
		t.Fatalf("task = %+v", got)
	}

	if err := s.UpdateTask(tk.ID, "final retro notes", "for friday"); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = s.FindTask(tk.ID.String())
	if got.Title != "final retro notes" || got.Description != "for friday" {
		t.Fatalf("task = %+v", got)
	}
}

func TestTagsCombineExplicitAndEntryTags(t *testing.T) {
	s, _ := newTestService()

	s.AddEntry("entry", "work")
	if !s.AddTag("someday") {
		t.Fatal("expected someday to register")
	}
	if s.AddTag("work") {
		t.Fatal("entry tags count against new explicit tags")
	}

	got := s.Tags()
	if len(got) != 2 || got[0] != "someday" || got[1] != "work" {
		t.Fatalf("Tags = %v", got)
	}
}

func TestRemoveTagCascades(t *testing.T) {
	s, m := newTestService()

	s.AddEntry("entry", "work", "wins")
	s.ToggleTag("work")

	if !s.RemoveTag("work") {
		t.Fatal("expected a change")
	}
	entries := m.LoadEntries()
	if len(entries) != 1 || entries[0].HasTag("work") {
		t.Fatalf("persisted entries = %v", entries)
	}
	if !entries[0].HasTag("wins") {
		t.Fatal("unrelated tag lost")
	}
	for _, sel := range s.SelectedTags() {
		if sel == "work" {
			t.Fatal("work still selected")
		}
	}
}

func TestRenameTagCascades(t *testing.T) {
	s, m := newTestService()

	s.AddEntry("entry", "work")
	s.ToggleTag("work")

	if !s.RenameTag("work", "dayjob") {
		t.Fatal("expected a change")
	}
	entries := m.LoadEntries()
	if !entries[0].HasTag("dayjob") || entries[0].HasTag("work") {
		t.Fatalf("entry tags = %v", entries[0].Tags)
	}
	if sel := s.SelectedTags(); len(sel) != 1 || sel[0] != "dayjob" {
		t.Fatalf("selected = %v", sel)
	}
}

func TestToggleTagSurvivesReload(t *testing.T) {
	s, m := newTestService()
	s.ToggleTag("work")

	again := New(m)
	if sel := again.SelectedTags(); len(sel) != 1 || sel[0] != "work" {
		t.Fatalf("selection after reload = %v", sel)
	}
}

func TestFilteredEntriesUsesToggledSelection(t *testing.T) {
	s, m := newTestService()
	s.AddEntry("standup notes", "work")
	s.AddEntry("long run")
	s.ToggleTag("work")

	// A fresh process with no explicit tags sees only the selection.
	again := New(m)
	got := again.FilteredEntries("", nil, nil)
	if len(got) != 1 || got[0].Text != "standup notes" {
		t.Fatalf("filtered = %v", got)
	}

	// Explicit tags override the selection.
	got = again.FilteredEntries("", []string{"run"}, nil)
	if len(got) != 0 {
		t.Fatalf("explicit tags should win, got %v", got)
	}
	if all := again.Search("", nil, nil); len(all) != 2 {
		t.Fatalf("search without criteria = %d entries", len(all))
	}
}

func TestToggleTask(t *testing.T) {
	s, _ := newTestService()

	tk, _ := s.AddTask("write retro notes", "", nil)
	if err := s.ToggleTask(tk.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	got, err := s.FindTask(tk.ID.String())
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !got.Completed || got.CompletedAt == nil {
		t.Fatalf("task = %+v", got)
	}

	if err := s.ToggleTask(tk.ID); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	got, _ = s.FindTask(tk.ID.String())
	if got.Completed || got.CompletedAt != nil {
		t.Fatalf("task = %+v", got)
	}
}

func TestReflectionLifecycle(t *testing.T) {
	s, _ := newTestService()

	tk, _ := s.AddTask("run the demo", "", nil)
	r := task.Reflection{Fact: "demo went fine", CreatedAt: time.Now()}
	if err := s.CompleteWithReflection(tk.ID, r); err != nil {
		t.Fatalf("complete: %v", err)
	}

	got, _ := s.FindTask(tk.ID.String())
	if !got.Completed {
		t.Fatal("expected completed")
	}
	if got.Reflection == nil || got.Reflection.Fact != "demo went fine" {
		t.Fatalf("reflection = %+v", got.Reflection)
	}
	if !got.CompletedAt.Equal(r.CreatedAt) {
		t.Fatalf("CompletedAt = %v, want %v", got.CompletedAt, r.CreatedAt)
	}

	// Reopening drops the reflection with the completion.
	if err := s.ToggleTask(tk.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	got, _ = s.FindTask(tk.ID.String())
	if got.Reflection != nil {
		t.Fatal("reflection should not outlive completion")
	}
}

func TestSkipComplete(t *testing.T) {
	s, _ := newTestService()

	tk, _ := s.AddTask("tidy desk", "", nil)
	if err := s.SkipComplete(tk.ID); err != nil {
		t.Fatalf("skip: %v", err)
	}
	got, _ := s.FindTask(tk.ID.String())
	if !got.Completed {
		t.Fatal("expected completed")
	}
	if got.Reflection != nil {
		t.Fatal("skipping must not create a reflection")
	}
}

func TestDeleteGroupKeepsTasks(t *testing.T) {
	s, m := newTestService()

	g, _ := s.AddGroup("work", "")
	tk, _ := s.AddTask("write retro notes", "", &g.ID)
	s.SelectGroup(&g.ID)

	if err := s.DeleteGroup(g.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := s.FindTask(tk.ID.String())
	if err != nil {
		t.Fatalf("task should survive: %v", err)
	}
	if got.GroupID != nil {
		t.Fatal("task should be ungrouped")
	}
	if s.SelectedGroup() != nil {
		t.Fatal("selection should clear with the group")
	}
	if groups := m.LoadGroups(); len(groups) != 0 {
		t.Fatalf("persisted groups = %v", groups)
	}
}

func TestGroupOrderNeverReused(t *testing.T) {
	s, _ := newTestService()

	a, _ := s.AddGroup("a", "")
	b, _ := s.AddGroup("b", "")
	if a.Order != 0 || b.Order != 1 {
		t.Fatalf("orders = %d, %d", a.Order, b.Order)
	}

	if err := s.DeleteGroup(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	c, _ := s.AddGroup("c", "")
	if c.Order != 2 {
		t.Fatalf("order = %d, deleted slots are never reused", c.Order)
	}
}

func TestAddTaskUsesSelectedGroup(t *testing.T) {
	s, _ := newTestService()

	g, _ := s.AddGroup("work", "")
	s.SelectGroup(&g.ID)

	tk, _ := s.AddTask("task", "", nil)
	if tk.GroupID == nil || *tk.GroupID != g.ID {
		t.Fatalf("GroupID = %v", tk.GroupID)
	}
}

func TestFindTaskPrefix(t *testing.T) {
	s, _ := newTestService()

	tk, _ := s.AddTask("task", "", nil)
	got, err := s.FindTask(tk.ID.String()[:8])
	if err != nil {
		t.Fatalf("find by prefix: %v", err)
	}
	if got.ID != tk.ID {
		t.Fatalf("found %v", got.ID)
	}

	if _, err := s.FindTask("ffffffff-none"); err == nil {
		t.Fatal("expected not found")
	}
}

func TestSessionLifecycle(t *testing.T) {
	s, m := newTestService()

	sess := s.ActiveSession()
	if sess == nil || !sess.Active {
		t.Fatalf("session = %+v", sess)
	}
	// Asking again reuses the same session.
	if again := s.ActiveSession(); again.ID != sess.ID {
		t.Fatal("expected the existing active session")
	}

	if err := s.AppendMessage(sess.ID, "user", "stuck on the report"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.AppendMessage(sess.ID, "coach", "start with one paragraph"); err != nil {
		t.Fatalf("append: %v", err)
	}
	persisted := m.LoadSessions()
	if len(persisted) != 1 || len(persisted[0].Messages) != 2 {
		t.Fatalf("persisted = %+v", persisted)
	}

	if err := s.CloseSession(sess.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	if next := s.ActiveSession(); next.ID == sess.ID {
		t.Fatal("closed sessions must not be reused")
	}
}

func TestCurrentSessionNeverCreates(t *testing.T) {
	s, m := newTestService()

	if cur := s.CurrentSession(); cur != nil {
		t.Fatalf("current = %+v", cur)
	}
	if persisted := m.LoadSessions(); len(persisted) != 0 {
		t.Fatalf("persisted = %+v", persisted)
	}

	sess := s.ActiveSession()
	if cur := s.CurrentSession(); cur == nil || cur.ID != sess.ID {
		t.Fatalf("current = %+v", cur)
	}

	if err := s.CloseSession(sess.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	if cur := s.CurrentSession(); cur != nil {
		t.Fatalf("current after close = %+v", cur)
	}
}

func TestSearchMatchesCriteria(t *testing.T) {
	s, _ := newTestService()

	s.AddEntry("standup ran long", "work")
	s.AddEntry("went for a run", "health")

	got := s.Search("standup", []string{"work"}, nil)
	if len(got) != 1 || got[0].Text != "standup ran long" {
		t.Fatalf("Search = %v", got)
	}

	day := time.Now()
	if got := s.ForDay(day); len(got) != 2 {
		t.Fatalf("ForDay = %v", got)
	}
}
