package tags

import (
	"reflect"
	"testing"

	"github.com/cyclehq/cycle/pkg/journal"
)

func entryWith(tags ...string) journal.Entry {
	return *journal.New("entry", tags...)
}

func TestAllCombinesAndSorts(t *testing.T) {
	entries := []journal.Entry{
		entryWith("work", "wins"),
		entryWith("health"),
	}
	got := All([]string{"someday", "work"}, entries)
	want := []string{"health", "someday", "wins", "work"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("All = %v, want %v", got, want)
	}
}

func TestAddChecksCombinedUniverse(t *testing.T) {
	r := Registry{
		Explicit: []string{"someday"},
		Entries:  []journal.Entry{entryWith("work")},
	}

	if r.Add("") {
		t.Fatal("empty name must be a no-op")
	}
	if r.Add("   ") {
		t.Fatal("whitespace name must be a no-op")
	}
	if r.Add("someday") {
		t.Fatal("explicit duplicate must be a no-op")
	}
	if r.Add("work") {
		t.Fatal("entry-only tags still block adding")
	}
	if !r.Add("health") {
		t.Fatal("new tag should be added")
	}
	if !reflect.DeepEqual(r.Explicit, []string{"someday", "health"}) {
		t.Fatalf("Explicit = %v", r.Explicit)
	}
}

func TestRemoveCascades(t *testing.T) {
	r := Registry{
		Explicit: []string{"work", "health"},
		Entries:  []journal.Entry{entryWith("work", "wins"), entryWith("health")},
		Selected: []string{"work"},
	}

	if !r.Remove("work") {
		t.Fatal("expected a change")
	}
	if contains(r.Explicit, "work") {
		t.Fatal("work still explicit")
	}
	if r.Entries[0].HasTag("work") {
		t.Fatal("work still on entry")
	}
	if !r.Entries[0].HasTag("wins") {
		t.Fatal("unrelated tag lost")
	}
	if contains(r.Selected, "work") {
		t.Fatal("work still selected")
	}

	if r.Remove("nope") {
		t.Fatal("removing an unknown tag must report no change")
	}
}

func TestRenameCascades(t *testing.T) {
	r := Registry{
		Explicit: []string{"work"},
		Entries:  []journal.Entry{entryWith("work"), entryWith("health")},
		Selected: []string{"work"},
	}

	if !r.Rename("work", "dayjob") {
		t.Fatal("expected a change")
	}
	if !r.Entries[0].HasTag("dayjob") || r.Entries[0].HasTag("work") {
		t.Fatalf("entry tags = %v", r.Entries[0].Tags)
	}
	if !contains(r.Explicit, "dayjob") || contains(r.Explicit, "work") {
		t.Fatalf("Explicit = %v", r.Explicit)
	}
	if !contains(r.Selected, "dayjob") {
		t.Fatalf("Selected = %v", r.Selected)
	}
}

func TestRenameRefusesCollisions(t *testing.T) {
	r := Registry{
		Explicit: []string{"work"},
		Entries:  []journal.Entry{entryWith("health")},
	}

	if r.Rename("work", "") {
		t.Fatal("empty target must be a no-op")
	}
	if r.Rename("work", "health") {
		t.Fatal("target already in the universe must be a no-op")
	}
	if !r.Rename("work", "work") {
		t.Fatal("self-rename is permitted")
	}
	if !contains(r.Explicit, "work") {
		t.Fatalf("Explicit = %v", r.Explicit)
	}
}

func TestToggle(t *testing.T) {
	r := Registry{}

	r.Toggle("work")
	if !contains(r.Selected, "work") {
		t.Fatal("expected work selected")
	}
	r.Toggle("work")
	if contains(r.Selected, "work") {
		t.Fatal("expected work deselected")
	}
}
