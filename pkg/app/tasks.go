package app

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cyclehq/cycle/pkg/task"
)

// Tasks returns a copy of all tasks.
func (s *Service) Tasks() []task.Task {
	return append([]task.Task(nil), s.tasks...)
}

// AddTask creates an open task. The title is trimmed; a blank title is a
// silent no-op. When groupID is nil the currently selected group applies.
func (s *Service) AddTask(title, description string, groupID *uuid.UUID) (*task.Task, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, false
	}
	t := task.New(title, description)
	if groupID == nil {
		groupID = s.selectedGroup
	}
	t.GroupID = groupID
	s.tasks = append(s.tasks, *t)
	s.Persistence.SaveTasks(s.tasks)
	return t, true
}

// UpdateTask replaces the title and description of the task with the given
// id. A blank title after trimming is a silent no-op.
func (s *Service) UpdateTask(id uuid.UUID, title, description string) error {
	title = strings.TrimSpace(title)
	i, err := s.taskIndex(id)
	if err != nil {
		return err
	}
	if title == "" {
		return nil
	}
	s.tasks[i].Title = title
	s.tasks[i].Description = description
	s.Persistence.SaveTasks(s.tasks)
	return nil
}

// DeleteTask removes the task with the given id.
func (s *Service) DeleteTask(id uuid.UUID) error {
	i, err := s.taskIndex(id)
	if err != nil {
		return err
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.Persistence.SaveTasks(s.tasks)
	return nil
}

// ToggleTask flips completion. Completing stamps CompletedAt; reopening
// clears it and drops any reflection so a reflection never outlives the
// completed state.
func (s *Service) ToggleTask(id uuid.UUID) error {
	i, err := s.taskIndex(id)
	if err != nil {
		return err
	}
	if s.tasks[i].Completed {
		s.tasks[i].Reopen()
	} else {
		s.tasks[i].Complete(time.Now())
	}
	s.Persistence.SaveTasks(s.tasks)
	return nil
}

// CompleteWithReflection attaches the reflection record and marks the task
// completed at the reflection's creation time. An existing reflection is
// replaced wholesale.
func (s *Service) CompleteWithReflection(id uuid.UUID, r task.Reflection) error {
	i, err := s.taskIndex(id)
	if err != nil {
		return err
	}
	s.tasks[i].Reflection = &r
	s.tasks[i].Complete(r.CreatedAt)
	s.Persistence.SaveTasks(s.tasks)
	return nil
}

// SkipComplete marks the task completed without a reflection.
func (s *Service) SkipComplete(id uuid.UUID) error {
	i, err := s.taskIndex(id)
	if err != nil {
		return err
	}
	s.tasks[i].Reflection = nil
	s.tasks[i].Complete(time.Now())
	s.Persistence.SaveTasks(s.tasks)
	return nil
}

// FindTask resolves an id prefix to a task, for CLI ergonomics.
func (s *Service) FindTask(idPrefix string) (*task.Task, error) {
	var found *task.Task
	for i := range s.tasks {
		id := s.tasks[i].ID.String()
		if id == idPrefix {
			t := s.tasks[i]
			return &t, nil
		}
		if strings.HasPrefix(id, idPrefix) {
			if found != nil {
				return nil, errors.New("app: ambiguous task id " + idPrefix)
			}
			t := s.tasks[i]
			found = &t
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// OpenTasks returns incomplete tasks for the group (nil means every group),
// oldest first.
func (s *Service) OpenTasks(groupID *uuid.UUID) []task.Task {
	out := s.tasksForGroup(groupID, false)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// CompletedTasks returns completed tasks for the group (nil means every
// group), most recently completed first.
func (s *Service) CompletedTasks(groupID *uuid.UUID) []task.Task {
	out := s.tasksForGroup(groupID, true)
	sort.SliceStable(out, func(i, j int) bool {
		return completionTime(out[i]).After(completionTime(out[j]))
	})
	return out
}

func completionTime(t task.Task) time.Time {
	if t.CompletedAt != nil {
		return *t.CompletedAt
	}
	return t.CreatedAt
}

func (s *Service) tasksForGroup(groupID *uuid.UUID, completed bool) []task.Task {
	out := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Completed != completed {
			continue
		}
		if groupID != nil && !t.InGroup(*groupID) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *Service) taskIndex(id uuid.UUID) (int, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i, nil
		}
	}
	return 0, ErrNotFound
}

// Groups returns all groups sorted by display order.
func (s *Service) Groups() []task.Group {
	out := append([]task.Group(nil), s.groups...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// AddGroup creates a group ordered after every existing group. A blank name
// is a silent no-op.
func (s *Service) AddGroup(name, colorHex string) (*task.Group, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}
	g := task.NewGroup(name, colorHex, s.groups)
	s.groups = append(s.groups, *g)
	s.Persistence.SaveGroups(s.groups)
	return g, true
}

// UpdateGroup renames a group and replaces its color. A blank name is a
// silent no-op.
func (s *Service) UpdateGroup(id uuid.UUID, name, colorHex string) error {
	name = strings.TrimSpace(name)
	for i := range s.groups {
		if s.groups[i].ID == id {
			if name == "" {
				return nil
			}
			s.groups[i].Name = name
			s.groups[i].ColorHex = colorHex
			s.Persistence.SaveGroups(s.groups)
			return nil
		}
	}
	return ErrNotFound
}

// DeleteGroup removes the group and ungroups its tasks; the tasks themselves
// survive. Display order of the remaining groups is not compacted. Both
// touched collections persist once.
func (s *Service) DeleteGroup(id uuid.UUID) error {
	idx := -1
	for i := range s.groups {
		if s.groups[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	for i := range s.tasks {
		if s.tasks[i].InGroup(id) {
			s.tasks[i].GroupID = nil
		}
	}
	s.groups = append(s.groups[:idx], s.groups[idx+1:]...)
	if s.selectedGroup != nil && *s.selectedGroup == id {
		s.selectedGroup = nil
		s.saveState()
	}
	s.Persistence.SaveTasks(s.tasks)
	s.Persistence.SaveGroups(s.groups)
	return nil
}

// FindGroup resolves a group by exact name or id prefix.
func (s *Service) FindGroup(ref string) (*task.Group, error) {
	for i := range s.groups {
		if s.groups[i].Name == ref {
			g := s.groups[i]
			return &g, nil
		}
	}
	var found *task.Group
	for i := range s.groups {
		if strings.HasPrefix(s.groups[i].ID.String(), ref) {
			if found != nil {
				return nil, errors.New("app: ambiguous group " + ref)
			}
			g := s.groups[i]
			found = &g
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// SelectGroup sets the group applied to new tasks and task listings. Nil
// clears the selection.
func (s *Service) SelectGroup(id *uuid.UUID) {
	s.selectedGroup = id
	s.saveState()
}

// SelectedGroup returns the current group selection, or nil.
func (s *Service) SelectedGroup() *uuid.UUID {
	return s.selectedGroup
}
