// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"daydash/internal/tasks"
)

// FakeRemote is an in-memory implementation of the task service used by
// engine and UI tests.
type FakeRemote struct {
	mu    sync.Mutex
	lists []tasks.TaskList
	items map[string][]tasks.Task
	seq   int

	// Error injection
	ListTaskListsErr error
	ListTasksErr     error
	PatchStatusErr   error
	InsertTaskErr    error

	// Call counters
	PatchCalls  int
	InsertCalls int
}

// NewFakeRemote creates a fake with a single default list.
func NewFakeRemote() *FakeRemote {
	return &FakeRemote{
		lists: []tasks.TaskList{{ID: "list-1", Title: "My Tasks"}},
		items: map[string][]tasks.Task{"list-1": nil},
	}
}

// NewEmptyFakeRemote creates a fake with no task lists at all.
func NewEmptyFakeRemote() *FakeRemote {
	return &FakeRemote{items: make(map[string][]tasks.Task)}
}

// AddTask adds a task to a list.
func (f *FakeRemote) AddTask(listID string, t tasks.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[listID] = append(f.items[listID], t)
}

// Task returns a stored task by id.
func (f *FakeRemote) Task(listID, taskID string) (tasks.Task, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.items[listID] {
		if t.ID == taskID {
			return t, true
		}
	}
	return tasks.Task{}, false
}

// ListTaskLists implements status.Remote.
func (f *FakeRemote) ListTaskLists(ctx context.Context) ([]tasks.TaskList, error) {
	if f.ListTaskListsErr != nil {
		return nil, f.ListTaskListsErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]tasks.TaskList, len(f.lists))
	copy(out, f.lists)
	return out, nil
}

// ListTasks implements status.Remote.
func (f *FakeRemote) ListTasks(ctx context.Context, listID string) ([]tasks.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]tasks.Task, len(f.items[listID]))
	copy(out, f.items[listID])
	return out, nil
}

// PatchStatus implements status.Remote.
func (f *FakeRemote) PatchStatus(ctx context.Context, listID, taskID, status string) (tasks.Task, error) {
	f.mu.Lock()
	f.PatchCalls++
	f.mu.Unlock()

	if f.PatchStatusErr != nil {
		return tasks.Task{}, f.PatchStatusErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.items[listID] {
		if t.ID == taskID {
			f.items[listID][i].Status = status
			return f.items[listID][i], nil
		}
	}
	return tasks.Task{}, fmt.Errorf("task %s not found", taskID)
}

// InsertTask implements status.Remote.
func (f *FakeRemote) InsertTask(ctx context.Context, listID string, input tasks.TaskInput) (tasks.Task, error) {
	f.mu.Lock()
	f.InsertCalls++
	f.mu.Unlock()

	if f.InsertTaskErr != nil {
		return tasks.Task{}, f.InsertTaskErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	t := tasks.Task{
		ID:     fmt.Sprintf("task-%d", f.seq),
		Title:  input.Title,
		Notes:  input.Notes,
		Status: tasks.StatusNeedsAction,
		Due:    input.Due,
	}
	f.items[listID] = append(f.items[listID], t)
	return t, nil
}
