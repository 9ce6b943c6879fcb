package status

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"daydash/internal/logging"
	"daydash/internal/tasks"
)

// Remote is the slice of the task service the engine consumes.
type Remote interface {
	ListTaskLists(ctx context.Context) ([]tasks.TaskList, error)
	ListTasks(ctx context.Context, taskListID string) ([]tasks.Task, error)
	PatchStatus(ctx context.Context, taskListID, taskID, status string) (tasks.Task, error)
	InsertTask(ctx context.Context, taskListID string, input tasks.TaskInput) (tasks.Task, error)
}

// View is a task joined with its effective three-state status.
type View struct {
	Task   tasks.Task
	Status Status
}

// Engine maintains the three-state status model over the two-state remote
// one. Status changes are applied optimistically to the views and rolled
// back if the remote write fails.
//
// Concurrent calls for the same task are not sequenced; the last remote
// response to resolve wins.
type Engine struct {
	remote  Remote
	overlay *Overlay
	logger  *slog.Logger

	mu       sync.Mutex
	listID   string
	listName string
	views    []View
	index    map[string]int
	prior    map[string]Status // last-applied marker, kept while a write is pending
}

// NewEngine creates an engine over the given remote and overlay.
func NewEngine(remote Remote, overlay *Overlay, logger *slog.Logger) *Engine {
	return &Engine{
		remote:  remote,
		overlay: overlay,
		logger:  logging.WithService(logger, "status"),
		index:   make(map[string]int),
		prior:   make(map[string]Status),
	}
}

// Load fetches the first task list and all tasks within it, building the
// views with their effective status. The active list id is re-derived on
// every load and never persisted. Having no task lists, or an empty list,
// is not an error; the shell renders the empty state.
//
// Both remote calls happen outside the mutex so that Apply, Revert and
// Views stay usable while a reload is in flight; the lock is taken only
// to swap in the fetched state.
func (e *Engine) Load(ctx context.Context) ([]View, error) {
	lists, err := e.remote.ListTaskLists(ctx)
	if err != nil {
		return nil, err
	}

	if len(lists) == 0 {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.listID = ""
		e.listName = ""
		e.views = nil
		e.index = make(map[string]int)
		e.prior = make(map[string]Status)
		e.logger.Info("no task lists found", logging.Operation("load"))
		return nil, nil
	}

	items, err := e.remote.ListTasks(ctx, lists[0].ID)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(items))
	index := make(map[string]int, len(items))
	for _, t := range items {
		index[t.ID] = len(views)
		views = append(views, View{Task: t, Status: Effective(t, e.overlay)})
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.listID = lists[0].ID
	e.listName = lists[0].Title
	e.views = views
	e.index = index
	e.prior = make(map[string]Status)
	e.logger.Info("tasks loaded", logging.Operation("load"), slog.Int("count", len(e.views)))
	return e.snapshotLocked(), nil
}

// Views returns a copy of the current views.
func (e *Engine) Views() []View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// ActiveListID returns the id of the list currently displayed, or "" when
// the last load found no task lists.
func (e *Engine) ActiveListID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.listID
}

// ActiveListTitle returns the title of the active list.
func (e *Engine) ActiveListTitle() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.listName
}

// Apply performs the optimistic half of a status change: the view is
// updated immediately, before any remote call, and the previously
// displayed status is recorded for a possible rollback.
func (e *Engine) Apply(taskID string, next Status) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, ok := e.index[taskID]
	if !ok {
		return false
	}
	if _, pending := e.prior[taskID]; !pending {
		e.prior[taskID] = e.views[i].Status
	}
	e.views[i].Status = next
	return true
}

// Commit performs the remote half of a status change. InProgress is a
// client-only state: the id is persisted in the overlay and no remote
// call is made. Todo and Completed clear the overlay entry and patch the
// remote status.
func (e *Engine) Commit(ctx context.Context, taskID string, next Status) error {
	if next == InProgress {
		if err := e.overlay.Mark(taskID); err != nil {
			return err
		}
		e.settle(taskID, next, tasks.Task{}, false)
		return nil
	}

	// The overlay entry is gone even if the remote write below fails;
	// see DESIGN.md on the preserved source behavior.
	if err := e.overlay.Clear(taskID); err != nil {
		return err
	}

	updated, err := e.remote.PatchStatus(ctx, e.ActiveListID(), taskID, next.Remote())
	if err != nil {
		e.logger.Error("status update failed", logging.Operation("setStatus"), logging.Err(err))
		return err
	}

	e.settle(taskID, next, updated, true)
	return nil
}

// Revert rolls the view back to the last-applied status marker recorded
// by Apply, defaulting to Todo if unavailable, and returns the status the
// view was rolled back to.
func (e *Engine) Revert(taskID string) Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev, ok := e.prior[taskID]
	if !ok {
		prev = Todo
	}
	delete(e.prior, taskID)

	if i, ok := e.index[taskID]; ok {
		e.views[i].Status = prev
	}
	return prev
}

// SetStatus applies a status change optimistically and commits it,
// rolling the view back if the commit fails. The error is returned for
// the shell to surface.
func (e *Engine) SetStatus(ctx context.Context, taskID string, next Status) error {
	e.Apply(taskID, next)
	if err := e.Commit(ctx, taskID, next); err != nil {
		e.Revert(taskID)
		return err
	}
	return nil
}

// Create inserts a new task into the active list. A blank title after
// trimming is silently rejected with no remote call; the returned bool
// reports whether a task was created. A supplied due date is normalized
// to the end of that day. New tasks always start as Todo.
func (e *Engine) Create(ctx context.Context, title, notes string, due time.Time) (bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, nil
	}

	input := tasks.TaskInput{Title: title, Notes: notes}
	if !due.IsZero() {
		input.Due = endOfDay(due)
	}

	if _, err := e.remote.InsertTask(ctx, e.ActiveListID(), input); err != nil {
		e.logger.Error("task creation failed", logging.Operation("create"), logging.Err(err))
		return false, err
	}

	e.logger.Info("task created", logging.Operation("create"), logging.Status(logging.StatusSuccess))
	return true, nil
}

// settle finishes a successful commit: the pending rollback marker is
// dropped and the view takes the committed status. The remote response,
// when there is one, refreshes the task fields while the effective status
// stays as applied.
func (e *Engine) settle(taskID string, applied Status, updated tasks.Task, haveRemote bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.prior, taskID)
	if i, ok := e.index[taskID]; ok {
		if haveRemote && updated.ID == taskID {
			e.views[i].Task = updated
		}
		e.views[i].Status = applied
	}
}

func (e *Engine) snapshotLocked() []View {
	out := make([]View, len(e.views))
	copy(out, e.views)
	return out
}

// endOfDay normalizes a date to 23:59:59 local time.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
