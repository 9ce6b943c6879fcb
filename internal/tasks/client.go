package tasks

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"
)

// Client wraps the Google Tasks service
type Client struct {
	svc *tasks.Service
}

// NewClient creates a new Tasks client using the provided authenticated
// HTTP client.
func NewClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Tasks service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// ListTaskLists lists all task lists for the authenticated user, in API
// order. The dashboard uses the first one as its active list.
func (c *Client) ListTaskLists(ctx context.Context) ([]TaskList, error) {
	result, err := c.svc.Tasklists.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list task lists: %w", err)
	}

	var taskLists []TaskList
	for _, tl := range result.Items {
		taskLists = append(taskLists, toTaskList(tl))
	}

	return taskLists, nil
}

// ListTasks lists the tasks in a task list, completed tasks included, in
// API order.
func (c *Client) ListTasks(ctx context.Context, taskListID string) ([]Task, error) {
	// Completed tasks are hidden by default; the dashboard shows them.
	result, err := c.svc.Tasks.List(taskListID).
		ShowCompleted(true).
		ShowHidden(true).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	var taskList []Task
	for _, t := range result.Items {
		taskList = append(taskList, toTask(t))
	}

	return taskList, nil
}

// PatchStatus patches exactly the task's status to "needsAction" or
// "completed". The remote service has no other status values.
func (c *Client) PatchStatus(ctx context.Context, taskListID, taskID, status string) (Task, error) {
	patch := &tasks.Task{
		Id:     taskID,
		Status: status,
	}
	if status == StatusNeedsAction {
		// Clearing completion requires the completed timestamp to be
		// removed along with the status.
		patch.Completed = nil
		patch.ForceSendFields = append(patch.ForceSendFields, "Completed")
	}

	updated, err := c.svc.Tasks.Patch(taskListID, taskID, patch).Context(ctx).Do()
	if err != nil {
		return Task{}, fmt.Errorf("failed to update task status: %w", err)
	}

	return toTask(updated), nil
}

// InsertTask creates a new task. New tasks always start as "needsAction".
func (c *Client) InsertTask(ctx context.Context, taskListID string, input TaskInput) (Task, error) {
	t := &tasks.Task{
		Title:  input.Title,
		Notes:  input.Notes,
		Status: StatusNeedsAction,
	}

	if !input.Due.IsZero() {
		t.Due = input.Due.Format(time.RFC3339)
	}

	created, err := c.svc.Tasks.Insert(taskListID, t).Context(ctx).Do()
	if err != nil {
		return Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return toTask(created), nil
}
