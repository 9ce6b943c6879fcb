// Package tasks provides a client for interacting with the Google Tasks API.
//
// The client covers the operations the dashboard needs: listing task
// lists, listing the tasks in a list, patching a task's remote status and
// inserting new tasks. The remote status domain is exactly
// {needsAction, completed}; the three-state model shown in the UI is a
// client-side augmentation handled by the status package.
package tasks
