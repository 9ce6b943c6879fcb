// Package status implements the three-state task status model.
//
// The remote task service only knows "needsAction" and "completed". The
// dashboard adds a client-only "in progress" state, recorded in a locally
// persisted overlay keyed by task id. The effective status shown to the
// user is the overlay entry when present, otherwise the remote status.
//
// User-initiated changes cycle Todo -> In Progress -> Completed -> Todo.
// Changes are applied to the views optimistically before the remote write
// and rolled back to the last displayed status if the write fails.
package status
