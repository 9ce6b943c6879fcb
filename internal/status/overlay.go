package status

import (
	"encoding/json"
	"sync"

	"daydash/internal/store"
)

// marker is the only value an overlay entry ever holds; absence means
// "defer to the remote status".
const marker = "in_progress"

// Overlay is the local-only record of which task ids are currently
// flagged in-progress. It is persisted under the inProgressTaskIds key
// and survives reloads.
type Overlay struct {
	st *store.Store

	mu sync.Mutex
	m  map[string]string
}

// LoadOverlay reads the persisted overlay. A missing or unreadable record
// starts an empty overlay.
func LoadOverlay(st *store.Store) *Overlay {
	o := &Overlay{st: st, m: make(map[string]string)}

	data, ok, err := st.Get(store.KeyInProgress)
	if err != nil || !ok {
		return o
	}
	if err := json.Unmarshal(data, &o.m); err != nil {
		o.m = make(map[string]string)
	}
	return o
}

// InProgress reports whether the task id is flagged in-progress.
func (o *Overlay) InProgress(taskID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.m[taskID] == marker
}

// Mark flags the task id as in-progress and persists the overlay.
func (o *Overlay) Mark(taskID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.m[taskID] = marker
	return o.save()
}

// Clear removes the task id from the overlay, persisting only if an entry
// was actually present.
func (o *Overlay) Clear(taskID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.m[taskID]; !ok {
		return nil
	}
	delete(o.m, taskID)
	return o.save()
}

// Reset drops every flagged id from memory. The persisted record is
// deleted by the session teardown; without this a stale map would be
// re-persisted by the next Mark after a fresh sign-in.
func (o *Overlay) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.m = make(map[string]string)
}

// Len returns the number of flagged tasks.
func (o *Overlay) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.m)
}

func (o *Overlay) save() error {
	data, err := json.Marshal(o.m)
	if err != nil {
		return err
	}
	return o.st.Put(store.KeyInProgress, data)
}
