package canvas

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"electric-plan-tool/models"
)

// recordingStore counts Save calls so coalescing can be asserted.
type recordingStore struct {
	mu    sync.Mutex
	saves []savedDesign
}

type savedDesign struct {
	projectID string
	design    models.Design
}

func (r *recordingStore) Load(ctx context.Context, projectID string) (models.Design, error) {
	return models.EmptyDesign(), nil
}

func (r *recordingStore) Save(ctx context.Context, projectID string, design models.Design) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves = append(r.saves, savedDesign{projectID: projectID, design: design})
	return nil
}

func (r *recordingStore) saved() []savedDesign {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]savedDesign{}, r.saves...)
}

func waitForSaves(t *testing.T, store *recordingStore, want int) []savedDesign {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if saves := store.saved(); len(saves) >= want {
			return saves
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d saves, got %d", want, len(store.saved()))
	return nil
}

func designWithBoxes(names ...string) models.Design {
	design := models.EmptyDesign()
	for i, name := range names {
		design.Boxes = append(design.Boxes, models.Box{ID: name, Name: name, X: float64(i)})
	}
	return design
}

func TestSaverCoalescesBursts(t *testing.T) {
	store := &recordingStore{}
	saver := NewSaver(store, 50*time.Millisecond)

	// A burst of edits inside the debounce window yields one write with
	// the final state.
	saver.Schedule("p1", designWithBoxes("a"))
	saver.Schedule("p1", designWithBoxes("a", "b"))
	saver.Schedule("p1", designWithBoxes("a", "b", "c"))

	saves := waitForSaves(t, store, 1)
	require.Len(t, saves, 1)
	assert.Equal(t, "p1", saves[0].projectID)
	assert.Len(t, saves[0].design.Boxes, 3)

	// The window is over; nothing else fires.
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, store.saved(), 1)
}

func TestSaverCancelDropsPendingWrite(t *testing.T) {
	store := &recordingStore{}
	saver := NewSaver(store, 50*time.Millisecond)

	saver.Schedule("p1", designWithBoxes("a"))
	saver.Cancel()

	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, store.saved())
}

func TestSaverFlushWritesImmediately(t *testing.T) {
	store := &recordingStore{}
	saver := NewSaver(store, time.Hour)

	saver.Schedule("p1", designWithBoxes("a"))
	saver.Flush()

	saves := store.saved()
	require.Len(t, saves, 1)
	assert.Equal(t, "p1", saves[0].projectID)

	// Flushing with nothing pending is a no-op.
	saver.Flush()
	assert.Len(t, store.saved(), 1)
}

func TestSaverKeepsProjectWithSnapshot(t *testing.T) {
	store := &recordingStore{}
	saver := NewSaver(store, 30*time.Millisecond)

	// A schedule for a second project replaces the pending first one;
	// the write that fires carries the latest pair.
	saver.Schedule("p1", designWithBoxes("a"))
	saver.Schedule("p2", designWithBoxes("x", "y"))

	saves := waitForSaves(t, store, 1)
	require.Len(t, saves, 1)
	assert.Equal(t, "p2", saves[0].projectID)
	assert.Len(t, saves[0].design.Boxes, 2)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	// Unknown projects load as empty designs, not errors.
	design, err := store.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, design.Boxes)

	require.NoError(t, store.Save(ctx, "p1", designWithBoxes("a", "b")))

	design, err = store.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, design.Boxes, 2)
}
