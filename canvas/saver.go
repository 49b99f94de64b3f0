package canvas

import (
	"context"
	"log"
	"sync"
	"time"

	"electric-plan-tool/models"
)

// DefaultSaveDelay is the debounce window for design writes: rapid
// successive edits within this window coalesce into one write.
const DefaultSaveDelay = 500 * time.Millisecond

// Saver schedules debounced design writes. Each Schedule call replaces
// any pending write; the project id and document snapshot are captured at
// schedule time, so a write that fires after the active project changed
// still targets the project it was scheduled for. Save failures are
// logged and swallowed: persistence is best-effort and never interrupts
// editing.
type Saver struct {
	designs DesignStore
	delay   time.Duration

	mu             sync.Mutex
	timer          *time.Timer
	pendingProject string
	pendingDesign  models.Design
	hasPending     bool
}

// NewSaver creates a saver writing through the given store after the
// given debounce delay.
func NewSaver(designs DesignStore, delay time.Duration) *Saver {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	return &Saver{designs: designs, delay: delay}
}

// Schedule queues a write of the design for the project, canceling any
// previously pending write.
func (s *Saver) Schedule(projectID string, design models.Design) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pendingProject = projectID
	s.pendingDesign = design
	s.hasPending = true
	s.timer = time.AfterFunc(s.delay, s.fire)
}

// Cancel drops any pending write. Called when the active project
// switches so a stale write cannot race the next project's design.
func (s *Saver) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.hasPending = false
}

// Flush writes any pending design immediately, bypassing the debounce.
func (s *Saver) Flush() {
	s.fire()
}

func (s *Saver) fire() {
	s.mu.Lock()
	if !s.hasPending {
		s.mu.Unlock()
		return
	}
	projectID := s.pendingProject
	design := s.pendingDesign
	s.hasPending = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if err := s.designs.Save(context.Background(), projectID, design); err != nil {
		log.Printf("⚠️ Saver: failed to save design for project %s: %v", projectID, err)
	}
}
