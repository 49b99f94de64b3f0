package canvas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"electric-plan-tool/models"
)

// DesignStore persists project design documents. The session talks only
// to this interface, so the backing can be the remote API or an in-memory
// fallback with identical behavior.
type DesignStore interface {
	// Load fetches the stored design for a project, defaulting missing
	// collections to empty.
	Load(ctx context.Context, projectID string) (models.Design, error)

	// Save stores the full design document for a project.
	Save(ctx context.Context, projectID string, design models.Design) error
}

// RemoteStore is a DesignStore backed by the project API's design
// endpoints.
type RemoteStore struct {
	baseURL string
	client  *http.Client
}

// Ensure RemoteStore implements DesignStore
var _ DesignStore = (*RemoteStore)(nil)

// NewRemoteStore creates a RemoteStore for the given API base URL
// (e.g. "http://localhost:8080").
func NewRemoteStore(baseURL string) *RemoteStore {
	return &RemoteStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Load fetches GET /api/projects/{id}/design.
func (r *RemoteStore) Load(ctx context.Context, projectID string) (models.Design, error) {
	url := fmt.Sprintf("%s/api/projects/%s/design", r.baseURL, projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.EmptyDesign(), fmt.Errorf("failed to build design request: %w", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return models.EmptyDesign(), fmt.Errorf("failed to fetch design: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.EmptyDesign(), fmt.Errorf("design fetch returned status %d", resp.StatusCode)
	}

	var body models.DesignResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.EmptyDesign(), fmt.Errorf("failed to decode design: %w", err)
	}
	body.Design.Normalize()
	return body.Design, nil
}

// Save issues PUT /api/projects/{id}/design with the full document.
func (r *RemoteStore) Save(ctx context.Context, projectID string, design models.Design) error {
	design.Normalize()
	payload, err := json.Marshal(models.DesignResponse{Design: design})
	if err != nil {
		return fmt.Errorf("failed to encode design: %w", err)
	}

	url := fmt.Sprintf("%s/api/projects/%s/design", r.baseURL, projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build design request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to save design: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("design save returned status %d", resp.StatusCode)
	}
	return nil
}

// MemoryStore is an in-memory DesignStore used as a local fallback and in
// tests. Loading a project that was never saved yields an empty design,
// matching the API's default.
type MemoryStore struct {
	mu      sync.Mutex
	designs map[string]models.Design
}

// Ensure MemoryStore implements DesignStore
var _ DesignStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{designs: make(map[string]models.Design)}
}

// Load returns the stored design for the project, or an empty design.
func (m *MemoryStore) Load(_ context.Context, projectID string) (models.Design, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	design, ok := m.designs[projectID]
	if !ok {
		return models.EmptyDesign(), nil
	}
	return design.Clone(), nil
}

// Save stores a deep copy of the design for the project.
func (m *MemoryStore) Save(_ context.Context, projectID string, design models.Design) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	design.Normalize()
	m.designs[projectID] = design.Clone()
	return nil
}
