package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/priyanshuroy/rover-security-api/internal/models"
)

// MemoryStore keeps everything in process memory. State is lost on restart,
// so it is only selected explicitly (STORE_DRIVER=memory) for development and
// tests; Postgres is the default driver.
type MemoryStore struct {
	mu sync.Mutex

	nextEventID int64
	events      []models.Event // insertion order, payloads held encoded

	nextEmployeeID int64
	employees      map[int64]models.Employee
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextEventID:    1,
		nextEmployeeID: 1,
		employees:      make(map[int64]models.Employee),
	}
}

func (m *MemoryStore) InsertEvent(ctx context.Context, data map[string]any) (models.Event, error) {
	if data == nil {
		data = map[string]any{}
	}

	// Round-trip through JSON so the stored payload is detached from the
	// caller's map, same as a JSONB column would behave.
	raw, err := json.Marshal(data)
	if err != nil {
		return models.Event{}, fmt.Errorf("encode event payload: %w", err)
	}
	var stored map[string]any
	if err := json.Unmarshal(raw, &stored); err != nil {
		return models.Event{}, fmt.Errorf("decode event payload: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ev := models.Event{
		ID:        m.nextEventID,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Data:      stored,
	}
	m.nextEventID++
	m.events = append(m.events, ev)
	return ev, nil
}

func (m *MemoryStore) ListEvents(ctx context.Context, limit int) ([]models.Event, error) {
	if limit <= 0 {
		return []models.Event{}, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	n := limit
	if n > len(m.events) {
		n = len(m.events)
	}

	out := make([]models.Event, 0, n)
	for i := len(m.events) - 1; i >= len(m.events)-n; i-- {
		out = append(out, m.events[i])
	}
	return out, nil
}

func (m *MemoryStore) CreateEmployee(ctx context.Context, emp models.Employee) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.employees {
		if existing.EmployeeID == emp.EmployeeID {
			return 0, ErrDuplicateEmployeeID
		}
	}

	emp.ID = m.nextEmployeeID
	m.nextEmployeeID++
	m.employees[emp.ID] = emp
	return emp.ID, nil
}

func (m *MemoryStore) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryStore) UpdateEmployee(ctx context.Context, id int64, upd models.EmployeeUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	emp, ok := m.employees[id]
	if !ok {
		return ErrEmployeeNotFound
	}

	if upd.EmployeeID != nil {
		for otherID, other := range m.employees {
			if otherID != id && other.EmployeeID == *upd.EmployeeID {
				return ErrDuplicateEmployeeID
			}
		}
		emp.EmployeeID = *upd.EmployeeID
	}
	if upd.Name != nil {
		emp.Name = *upd.Name
	}
	if upd.Position != nil {
		emp.Position = *upd.Position
	}
	if upd.Department != nil {
		emp.Department = *upd.Department
	}
	if upd.Phone != nil {
		emp.Phone = *upd.Phone
	}
	if upd.Email != nil {
		emp.Email = *upd.Email
	}
	if upd.FaceImage != nil {
		emp.FaceImage = *upd.FaceImage
	}

	m.employees[id] = emp
	return nil
}

func (m *MemoryStore) DeleteEmployee(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.employees[id]; !ok {
		return ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

func (m *MemoryStore) Ping(ctx context.Context) error { return nil }

func (m *MemoryStore) Close() {}
