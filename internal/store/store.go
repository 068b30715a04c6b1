package store

import (
	"context"

	"github.com/priyanshuroy/rover-security-api/internal/models"
)

// Store is the persistence boundary shared by the event log and the
// employee directory. Implementations must serialize conflicting writes
// themselves; handlers never coordinate.
type Store interface {
	// InsertEvent appends a detection payload with a server-assigned
	// timestamp and returns the stored event.
	InsertEvent(ctx context.Context, data map[string]any) (models.Event, error)

	// ListEvents returns up to limit events, newest first.
	// limit <= 0 yields an empty slice.
	ListEvents(ctx context.Context, limit int) ([]models.Event, error)

	// CreateEmployee persists a new record and returns its internal id.
	// Returns ErrDuplicateEmployeeID when employee_id is already taken.
	CreateEmployee(ctx context.Context, emp models.Employee) (int64, error)

	// ListEmployees returns all records ordered by name ascending.
	ListEmployees(ctx context.Context) ([]models.Employee, error)

	// UpdateEmployee applies the non-nil fields of upd to the record with
	// the given internal id. Returns ErrEmployeeNotFound for unknown ids and
	// ErrDuplicateEmployeeID when employee_id would collide.
	UpdateEmployee(ctx context.Context, id int64, upd models.EmployeeUpdate) error

	// DeleteEmployee removes the record with the given internal id.
	// Returns ErrEmployeeNotFound for unknown ids.
	DeleteEmployee(ctx context.Context, id int64) error

	// Ping reports whether the backing storage is reachable.
	Ping(ctx context.Context) error

	// Close releases storage resources.
	Close()
}
