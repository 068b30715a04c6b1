package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/priyanshuroy/rover-security-api/internal/models"
)

// schemaSQL is embedded so the service can self-bootstrap its database schema.
//
//go:embed schema.sql
var schemaSQL string

// uniqueViolation is the SQLSTATE for unique constraint errors.
const uniqueViolation = "23505"

// db is the subset of pgxpool.Pool the store uses. Tests substitute a mock pool.
type db interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore is the durable persistence layer for events and employees.
type PostgresStore struct {
	db db
}

// NewPostgresStore creates a connection pool and fails fast if DB is unreachable.
func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{db: pool}, nil
}

// EnsureSchema applies schema.sql. Safe to run multiple times.
func (p *PostgresStore) EnsureSchema() error {
	_, err := p.db.Exec(context.Background(), schemaSQL)
	return err
}

// Ping is used by the readiness endpoint to validate DB connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

// Close shuts down the connection pool.
func (p *PostgresStore) Close() {
	p.db.Close()
}

// InsertEvent appends one detection payload. The timestamp is assigned here,
// not by the caller, so history ordering matches insertion order.
func (p *PostgresStore) InsertEvent(ctx context.Context, data map[string]any) (models.Event, error) {
	if data == nil {
		data = map[string]any{}
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return models.Event{}, fmt.Errorf("encode event payload: %w", err)
	}

	var (
		id int64
		ts time.Time
	)
	err = p.db.QueryRow(ctx, `
		INSERT INTO events (ts, data)
		VALUES ($1, $2)
		RETURNING id, ts
	`, time.Now().UTC(), payload).Scan(&id, &ts)
	if err != nil {
		return models.Event{}, fmt.Errorf("insert event: %w", err)
	}

	return models.Event{
		ID:        id,
		Timestamp: ts.UTC().Format(time.RFC3339Nano),
		Data:      data,
	}, nil
}

// ListEvents returns up to limit events, newest first. Non-positive limits
// return an empty slice rather than hitting the database.
func (p *PostgresStore) ListEvents(ctx context.Context, limit int) ([]models.Event, error) {
	if limit <= 0 {
		return []models.Event{}, nil
	}

	rows, err := p.db.Query(ctx, `
		SELECT id, ts, data
		FROM events
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var (
			id  int64
			ts  time.Time
			raw []byte
		)
		if err := rows.Scan(&id, &ts, &raw); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}

		var data map[string]any
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decode event %d payload: %w", id, err)
		}

		events = append(events, models.Event{
			ID:        id,
			Timestamp: ts.UTC().Format(time.RFC3339Nano),
			Data:      data,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}

// CreateEmployee persists a new directory record and returns the internal id.
func (p *PostgresStore) CreateEmployee(ctx context.Context, emp models.Employee) (int64, error) {
	var id int64
	err := p.db.QueryRow(ctx, `
		INSERT INTO employees (employee_id, name, position, department, phone, email, face_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, emp.EmployeeID, emp.Name, emp.Position, emp.Department, emp.Phone, emp.Email, emp.FaceImage).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmployeeID
		}
		return 0, fmt.Errorf("insert employee: %w", err)
	}
	return id, nil
}

// ListEmployees returns the whole directory ordered by name.
func (p *PostgresStore) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	rows, err := p.db.Query(ctx, `
		SELECT id, employee_id, name, position, department, phone, email, face_image
		FROM employees
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Name, &e.Position,
			&e.Department, &e.Phone, &e.Email, &e.FaceImage); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}

	return employees, nil
}

// UpdateEmployee applies the non-nil fields of upd to one record. The SET
// clause is built dynamically so untouched columns keep their values. Moving
// employee_id onto a value held by another record is rejected as a conflict.
func (p *PostgresStore) UpdateEmployee(ctx context.Context, id int64, upd models.EmployeeUpdate) error {
	if upd.IsEmpty() {
		// Nothing to change; still report unknown ids.
		var one int
		err := p.db.QueryRow(ctx, `SELECT 1 FROM employees WHERE id = $1`, id).Scan(&one)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrEmployeeNotFound
		}
		if err != nil {
			return fmt.Errorf("check employee: %w", err)
		}
		return nil
	}

	b := sq.Update("employees").PlaceholderFormat(sq.Dollar)
	if upd.EmployeeID != nil {
		b = b.Set("employee_id", *upd.EmployeeID)
	}
	if upd.Name != nil {
		b = b.Set("name", *upd.Name)
	}
	if upd.Position != nil {
		b = b.Set("position", *upd.Position)
	}
	if upd.Department != nil {
		b = b.Set("department", *upd.Department)
	}
	if upd.Phone != nil {
		b = b.Set("phone", *upd.Phone)
	}
	if upd.Email != nil {
		b = b.Set("email", *upd.Email)
	}
	if upd.FaceImage != nil {
		b = b.Set("face_image", *upd.FaceImage)
	}
	b = b.Where(sq.Eq{"id": id})

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build employee update: %w", err)
	}

	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmployeeID
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// DeleteEmployee permanently removes one record.
func (p *PostgresStore) DeleteEmployee(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
