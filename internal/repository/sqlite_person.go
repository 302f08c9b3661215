package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/flatbook/internal/db"
	"github.com/alexanderramin/flatbook/internal/domain"
)

// SQLitePersonRepo implements PersonRepo over a SQLite connection or
// transaction.
type SQLitePersonRepo struct {
	conn db.DBTX
}

func NewSQLitePersonRepo(conn db.DBTX) *SQLitePersonRepo {
	return &SQLitePersonRepo{conn: conn}
}

const personColumns = `nric, name, age, marital_status, role, password_hash, created_at, updated_at`

func (r *SQLitePersonRepo) Create(ctx context.Context, p *domain.Person) error {
	query := `INSERT INTO persons (` + personColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		domain.NormalizeNRIC(p.NRIC),
		p.Name,
		p.Age,
		string(p.MaritalStatus),
		string(p.Role),
		p.PasswordHash,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting person: %w", err)
	}
	return nil
}

func (r *SQLitePersonRepo) GetByNRIC(ctx context.Context, nric string) (*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE nric = ?`
	row := r.conn.QueryRowContext(ctx, query, domain.NormalizeNRIC(nric))
	return scanPerson(row)
}

func (r *SQLitePersonRepo) List(ctx context.Context) ([]*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons ORDER BY name COLLATE NOCASE`
	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing persons: %w", err)
	}
	defer rows.Close()

	var persons []*domain.Person
	for rows.Next() {
		p, err := scanPersonFromRows(rows)
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating persons: %w", err)
	}
	return persons, nil
}

func (r *SQLitePersonRepo) Update(ctx context.Context, p *domain.Person) error {
	query := `UPDATE persons SET name = ?, age = ?, marital_status = ?, role = ?, password_hash = ?, updated_at = ?
		WHERE nric = ?`
	_, err := r.conn.ExecContext(ctx, query,
		p.Name,
		p.Age,
		string(p.MaritalStatus),
		string(p.Role),
		p.PasswordHash,
		p.UpdatedAt.Format(time.RFC3339),
		domain.NormalizeNRIC(p.NRIC),
	)
	if err != nil {
		return fmt.Errorf("updating person: %w", err)
	}
	return nil
}

func scanPerson(row *sql.Row) (*domain.Person, error) {
	var p domain.Person
	var maritalStr, roleStr, createdAtStr, updatedAtStr string

	err := row.Scan(&p.NRIC, &p.Name, &p.Age, &maritalStr, &roleStr, &p.PasswordHash, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("person: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning person: %w", err)
	}
	return finishPerson(&p, maritalStr, roleStr, createdAtStr, updatedAtStr)
}

func scanPersonFromRows(rows *sql.Rows) (*domain.Person, error) {
	var p domain.Person
	var maritalStr, roleStr, createdAtStr, updatedAtStr string

	err := rows.Scan(&p.NRIC, &p.Name, &p.Age, &maritalStr, &roleStr, &p.PasswordHash, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning person row: %w", err)
	}
	return finishPerson(&p, maritalStr, roleStr, createdAtStr, updatedAtStr)
}

func finishPerson(p *domain.Person, maritalStr, roleStr, createdAtStr, updatedAtStr string) (*domain.Person, error) {
	p.MaritalStatus = domain.MaritalStatus(maritalStr)
	p.Role = domain.Role(roleStr)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return p, nil
}
