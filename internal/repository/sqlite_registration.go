package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/flatbook/internal/db"
	"github.com/alexanderramin/flatbook/internal/domain"
)

// SQLiteRegistrationRepo implements RegistrationRepo over a SQLite
// connection or transaction. The (officer_nric, project_id) UNIQUE
// constraint backs the no-duplicate-registration invariant.
type SQLiteRegistrationRepo struct {
	conn db.DBTX
}

func NewSQLiteRegistrationRepo(conn db.DBTX) *SQLiteRegistrationRepo {
	return &SQLiteRegistrationRepo{conn: conn}
}

const registrationColumns = `id, officer_nric, project_id, status, created_at, updated_at`

func (r *SQLiteRegistrationRepo) Create(ctx context.Context, reg *domain.OfficerRegistration) error {
	query := `INSERT INTO officer_registrations (` + registrationColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		reg.ID,
		domain.NormalizeNRIC(reg.OfficerNRIC),
		reg.ProjectID,
		string(reg.Status),
		reg.CreatedAt.Format(time.RFC3339),
		reg.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting officer registration: %w", err)
	}
	return nil
}

func (r *SQLiteRegistrationRepo) GetByID(ctx context.Context, id string) (*domain.OfficerRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM officer_registrations WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)
	return scanRegistration(row)
}

func (r *SQLiteRegistrationRepo) ListByOfficer(ctx context.Context, nric string) ([]*domain.OfficerRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM officer_registrations WHERE officer_nric = ? ORDER BY created_at`
	return r.list(ctx, query, domain.NormalizeNRIC(nric))
}

func (r *SQLiteRegistrationRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.OfficerRegistration, error) {
	query := `SELECT ` + registrationColumns + ` FROM officer_registrations WHERE project_id = ? ORDER BY created_at`
	return r.list(ctx, query, projectID)
}

func (r *SQLiteRegistrationRepo) Update(ctx context.Context, reg *domain.OfficerRegistration) error {
	query := `UPDATE officer_registrations SET status = ?, updated_at = ? WHERE id = ?`
	_, err := r.conn.ExecContext(ctx, query,
		string(reg.Status),
		reg.UpdatedAt.Format(time.RFC3339),
		reg.ID,
	)
	if err != nil {
		return fmt.Errorf("updating officer registration: %w", err)
	}
	return nil
}

func (r *SQLiteRegistrationRepo) list(ctx context.Context, query string, arg any) ([]*domain.OfficerRegistration, error) {
	rows, err := r.conn.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing officer registrations: %w", err)
	}
	defer rows.Close()

	var regs []*domain.OfficerRegistration
	for rows.Next() {
		reg, err := scanRegistrationFromRows(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating officer registrations: %w", err)
	}
	return regs, nil
}

func scanRegistration(row *sql.Row) (*domain.OfficerRegistration, error) {
	var reg domain.OfficerRegistration
	var statusStr, createdAtStr, updatedAtStr string

	err := row.Scan(&reg.ID, &reg.OfficerNRIC, &reg.ProjectID, &statusStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("officer registration: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning officer registration: %w", err)
	}
	return finishRegistration(&reg, statusStr, createdAtStr, updatedAtStr)
}

func scanRegistrationFromRows(rows *sql.Rows) (*domain.OfficerRegistration, error) {
	var reg domain.OfficerRegistration
	var statusStr, createdAtStr, updatedAtStr string

	err := rows.Scan(&reg.ID, &reg.OfficerNRIC, &reg.ProjectID, &statusStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning officer registration row: %w", err)
	}
	return finishRegistration(&reg, statusStr, createdAtStr, updatedAtStr)
}

func finishRegistration(reg *domain.OfficerRegistration, statusStr, createdAtStr, updatedAtStr string) (*domain.OfficerRegistration, error) {
	reg.Status = domain.RegistrationStatus(statusStr)

	var parseErr error
	reg.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	reg.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return reg, nil
}
