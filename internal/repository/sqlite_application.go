package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/flatbook/internal/db"
	"github.com/alexanderramin/flatbook/internal/domain"
)

// SQLiteApplicationRepo implements ApplicationRepo over a SQLite connection
// or transaction.
type SQLiteApplicationRepo struct {
	conn db.DBTX
}

func NewSQLiteApplicationRepo(conn db.DBTX) *SQLiteApplicationRepo {
	return &SQLiteApplicationRepo{conn: conn}
}

const applicationColumns = `id, applicant_nric, project_id, flat_kind, status, prior_status, created_at, updated_at`

func (r *SQLiteApplicationRepo) Create(ctx context.Context, a *domain.Application) error {
	query := `INSERT INTO applications (` + applicationColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		a.ID,
		domain.NormalizeNRIC(a.ApplicantNRIC),
		a.ProjectID,
		string(a.FlatKind),
		string(a.Status),
		string(a.PriorStatus),
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting application: %w", err)
	}
	return nil
}

func (r *SQLiteApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)
	return scanApplication(row)
}

func (r *SQLiteApplicationRepo) GetActiveByApplicant(ctx context.Context, nric string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
		WHERE applicant_nric = ? AND status NOT IN ('UNSUCCESSFUL', 'WITHDRAWAL_SUCCESSFUL')
		ORDER BY created_at DESC LIMIT 1`
	row := r.conn.QueryRowContext(ctx, query, domain.NormalizeNRIC(nric))
	return scanApplication(row)
}

func (r *SQLiteApplicationRepo) ListByApplicant(ctx context.Context, nric string) ([]*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE applicant_nric = ? ORDER BY created_at`
	return r.list(ctx, query, domain.NormalizeNRIC(nric))
}

func (r *SQLiteApplicationRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE project_id = ? ORDER BY created_at`
	return r.list(ctx, query, projectID)
}

func (r *SQLiteApplicationRepo) Update(ctx context.Context, a *domain.Application) error {
	query := `UPDATE applications SET status = ?, prior_status = ?, updated_at = ? WHERE id = ?`
	_, err := r.conn.ExecContext(ctx, query,
		string(a.Status),
		string(a.PriorStatus),
		a.UpdatedAt.Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating application: %w", err)
	}
	return nil
}

func (r *SQLiteApplicationRepo) list(ctx context.Context, query string, arg any) ([]*domain.Application, error) {
	rows, err := r.conn.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	defer rows.Close()

	var apps []*domain.Application
	for rows.Next() {
		a, err := scanApplicationFromRows(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating applications: %w", err)
	}
	return apps, nil
}

func scanApplication(row *sql.Row) (*domain.Application, error) {
	var a domain.Application
	var kindStr, statusStr, priorStr, createdAtStr, updatedAtStr string

	err := row.Scan(&a.ID, &a.ApplicantNRIC, &a.ProjectID, &kindStr, &statusStr, &priorStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("application: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning application: %w", err)
	}
	return finishApplication(&a, kindStr, statusStr, priorStr, createdAtStr, updatedAtStr)
}

func scanApplicationFromRows(rows *sql.Rows) (*domain.Application, error) {
	var a domain.Application
	var kindStr, statusStr, priorStr, createdAtStr, updatedAtStr string

	err := rows.Scan(&a.ID, &a.ApplicantNRIC, &a.ProjectID, &kindStr, &statusStr, &priorStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning application row: %w", err)
	}
	return finishApplication(&a, kindStr, statusStr, priorStr, createdAtStr, updatedAtStr)
}

func finishApplication(a *domain.Application, kindStr, statusStr, priorStr, createdAtStr, updatedAtStr string) (*domain.Application, error) {
	a.FlatKind = domain.FlatKind(kindStr)
	a.Status = domain.ApplicationStatus(statusStr)
	a.PriorStatus = domain.ApplicationStatus(priorStr)

	var parseErr error
	a.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	a.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return a, nil
}
