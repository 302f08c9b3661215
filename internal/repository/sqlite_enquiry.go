package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/flatbook/internal/db"
	"github.com/alexanderramin/flatbook/internal/domain"
)

// SQLiteEnquiryRepo implements EnquiryRepo over a SQLite connection or
// transaction.
type SQLiteEnquiryRepo struct {
	conn db.DBTX
}

func NewSQLiteEnquiryRepo(conn db.DBTX) *SQLiteEnquiryRepo {
	return &SQLiteEnquiryRepo{conn: conn}
}

const enquiryColumns = `id, author_nric, project_id, text, reply, created_at, replied_at`

func (r *SQLiteEnquiryRepo) Create(ctx context.Context, e *domain.Enquiry) error {
	query := `INSERT INTO enquiries (` + enquiryColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		e.ID,
		domain.NormalizeNRIC(e.AuthorNRIC),
		e.ProjectID,
		e.Text,
		e.Reply,
		e.CreatedAt.Format(time.RFC3339),
		nullableTimeToString(e.RepliedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting enquiry: %w", err)
	}
	return nil
}

func (r *SQLiteEnquiryRepo) GetByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	query := `SELECT ` + enquiryColumns + ` FROM enquiries WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)
	return scanEnquiry(row)
}

func (r *SQLiteEnquiryRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Enquiry, error) {
	query := `SELECT ` + enquiryColumns + ` FROM enquiries WHERE project_id = ? ORDER BY created_at`
	return r.list(ctx, query, projectID)
}

func (r *SQLiteEnquiryRepo) ListByAuthor(ctx context.Context, nric string) ([]*domain.Enquiry, error) {
	query := `SELECT ` + enquiryColumns + ` FROM enquiries WHERE author_nric = ? ORDER BY created_at`
	return r.list(ctx, query, domain.NormalizeNRIC(nric))
}

func (r *SQLiteEnquiryRepo) Update(ctx context.Context, e *domain.Enquiry) error {
	query := `UPDATE enquiries SET text = ?, reply = ?, replied_at = ? WHERE id = ?`
	_, err := r.conn.ExecContext(ctx, query,
		e.Text,
		e.Reply,
		nullableTimeToString(e.RepliedAt, time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating enquiry: %w", err)
	}
	return nil
}

func (r *SQLiteEnquiryRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM enquiries WHERE id = ?`
	_, err := r.conn.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting enquiry: %w", err)
	}
	return nil
}

func (r *SQLiteEnquiryRepo) list(ctx context.Context, query string, arg any) ([]*domain.Enquiry, error) {
	rows, err := r.conn.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing enquiries: %w", err)
	}
	defer rows.Close()

	var enquiries []*domain.Enquiry
	for rows.Next() {
		e, err := scanEnquiryFromRows(rows)
		if err != nil {
			return nil, err
		}
		enquiries = append(enquiries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating enquiries: %w", err)
	}
	return enquiries, nil
}

func scanEnquiry(row *sql.Row) (*domain.Enquiry, error) {
	var e domain.Enquiry
	var createdAtStr string
	var repliedAtStr sql.NullString

	err := row.Scan(&e.ID, &e.AuthorNRIC, &e.ProjectID, &e.Text, &e.Reply, &createdAtStr, &repliedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("enquiry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning enquiry: %w", err)
	}
	return finishEnquiry(&e, createdAtStr, repliedAtStr)
}

func scanEnquiryFromRows(rows *sql.Rows) (*domain.Enquiry, error) {
	var e domain.Enquiry
	var createdAtStr string
	var repliedAtStr sql.NullString

	err := rows.Scan(&e.ID, &e.AuthorNRIC, &e.ProjectID, &e.Text, &e.Reply, &createdAtStr, &repliedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning enquiry row: %w", err)
	}
	return finishEnquiry(&e, createdAtStr, repliedAtStr)
}

func finishEnquiry(e *domain.Enquiry, createdAtStr string, repliedAtStr sql.NullString) (*domain.Enquiry, error) {
	var parseErr error
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.RepliedAt = parseNullableTime(repliedAtStr, time.RFC3339)
	return e, nil
}
