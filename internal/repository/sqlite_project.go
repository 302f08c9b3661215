package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/flatbook/internal/db"
	"github.com/alexanderramin/flatbook/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo over a SQLite connection or
// transaction. Flat types and the officer roster live in child tables and are
// loaded with each project.
type SQLiteProjectRepo struct {
	conn db.DBTX
}

func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{conn: conn}
}

const projectColumns = `id, name, manager_nric, neighborhood, open_date, close_date, officer_slots, visible, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		p.ID,
		p.Name,
		domain.NormalizeNRIC(p.ManagerNRIC),
		p.Neighborhood,
		p.OpenDate.Format(dateLayout),
		p.CloseDate.Format(dateLayout),
		p.OfficerSlots,
		boolToInt(p.Visible),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	for i, ft := range p.FlatTypes {
		if err := r.insertFlatType(ctx, p.ID, ft, i); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) insertFlatType(ctx context.Context, projectID string, ft domain.FlatType, ord int) error {
	query := `INSERT INTO flat_types (project_id, kind, units_remaining, price_sgd, ord) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.conn.ExecContext(ctx, query, projectID, string(ft.Kind), ft.UnitsRemaining, ft.PriceSGD, ord); err != nil {
		return fmt.Errorf("inserting flat type %s: %w", ft.Kind, err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)
	p, err := scanProject(row)
	if err != nil {
		return nil, err
	}
	return r.loadChildren(ctx, p)
}

func (r *SQLiteProjectRepo) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE name = ? COLLATE NOCASE`
	row := r.conn.QueryRowContext(ctx, query, name)
	p, err := scanProject(row)
	if err != nil {
		return nil, err
	}
	return r.loadChildren(ctx, p)
}

func (r *SQLiteProjectRepo) List(ctx context.Context, visibleOnly bool) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY name COLLATE NOCASE`
	if visibleOnly {
		query = `SELECT ` + projectColumns + ` FROM projects WHERE visible = 1 ORDER BY name COLLATE NOCASE`
	}
	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProjectFromRows(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	for _, p := range projects {
		if _, err := r.loadChildren(ctx, p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, manager_nric = ?, neighborhood = ?, open_date = ?, close_date = ?,
		officer_slots = ?, visible = ?, updated_at = ? WHERE id = ?`
	_, err := r.conn.ExecContext(ctx, query,
		p.Name,
		domain.NormalizeNRIC(p.ManagerNRIC),
		p.Neighborhood,
		p.OpenDate.Format(dateLayout),
		p.CloseDate.Format(dateLayout),
		p.OfficerSlots,
		boolToInt(p.Visible),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}

	// Flat type price and stock edits are carried through here; the kinds
	// themselves are fixed at creation.
	for _, ft := range p.FlatTypes {
		q := `UPDATE flat_types SET units_remaining = ?, price_sgd = ? WHERE project_id = ? AND kind = ?`
		if _, err := r.conn.ExecContext(ctx, q, ft.UnitsRemaining, ft.PriceSGD, p.ID, string(ft.Kind)); err != nil {
			return fmt.Errorf("updating flat type %s: %w", ft.Kind, err)
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) SetVisibility(ctx context.Context, id string, visible bool) error {
	query := `UPDATE projects SET visible = ?, updated_at = ? WHERE id = ?`
	_, err := r.conn.ExecContext(ctx, query, boolToInt(visible), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("setting project visibility: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	// Applications, registrations, enquiries, flat types and the roster go
	// with the project via ON DELETE CASCADE.
	query := `DELETE FROM projects WHERE id = ?`
	_, err := r.conn.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) AddOfficer(ctx context.Context, projectID, officerNRIC string) error {
	query := `INSERT INTO project_officers (project_id, officer_nric, approved_at) VALUES (?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query, projectID, domain.NormalizeNRIC(officerNRIC), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("adding project officer: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) DecrementUnits(ctx context.Context, projectID string, kind domain.FlatKind) (bool, error) {
	// The units_remaining > 0 guard makes the decrement and its precondition
	// a single statement, so two bookings can never take the same last unit.
	query := `UPDATE flat_types SET units_remaining = units_remaining - 1
		WHERE project_id = ? AND kind = ? AND units_remaining > 0`
	res, err := r.conn.ExecContext(ctx, query, projectID, string(kind))
	if err != nil {
		return false, fmt.Errorf("decrementing units: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}
	return n == 1, nil
}

func (r *SQLiteProjectRepo) loadChildren(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	ftQuery := `SELECT kind, units_remaining, price_sgd FROM flat_types WHERE project_id = ? ORDER BY ord`
	rows, err := r.conn.QueryContext(ctx, ftQuery, p.ID)
	if err != nil {
		return nil, fmt.Errorf("loading flat types: %w", err)
	}
	defer rows.Close()

	p.FlatTypes = nil
	for rows.Next() {
		var ft domain.FlatType
		var kindStr string
		if err := rows.Scan(&kindStr, &ft.UnitsRemaining, &ft.PriceSGD); err != nil {
			return nil, fmt.Errorf("scanning flat type: %w", err)
		}
		ft.Kind = domain.FlatKind(kindStr)
		p.FlatTypes = append(p.FlatTypes, ft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating flat types: %w", err)
	}

	offQuery := `SELECT officer_nric FROM project_officers WHERE project_id = ? ORDER BY approved_at`
	offRows, err := r.conn.QueryContext(ctx, offQuery, p.ID)
	if err != nil {
		return nil, fmt.Errorf("loading project officers: %w", err)
	}
	defer offRows.Close()

	p.Officers = nil
	for offRows.Next() {
		var nric string
		if err := offRows.Scan(&nric); err != nil {
			return nil, fmt.Errorf("scanning project officer: %w", err)
		}
		p.Officers = append(p.Officers, nric)
	}
	if err := offRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project officers: %w", err)
	}
	return p, nil
}

func scanProject(row *sql.Row) (*domain.Project, error) {
	var p domain.Project
	var openStr, closeStr, createdAtStr, updatedAtStr string
	var visibleInt int

	err := row.Scan(
		&p.ID, &p.Name, &p.ManagerNRIC, &p.Neighborhood,
		&openStr, &closeStr, &p.OfficerSlots, &visibleInt,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return finishProject(&p, openStr, closeStr, createdAtStr, updatedAtStr, visibleInt)
}

func scanProjectFromRows(rows *sql.Rows) (*domain.Project, error) {
	var p domain.Project
	var openStr, closeStr, createdAtStr, updatedAtStr string
	var visibleInt int

	err := rows.Scan(
		&p.ID, &p.Name, &p.ManagerNRIC, &p.Neighborhood,
		&openStr, &closeStr, &p.OfficerSlots, &visibleInt,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning project row: %w", err)
	}
	return finishProject(&p, openStr, closeStr, createdAtStr, updatedAtStr, visibleInt)
}

func finishProject(p *domain.Project, openStr, closeStr, createdAtStr, updatedAtStr string, visibleInt int) (*domain.Project, error) {
	p.Visible = intToBool(visibleInt)

	var parseErr error
	p.OpenDate, parseErr = time.Parse(dateLayout, openStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing open_date: %w", parseErr)
	}
	p.CloseDate, parseErr = time.Parse(dateLayout, closeStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing close_date: %w", parseErr)
	}
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
