package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rpggio/projects/internal/domain/project"
	"github.com/rpggio/projects/internal/repository"
	"github.com/shopspring/decimal"
)

var _ project.Repository = (*ProjectRepository)(nil)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Insert stores proj and sets its ID to the one SQLite assigned.
func (r *ProjectRepository) Insert(ctx context.Context, proj *project.Project) (*project.Project, error) {
	query := `
		INSERT INTO project (project_name, estimated_hours, actual_hours, difficulty, notes)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		proj.Name,
		hoursValue(proj.EstimatedHours),
		hoursValue(proj.ActualHours),
		difficultyValue(proj.Difficulty),
		notesValue(proj.Notes),
	)
	if err != nil {
		return nil, repository.Wrap("insert project", describe(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, repository.Wrap("insert project", fmt.Errorf("failed to read new id: %w", err))
	}

	proj.ID = id
	return proj, nil
}

// FetchAll returns every project in insertion order
func (r *ProjectRepository) FetchAll(ctx context.Context) ([]project.ProjectSummary, error) {
	query := `
		SELECT project_id, project_name
		FROM project
		ORDER BY project_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, repository.Wrap("list projects", err)
	}
	defer rows.Close()

	summaries := []project.ProjectSummary{}
	for rows.Next() {
		var summary project.ProjectSummary
		if err := rows.Scan(&summary.ID, &summary.Name); err != nil {
			return nil, repository.Wrap("list projects", fmt.Errorf("failed to scan project summary: %w", err))
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, repository.Wrap("list projects", fmt.Errorf("error iterating project rows: %w", err))
	}

	return summaries, nil
}

// FetchByID retrieves a project by ID. A missing row reports found=false.
func (r *ProjectRepository) FetchByID(ctx context.Context, id int64) (*project.Project, bool, error) {
	query := `
		SELECT project_id, project_name, estimated_hours, actual_hours, difficulty, notes
		FROM project
		WHERE project_id = ?
	`

	var (
		proj       project.Project
		difficulty sql.NullInt64
		notes      sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&proj.ID,
		&proj.Name,
		&proj.EstimatedHours,
		&proj.ActualHours,
		&difficulty,
		&notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, repository.Wrap("fetch project", err)
	}

	proj.EstimatedHours = project.NormalizeHours(proj.EstimatedHours)
	proj.ActualHours = project.NormalizeHours(proj.ActualHours)
	if difficulty.Valid {
		proj.Difficulty = project.IntPtr(int(difficulty.Int64))
	}
	proj.Notes = notes.String

	return &proj, true, nil
}

// Update overwrites all mutable columns of the row keyed by proj.ID.
func (r *ProjectRepository) Update(ctx context.Context, proj *project.Project) (bool, error) {
	query := `
		UPDATE project
		SET project_name = ?,
			estimated_hours = ?,
			actual_hours = ?,
			difficulty = ?,
			notes = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE project_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		proj.Name,
		hoursValue(proj.EstimatedHours),
		hoursValue(proj.ActualHours),
		difficultyValue(proj.Difficulty),
		notesValue(proj.Notes),
		proj.ID,
	)
	if err != nil {
		return false, repository.Wrap("update project", describe(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, repository.Wrap("update project", fmt.Errorf("failed to get rows affected: %w", err))
	}

	return rowsAffected == 1, nil
}

func hoursValue(h decimal.NullDecimal) any {
	if !h.Valid {
		return nil
	}
	return h.Decimal.StringFixed(project.HoursScale)
}

func difficultyValue(d *int) any {
	if d == nil {
		return nil
	}
	return int64(*d)
}

func notesValue(notes string) any {
	if notes == "" {
		return nil
	}
	return notes
}
