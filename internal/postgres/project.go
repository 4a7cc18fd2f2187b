package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rpggio/projects/internal/domain/project"
	"github.com/rpggio/projects/internal/repository"
	"github.com/shopspring/decimal"
)

var _ project.Repository = (*ProjectRepository)(nil)

// ProjectRepository implements project.Repository for PostgreSQL
type ProjectRepository struct {
	store *Store
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(store *Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

// Hours travel as text so the two fractional digits are never subject to
// float conversion on either side.
const projectColumns = `project_id, project_name, estimated_hours::text, actual_hours::text, difficulty, notes`

// Insert creates a project and sets the generated ID on it
func (r *ProjectRepository) Insert(ctx context.Context, proj *project.Project) (*project.Project, error) {
	query := `
		INSERT INTO project (project_name, estimated_hours, actual_hours, difficulty, notes)
		VALUES ($1, $2::text::numeric, $3::text::numeric, $4, $5)
		RETURNING project_id
	`

	err := r.store.withConn(ctx, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query,
			proj.Name,
			hoursValue(proj.EstimatedHours),
			hoursValue(proj.ActualHours),
			difficultyValue(proj.Difficulty),
			notesValue(proj.Notes),
		).Scan(&proj.ID)
	})
	if err != nil {
		return nil, repository.Wrap("insert project", describe(err))
	}

	return proj, nil
}

// FetchAll retrieves all projects ordered by ID
func (r *ProjectRepository) FetchAll(ctx context.Context) ([]project.ProjectSummary, error) {
	query := `
		SELECT project_id, project_name
		FROM project
		ORDER BY project_id ASC
	`

	summaries := []project.ProjectSummary{}
	err := r.store.withConn(ctx, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var summary project.ProjectSummary
			if err := rows.Scan(&summary.ID, &summary.Name); err != nil {
				return fmt.Errorf("scan project: %w", err)
			}
			summaries = append(summaries, summary)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate projects: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, repository.Wrap("list projects", err)
	}

	return summaries, nil
}

// FetchByID retrieves a project by ID
func (r *ProjectRepository) FetchByID(ctx context.Context, id int64) (*project.Project, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM project WHERE project_id = $1`, projectColumns)

	var (
		proj       project.Project
		estimated  *string
		actual     *string
		difficulty *int32
		notes      *string
	)
	err := r.store.withConn(ctx, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, id).Scan(
			&proj.ID,
			&proj.Name,
			&estimated,
			&actual,
			&difficulty,
			&notes,
		)
	})
	if isPgNoRowsError(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, repository.Wrap("fetch project", err)
	}

	if proj.EstimatedHours, err = parseHours(estimated); err != nil {
		return nil, false, repository.Wrap("fetch project", err)
	}
	if proj.ActualHours, err = parseHours(actual); err != nil {
		return nil, false, repository.Wrap("fetch project", err)
	}
	if difficulty != nil {
		proj.Difficulty = project.IntPtr(int(*difficulty))
	}
	if notes != nil {
		proj.Notes = *notes
	}

	return &proj, true, nil
}

// Update overwrites the mutable columns and bumps updated_at
func (r *ProjectRepository) Update(ctx context.Context, proj *project.Project) (bool, error) {
	query := `
		UPDATE project
		SET project_name = $1,
			estimated_hours = $2::text::numeric,
			actual_hours = $3::text::numeric,
			difficulty = $4,
			notes = $5,
			updated_at = now()
		WHERE project_id = $6
	`

	var rowsAffected int64
	err := r.store.withConn(ctx, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, query,
			proj.Name,
			hoursValue(proj.EstimatedHours),
			hoursValue(proj.ActualHours),
			difficultyValue(proj.Difficulty),
			notesValue(proj.Notes),
			proj.ID,
		)
		if err != nil {
			return err
		}
		rowsAffected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return false, repository.Wrap("update project", describe(err))
	}

	return rowsAffected == 1, nil
}

func parseHours(text *string) (decimal.NullDecimal, error) {
	if text == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(*text)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("parse hours %q: %w", *text, err)
	}
	return project.Hours(d), nil
}

func hoursValue(h decimal.NullDecimal) *string {
	if !h.Valid {
		return nil
	}
	s := h.Decimal.StringFixed(project.HoursScale)
	return &s
}

func difficultyValue(d *int) *int32 {
	if d == nil {
		return nil
	}
	v := int32(*d)
	return &v
}

func notesValue(notes string) *string {
	if notes == "" {
		return nil
	}
	return &notes
}
