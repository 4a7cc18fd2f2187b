package project

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rpggio/projects/internal/repository"
)

// Service handles project operations. Apart from validation and the
// absence-to-error conversions it forwards to the repository; it stays as
// the seam for project detail (materials, steps, categories) later on.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// Add validates proj and inserts it. The returned project carries the
// store-assigned ID.
func (s *Service) Add(ctx context.Context, proj *Project) (*Project, error) {
	normalize(proj)
	if err := proj.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, proj)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("project added", "project_id", created.ID, "name", created.Name)
	return created, nil
}

// List returns project summaries in insertion order.
func (s *Service) List(ctx context.Context) ([]ProjectSummary, error) {
	return s.repo.FetchAll(ctx)
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Project, error) {
	proj, found, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{ID: id}
	}
	return proj, nil
}

// Update overwrites every mutable field of the project identified by proj.ID.
func (s *Service) Update(ctx context.Context, proj *Project) error {
	normalize(proj)
	if err := proj.Validate(); err != nil {
		return err
	}

	updated, err := s.repo.Update(ctx, proj)
	if err != nil {
		return err
	}
	if !updated {
		return &repository.StoreError{Op: "update project", Err: repository.ErrProjectMissing}
	}

	s.logger.Debug("project updated", "project_id", proj.ID)
	return nil
}

func normalize(proj *Project) {
	proj.Name = strings.TrimSpace(proj.Name)
	proj.Notes = strings.TrimSpace(proj.Notes)
	proj.EstimatedHours = NormalizeHours(proj.EstimatedHours)
	proj.ActualHours = NormalizeHours(proj.ActualHours)
}
