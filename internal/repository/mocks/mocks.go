package mocks

import (
	"context"

	"github.com/rpggio/projects/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Insert(ctx context.Context, proj *project.Project) (*project.Project, error) {
	args := m.Called(ctx, proj)
	if created, ok := args.Get(0).(*project.Project); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) FetchAll(ctx context.Context) ([]project.ProjectSummary, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.ProjectSummary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) FetchByID(ctx context.Context, id int64) (*project.Project, bool, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *ProjectRepository) Update(ctx context.Context, proj *project.Project) (bool, error) {
	args := m.Called(ctx, proj)
	return args.Bool(0), args.Error(1)
}
