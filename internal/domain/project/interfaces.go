package project

import "context"

// Repository provides persistence for projects.
//
// FetchByID and Update report a missing row through their boolean result;
// the error result is reserved for store failures.
type Repository interface {
	Insert(ctx context.Context, proj *Project) (*Project, error)
	FetchAll(ctx context.Context) ([]ProjectSummary, error)
	FetchByID(ctx context.Context, id int64) (*Project, bool, error)
	Update(ctx context.Context, proj *Project) (bool, error)
}
