package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/projects/internal/domain/project"
)

func registerTools(server *sdkmcp.Server, projects ProjectService) {
	t := &tools{projects: projects}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_project",
		Description: "Create a project. Hours are decimals with two digits kept; difficulty is 1-5.",
	}, t.addProject)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List project IDs and names in insertion order",
	}, t.listProjects)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get every field of one project",
	}, t.getProject)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Update a project. Omitted or blank fields keep their current value.",
	}, t.updateProject)
}

type tools struct {
	projects ProjectService
}

func (t *tools) addProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in AddProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
	estimated, err := project.ParseHours("estimated_hours", in.EstimatedHours)
	if err != nil {
		return nil, ProjectResponse{}, toolError(err)
	}
	actual, err := project.ParseHours("actual_hours", in.ActualHours)
	if err != nil {
		return nil, ProjectResponse{}, toolError(err)
	}

	created, err := t.projects.Add(ctx, &project.Project{
		Name:           in.Name,
		EstimatedHours: estimated,
		ActualHours:    actual,
		Difficulty:     in.Difficulty,
		Notes:          in.Notes,
	})
	if err != nil {
		return nil, ProjectResponse{}, toolError(err)
	}
	return nil, toProjectResponse(created), nil
}

func (t *tools) listProjects(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListProjectsParams) (*sdkmcp.CallToolResult, ListProjectsResponse, error) {
	summaries, err := t.projects.List(ctx)
	if err != nil {
		return nil, ListProjectsResponse{}, toolError(err)
	}
	return nil, toListResponse(summaries), nil
}

func (t *tools) getProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
	proj, err := t.projects.Get(ctx, in.ID)
	if err != nil {
		return nil, ProjectResponse{}, toolError(err)
	}
	return nil, toProjectResponse(proj), nil
}

// updateProject reads the stored project first so blank fields keep the
// stored values, then writes the merged record in one update.
func (t *tools) updateProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateProjectParams) (*sdkmcp.CallToolResult, UpdateProjectResponse, error) {
	current, err := t.projects.Get(ctx, in.ID)
	if err != nil {
		return nil, UpdateProjectResponse{}, toolError(err)
	}

	merged, err := in.changes().Apply(*current)
	if err != nil {
		return nil, UpdateProjectResponse{}, toolError(err)
	}
	if err := t.projects.Update(ctx, merged); err != nil {
		return nil, UpdateProjectResponse{}, toolError(err)
	}

	return nil, UpdateProjectResponse{
		Project: toProjectResponse(merged),
		Message: "Project details updated successfully.",
	}, nil
}
