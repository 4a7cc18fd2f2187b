package mcp

import (
	"strconv"

	"github.com/rpggio/projects/internal/domain/project"
)

// Hours travel as strings so two-digit values are never rounded through a
// JSON float.

type AddProjectParams struct {
	Name           string `json:"name" jsonschema:"project name, required, at most 128 characters"`
	EstimatedHours string `json:"estimated_hours,omitempty" jsonschema:"estimated hours as a decimal such as 10 or 2.5"`
	ActualHours    string `json:"actual_hours,omitempty" jsonschema:"actual hours as a decimal"`
	Difficulty     *int   `json:"difficulty,omitempty" jsonschema:"difficulty from 1 (easy) to 5 (hard)"`
	Notes          string `json:"notes,omitempty" jsonschema:"free-form notes"`
}

type ListProjectsParams struct{}

type GetProjectParams struct {
	ID int64 `json:"id" jsonschema:"project ID"`
}

// UpdateProjectParams leaves a field unchanged when it is omitted or blank.
type UpdateProjectParams struct {
	ID             int64  `json:"id" jsonschema:"ID of the project to update"`
	Name           string `json:"name,omitempty" jsonschema:"new name; omit to keep current"`
	EstimatedHours string `json:"estimated_hours,omitempty" jsonschema:"new estimated hours; omit to keep current"`
	ActualHours    string `json:"actual_hours,omitempty" jsonschema:"new actual hours; omit to keep current"`
	Difficulty     *int   `json:"difficulty,omitempty" jsonschema:"new difficulty 1-5; omit to keep current"`
	Notes          string `json:"notes,omitempty" jsonschema:"new notes; omit to keep current"`
}

func (p UpdateProjectParams) changes() project.Changes {
	c := project.Changes{
		Name:           p.Name,
		EstimatedHours: p.EstimatedHours,
		ActualHours:    p.ActualHours,
		Notes:          p.Notes,
	}
	if p.Difficulty != nil {
		c.Difficulty = strconv.Itoa(*p.Difficulty)
	}
	return c
}

type ProjectResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	EstimatedHours string `json:"estimated_hours,omitempty"`
	ActualHours    string `json:"actual_hours,omitempty"`
	Difficulty     *int   `json:"difficulty,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type ProjectSummaryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ListProjectsResponse struct {
	Projects []ProjectSummaryResponse `json:"projects"`
}

type UpdateProjectResponse struct {
	Project ProjectResponse `json:"project"`
	Message string          `json:"message"`
}

func toProjectResponse(p *project.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:         p.ID,
		Name:       p.Name,
		Difficulty: p.Difficulty,
		Notes:      p.Notes,
	}
	if p.EstimatedHours.Valid {
		resp.EstimatedHours = project.FormatHours(p.EstimatedHours)
	}
	if p.ActualHours.Valid {
		resp.ActualHours = project.FormatHours(p.ActualHours)
	}
	return resp
}

func toListResponse(summaries []project.ProjectSummary) ListProjectsResponse {
	resp := ListProjectsResponse{Projects: make([]ProjectSummaryResponse, 0, len(summaries))}
	for _, s := range summaries {
		resp.Projects = append(resp.Projects, ProjectSummaryResponse{ID: s.ID, Name: s.Name})
	}
	return resp
}
