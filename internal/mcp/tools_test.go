package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/projects/internal/mcp"
	"github.com/rpggio/projects/internal/testserver"
	"github.com/stretchr/testify/require"
)

func callTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) *sdkmcp.CallToolResult {
	t.Helper()
	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	return res
}

func decodeResult[T any](t *testing.T, res *sdkmcp.CallToolResult) T {
	t.Helper()
	require.False(t, res.IsError, "unexpected tool error: %s", resultText(res))

	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)

	var out T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func resultText(res *sdkmcp.CallToolResult) string {
	for _, c := range res.Content {
		if text, ok := c.(*sdkmcp.TextContent); ok {
			return text.Text
		}
	}
	return ""
}

func TestTools_Listed(t *testing.T) {
	session := testserver.New(t).Connect(t)

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	require.ElementsMatch(t, []string{"add_project", "list_projects", "get_project", "update_project"}, names)
}

func TestTools_AddListGetUpdate(t *testing.T) {
	session := testserver.New(t).Connect(t)

	created := decodeResult[mcp.ProjectResponse](t, callTool(t, session, "add_project", map[string]any{
		"name":            "Build shed",
		"estimated_hours": "10",
		"actual_hours":    "0",
		"difficulty":      3,
		"notes":           "phase 1",
	}))
	require.NotZero(t, created.ID)
	require.Equal(t, "10.00", created.EstimatedHours)
	require.Equal(t, "0.00", created.ActualHours)

	list := decodeResult[mcp.ListProjectsResponse](t, callTool(t, session, "list_projects", map[string]any{}))
	require.Equal(t, []mcp.ProjectSummaryResponse{{ID: created.ID, Name: "Build shed"}}, list.Projects)

	updated := decodeResult[mcp.UpdateProjectResponse](t, callTool(t, session, "update_project", map[string]any{
		"id":   created.ID,
		"name": "Build shed v2",
	}))
	require.Equal(t, "Build shed v2", updated.Project.Name)

	got := decodeResult[mcp.ProjectResponse](t, callTool(t, session, "get_project", map[string]any{"id": created.ID}))
	require.Equal(t, "Build shed v2", got.Name)
	require.Equal(t, "10.00", got.EstimatedHours)
	require.Equal(t, "0.00", got.ActualHours)
	require.NotNil(t, got.Difficulty)
	require.Equal(t, 3, *got.Difficulty)
	require.Equal(t, "phase 1", got.Notes)
}

func TestTools_ListEmpty(t *testing.T) {
	session := testserver.New(t).Connect(t)

	list := decodeResult[mcp.ListProjectsResponse](t, callTool(t, session, "list_projects", map[string]any{}))
	require.Empty(t, list.Projects)
}

func TestTools_Errors(t *testing.T) {
	session := testserver.New(t).Connect(t)

	tests := []struct {
		name string
		tool string
		args map[string]any
		code string
	}{
		{name: "missing project", tool: "get_project", args: map[string]any{"id": 42}, code: "PROJECT_NOT_FOUND"},
		{name: "update missing project", tool: "update_project", args: map[string]any{"id": 42, "name": "x"}, code: "PROJECT_NOT_FOUND"},
		{name: "bad hours", tool: "add_project", args: map[string]any{"name": "Deck", "estimated_hours": "lots"}, code: "INVALID_INPUT"},
		{name: "difficulty out of range", tool: "add_project", args: map[string]any{"name": "Deck", "difficulty": 9}, code: "INVALID_INPUT"},
		{name: "blank name", tool: "add_project", args: map[string]any{"name": "  "}, code: "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callTool(t, session, tt.tool, tt.args)
			require.True(t, res.IsError)
			require.Contains(t, resultText(res), tt.code)
		})
	}
}

func TestDocResource(t *testing.T) {
	session := testserver.New(t).Connect(t)

	res, err := session.ReadResource(context.Background(), &sdkmcp.ReadResourceParams{URI: "projects://docs/fields"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	require.Contains(t, res.Contents[0].Text, "# Project fields")
}

func TestTools_OversizedHours(t *testing.T) {
	session := testserver.New(t).Connect(t)

	res := callTool(t, session, "add_project", map[string]any{"name": "Deck", "estimated_hours": "1e50000000"})
	require.True(t, res.IsError)
	require.Contains(t, resultText(res), "INVALID_INPUT")

	created := decodeResult[mcp.ProjectResponse](t, callTool(t, session, "add_project", map[string]any{"name": "Deck", "estimated_hours": "12"}))

	res = callTool(t, session, "update_project", map[string]any{"id": created.ID, "actual_hours": "1e6"})
	require.True(t, res.IsError)
	require.Contains(t, resultText(res), "INVALID_INPUT")

	got := decodeResult[mcp.ProjectResponse](t, callTool(t, session, "get_project", map[string]any{"id": created.ID}))
	require.Equal(t, "12.00", got.EstimatedHours)
	require.Empty(t, got.ActualHours)
}
