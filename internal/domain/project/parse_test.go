package project_test

import (
	"testing"

	"github.com/rpggio/projects/internal/domain/project"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseHours(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "10", want: "10.00"},
		{input: " 2.5 ", want: "2.50"},
		{input: "1.005", want: "1.01"},
		{input: "0", want: "0.00"},
		{input: "", want: "none"},
		{input: "99999.99", want: "99999.99"},
		{input: "1e-50000000", want: "0.00"},
		{input: "0.005", want: "0.01"},
		{input: "0e50000000", want: "0.00"},
	}
	for _, tt := range tests {
		h, err := project.ParseHours("estimated_hours", tt.input)
		require.NoError(t, err, tt.input)
		require.Equal(t, tt.want, project.FormatHours(h), tt.input)
	}
}

func TestParseHours_Invalid(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{input: "ten", message: "ten is not a valid decimal number"},
		{input: "100000", message: "must not exceed 99999.99"},
		{input: "1e6", message: "must not exceed 99999.99"},
		{input: "1e50000000", message: "must not exceed 99999.99"},
		{input: "-1e50000000", message: "must not be negative"},
	}
	for _, tt := range tests {
		_, err := project.ParseHours("actual_hours", tt.input)

		var verr *project.ValidationError
		require.ErrorAs(t, err, &verr, tt.input)
		require.Equal(t, "actual_hours", verr.Field, tt.input)
		require.Equal(t, tt.message, verr.Message, tt.input)
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := project.ParseDifficulty("4")
	require.NoError(t, err)
	require.Equal(t, 4, *d)

	d, err = project.ParseDifficulty("  ")
	require.NoError(t, err)
	require.Nil(t, d)

	_, err = project.ParseDifficulty("hard")
	var verr *project.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "hard is not a valid number", verr.Message)
}

func TestChanges_ApplyKeepsBlankFields(t *testing.T) {
	base := project.Project{
		ID:             1,
		Name:           "Build shed",
		EstimatedHours: project.Hours(decimal.NewFromInt(10)),
		ActualHours:    project.Hours(decimal.Zero),
		Difficulty:     project.IntPtr(3),
		Notes:          "phase 1",
	}

	merged, err := project.Changes{Name: "Build shed v2"}.Apply(base)
	require.NoError(t, err)
	require.Equal(t, int64(1), merged.ID)
	require.Equal(t, "Build shed v2", merged.Name)
	require.Equal(t, "10.00", project.FormatHours(merged.EstimatedHours))
	require.Equal(t, "0.00", project.FormatHours(merged.ActualHours))
	require.Equal(t, 3, *merged.Difficulty)
	require.Equal(t, "phase 1", merged.Notes)

	// base is untouched
	require.Equal(t, "Build shed", base.Name)
}

func TestChanges_ApplyRejectsWholeUpdate(t *testing.T) {
	base := project.Project{ID: 1, Name: "Build shed", Notes: "phase 1"}

	merged, err := project.Changes{Name: "renamed", ActualHours: "lots", Notes: "phase 2"}.Apply(base)
	require.Nil(t, merged)

	var verr *project.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "actual_hours", verr.Field)
}

func TestProject_String(t *testing.T) {
	p := project.Project{
		ID:             1,
		Name:           "Build shed",
		EstimatedHours: project.Hours(decimal.NewFromInt(10)),
		Difficulty:     project.IntPtr(3),
		Notes:          "phase 1",
	}
	require.Equal(t,
		"ID=1, name=Build shed, estimated hours=10.00, actual hours=none, difficulty=3, notes=phase 1",
		p.String())
}
