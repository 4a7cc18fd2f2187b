package console

import (
	"context"

	"github.com/rpggio/projects/internal/domain/project"
)

func (c *Console) createProject(ctx context.Context) error {
	name, err := c.promptString("Enter the project name")
	if err != nil {
		return err
	}
	estimated, err := c.promptHours("Enter the estimated hours", "estimated_hours")
	if err != nil {
		return err
	}
	actual, err := c.promptHours("Enter the actual hours", "actual_hours")
	if err != nil {
		return err
	}
	difficulty, err := c.promptDifficulty("Enter the project difficulty (1-5)")
	if err != nil {
		return err
	}
	notes, err := c.promptString("Enter the project notes")
	if err != nil {
		return err
	}

	created, err := c.projects.Add(ctx, &project.Project{
		Name:           name,
		EstimatedHours: estimated,
		ActualHours:    actual,
		Difficulty:     difficulty,
		Notes:          notes,
	})
	if err != nil {
		return err
	}

	c.printf("You have successfully created project: %s\n", created)
	return nil
}

func (c *Console) listProjects(ctx context.Context) error {
	projects, err := c.projects.List(ctx)
	if err != nil {
		return err
	}

	c.printf("\nProjects:\n")
	for _, p := range projects {
		c.printf("   %d: %s\n", p.ID, p.Name)
	}
	return nil
}

// selectProject clears the current project before fetching, so a failed
// fetch leaves nothing selected rather than the previous selection.
func (c *Console) selectProject(ctx context.Context, sess *session) error {
	if err := c.listProjects(ctx); err != nil {
		return err
	}

	id, err := c.promptID("Enter a project ID to select a project")
	if err != nil {
		return err
	}

	sess.current = nil

	if id == nil {
		return &project.ValidationError{Field: "project_id", Message: "a project ID is required"}
	}

	proj, err := c.projects.Get(ctx, *id)
	if err != nil {
		return err
	}

	sess.current = proj
	c.logger.Debug("project selected", "project_id", proj.ID)
	return nil
}

func (c *Console) updateProjectDetails(ctx context.Context, sess *session) error {
	if sess.current == nil {
		c.printf("\nPlease select a project.\n")
		return nil
	}
	cur := sess.current

	c.printf("\nUpdate Project Details:\n")
	c.printf("Current Project Details:\n")
	c.printf("Project Name: %s\n", cur.Name)
	c.printf("Estimated Hours: %s\n", project.FormatHours(cur.EstimatedHours))
	c.printf("Actual Hours: %s\n", project.FormatHours(cur.ActualHours))
	c.printf("Difficulty: %s\n", project.FormatDifficulty(cur.Difficulty))
	c.printf("Notes: %s\n", cur.Notes)
	c.printf("\n")

	var (
		changes project.Changes
		err     error
	)
	if changes.Name, err = c.promptChange("Enter new Project Name or press Enter to keep current", nil); err != nil {
		return err
	}
	if changes.EstimatedHours, err = c.promptChange("Enter new Estimated Hours or press Enter to keep current", checkHours("estimated_hours")); err != nil {
		return err
	}
	if changes.ActualHours, err = c.promptChange("Enter new Actual Hours or press Enter to keep current", checkHours("actual_hours")); err != nil {
		return err
	}
	if changes.Difficulty, err = c.promptChange("Enter new Difficulty (1-5) or press Enter to keep current", checkDifficulty); err != nil {
		return err
	}
	if changes.Notes, err = c.promptChange("Enter new Notes or press Enter to keep current", nil); err != nil {
		return err
	}

	merged, err := changes.Apply(*cur)
	if err != nil {
		return err
	}
	if err := c.projects.Update(ctx, merged); err != nil {
		return err
	}

	// Reload so the header and the next update start from what was stored.
	sess.current = nil
	refreshed, err := c.projects.Get(ctx, cur.ID)
	if err != nil {
		return err
	}
	sess.current = refreshed

	c.printf("\nProject details updated successfully.\n")
	return nil
}

func checkHours(field string) func(string) error {
	return func(input string) error {
		_, err := project.ParseHours(field, input)
		return err
	}
}

func checkDifficulty(input string) error {
	_, err := project.ParseDifficulty(input)
	return err
}
