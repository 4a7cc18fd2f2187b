// Package console is the interactive menu front end. It reads one line at a
// time from its input, calls the project service and writes results to its
// output.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rpggio/projects/internal/domain/project"
	"github.com/rpggio/projects/internal/repository"
)

// ProjectService defines project operations needed by the console.
type ProjectService interface {
	Add(ctx context.Context, proj *project.Project) (*project.Project, error)
	List(ctx context.Context) ([]project.ProjectSummary, error)
	Get(ctx context.Context, id int64) (*project.Project, error)
	Update(ctx context.Context, proj *project.Project) error
}

// Console runs the menu loop.
type Console struct {
	projects ProjectService
	in       *bufio.Reader
	out      io.Writer
	logger   *slog.Logger
}

// session is the state one run of the loop carries between actions.
type session struct {
	current *project.Project
}

var operations = []string{
	"1) Add a project",
	"2) List projects",
	"3) Select a project",
	"4) Update project details",
}

// New creates a console reading from in and writing to out.
func New(projects ProjectService, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Console{
		projects: projects,
		in:       bufio.NewReader(in),
		out:      out,
		logger:   logger.With("session_id", uuid.NewString()),
	}
}

// Run prints the menu and performs selections until the user submits a blank
// selection or input ends. Failed actions are reported and the loop goes on;
// only a failure to read input is returned.
func (c *Console) Run(ctx context.Context) error {
	var sess session
	c.logger.Info("console session started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := c.step(ctx, &sess)
		if errors.Is(err, errQuit) {
			c.printf("Exiting the menu.\n")
			c.logger.Info("console session ended")
			return nil
		}
		var ie *inputError
		if errors.As(err, &ie) {
			return ie.err
		}
		if err != nil {
			c.report(err)
		}
	}
}

func (c *Console) step(ctx context.Context, sess *session) error {
	c.printOperations(sess)

	selection, err := c.promptInt("Enter a menu selection")
	if err != nil {
		return err
	}
	if selection == nil {
		return errQuit
	}

	c.logger.Debug("menu selection", "selection", *selection)

	switch *selection {
	case 1:
		return c.createProject(ctx)
	case 2:
		return c.listProjects(ctx)
	case 3:
		return c.selectProject(ctx, sess)
	case 4:
		return c.updateProjectDetails(ctx, sess)
	default:
		c.printf("\n%d is not a valid selection. Try again.\n", *selection)
		return nil
	}
}

func (c *Console) printOperations(sess *session) {
	c.printf("\nThese are the available selections. Press the Enter key to quit:\n")
	for _, line := range operations {
		c.printf("  %s\n", line)
	}

	if sess.current == nil {
		c.printf("\nYou are not working with a project.\n")
	} else {
		c.printf("\nYou are working with project: %s\n", sess.current)
	}
}

// report prints an action failure according to its kind.
func (c *Console) report(err error) {
	var (
		verr *project.ValidationError
		nf   *project.NotFoundError
		serr *repository.StoreError
	)
	switch {
	case errors.As(err, &verr):
		c.logger.Debug("invalid input", "error", err)
		c.printf("\nError: Invalid input, %s. Try again.\n", verr)
	case errors.As(err, &nf):
		c.logger.Debug("project not found", "project_id", nf.ID)
		c.printf("\nError: %s. Try again.\n", nf)
	case errors.As(err, &serr):
		c.logger.Warn("store failure", "op", serr.Op, "error", serr.Err)
		c.printf("\nError: Database error, %s. Try again.\n", serr)
	default:
		c.logger.Error("action failed", "error", err)
		c.printf("\nError: %s. Try again.\n", err)
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
