package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rpggio/projects/internal/domain/project"
	"github.com/shopspring/decimal"
)

// errQuit ends the loop without an error: blank menu selection or end of input.
var errQuit = errors.New("quit")

// inputError is a read failure other than end of input.
type inputError struct {
	err error
}

func (e *inputError) Error() string {
	return fmt.Sprintf("read input: %v", e.err)
}

// readLine returns the next line without its terminator.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", &inputError{err: err}
		}
		if line == "" {
			return "", errQuit
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptString prints prompt and returns the trimmed reply; blank is "".
func (c *Console) promptString(prompt string) (string, error) {
	c.printf("%s: ", prompt)
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt returns nil for a blank reply.
func (c *Console) promptInt(prompt string) (*int, error) {
	input, err := c.promptString(prompt)
	if err != nil || input == "" {
		return nil, err
	}
	v, err := strconv.Atoi(input)
	if err != nil {
		return nil, &project.ValidationError{Message: fmt.Sprintf("%s is not a valid number", input)}
	}
	return &v, nil
}

func (c *Console) promptID(prompt string) (*int64, error) {
	input, err := c.promptString(prompt)
	if err != nil || input == "" {
		return nil, err
	}
	v, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return nil, &project.ValidationError{Field: "project_id", Message: fmt.Sprintf("%s is not a valid number", input)}
	}
	return &v, nil
}

func (c *Console) promptHours(prompt, field string) (decimal.NullDecimal, error) {
	input, err := c.promptString(prompt)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return project.ParseHours(field, input)
}

func (c *Console) promptDifficulty(prompt string) (*int, error) {
	input, err := c.promptString(prompt)
	if err != nil {
		return nil, err
	}
	return project.ParseDifficulty(input)
}

// promptChange reads a "keep current" reply and rejects it right away if
// check fails, before any further field is asked for.
func (c *Console) promptChange(prompt string, check func(string) error) (string, error) {
	input, err := c.promptString(prompt)
	if err != nil {
		return "", err
	}
	if check != nil {
		if err := check(input); err != nil {
			return "", err
		}
	}
	return input, nil
}
