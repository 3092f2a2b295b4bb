package cli

import (
	"context"

	"todo-text/internal/domain"
	"todo-text/internal/errors"
	"todo-text/internal/services"
)

// ListScope selects which days a listing covers
type ListScope int

const (
	// ScopeToday lists the tasks dated today
	ScopeToday ListScope = iota
	// ScopeAll lists every task from the earliest to the latest date
	ScopeAll
)

// String returns the command name for the scope
func (s ListScope) String() string {
	if s == ScopeAll {
		return "all"
	}
	return "today"
}

// MalformedHeader introduces the lines of the task file that could not be parsed
const MalformedHeader = "The following lines could not be parsed:"

// ListCommand handles the today and all commands
type ListCommand struct {
	app   *App
	scope ListScope
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App, scope ListScope) *ListCommand {
	return &ListCommand{app: app, scope: scope}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("arguments", "usage: todo "+c.scope.String())
	}

	listing, err := c.load()
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return errors.WrapError(err, errors.ErrorTypeNotFound, "task file does not exist yet, add a task first")
		}
		return err
	}

	c.app.logger.Debug("listing tasks",
		"scope", c.scope.String(),
		"days", len(listing.Groups),
		"tasks", listing.TaskCount(),
		"malformed", len(listing.Malformed))
	c.printListing(listing)
	return nil
}

func (c *ListCommand) load() (*services.Listing, error) {
	if c.scope == ScopeAll {
		return c.app.service.All()
	}
	return c.app.service.Today()
}

// printListing prints malformed lines first, then one block per day:
// the date on its own line followed by each task name indented by a tab.
func (c *ListCommand) printListing(listing *services.Listing) {
	out := c.app.out

	if len(listing.Malformed) > 0 {
		out.Warning(MalformedHeader)
		for _, line := range listing.Malformed {
			out.Warning("\t" + line)
		}
	}

	if listing.IsEmpty() {
		out.Muted("No tasks found")
		return
	}

	for _, group := range listing.Groups {
		out.Line(domain.FormatDate(group.Date))
		for _, task := range group.Tasks {
			out.Line("\t" + task.Name())
		}
	}
}
