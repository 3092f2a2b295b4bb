package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"todo-text/internal/domain"
	"todo-text/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("arguments", "usage: todo add <name> <dd/MM/yy>")
	}

	task, err := c.app.validator.ValidateAddInput(args[0], args[1])
	if err != nil {
		return err
	}

	proceed, err := c.ensureStore(ctx)
	if err != nil || !proceed {
		return err
	}

	if err := c.app.service.AddTask(task); err != nil {
		return err
	}
	c.app.out.Success(fmt.Sprintf("Added task: %s (%s)", task.Name(), domain.FormatDate(task.Date())))
	return nil
}

// ensureStore makes sure the task file exists, asking before creating it.
// It returns false when the user declines.
func (c *AddCommand) ensureStore(ctx context.Context) (bool, error) {
	exists, err := c.app.service.StoreExists()
	if err != nil {
		return false, err
	}
	if exists {
		return true, nil
	}

	if !c.app.assumeYes {
		question := fmt.Sprintf("File '%s' is missing, press Y to create it and continue or any other key to exit",
			filepath.Base(c.app.service.StorePath()))
		accepted, err := c.app.confirmer.Confirm(ctx, question)
		if err != nil {
			return false, err
		}
		if !accepted {
			c.app.logger.Debug("task file creation declined", "path", c.app.service.StorePath())
			return false, nil
		}
	}

	if err := c.app.service.CreateStore(); err != nil {
		return false, err
	}
	c.app.out.Success("File created")
	return true, nil
}
