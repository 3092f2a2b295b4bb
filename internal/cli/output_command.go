package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"todo-text/internal/errors"
)

// exportDateLayout is the unambiguous date form used by exports
const exportDateLayout = "2006-01-02"

// taskRecord is the exported shape of a task
type taskRecord struct {
	Date string `json:"date" yaml:"date"`
	Name string `json:"name" yaml:"name"`
}

// OutputCommand handles the output command
type OutputCommand struct {
	app *App
}

// NewOutputCommand creates a new output command handler
func NewOutputCommand(app *App) *OutputCommand {
	return &OutputCommand{app: app}
}

// Execute runs the output command
func (c *OutputCommand) Execute(ctx context.Context, args []string) error {
	return c.outputTasks(ctx, args)
}

// outputTasks outputs tasks in the specified format
func (c *OutputCommand) outputTasks(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "usage: todo output format=csv|yaml|json")
	}

	format := args[0]
	if !strings.HasPrefix(format, "format=") {
		return errors.NewInvalidInputError("format", "invalid format option, expected format=csv|yaml|json")
	}

	var write func(io.Writer, []taskRecord) error
	format = strings.TrimPrefix(format, "format=")
	switch format {
	case "csv":
		write = writeCSV
	case "yaml":
		write = writeYAML
	case "json":
		write = writeJSON
	default:
		return errors.NewInvalidInputError("format", "unsupported format")
	}

	result, err := c.app.service.Load()
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return errors.WrapError(err, errors.ErrorTypeNotFound, "task file does not exist yet, add a task first")
		}
		return err
	}
	if result.HasMalformed() {
		c.app.logger.Warn("skipping lines that could not be parsed", "count", len(result.Malformed))
	}

	records := make([]taskRecord, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		records = append(records, taskRecord{
			Date: task.Date().Format(exportDateLayout),
			Name: task.Name(),
		})
	}

	return write(c.app.out.Writer(), records)
}

// writeCSV writes a date,name header followed by one row per task
func writeCSV(w io.Writer, records []taskRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"date", "name"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write([]string{record.Date, record.Name}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeYAML(w io.Writer, records []taskRecord) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return encoder.Close()
}

func writeJSON(w io.Writer, records []taskRecord) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
