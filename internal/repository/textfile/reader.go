package textfile

import (
	"todo-text/internal/domain"
)

// LoadResult splits the raw store lines into tasks and lines that failed to parse.
// Both slices keep the original file order.
type LoadResult struct {
	Tasks     []domain.Task
	Malformed []string
}

// LoadAll parses every line. It never fails: a line that is not a task is
// returned verbatim in Malformed.
func LoadAll(lines []string) LoadResult {
	result := LoadResult{
		Tasks:     make([]domain.Task, 0, len(lines)),
		Malformed: make([]string, 0),
	}
	for _, line := range lines {
		if task, ok := domain.TryParseTask(line); ok {
			result.Tasks = append(result.Tasks, task)
		} else {
			result.Malformed = append(result.Malformed, line)
		}
	}
	return result
}

// HasMalformed reports whether any line failed to parse.
func (r LoadResult) HasMalformed() bool {
	return len(r.Malformed) > 0
}
