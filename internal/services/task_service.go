package services

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"todo-text/internal/domain"
	"todo-text/internal/repository/textfile"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo   textfile.Repository
	now    func() time.Time
	logger *log.Logger
}

// NewTaskService creates a new TaskService instance.
// now supplies the current time for "today"; nil means time.Now.
func NewTaskService(repo textfile.Repository, now func() time.Time, logger *log.Logger) TaskService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &taskServiceImpl{
		repo:   repo,
		now:    now,
		logger: logger,
	}
}

func (s *taskServiceImpl) StorePath() string {
	return s.repo.Path()
}

func (s *taskServiceImpl) StoreExists() (bool, error) {
	return s.repo.Exists()
}

func (s *taskServiceImpl) CreateStore() error {
	s.logger.Debug("creating task file", "path", s.repo.Path())
	return s.repo.Create()
}

func (s *taskServiceImpl) AddTask(task domain.Task) error {
	s.logger.Debug("appending task", "path", s.repo.Path(), "record", task.Serialize())
	return s.repo.Append(task)
}

func (s *taskServiceImpl) Load() (textfile.LoadResult, error) {
	lines, err := s.repo.ReadLines()
	if err != nil {
		return textfile.LoadResult{}, err
	}
	result := textfile.LoadAll(lines)
	s.logger.Debug("loaded task file",
		"path", s.repo.Path(),
		"lines", len(lines),
		"tasks", len(result.Tasks),
		"malformed", len(result.Malformed))
	return result, nil
}

func (s *taskServiceImpl) Today() (*Listing, error) {
	result, err := s.Load()
	if err != nil {
		return nil, err
	}
	today := domain.DateOf(s.now())
	return &Listing{
		Malformed: result.Malformed,
		Groups:    SelectAndGroup(result.Tasks, today, today),
	}, nil
}

func (s *taskServiceImpl) All() (*Listing, error) {
	result, err := s.Load()
	if err != nil {
		return nil, err
	}
	listing := &Listing{Malformed: result.Malformed, Groups: []DayGroup{}}
	from, to, ok := FullRange(result.Tasks)
	if !ok {
		return listing, nil
	}
	listing.Groups = SelectAndGroup(result.Tasks, from, to)
	return listing, nil
}
