package textfile

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"todo-text/internal/domain"
)

const (
	defaultDirPermissions  fs.FileMode = 0755
	defaultFilePermissions fs.FileMode = 0644
)

// Repository defines the operations on the task store
type Repository interface {
	// Path returns the location of the task file
	Path() string

	// Exists reports whether the task file is present
	Exists() (bool, error)

	// Create creates an empty task file (and its directory) if it is missing
	Create() error

	// ReadLines returns every line of the task file in file order
	ReadLines() ([]string, error)

	// Append writes one serialized task to the end of the task file
	Append(task domain.Task) error
}

// FileRepository implements Repository on a line-oriented text file
type FileRepository struct {
	path    string
	dirPerm fs.FileMode
}

// New creates a repository for the task file at path
func New(path string) *FileRepository {
	return &FileRepository{path: path, dirPerm: defaultDirPermissions}
}

// NewWithPermissions creates a repository that creates missing directories with dirPerm
func NewWithPermissions(path string, dirPerm uint32) *FileRepository {
	repo := New(path)
	if dirPerm != 0 {
		repo.dirPerm = fs.FileMode(dirPerm)
	}
	return repo
}

// Path returns the location of the task file
func (r *FileRepository) Path() string {
	return r.path
}

// Exists reports whether the task file is present
func (r *FileRepository) Exists() (bool, error) {
	_, err := os.Stat(r.path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, HandleFileError("stat", r.path, err)
}

// Create creates an empty task file if it is missing. An existing file is left untouched.
func (r *FileRepository) Create() error {
	if err := r.ensureDir(); err != nil {
		return err
	}
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY, defaultFilePermissions)
	if err != nil {
		return HandleFileError("create", r.path, err)
	}
	if err := f.Close(); err != nil {
		return HandleFileError("create", r.path, err)
	}
	return nil
}

// ReadLines reads the whole task file. Line terminators (\n or \r\n) are removed and
// a terminator at the end of the file does not produce an extra empty line.
func (r *FileRepository) ReadLines() ([]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, HandleFileError("read", r.path, err)
	}
	defer f.Close()

	var lines []string
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, trimLineEnding(line))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, HandleFileError("read", r.path, err)
		}
	}
	return lines, nil
}

// Append writes task as a new line. The task file must already exist.
func (r *FileRepository) Append(task domain.Task) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_RDWR, defaultFilePermissions)
	if err != nil {
		return HandleFileError("append", r.path, err)
	}
	defer f.Close()

	record := task.Serialize() + "\n"

	// A hand-edited file may lack the final newline; keep records on separate lines.
	missing, err := missingFinalNewline(f)
	if err != nil {
		return HandleFileError("append", r.path, err)
	}
	if missing {
		record = "\n" + record
	}

	if _, err := f.WriteString(record); err != nil {
		return HandleFileError("append", r.path, err)
	}
	return nil
}

func (r *FileRepository) ensureDir() error {
	dir := filepath.Dir(r.path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, r.dirPerm); err != nil {
		return HandleFileError("create directory", dir, err)
	}
	return nil
}

func missingFinalNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
