package textfile

import (
	stderrors "errors"
	"io/fs"

	"todo-text/internal/errors"
)

// HandleFileError converts file system errors to structured app errors
func HandleFileError(operation string, path string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		notFound := errors.NewNotFoundError("task file", path)
		notFound.Op = operation
		return notFound
	case stderrors.Is(err, fs.ErrPermission):
		return errors.NewPermissionError(operation, path, err)
	default:
		return errors.NewStorageError(operation, path, err)
	}
}
