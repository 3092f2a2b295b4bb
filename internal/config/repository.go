package config

import (
	"todo-text/internal/repository/textfile"
)

// CreateRepository creates the task file repository described by the configuration
func CreateRepository(config *Config) *textfile.FileRepository {
	return textfile.NewWithPermissions(config.TaskFilePath(), config.Store.DirPermissions)
}
