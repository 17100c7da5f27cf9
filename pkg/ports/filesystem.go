package ports

import (
	"io"
)

// FileSystem abstracts file system operations.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error

	// FileSize returns the current size of a file in bytes.
	FileSize(path string) (int64, error)

	// ReadDir lists the entry names of a directory, sorted by name.
	ReadDir(path string) ([]string, error)

	// Create opens a file for writing, truncating it if it exists.
	// Parent directories are created as needed.
	Create(path string) (io.WriteCloser, error)
}
