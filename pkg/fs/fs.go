package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	Exists(path string) (bool, error)
	CreateDirAll(path string, permission os.FileMode) error
	DeleteFile(path string) error
	ReadFile(path string) ([]byte, error)
	ListFiles(root string) ([]string, error)
	Pwd() (string, error)
}

type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Stat returns file metadata for a path.
func (lfs *LocalFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Checks if a file or directory exists.
func (lfs *LocalFileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Creates a directory along with any missing parents.
func (lfs *LocalFileSystem) CreateDirAll(path string, permission os.FileMode) error {
	return os.MkdirAll(path, permission)
}

// Deletes a file.
func (lfs *LocalFileSystem) DeleteFile(path string) error {
	return os.Remove(path)
}

// Reads file contents.
func (lfs *LocalFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ListFiles returns every regular file beneath root in walk order.
// Non-regular entries (directories, symlinks, devices) are skipped.
func (lfs *LocalFileSystem) ListFiles(root string) ([]string, error) {
	files := make([]string, 0)

	if err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	}); err != nil {
		return nil, err
	}

	return files, nil
}

// Get present working directory.
func (lfs *LocalFileSystem) Pwd() (string, error) {
	return os.Getwd()
}
