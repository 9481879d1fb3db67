package ports

import "os"

// FileSystemPort is the filesystem surface the core services depend on.
type FileSystemPort interface {
	Stat(path string) (os.FileInfo, error)
	Exists(path string) (bool, error)
	CreateDirAll(path string, permission os.FileMode) error
	DeleteFile(path string) error
	ReadFile(path string) ([]byte, error)
	ListFiles(root string) ([]string, error)
	Pwd() (string, error)
}
