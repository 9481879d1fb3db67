package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExists(t *testing.T) {
	tmp := t.TempDir()
	lfs := NewLocalFileSystem()

	if ok, err := lfs.Exists(tmp); err != nil || !ok {
		t.Errorf("Exists(%q) = %v, %v; expected true", tmp, ok, err)
	}
	if ok, err := lfs.Exists(filepath.Join(tmp, "missing")); err != nil || ok {
		t.Errorf("Exists on missing path = %v, %v; expected false", ok, err)
	}
}

func TestListFiles(t *testing.T) {
	tmp := t.TempDir()
	lfs := NewLocalFileSystem()

	files := []string{
		filepath.Join(tmp, "a.txt"),
		filepath.Join(tmp, "sub", "b.txt"),
		filepath.Join(tmp, "sub", "deep", "c.txt"),
	}
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	got, err := lfs.ListFiles(tmp)
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(got) != len(files) {
		t.Fatalf("file count mismatch: got %v", got)
	}

	seen := make(map[string]bool, len(got))
	for _, f := range got {
		seen[f] = true
	}
	for _, f := range files {
		if !seen[f] {
			t.Errorf("missing file %q in %v", f, got)
		}
	}
}

func TestCreateDirAllAndDeleteFile(t *testing.T) {
	tmp := t.TempDir()
	lfs := NewLocalFileSystem()

	dir := filepath.Join(tmp, "a", "b", "c")
	if err := lfs.CreateDirAll(dir, 0o755); err != nil {
		t.Fatalf("CreateDirAll failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}

	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := lfs.DeleteFile(file); err != nil {
		t.Fatalf("DeleteFile failed: %v", err)
	}
	if ok, _ := lfs.Exists(file); ok {
		t.Error("file still exists after delete")
	}
}
