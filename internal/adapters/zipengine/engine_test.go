package zipengine

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"defaults", DefaultOptions(), false},
		{"store level", Options{Level: StoreLevel, BufferSize: 4096}, false},
		{"best level", Options{Level: BestLevel, BufferSize: 4096}, false},
		{"level too high", Options{Level: 10, BufferSize: 4096}, true},
		{"negative level", Options{Level: -1, BufferSize: 4096}, true},
		{"buffer too small", Options{Level: DefaultLevel, BufferSize: 1024}, true},
		{"buffer too large", Options{Level: DefaultLevel, BufferSize: 32 * 1024 * 1024}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.opts, err, tt.wantErr)
			}
		})
	}
}

func TestCreateOpenRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.txt"), "hello from a")
	writeFile(t, filepath.Join(tmp, "b.txt"), "hello from b")

	engine, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	archive := filepath.Join(tmp, "out.zip")
	writer, err := engine.Create(archive)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := writer.Append("a.txt", filepath.Join(tmp, "a.txt")); err != nil {
		t.Fatalf("Append a.txt failed: %v", err)
	}
	if err := writer.Append("dir/b.txt", filepath.Join(tmp, "b.txt")); err != nil {
		t.Fatalf("Append dir/b.txt failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reader, err := engine.Open(archive)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer reader.Close()

	entries := reader.Entries()
	if len(entries) != 2 {
		t.Fatalf("entry count mismatch: got %d, expected 2", len(entries))
	}
	if entries[0].Name != "a.txt" || entries[1].Name != "dir/b.txt" {
		t.Errorf("entry order mismatch: got %q, %q", entries[0].Name, entries[1].Name)
	}
	for _, e := range entries {
		if e.Dir {
			t.Errorf("entry %s unexpectedly flagged as directory", e.Name)
		}
		if e.Checksum == 0 {
			t.Errorf("entry %s has no checksum", e.Name)
		}
	}

	dest := filepath.Join(tmp, "restored-b.txt")
	if err := reader.Extract("dir/b.txt", dest); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	if string(data) != "hello from b" {
		t.Errorf("extracted content mismatch: got %q", data)
	}
}

func TestExtractOverwritesExisting(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.txt"), "fresh content")

	engine, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	archive := filepath.Join(tmp, "out.zip")
	writer, err := engine.Create(archive)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := writer.Append("a.txt", filepath.Join(tmp, "a.txt")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	dest := filepath.Join(tmp, "existing.txt")
	writeFile(t, dest, "stale content that is longer")

	reader, err := engine.Open(archive)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer reader.Close()

	if err := reader.Extract("a.txt", dest); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	if string(data) != "fresh content" {
		t.Errorf("overwrite mismatch: got %q", data)
	}
}

func TestExtractUnknownEntry(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.txt"), "content")

	engine, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	archive := filepath.Join(tmp, "out.zip")
	writer, err := engine.Create(archive)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := writer.Append("a.txt", filepath.Join(tmp, "a.txt")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reader, err := engine.Open(archive)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer reader.Close()

	if err := reader.Extract("missing.txt", filepath.Join(tmp, "missing.txt")); err == nil {
		t.Error("expected error for unknown entry")
	}
}
