package fsmount

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenDirectoryMount(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "wall.png"), []byte("pixels"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Open(dir, t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer m.Close()

	data, ok := m.Read("wall.png")
	if !ok || string(data) != "pixels" {
		t.Fatalf("Read() = %q, %v; want pixels, true", data, ok)
	}
}

func TestReadMissingFileMisses(t *testing.T) {
	dir := t.TempDir()
	m, err := Open(dir, t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer m.Close()
	if _, ok := m.Read("nope.png"); ok {
		t.Fatalf("expected a miss for a nonexistent asset")
	}
}

func TestOpenZipMount(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "assets.zip")
	f, err := os.Create(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("map.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(`{"points":[]}`)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	m, err := Open(zipPath, t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer m.Close()

	data, ok := m.Read("map.json")
	if !ok || string(data) != `{"points":[]}` {
		t.Fatalf("Read() = %q, %v; want map contents, true", data, ok)
	}
}

func TestOpenNeitherDirNorZipFails(t *testing.T) {
	dir := t.TempDir()
	bogus := filepath.Join(dir, "not_an_archive.bin")
	if err := os.WriteFile(bogus, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Open(bogus, t.TempDir())
	if err == nil {
		t.Fatalf("expected an error mounting a non-directory, non-zip path")
	}
}

func TestWriteThenReadUserData(t *testing.T) {
	m, err := Open(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer m.Close()

	if err := m.WriteUserData("config.json", []byte(`{"fullscreen":false}`)); err != nil {
		t.Fatalf("WriteUserData: %v", err)
	}
	data, ok := m.ReadUserData("config.json")
	if !ok || string(data) != `{"fullscreen":false}` {
		t.Fatalf("ReadUserData() = %q, %v", data, ok)
	}
}

func TestWriteUserDataCreatesNestedDirs(t *testing.T) {
	m, err := Open(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer m.Close()
	if err := m.WriteUserData("saves/slot1.json", []byte("{}")); err != nil {
		t.Fatalf("WriteUserData: %v", err)
	}
	if _, ok := m.ReadUserData("saves/slot1.json"); !ok {
		t.Fatalf("expected nested user-data file to be readable back")
	}
}
