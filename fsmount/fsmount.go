// Package fsmount implements the Filesystem collaborator (§6): a single
// mount point that is either a plain directory or a zip archive, exposing
// read-only asset access plus a separate writable user-data root.
//
// Grounded on the original engine's core/fs.c, which detects directory
// vs. archive via stat() and dispatches reads accordingly; stdlib
// archive/zip replaces miniz since no zip library appears anywhere in the
// example corpus (justified in DESIGN.md).
package fsmount

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Filesystem is the core's asset/save-data collaborator (§6).
type Filesystem interface {
	// Read returns the bytes of path from the mounted asset source, or
	// (nil, false) if it does not exist or the mount failed to open
	// (§7 asset-missing: never an error the caller must propagate).
	Read(path string) ([]byte, bool)

	// ReadUserData reads path from the writable user-data root.
	ReadUserData(path string) ([]byte, bool)

	// WriteUserData writes data to path under the user-data root,
	// creating parent directories as needed. Failures are reported so the
	// caller can log them (§7 "I/O failure on save: logged").
	WriteUserData(path string, data []byte) error
}

// Mount is a Filesystem backed by either a directory or a zip archive for
// assets, plus an always-directory user-data root.
type Mount struct {
	dirBase  string    // non-empty when assets are a plain directory
	archive  *zip.ReadCloser
	userData string
}

// Open mounts assetPath (a directory or a zip archive) for reads and
// userDataPath as the writable root. Open never fails outright: if
// assetPath is neither a readable directory nor a valid zip, it returns a
// Mount whose Read always misses, matching the original engine's
// "failed to mount" log-and-continue behavior (§7 is not fatal here;
// only platform init is fatal, and asset mounting is not platform init).
func Open(assetPath, userDataPath string) (*Mount, error) {
	m := &Mount{userData: userDataPath}

	info, err := os.Stat(assetPath)
	if err == nil && info.IsDir() {
		m.dirBase = assetPath
		return m, nil
	}

	rc, zerr := zip.OpenReader(assetPath)
	if zerr != nil {
		return m, fmt.Errorf("fsmount: %q is neither a directory nor a valid archive: %w", assetPath, zerr)
	}
	m.archive = rc
	return m, nil
}

// Close releases the archive reader, if one is open.
func (m *Mount) Close() error {
	if m.archive != nil {
		return m.archive.Close()
	}
	return nil
}

// Read implements Filesystem.
func (m *Mount) Read(path string) ([]byte, bool) {
	if m.dirBase != "" {
		data, err := os.ReadFile(filepath.Join(m.dirBase, path))
		if err != nil {
			return nil, false
		}
		return data, true
	}
	if m.archive == nil {
		return nil, false
	}
	f, err := m.archive.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, false
	}
	return data, true
}

// ReadUserData implements Filesystem.
func (m *Mount) ReadUserData(path string) ([]byte, bool) {
	data, err := os.ReadFile(filepath.Join(m.userData, path))
	if err != nil {
		return nil, false
	}
	return data, true
}

// WriteUserData implements Filesystem.
func (m *Mount) WriteUserData(path string, data []byte) error {
	full := filepath.Join(m.userData, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("fsmount: create user-data dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("fsmount: write %q: %w", path, err)
	}
	return nil
}
