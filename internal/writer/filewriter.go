// Package writer provides byte sinks for encoded cursor files.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes encoded cursor bytes to a filesystem path atomically.
type FileWriter struct {
	Path string
	// Perm is applied to the final file. Zero selects 0o644.
	Perm os.FileMode
}

// WriteFile writes data to the configured path via temp file, fsync and rename.
func (w *FileWriter) WriteFile(data []byte) error {
	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".curkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}

	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	if chmodErr := tmpFile.Chmod(perm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}

	if syncErr := syncFile(tmpFile); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}
