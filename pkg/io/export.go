package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/markup/pkg/core/markup"
	"github.com/matzehuels/markup/pkg/errors"
)

// WriteMarkup writes nodes to w in canonical markup notation.
func WriteMarkup(w io.Writer, nodes []markup.Node) error {
	if _, err := io.WriteString(w, markup.Format(nodes)); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportArtifact writes rendered output to path, creating parent
// directories as needed. The file is written to a temporary name first and
// renamed into place.
func ExportArtifact(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
