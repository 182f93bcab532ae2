package installer

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pders01/modpack/internal/models"
	"github.com/spf13/afero"
)

// Install copies the archive at archivePath into destDir, creating destDir
// if needed, and returns the installed path. The copy lands under a
// temporary name first so the game never sees a partial archive.
func Install(fsys afero.Fs, archivePath, destDir string) (dest string, err error) {
	if err := fsys.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("%w: failed to create mods directory %s: %w", models.ErrIO, destDir, err)
	}

	dest = filepath.Join(destDir, filepath.Base(archivePath))
	tmpPath := filepath.Join(destDir, fmt.Sprintf(".%s.%s.part", filepath.Base(archivePath), uuid.NewString()))

	if err := copyFile(fsys, archivePath, tmpPath); err != nil {
		_ = fsys.Remove(tmpPath)
		return "", fmt.Errorf("%w: failed to copy %s to %s: %w", models.ErrIO, archivePath, destDir, err)
	}

	if err := fsys.Rename(tmpPath, dest); err != nil {
		_ = fsys.Remove(tmpPath)
		return "", fmt.Errorf("%w: failed to install %s: %w", models.ErrIO, dest, err)
	}

	return dest, nil
}

func copyFile(fsys afero.Fs, src, dst string) (err error) {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
