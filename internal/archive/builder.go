package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/pders01/modpack/internal/models"
)

// entryTime is stamped on every entry so rebuilding an unchanged mod
// produces the same archive bytes
var entryTime = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Build creates a zip at outPath holding the mod tree under baseName/.
// An existing file at outPath is replaced.
func Build(modRoot, outPath, baseName string, cfg *BuildConfig) (err error) {
	if cfg == nil {
		cfg = NewBuildConfig(false, nil, nil)
	}

	if err := prepareOutputFile(outPath); err != nil {
		return err
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: failed to create archive %s: %w", models.ErrIO, outPath, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: failed to close archive %s: %w", models.ErrIO, outPath, closeErr)
		}
		if err != nil {
			_ = os.Remove(outPath)
		}
	}()

	// A mod root reached through a symlink is walked at its target. Links
	// below the root are never followed.
	root, err := filepath.EvalSymlinks(modRoot)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve mod root %s: %w", models.ErrIO, modRoot, err)
	}

	skip, err := outputSkipper(root, outPath)
	if err != nil {
		return err
	}

	zipWriter := zip.NewWriter(outFile)
	zipWriter.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		// The mod root itself becomes the baseName/ prefix, never an entry
		if relPath == "." {
			return nil
		}

		if skipped, skipErr := skip(path, d); skipped {
			cfg.verbosef("skipping output location", "path", relPath)
			return skipErr
		}

		if d.IsDir() && cfg.excluded(firstComponent(relPath)) {
			cfg.verbosef("skipping excluded directory", "path", relPath)
			return filepath.SkipDir
		}

		if d.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				return err
			}
			if target.IsDir() {
				cfg.verbosef("skipping symlinked directory", "path", relPath)
				return nil
			}
		}

		zipPath := entryName(baseName, relPath)

		if d.IsDir() {
			return addDirectory(zipWriter, zipPath, cfg)
		}
		return addFile(zipWriter, path, zipPath, cfg)
	})
	if walkErr != nil {
		return fmt.Errorf("%w: failed to archive %s: %w", models.ErrIO, modRoot, walkErr)
	}

	if err := addDefaultThumbnailIfMissing(zipWriter, root, baseName, cfg); err != nil {
		return err
	}

	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("%w: failed to finalize archive %s: %w", models.ErrIO, outPath, err)
	}

	cfg.logger().Info("built archive", "path", outPath)
	return nil
}

// prepareOutputFile creates parent directories and removes a stale archive
func prepareOutputFile(outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("%w: failed to create output directory: %w", models.ErrIO, err)
	}
	if err := os.Remove(outPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: failed to remove existing archive %s: %w", models.ErrIO, outPath, err)
	}
	return nil
}

// outputSkipper returns a check reporting whether a walked path is the
// archive being written or lies in an output directory under the mod root.
// Stale archives there from earlier runs must not be packed.
func outputSkipper(root, outPath string) (func(path string, d fs.DirEntry) (bool, error), error) {
	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve %s: %w", models.ErrIO, outPath, err)
	}

	outDir := filepath.Dir(absOut)
	if resolved, err := filepath.EvalSymlinks(outDir); err == nil {
		outDir = resolved
	}
	outFile := filepath.Join(outDir, filepath.Base(absOut))

	// An output directory equal to the root cannot be skipped wholesale
	skipDir := outDir != root && isWithin(root, outDir)

	return func(path string, d fs.DirEntry) (bool, error) {
		switch {
		case path == outFile:
			return true, nil
		case skipDir && d.IsDir() && path == outDir:
			return true, filepath.SkipDir
		}
		return false, nil
	}, nil
}

func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// entryName maps a path relative to the mod root into the archive
func entryName(baseName, relPath string) string {
	return baseName + "/" + filepath.ToSlash(relPath)
}

func firstComponent(relPath string) string {
	first, _, _ := strings.Cut(filepath.ToSlash(relPath), "/")
	return first
}

func addDirectory(zipWriter *zip.Writer, zipPath string, cfg *BuildConfig) error {
	header := &zip.FileHeader{
		Name:     zipPath + "/",
		Method:   zip.Store,
		Modified: entryTime,
	}
	header.SetMode(fs.ModeDir | 0755)

	if _, err := zipWriter.CreateHeader(header); err != nil {
		return fmt.Errorf("failed to create directory entry %s: %w", zipPath, err)
	}

	cfg.verbosef("added directory", "entry", header.Name)
	return nil
}

func addFile(zipWriter *zip.Writer, filePath, zipPath string, cfg *BuildConfig) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	header := &zip.FileHeader{
		Name:     zipPath,
		Method:   zip.Deflate,
		Modified: entryTime,
	}
	header.SetMode(0644)

	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to create entry %s: %w", zipPath, err)
	}

	if _, err := io.Copy(writer, file); err != nil {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}

	cfg.verbosef("added file", "source", filePath, "entry", zipPath)
	return nil
}

// addDefaultThumbnailIfMissing injects the configured thumbnail when the
// mod root has no thumbnail.png of its own
func addDefaultThumbnailIfMissing(zipWriter *zip.Writer, modRoot, baseName string, cfg *BuildConfig) error {
	if len(cfg.DefaultThumbnail) == 0 {
		return nil
	}
	if _, err := os.Lstat(filepath.Join(modRoot, models.ThumbnailFile)); err == nil {
		return nil
	}

	thumbnailPath := models.ThumbnailEntry(baseName)
	header := &zip.FileHeader{
		Name:     thumbnailPath,
		Method:   zip.Deflate,
		Modified: entryTime,
	}
	header.SetMode(0644)

	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("%w: failed to create entry %s: %w", models.ErrIO, thumbnailPath, err)
	}
	if _, err := writer.Write(cfg.DefaultThumbnail); err != nil {
		return fmt.Errorf("%w: failed to write default thumbnail: %w", models.ErrIO, err)
	}

	cfg.verbosef("injected default thumbnail", "entry", thumbnailPath)
	return nil
}
