package modinfo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pders01/modpack/internal/models"
)

// Load reads and parses info.json from a mod root
func Load(modRoot string) (*models.Info, error) {
	infoPath := filepath.Join(modRoot, models.MetadataFile)

	content, err := os.ReadFile(infoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", models.ErrIO, infoPath, err)
	}

	var info models.Info
	if err := json.Unmarshal(content, &info); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", models.ErrParse, infoPath, err)
	}

	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", models.ErrParse, infoPath, err)
	}

	return &info, nil
}

// IsModRoot checks if dir contains info.json
func IsModRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, models.MetadataFile))
	return err == nil && !info.IsDir()
}

// ResolveModRoots returns the explicit mod path if one is given, or every
// mod detected from cwd otherwise
func ResolveModRoots(explicit, cwd string) ([]string, error) {
	if explicit == "" {
		return DetectModRoots(cwd)
	}

	path := explicit
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	path = filepath.Clean(path)

	if !IsModRoot(path) {
		return nil, fmt.Errorf("%w: no %s found at %s", models.ErrNotAMod, models.MetadataFile, path)
	}

	return []string{path}, nil
}

// DetectModRoots includes root if it is a mod, followed by each direct
// child directory that is one. Detection is not recursive.
func DetectModRoots(root string) ([]string, error) {
	var mods []string

	if IsModRoot(root) {
		mods = append(mods, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read directory %s: %w", models.ErrIO, root, err)
	}

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if !isDir(entry, path) {
			continue
		}
		if IsModRoot(path) {
			mods = append(mods, path)
		}
	}

	return mods, nil
}

// isDir follows symlinks so that a linked mod folder is still detected
func isDir(entry os.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// RequireMods turns an empty discovery result into ErrNoModsFound
func RequireMods(mods []string) error {
	if len(mods) == 0 {
		return errors.Join(models.ErrNoModsFound,
			fmt.Errorf("place an %s in the current directory or in its subfolders", models.MetadataFile))
	}
	return nil
}
