package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pders01/modpack/internal/archive"
	"github.com/pders01/modpack/internal/config"
	"github.com/pders01/modpack/internal/installer"
	"github.com/pders01/modpack/internal/models"
	"github.com/pders01/modpack/internal/modinfo"
	"github.com/pders01/modpack/internal/platform"
	"github.com/spf13/afero"
)

// appFs is where built archives are installed
var appFs afero.Fs = afero.NewOsFs()

type pipelineOptions struct {
	modPath          string
	outDir           string
	defaultThumbnail string
	verbose          bool
	install          bool
}

// runPipeline discovers mods, builds each into outDir and optionally
// installs it. Mods are handled one at a time and the first failure stops
// the batch.
func runPipeline(opts pipelineOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	verbose := opts.verbose || config.GetVerbose()
	logger := newLogger(verbose)

	mods, err := modinfo.ResolveModRoots(opts.modPath, cwd)
	if err != nil {
		return err
	}
	if err := modinfo.RequireMods(mods); err != nil {
		return err
	}

	outDir := resolveOutDir(opts.outDir, cwd)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create output directory %s: %w", models.ErrIO, outDir, err)
	}

	thumbnail := opts.defaultThumbnail
	if thumbnail == "" {
		thumbnail = config.GetDefaultThumbnail()
	}
	buildCfg := archive.NewBuildConfig(verbose, archive.LoadDefaultThumbnail(thumbnail, cwd, logger), logger)

	var modsDir string
	if opts.install {
		modsDir, err = resolveModsDir()
		if err != nil {
			return err
		}
	}

	for _, modRoot := range mods {
		logger.Debug("processing mod", "path", modRoot)

		info, err := modinfo.Load(modRoot)
		if err != nil {
			return fmt.Errorf("failed to load mod at %s: %w", modRoot, err)
		}

		baseName := info.BaseName()
		zipPath := models.ArchivePath(outDir, baseName)

		if err := archive.Build(modRoot, zipPath, baseName, buildCfg); err != nil {
			return fmt.Errorf("failed to build %s: %w", baseName, err)
		}

		if !opts.install {
			fmt.Println(successStyle.Render("✓ Built "+baseName) + mutedStyle.Render(" → "+zipPath))
			continue
		}

		dest, err := installer.Install(appFs, zipPath, modsDir)
		if err != nil {
			return fmt.Errorf("failed to install %s: %w", baseName, err)
		}
		fmt.Println(successStyle.Render("✓ Installed "+baseName) + mutedStyle.Render(" → "+dest))
	}

	return nil
}

func resolveOutDir(flagValue, cwd string) string {
	outDir := flagValue
	if outDir == "" {
		outDir = config.GetOutDir()
	}
	if outDir == "" {
		outDir = config.DefaultOutDir
	}
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(cwd, outDir)
	}
	return outDir
}

func resolveModsDir() (string, error) {
	if dir := config.GetModsDir(); dir != "" {
		return dir, nil
	}
	dir, err := platform.ModsDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate the Factorio mods directory: %w", err)
	}
	return dir, nil
}

func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "modpack",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
