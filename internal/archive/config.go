package archive

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultExcludes are top-level directories never packed into a mod archive
var DefaultExcludes = []string{"build", ".git", ".github", ".idea", ".vscode"}

// FallbackThumbnail is read relative to the invocation directory when no
// thumbnail path is given
var FallbackThumbnail = filepath.Join("assets", "default_thumbnail.png")

// BuildConfig is constructed once per invocation and shared read-only by
// every build
type BuildConfig struct {
	Verbose          bool
	Excludes         []string
	DefaultThumbnail []byte
	Logger           *log.Logger
}

// NewBuildConfig creates a config with the default exclusion list
func NewBuildConfig(verbose bool, defaultThumbnail []byte, logger *log.Logger) *BuildConfig {
	if logger == nil {
		logger = log.Default()
	}
	return &BuildConfig{
		Verbose:          verbose,
		Excludes:         DefaultExcludes,
		DefaultThumbnail: defaultThumbnail,
		Logger:           logger,
	}
}

func (c *BuildConfig) logger() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}

// verbosef logs one line per archived entry when verbose output is on
func (c *BuildConfig) verbosef(msg string, keyvals ...interface{}) {
	if c.Verbose {
		c.logger().Debug(msg, keyvals...)
	}
}

func (c *BuildConfig) excluded(name string) bool {
	for _, ex := range c.Excludes {
		if ex == name {
			return true
		}
	}
	return false
}

// LoadDefaultThumbnail reads the thumbnail from explicit if set, falling back
// to FallbackThumbnail under baseDir. Missing files are not an error: nil
// means no thumbnail is injected.
func LoadDefaultThumbnail(explicit, baseDir string, logger *log.Logger) []byte {
	if logger == nil {
		logger = log.Default()
	}

	if explicit != "" {
		data, err := os.ReadFile(explicit)
		if err == nil {
			return data
		}
		logger.Warn("could not read default thumbnail, trying fallback", "path", explicit, "err", err)
	}

	fallback := filepath.Join(baseDir, FallbackThumbnail)
	data, err := os.ReadFile(fallback)
	if err != nil {
		logger.Debug("no default thumbnail available", "path", fallback)
		return nil
	}
	return data
}
