package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. MODPACK_BUILD_OUT_DIR
	EnvPrefix = "MODPACK"

	DefaultOutDir = "build"
)

// File mirrors config.toml
type File struct {
	Build   BuildSection   `toml:"build"`
	Install InstallSection `toml:"install"`
}

type BuildSection struct {
	OutDir           string `toml:"out_dir"`
	DefaultThumbnail string `toml:"default_thumbnail"`
	Verbose          bool   `toml:"verbose"`
}

type InstallSection struct {
	ModsDir string `toml:"mods_dir"`
}

// SetDefaults registers default values and environment binding on v
func SetDefaults(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("build.out_dir", DefaultOutDir)
	v.SetDefault("build.default_thumbnail", "")
	v.SetDefault("build.verbose", false)
	v.SetDefault("install.mods_dir", "")
}

// Dir returns the directory holding config.toml
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "modpack"), nil
}

// GetOutDir returns where archives are built
func GetOutDir() string {
	return viper.GetString("build.out_dir")
}

// GetDefaultThumbnail returns the configured default thumbnail path
func GetDefaultThumbnail() string {
	return viper.GetString("build.default_thumbnail")
}

// GetVerbose reports whether verbose output is enabled in config
func GetVerbose() bool {
	return viper.GetBool("build.verbose")
}

// GetModsDir returns the mods directory override, empty for the platform default
func GetModsDir() string {
	return viper.GetString("install.mods_dir")
}

// Defaults returns the default config file contents
func Defaults() File {
	return File{
		Build: BuildSection{
			OutDir: DefaultOutDir,
		},
	}
}

// Encode renders f as TOML
func Encode(f File) ([]byte, error) {
	return toml.Marshal(f)
}

// Decode parses TOML config content
func Decode(data []byte) (File, error) {
	var f File
	err := toml.Unmarshal(data, &f)
	return f, err
}
