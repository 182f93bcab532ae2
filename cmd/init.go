package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pders01/modpack/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Write $HOME/.config/modpack/config.toml with the default settings.

An existing config file is left untouched. Edit it to change the output
directory, point at a default thumbnail, or override where mods are
installed (install.mods_dir).`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := cfgFile
	if configPath == "" {
		configDir, err := config.Dir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(configDir, "config.toml")
	}

	if existing, err := os.ReadFile(configPath); err == nil {
		if _, err := config.Decode(existing); err != nil {
			return fmt.Errorf("existing config %s is invalid: %w", configPath, err)
		}
		fmt.Printf("Config already exists: %s\n", configPath)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content, err := config.Encode(config.Defaults())
	if err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Println(successStyle.Render("✓ Created default config: " + configPath))
	return nil
}
