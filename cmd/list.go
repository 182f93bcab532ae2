package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alpkeskin/gotoon"
	"github.com/pders01/modpack/internal/models"
	"github.com/pders01/modpack/internal/modinfo"
	"github.com/spf13/cobra"
)

var (
	listJSON bool
	listToon bool
)

var listCmd = &cobra.Command{
	Use:   "list [mod-path]",
	Short: "List detected mods",
	Long: `Show the mods that build and install would pick up, with the archive
name each one produces.

Examples:
  modpack list          # Human-readable list
  modpack list --json   # JSON for scripts
  modpack list --toon   # Toon for agents`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listToon, "toon", false, "Output as Toon")
}

// ModListing describes one detected mod
type ModListing struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Title   string `json:"title,omitempty"`
	Archive string `json:"archive"`
	Path    string `json:"path"`
}

// ModList is the list output
type ModList struct {
	Mods []ModListing `json:"mods"`
}

func runList(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	mods, err := modinfo.ResolveModRoots(optionalArg(args), cwd)
	if err != nil {
		return err
	}

	list, err := collectListings(mods)
	if err != nil {
		return err
	}

	if listJSON {
		output, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if listToon {
		output, err := gotoon.Encode(list)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	if len(list.Mods) == 0 {
		fmt.Println("No mods found")
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Mods (%d)", len(list.Mods))))
	fmt.Println()
	for _, mod := range list.Mods {
		fmt.Printf("  %s %s\n", mod.Name, mutedStyle.Render(mod.Version))
		if mod.Title != "" {
			fmt.Printf("    Title:   %s\n", mod.Title)
		}
		fmt.Printf("    Archive: %s\n", mod.Archive)
		fmt.Printf("    Path:    %s\n", mod.Path)
	}

	return nil
}

func collectListings(mods []string) (ModList, error) {
	list := ModList{Mods: []ModListing{}}
	for _, modRoot := range mods {
		info, err := modinfo.Load(modRoot)
		if err != nil {
			return ModList{}, fmt.Errorf("failed to load mod at %s: %w", modRoot, err)
		}
		list.Mods = append(list.Mods, ModListing{
			Name:    info.Name,
			Version: info.Version,
			Title:   info.Title,
			Archive: models.ArchiveFileName(info.BaseName()),
			Path:    modRoot,
		})
	}
	return list, nil
}
