package cmd

import (
	"github.com/spf13/cobra"
)

var (
	installOutDir           string
	installDefaultThumbnail string
	installVerbose          bool
)

var installCmd = &cobra.Command{
	Use:   "install [mod-path]",
	Short: "Install a mod (or all detected mods) into your Factorio mods/ folder",
	Long: `Build each mod into a <name>_<version>.zip and copy it into the Factorio
mods/ folder. The built archives are kept in the output directory.

Without a mod path, the current directory is installed if it has an
info.json, followed by every direct subfolder that has one.

Examples:
  modpack install                      # Install every detected mod
  modpack install ./my-mod             # Install a single mod
  modpack install --out-dir dist       # Keep built zips in dist/
  modpack install --default-thumbnail art/thumb.png --verbose`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().StringVar(&installOutDir, "out-dir", "", "Output directory for the built .zip(s) (default: build)")
	installCmd.Flags().StringVar(&installDefaultThumbnail, "default-thumbnail", "", "Thumbnail to use when a mod has none (default: assets/default_thumbnail.png)")
	installCmd.Flags().BoolVar(&installVerbose, "verbose", false, "Print extra information while building")
}

func runInstall(cmd *cobra.Command, args []string) error {
	return runPipeline(pipelineOptions{
		modPath:          optionalArg(args),
		outDir:           installOutDir,
		defaultThumbnail: installDefaultThumbnail,
		verbose:          installVerbose,
		install:          true,
	})
}

func optionalArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
