package cmd

import (
	"github.com/spf13/cobra"
)

var (
	buildOutDir           string
	buildDefaultThumbnail string
	buildVerbose          bool
)

var buildCmd = &cobra.Command{
	Use:   "build [mod-path]",
	Short: "Build mod archives without installing them",
	Long: `Build each mod into <out-dir>/<name>_<version>.zip.

Directories named build, .git, .github, .idea or .vscode at the top of a
mod are left out of the archive. A default thumbnail is added when the
mod has no thumbnail.png of its own.

Examples:
  modpack build                  # Build every detected mod into build/
  modpack build ./my-mod         # Build a single mod
  modpack build --out-dir dist   # Build into dist/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&buildOutDir, "out-dir", "", "Output directory for the built .zip(s) (default: build)")
	buildCmd.Flags().StringVar(&buildDefaultThumbnail, "default-thumbnail", "", "Thumbnail to use when a mod has none (default: assets/default_thumbnail.png)")
	buildCmd.Flags().BoolVar(&buildVerbose, "verbose", false, "Print extra information while building")
}

func runBuild(cmd *cobra.Command, args []string) error {
	return runPipeline(pipelineOptions{
		modPath:          optionalArg(args),
		outDir:           buildOutDir,
		defaultThumbnail: buildDefaultThumbnail,
		verbose:          buildVerbose,
	})
}
