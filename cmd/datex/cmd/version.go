package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/datex/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	// no configuration needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, TitleStyle.Render("datex v"+version.Module))
		fmt.Fprintf(out, "  Library:    %s\n", version.ComponentVersion("library"))
		fmt.Fprintf(out, "  Git Commit: %s\n", version.Commit)
		fmt.Fprintf(out, "  Build Date: %s\n", version.BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		if verbose {
			fmt.Fprintln(out, MutedStyle.Render(version.Info()))
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
