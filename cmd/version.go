package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is the application version, set at build time using ldflags.
var Version = "dev"

// BuildDate is the build timestamp, set at build time using ldflags.
var BuildDate = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("p2p-recon %s (built %s, %s)\n", Version, BuildDate, runtime.Version())
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
