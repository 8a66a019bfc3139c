// Pioport selects a serial device and writes it into a PlatformIO
// override config.
//
// Running it inside a PlatformIO project directory lists the serial
// devices under /dev, lets you pick one interactively, and sets it as
// upload_port in the chosen section of platformio_override.ini. Handy when
// you juggle a lot of boards and the port changes every time you replug.
//
// Usage:
//
//	pioport [flags]
//
// Running without arguments starts the interactive selection.
// See 'pioport --help' for flags and subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/pioport/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pioport",
	Short: "PlatformIO upload port selector",
	Long: `Easy re-configure for platformio_override.ini when you're using a
lot of devices.

Lists serial device candidates, lets you pick one interactively, and
writes it as upload_port into the target section of the override config.
Preferred (usbserial) devices are offered as the default selection.`,
	Version: version.Version,
	RunE:    runSelect,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pioport %s (commit: %s)\n", version.Version, version.Commit)
	},
}
