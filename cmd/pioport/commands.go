package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/pioport/internal/config"
	"github.com/muurk/pioport/internal/devices"
	"github.com/muurk/pioport/internal/discovery"
	"github.com/muurk/pioport/internal/logging"
	"github.com/muurk/pioport/internal/project"
	"github.com/muurk/pioport/internal/registry"
	"github.com/muurk/pioport/internal/ui"
)

// Command flags
var (
	debugFlag   bool
	testFlag    bool
	sectionFlag string
	tuiFlag     bool

	listDetails bool
	listMDNS    bool
	listTimeout int
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Debug mode, output more information")
	rootCmd.Flags().BoolVarP(&testFlag, "test", "t", false, "Test mode - don't make changes")
	rootCmd.Flags().StringVarP(&sectionFlag, "section", "s", config.DefaultSection, "Which section to edit - default is common")
	rootCmd.Flags().BoolVar(&tuiFlag, "tui", false, "Use the full-screen picker instead of the prompt loop")

	rootCmd.AddCommand(listCmd)
}

// runSelect is the main flow: load configs, pick a device, write upload_port.
func runSelect(cmd *cobra.Command, args []string) error {
	if err := logging.Setup(debugFlag); err != nil {
		return err
	}
	defer logging.Sync()

	// The section flag only overrides the settings files when given
	// explicitly; its default value must not mask a configured section.
	sectionOverride := ""
	if cmd.Flags().Changed("section") {
		sectionOverride = sectionFlag
	}

	settings, err := config.Load(sectionOverride)
	if err != nil {
		return err
	}

	// One buffered reader for the whole interactive flow: the create-file
	// confirmation and the selection prompt read from the same stream, and
	// separate buffers would swallow typed-ahead input between them.
	stdin := bufio.NewReader(os.Stdin)

	proj, err := project.Load(settings, func(prompt string) bool {
		return ui.AskYesNo(stdin, os.Stdout, prompt)
	})
	if err != nil {
		return err
	}

	logging.Info("Editing config file: " + settings.ConfigFile)
	logging.Info("Editing section: " + settings.Section)

	previous := proj.UploadPort()
	if previous != "" {
		logging.Info("Upload port is currently set to: " + previous)
	}

	reg := loadRegistry()

	enumerate := func() ([]string, error) {
		return devices.List(debugFlag, registryIgnores(reg))
	}
	nickname := func(port string) string {
		if reg == nil {
			return ""
		}
		return reg.Nickname(port)
	}

	var port string
	if tuiFlag {
		port, err = ui.RunPicker(enumerate, nickname)
	} else {
		selector := &ui.Selector{
			In:        stdin,
			Out:       os.Stdout,
			Enumerate: enumerate,
			Previous:  previous,
			Nickname:  nickname,
		}
		port, err = selector.Run()
	}
	if err != nil {
		return err
	}

	logging.Info("Selected " + port)
	if err := persistSelection(proj, port, testFlag); err != nil {
		return err
	}
	if testFlag {
		return nil
	}

	if reg != nil {
		reg.Touch(port)
		if err := reg.Save(); err != nil {
			logging.Warn("Failed to save port registry", zap.Error(err))
		}
	}

	return nil
}

// persistSelection records the chosen port in the override config and
// writes it out. In dry-run mode the document is only mutated in memory
// and the file on disk stays untouched.
func persistSelection(proj *project.Config, port string, dryRun bool) error {
	proj.SetUploadPort(port)
	if dryRun {
		logging.Warn("Nothing changed, running in test mode.")
		return nil
	}
	return proj.Save()
}

// loadRegistry loads the user port registry, degrading to nil on failure.
// The selection flow must behave identically with or without a registry.
func loadRegistry() *registry.Registry {
	reg, err := registry.LoadRegistry()
	if err != nil {
		logging.Warn("Failed to load port registry", zap.Error(err))
		return nil
	}
	return reg
}

func registryIgnores(reg *registry.Registry) []string {
	if reg == nil {
		return nil
	}
	return reg.IgnoredPorts()
}

// listCmd prints device candidates without touching any config.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List upload port candidates",
	Long: `List serial device candidates the way the interactive selection
shows them: preferred (usbserial) entries first with their original index
numbers, known-noise entries hidden unless --debug is set.

With --mdns, OTA upload candidates discovered on the local network are
listed instead of serial devices. This command never writes anything.`,
	Example: `  # List serial candidates
  pioport list

  # Include USB hardware metadata (VID:PID, serial number)
  pioport list --details

  # List OTA candidates advertised over mDNS
  pioport list --mdns --timeout 5`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listDetails, "details", false, "Show USB hardware metadata per port")
	listCmd.Flags().BoolVar(&listMDNS, "mdns", false, "List OTA candidates advertised over mDNS")
	listCmd.Flags().IntVar(&listTimeout, "timeout", 10, "mDNS scan timeout in seconds")
}

func runList(cmd *cobra.Command, args []string) error {
	if err := logging.Setup(debugFlag); err != nil {
		return err
	}
	defer logging.Sync()

	if listMDNS {
		return runListMDNS()
	}

	reg := loadRegistry()
	ports, err := devices.List(debugFlag, registryIgnores(reg))
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		return fmt.Errorf("%w, quitting", devices.ErrNoDevices)
	}

	usb := map[string]string{}
	if listDetails {
		detailed, err := devices.USBDetails()
		if err != nil {
			logging.Warn("Failed to read USB metadata", zap.Error(err))
		} else {
			for path, d := range detailed {
				usb[path] = devices.FormatUSBDetails(d)
			}
		}
	}

	printEntry := func(idx int, port string, preferred bool) {
		line := fmt.Sprintf("%d\t%s", idx, port)
		if reg != nil {
			if nick := reg.Nickname(port); nick != "" {
				line += fmt.Sprintf(" (%s)", nick)
			}
		}
		if preferred {
			line += " [preferred]"
		}
		if meta := usb[port]; meta != "" {
			line += "  " + meta
		}
		fmt.Println(line)
	}

	preferred, others, _ := devices.Partition(ports)
	for _, idx := range preferred {
		printEntry(idx, ports[idx], true)
	}
	for _, idx := range others {
		printEntry(idx, ports[idx], false)
	}

	return nil
}

func runListMDNS() error {
	timeout := time.Duration(listTimeout) * time.Second
	fmt.Printf("Scanning for OTA candidates (timeout: %ds)...\n\n", listTimeout)

	found, err := discovery.ScanForDevices(timeout)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(found) == 0 {
		fmt.Println("No OTA candidates found.")
		return nil
	}

	for i, device := range found {
		fmt.Printf("%d\t%s\n", i, device)
		if device.Auth {
			fmt.Println("\t(requires OTA upload password)")
		}
	}

	return nil
}
