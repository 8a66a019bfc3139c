package ui

import (
	"fmt"
	"io"

	"github.com/muurk/pioport/internal/devices"
	"github.com/muurk/pioport/internal/logging"
)

const whichQuestion = "Which input do you want to use?"

// Selector runs the interactive device selection loop.
type Selector struct {
	// In and Out are the interactive streams, normally stdin/stdout.
	In  io.Reader
	Out io.Writer

	// Enumerate produces the current device list. It is called again on
	// every prompt iteration, so the listing follows the live /dev state.
	Enumerate func() ([]string, error)

	// Previous is the upload_port already configured, offered as fallback
	// default when no preferred device is present. Empty when unset.
	Previous string

	// Nickname resolves a registry nickname for a path. Optional.
	Nickname func(port string) string
}

// Run loops until the user picks a device and returns its path.
//
// Each iteration re-enumerates, prints preferred entries first (keeping
// original index numbers), then prompts. Blank input accepts the default
// (last preferred entry, or Previous when no preferred device exists);
// anything else is treated as a list index. Invalid input logs an error and
// starts the next iteration. Enumeration failures and an empty device list
// end the loop with an error.
func (s *Selector) Run() (string, error) {
	reader := bufioReader(s.In)

	for {
		ports, err := s.Enumerate()
		if err != nil {
			return "", err
		}
		if len(ports) == 0 {
			return "", fmt.Errorf("%w, quitting", devices.ErrNoDevices)
		}

		defaultIdx := s.printListing(ports)

		selected := ""
		var response string

		if defaultIdx >= 0 {
			fmt.Fprintf(s.Out, "%s Hit enter to select %s: ", whichQuestion, ports[defaultIdx])
			response, err = readLine(reader)
			if err != nil {
				return "", fmt.Errorf("failed to read selection: %w", err)
			}
			fmt.Fprintln(s.Out)
			if response == "" {
				logging.Debug("Selecting default option")
				selected, _ = devices.At(ports, defaultIdx)
			}
		} else {
			if s.Previous != "" {
				fmt.Fprintf(s.Out, "%s default is %s: ", whichQuestion, s.Previous)
			} else {
				fmt.Fprintf(s.Out, "No default currently set. %s ", whichQuestion)
			}
			response, err = readLine(reader)
			if err != nil {
				return "", fmt.Errorf("failed to read selection: %w", err)
			}
			if response == "" && s.Previous != "" {
				selected = s.Previous
			}
		}

		if selected == "" {
			if port, ok := devices.Pick(ports, response); ok {
				selected = port
			}
		}
		if selected != "" {
			return selected, nil
		}

		logging.Error(fmt.Sprintf("I'm not sure what you selected (%s), but it wasn't right!", response))
	}
}

// printListing writes the partitioned device listing and returns the
// default index, or -1 when no preferred device exists. Index numbers are
// positions in the full list, not the print order.
func (s *Selector) printListing(ports []string) int {
	preferred, others, defaultIdx := devices.Partition(ports)

	for _, idx := range preferred {
		line := fmt.Sprintf("%s\t%s", IndexStyle.Render(fmt.Sprintf("%d", idx)), PreferredStyle.Render(ports[idx]))
		if nick := s.nickname(ports[idx]); nick != "" {
			line += " " + NicknameStyle.Render("("+nick+")")
		}
		if idx == defaultIdx {
			line += " " + DefaultMarkerStyle.Render("(default)")
		}
		fmt.Fprintln(s.Out, line)
	}
	for _, idx := range others {
		line := fmt.Sprintf("%s\t%s", IndexStyle.Render(fmt.Sprintf("%d", idx)), DeviceStyle.Render(ports[idx]))
		if nick := s.nickname(ports[idx]); nick != "" {
			line += " " + NicknameStyle.Render("("+nick+")")
		}
		fmt.Fprintln(s.Out, line)
	}

	return defaultIdx
}

func (s *Selector) nickname(port string) string {
	if s.Nickname == nil {
		return ""
	}
	return s.Nickname(port)
}
