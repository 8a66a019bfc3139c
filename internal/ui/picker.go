package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/pioport/internal/devices"
)

// ErrSelectionCancelled indicates the user quit the picker without
// choosing a device.
var ErrSelectionCancelled = errors.New("selection cancelled")

// refreshMsg carries the result of a device re-enumeration
type refreshMsg struct {
	ports []string
	err   error
}

// pickerKeyMap defines key bindings for the picker list
type pickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Refresh key.Binding
	Manual  key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Refresh, k.Manual, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Refresh, k.Manual, k.Quit},
	}
}

// manualKeyMap defines key bindings for manual path entry mode
type manualKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (m manualKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{m.Confirm, m.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (m manualKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Confirm, m.Cancel},
	}
}

// portItem wraps a device path for use with bubbles/list
type portItem struct {
	path      string
	nickname  string
	preferred bool
	isDefault bool
}

// FilterValue implements list.Item
func (p portItem) FilterValue() string {
	return p.path + " " + p.nickname
}

// Title returns the device path for list display
func (p portItem) Title() string {
	title := p.path
	if p.nickname != "" {
		title += " " + NicknameStyle.Render("("+p.nickname+")")
	}
	return title
}

// Description returns candidate details for list display
func (p portItem) Description() string {
	switch {
	case p.isDefault:
		return "preferred, default selection"
	case p.preferred:
		return "preferred"
	default:
		return "serial device"
	}
}

// PickerModel is the bubbletea model for the full-screen device picker.
type PickerModel struct {
	portList   list.Model
	pathInput  textinput.Model
	manualMode bool

	enumerate func() ([]string, error)
	nickname  func(port string) string

	selected  string
	cancelled bool
	err       error

	width  int
	height int

	help       help.Model
	keys       pickerKeyMap
	manualKeys manualKeyMap
}

// NewPickerModel creates a picker over the given enumerator. nickname may
// be nil.
func NewPickerModel(enumerate func() ([]string, error), nickname func(port string) string) PickerModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "/dev/tty.usbserial-..."
	pathInput.CharLimit = 128
	pathInput.Width = 40

	delegate := list.NewDefaultDelegate()
	portList := list.New([]list.Item{}, delegate, 0, 0)
	portList.Title = "Select upload port"
	portList.SetShowStatusBar(false)
	portList.SetFilteringEnabled(true)
	portList.Styles.Title = TitleStyle

	keys := pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "re-enumerate"),
		),
		Manual: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "manual path"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}

	manualKeys := manualKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}

	return PickerModel{
		portList:   portList,
		pathInput:  pathInput,
		enumerate:  enumerate,
		nickname:   nickname,
		help:       help.New(),
		keys:       keys,
		manualKeys: manualKeys,
	}
}

// Init starts with an initial enumeration
func (m PickerModel) Init() tea.Cmd {
	return m.refresh
}

// refresh is a command that re-enumerates devices
func (m PickerModel) refresh() tea.Msg {
	ports, err := m.enumerate()
	return refreshMsg{ports: ports, err: err}
}

// Update handles messages and updates the model
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.manualMode {
			return m.updateManualMode(msg)
		}
		return m.updateListMode(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.portList.SetWidth(msg.Width - 4)
		m.portList.SetHeight(msg.Height - 6) // Leave room for help line

	case refreshMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.portList.SetItems(m.buildItems(msg.ports))
	}

	m.portList, cmd = m.portList.Update(msg)
	return m, cmd
}

// buildItems converts a device list to list items, preferred entries first
// with the default selection on top of its group.
func (m PickerModel) buildItems(ports []string) []list.Item {
	preferred, others, defaultIdx := devices.Partition(ports)

	items := make([]list.Item, 0, len(ports))
	for _, idx := range preferred {
		items = append(items, portItem{
			path:      ports[idx],
			nickname:  m.lookupNickname(ports[idx]),
			preferred: true,
			isDefault: idx == defaultIdx,
		})
	}
	for _, idx := range others {
		items = append(items, portItem{
			path:     ports[idx],
			nickname: m.lookupNickname(ports[idx]),
		})
	}
	return items
}

func (m PickerModel) lookupNickname(port string) string {
	if m.nickname == nil {
		return ""
	}
	return m.nickname(port)
}

// updateListMode handles keyboard input while the port list is shown
func (m PickerModel) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Don't intercept keys while the list's fuzzy filter is active
	if m.portList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.portList, cmd = m.portList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit), msg.String() == "ctrl+c":
		m.cancelled = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Enter):
		if item, ok := m.portList.SelectedItem().(portItem); ok {
			m.selected = item.path
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh

	case key.Matches(msg, m.keys.Manual):
		m.manualMode = true
		m.pathInput.SetValue("")
		m.pathInput.Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.portList, cmd = m.portList.Update(msg)
	return m, cmd
}

// updateManualMode handles keyboard input during manual path entry
func (m PickerModel) updateManualMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.manualKeys.Cancel), msg.String() == "ctrl+c":
		m.manualMode = false
		m.pathInput.SetValue("")
		m.pathInput.Blur()
		return m, nil

	case key.Matches(msg, m.manualKeys.Confirm):
		value := strings.TrimSpace(m.pathInput.Value())
		if value != "" {
			m.selected = value
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// View renders the picker
func (m PickerModel) View() string {
	if m.manualMode {
		var b strings.Builder
		b.WriteString("\n  Enter device path\n\n")
		b.WriteString("  Path: ")
		b.WriteString(m.pathInput.View())
		b.WriteString("\n\n")
		b.WriteString("  " + m.help.View(m.manualKeys))
		return b.String()
	}

	var b strings.Builder
	b.WriteString(m.portList.View())
	b.WriteString("\n  " + m.help.View(m.keys))
	return b.String()
}

// RunPicker runs the full-screen picker and returns the chosen device path.
// Quitting without a selection returns ErrSelectionCancelled.
func RunPicker(enumerate func() ([]string, error), nickname func(port string) string) (string, error) {
	program := tea.NewProgram(NewPickerModel(enumerate, nickname), tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("picker failed: %w", err)
	}

	model, ok := final.(PickerModel)
	if !ok {
		return "", fmt.Errorf("picker returned unexpected model type %T", final)
	}
	if model.err != nil {
		return "", model.err
	}
	if model.cancelled || model.selected == "" {
		return "", ErrSelectionCancelled
	}
	return model.selected, nil
}
