package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"collapsehead/collapse"
	"collapsehead/config"
	"collapsehead/ui/footer"
	"collapsehead/ui/header"
	"collapsehead/ui/list"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const footerHeight = 1

// model holds the application's state
type model struct {
	width  int // Terminal width
	height int // Terminal height

	// collapsedHeight is where the list viewport starts on screen
	collapsedHeight int

	controller  *collapse.Controller
	headerModel header.Model
	listModel   list.Model
	footerModel footer.Model

	err error // Store any errors
}

// initialModel wires the controller between the list and the header
func initialModel(cfg *config.Config, loadErr error) model {
	if loadErr != nil {
		return model{err: loadErr}
	}

	geometry, err := cfg.Geometry()
	if err != nil {
		return model{err: err}
	}

	controller := collapse.NewController(geometry,
		collapse.WithTolerance(cfg.Header.Tolerance),
		collapse.WithTransitionHook(func(from, to collapse.State) {
			log.Printf("header %s -> %s", from, to)
		}),
	)

	headerMod := header.New(header.Options{
		Title:          cfg.Header.Title,
		ExpandedColor:  cfg.Header.ExpandedColor,
		CollapsedColor: cfg.Header.CollapsedColor,
		Foreground:     cfg.Header.Foreground,
	}, geometry)

	// The list reports to the controller; the model owns both.
	listMod := list.New(list.Options{
		Rows:           cfg.List.Rows,
		Step:           cfg.List.ScrollStep,
		Overscroll:     cfg.List.Overscroll,
		SettleInterval: time.Duration(cfg.List.SettleIntervalMS) * time.Millisecond,
	}, geometry.ContentInsetTop(), controller)

	m := model{
		collapsedHeight: cfg.Header.CollapsedHeight,
		controller:      controller,
		headerModel:     headerMod,
		listModel:       listMod,
		footerModel:     footer.New(listMod.Keys()),
	}
	m.sync()
	return m
}

// sync pushes the controller's position to the header and footer
func (m *model) sync() {
	pos := m.controller.Position()
	m.headerModel.SetPosition(pos)
	m.footerModel.SetScroll(m.listModel.OffsetY(), pos)
}

func (m model) Init() tea.Cmd {
	return nil // No initial commands
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// --- Global Error Handling ---
	if m.err != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, tea.Quit // Quit on any key if there's an error
		}
		if msg, ok := msg.(tea.WindowSizeMsg); ok {
			m.width, m.height = msg.Width, msg.Height
		}
		return m, nil
	}

	var (
		headerCmd tea.Cmd
		listCmd   tea.Cmd
		footerCmd tea.Cmd
		cmds      []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// --- Layout ---
		// The header overlays the top of the list, which starts at the
		// collapsed height.
		listHeight := max(m.height-m.collapsedHeight-footerHeight, 1)

		headerMsg := tea.WindowSizeMsg{Width: m.width, Height: m.collapsedHeight}
		m.headerModel, headerCmd = m.headerModel.Update(headerMsg)

		listMsg := tea.WindowSizeMsg{Width: m.width, Height: listHeight}
		m.listModel, listCmd = m.listModel.Update(listMsg)

		footerMsg := tea.WindowSizeMsg{Width: m.width, Height: footerHeight}
		m.footerModel, footerCmd = m.footerModel.Update(footerMsg)

		cmds = append(cmds, headerCmd, listCmd, footerCmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		default:
			// Scrolling keys go to the list
			m.listModel, listCmd = m.listModel.Update(msg)
			cmds = append(cmds, listCmd)
		}

	default:
		// Mouse wheel and settle ticks
		m.listModel, listCmd = m.listModel.Update(msg)
		cmds = append(cmds, listCmd)
	}

	m.sync()
	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	// --- Error View ---
	if m.err != nil {
		errorStyle := lipgloss.NewStyle().
			Width(max(m.width-2, 0)).
			Height(max(m.height-2, 0)).
			Border(lipgloss.DoubleBorder(), true).
			BorderForeground(lipgloss.Color("9")).
			Padding(1).
			Align(lipgloss.Center, lipgloss.Center)
		return errorStyle.Render(
			"Error starting collapsehead:\n\n" + m.err.Error() +
				"\n\nPress any key to quit.",
		)
	}

	// --- Normal View ---
	// Rows of the list hidden under the header are dropped.
	listLines := strings.Split(m.listModel.View(), "\n")
	covered := min(max(m.headerModel.VisibleHeight()-m.collapsedHeight, 0), len(listLines))

	var parts []string
	if hv := m.headerModel.View(); hv != "" {
		parts = append(parts, hv)
	}
	parts = append(parts, listLines[covered:]...)
	parts = append(parts, m.footerModel.View())
	return strings.Join(parts, "\n")
}

func main() {
	configPath := flag.String("config", "", "path to config.toml (default: $XDG_CONFIG_HOME/collapsehead/config.toml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)

	// Anything written to stderr would tear the alt screen.
	log.SetOutput(io.Discard)
	if err == nil && cfg.Debug.LogFile != "" {
		f, logErr := tea.LogToFile(cfg.Debug.LogFile, "collapsehead")
		if logErr != nil {
			err = logErr
		} else {
			defer f.Close()
		}
	}

	p := tea.NewProgram(initialModel(cfg, err), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Alas, there's been an error: %v", err)
	}
}
