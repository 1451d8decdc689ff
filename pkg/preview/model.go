package preview

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"gitlab.com/tinyland/lab/arrange/pkg/flow"
	"gitlab.com/tinyland/lab/arrange/pkg/geometry"
	"gitlab.com/tinyland/lab/arrange/pkg/render"
	"gitlab.com/tinyland/lab/arrange/pkg/scene"
	"gitlab.com/tinyland/lab/arrange/pkg/theme"
)

// Options configures a preview Model.
type Options struct {
	// Ref is the builtin name or file path the scene was loaded from. It is
	// re-read every Reload.
	Ref    string
	Scene  scene.Scene
	Reload time.Duration
	// Size is the initial window size, used until the first resize.
	Size     geometry.Size
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
	// Theme colours the canvas. The zero Theme means the default theme.
	Theme theme.Theme
}

// Model is the bubbletea model of the preview.
type Model struct {
	ref      string
	name     string
	reload   time.Duration
	logger   *log.Logger
	renderer *lipgloss.Renderer
	theme    theme.Theme

	cache *flow.Cache
	root  *scene.Element
	items []scene.Item

	width, height int
	focused       string
	err           error

	keys keyMap
	help help.Model
}

// New compiles the scene and returns a model laid out at opts.Size.
func New(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	th := opts.Theme
	if th.Name == "" {
		th = theme.Default()
	}

	m := Model{
		ref:      opts.Ref,
		reload:   opts.Reload,
		logger:   logger,
		renderer: renderer,
		theme:    th,
		cache:    flow.NewCache(),
		width:    opts.Size.Width,
		height:   opts.Size.Height,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	if err := m.setScene(opts.Scene); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init starts the reload ticker when reloading is enabled.
func (m Model) Init() tea.Cmd {
	if m.reload > 0 && m.ref != "" {
		return TickCmd(m.reload)
	}
	return nil
}

// Update handles resizes, input and reloads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.cache.Invalidate()
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.CycleFocusForward()
		case key.Matches(msg, m.keys.Prev):
			m.CycleFocusBackward()
		case key.Matches(msg, m.keys.Clear):
			m.focused = ""
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.relayout()
		case key.Matches(msg, m.keys.Reload):
			if m.ref != "" {
				return m, LoadCmd(m.ref)
			}
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.FocusAt(msg.X, msg.Y)
		}
		return m, nil

	case ReloadEvent:
		return m, tea.Batch(LoadCmd(m.ref), TickCmd(m.reload))

	case SceneLoadedEvent:
		if msg.Err != nil {
			m.err = msg.Err
			m.logger.Warn("reload failed", "ref", m.ref, "err", msg.Err)
			return m, nil
		}
		if err := m.setScene(msg.Scene); err != nil {
			m.err = err
			m.logger.Warn("reload failed", "ref", m.ref, "err", err)
			return m, nil
		}
		m.err = nil
		return m, nil
	}
	return m, nil
}

// View draws the arranged scene above a status line.
func (m Model) View() string {
	area := m.area()
	canvas := render.NewCanvas(area, m.renderer)
	canvas.Selected = m.focused
	canvas.Theme = m.theme
	canvas.Paint(m.items)

	var b strings.Builder
	b.WriteString(canvas.String())
	if area.Height > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(m.status())
	return b.String()
}

// Items returns the current composition in paint order.
func (m Model) Items() []scene.Item { return m.items }

// Focused returns the id of the focused element, or "".
func (m Model) Focused() string { return m.focused }

// Err returns the last reload error.
func (m Model) Err() error { return m.err }

func (m *Model) setScene(s scene.Scene) error {
	root, err := scene.Compile(s, m.cache)
	if err != nil {
		return err
	}
	m.cache.Invalidate()
	m.name = s.Name
	m.root = root
	if m.focused != "" && root.Find(m.focused) == nil {
		m.focused = ""
	}
	m.relayout()
	return nil
}

// area is the part of the window given to the scene.
func (m Model) area() geometry.Size {
	return geometry.NewSize(max(m.width, 0), max(m.height-m.footerHeight(), 0))
}

func (m Model) footerHeight() int {
	if m.help.ShowAll {
		return lipgloss.Height(m.help.View(m.keys)) + 1
	}
	return 1
}

func (m *Model) relayout() {
	size := m.area()
	c := scene.Composer{Viewport: size, Logger: m.logger}
	m.items = c.Compose(m.root, size)
}

func (m Model) status() string {
	var left string
	switch {
	case m.err != nil:
		left = m.renderer.NewStyle().Foreground(lipgloss.Color(m.theme.Selected)).Render("error: " + m.err.Error())
	case m.focused != "":
		for _, it := range m.items {
			if it.Element.ID == m.focused {
				left = fmt.Sprintf("%s  %s  %s", it.Element.ID, it.Layering, it.Region)
				break
			}
		}
	default:
		left = fmt.Sprintf("%s  %dx%d", m.name, m.area().Width, m.area().Height)
	}

	if m.help.ShowAll {
		return left + "\n" + m.help.View(m.keys)
	}
	return left + "  " + m.help.ShortHelpView(m.keys.ShortHelp())
}
