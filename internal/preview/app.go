package preview

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/themer"
	"github.com/opencode-ai/themer/style"
)

const (
	minWidth  = 50
	minHeight = 12
)

// Run launches the interactive theme browser. When watch is true the theme
// file is reloaded whenever it changes on disk.
func Run(path string, watch bool) error {
	theme, err := themer.FromFile(path)

	m := model{
		path:  path,
		theme: theme,
		err:   err,
		kinds: style.Kinds(),
	}

	if watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		changes, werr := Watch(ctx, path)
		if werr != nil {
			return werr
		}
		m.changes = changes
	}

	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

type model struct {
	path    string
	theme   *themer.Theme
	err     error
	kinds   []style.Kind
	index   int
	width   int
	height  int
	changes <-chan struct{}
}

type reloadMsg struct{}

func (m model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	changes := m.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return reloadMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.index = (m.index + len(m.kinds) - 1) % len(m.kinds)
		case "right", "l", "tab":
			m.index = (m.index + 1) % len(m.kinds)
		case "r":
			m.theme, m.err = themer.FromFile(m.path)
		default:
			if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				if n := int(s[0] - '1'); n < len(m.kinds) {
					m.index = n
				}
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case reloadMsg:
		m.theme, m.err = themer.FromFile(m.path)
		return m, m.waitForChange()
	}
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		return fmt.Sprintf("Terminal too small (%dx%d). Press q to quit.\n", m.width, m.height)
	}

	var b strings.Builder

	if m.err != nil {
		fmt.Fprintln(&b, titleStyle.Render(fmt.Sprintf("Theme: %s", m.path)))
		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "Failed to load: %v\n", m.err)
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, mutedStyle.Render("Fix the file and press r to retry. Press q to quit."))
		return b.String()
	}

	fmt.Fprintln(&b, titleStyle.Render(fmt.Sprintf("Theme: %s (%s)", m.theme.Name(), m.path)))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, m.tabLine())
	fmt.Fprintln(&b)
	b.WriteString(RenderKind(m.theme, m.kinds[m.index]))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, mutedStyle.Render("Shortcuts: q quit | tab/arrows switch widget | 1-8 jump | r reload"))
	return b.String()
}

func (m model) tabLine() string {
	parts := make([]string, len(m.kinds))
	for i, kind := range m.kinds {
		label := fmt.Sprintf("%d:%s", i+1, kind)
		if i == m.index {
			parts[i] = sectionStyle.Render(label)
		} else {
			parts[i] = mutedStyle.Render(label)
		}
	}
	return strings.Join(parts, "  ")
}
