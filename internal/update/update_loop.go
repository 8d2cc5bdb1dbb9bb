package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todoscreen/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Scheduler != nil {
		return waitForBusyCmd(m.Scheduler.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.learnViewport.Width = clamp(typed.Width-6, 20, 100)
		m.learnViewport.Height = clamp(typed.Height-16, 6, 40)
		m.refreshLearnContent()
		return m, nil
	case tea.KeyMsg:
		next, cmd := m.handleKey(typed)
		settle := next.settle()
		return next, tea.Batch(cmd, settle)
	case spinner.TickMsg:
		if !m.busyVisible() {
			m.spinnerActive = false
			return m, nil
		}
		var cmd tea.Cmd
		m.busySpinner, cmd = m.busySpinner.Update(typed)
		return m, cmd
	case BusyExpiredMsg:
		if m.List.ClearBusy(typed.Token) {
			m.log.WithField("kind", typed.Token.Kind).Debug("busy marker cleared")
		}
		if typed.fromEngine && m.Scheduler != nil {
			return m, waitForBusyCmd(m.Scheduler.C())
		}
		return m, nil
	case SwitchTabMsg:
		if isKnownTab(typed.Tab) {
			m.CurrentTab = typed.Tab
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg), nil
	}
	if m.CurrentTab == TabTodos {
		if m.List.ViewModel().Editing {
			return m.handleEditKey(msg)
		}
		if m.Todos.Adding {
			return m.handleAddKey(msg)
		}
	}

	switch keyStr {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Todos:
		m.CurrentTab = TabTodos
		return m, nil
	case m.Keys.Learn:
		m.CurrentTab = TabLearn
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.CurrentTab {
	case TabLearn:
		return m.handleLearnKey(msg)
	default:
		return m.handleTodoKey(msg)
	}
}

// settle runs after every key: it forwards fresh list notices, starts timers
// for new busy markers and keeps the cursor on a real row.
func (m *Model) settle() tea.Cmd {
	m.forwardNotices()
	m.Todos.Cursor = clamp(m.Todos.Cursor, 0, m.List.Len()-1)

	cmds := m.busy.drain()
	if m.busyVisible() && !m.spinnerActive {
		m.spinnerActive = true
		cmds = append(cmds, m.busySpinner.Tick)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) busyVisible() bool {
	vm := m.List.ViewModel()
	return vm.DeletingID != "" || vm.DeletingAll
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	var body string
	switch m.CurrentTab {
	case TabLearn:
		body = m.renderLearnView()
	default:
		body = m.renderTodoView()
	}
	extras := strings.TrimSpace(strings.Join([]string{m.renderCommandPalette(), m.renderHelpIfVisible()}, "\n"))
	if extras != "" {
		body += "\n\n" + extras
	}

	tabLabels := make([]string, 0, len(tabs))
	active := 0
	for i, t := range tabs {
		if t == m.CurrentTab {
			active = i
		}
		tabLabels = append(tabLabels, fmt.Sprintf("%d %s", i+1, t))
	}

	width := 0
	if m.width > 0 {
		width = clamp(m.width-4, 40, 100)
	}

	return views.RenderApp(views.AppData{
		Tabs:         tabLabels,
		ActiveTab:    active,
		Body:         body,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: m.renderNotificationsView(),
		Footer:       fmt.Sprintf("keys: %s todos | %s learn | / cmd | %s help | %s quit", m.Keys.Todos, m.Keys.Learn, m.Keys.Help, m.Keys.Quit),
		Width:        width,
	})
}

func isKnownTab(t Tab) bool {
	for _, known := range tabs {
		if t == known {
			return true
		}
	}
	return false
}
