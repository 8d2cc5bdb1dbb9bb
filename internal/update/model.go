package update

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/todoscreen/internal/model"
	"github.com/sandeepkv93/todoscreen/internal/scheduler"
	"github.com/sandeepkv93/todoscreen/internal/tasklist"
	"github.com/sirupsen/logrus"
)

type Tab string

const (
	TabTodos Tab = "Todo List"
	TabLearn Tab = "Learn"
)

var tabs = []Tab{TabTodos, TabLearn}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Todos string
	Learn string
	Help  string
	Quit  string
}

type TodosState struct {
	Cursor int
	Adding bool
}

type LearnState struct {
	Cursor int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type Model struct {
	CurrentTab     Tab
	List           *tasklist.Controller
	Todos          TodosState
	Learn          LearnState
	Scheduler      *scheduler.Engine
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	notifier      DesktopNotifier
	clipboard     Clipboard
	opener        LinkOpener
	busy          *busyDeferrer
	log           *logrus.Entry
	lastNoticeSeq uint64
	markdownStyle string
	width         int

	addInput      textinput.Model
	editInput     textinput.Model
	commandInput  textinput.Model
	busySpinner   spinner.Model
	spinnerActive bool
	helpModel     help.Model
	learnViewport viewport.Model
}

type SwitchTabMsg struct {
	Tab Tab
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// BusyExpiredMsg carries a busy token whose delay has elapsed.
type BusyExpiredMsg struct {
	Token      tasklist.BusyToken
	fromEngine bool
}

type Option func(*Model)

func WithScheduler(engine *scheduler.Engine) Option {
	return func(m *Model) { m.Scheduler = engine }
}

func WithDesktopNotifier(n DesktopNotifier) Option {
	return func(m *Model) {
		if n != nil {
			m.notifier = n
		}
	}
}

func WithClipboard(c Clipboard) Option {
	return func(m *Model) {
		if c != nil {
			m.clipboard = c
		}
	}
}

func WithLinkOpener(o LinkOpener) Option {
	return func(m *Model) {
		if o != nil {
			m.opener = o
		}
	}
}

func WithLogger(entry *logrus.Entry) Option {
	return func(m *Model) {
		if entry != nil {
			m.log = entry
		}
	}
}

func NewModel(opts ...Option) Model {
	return NewModelWithConfig(DefaultRuntimeConfig(), opts...)
}

func NewModelWithConfig(cfg RuntimeConfig, opts ...Option) Model {
	m := Model{
		CurrentTab:     TabTodos,
		DesktopEnabled: cfg.DesktopNotifications,
		notifier:       NoopDesktopNotifier{},
		clipboard:      SystemClipboard{},
		opener:         ExecLinkOpener{},
		log:            discardLogger(),
		markdownStyle:  cfg.MarkdownStyle,
		Keys: GlobalKeyMap{
			Todos: "1",
			Learn: "2",
			Help:  "?",
			Quit:  "q",
		},
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.busy = &busyDeferrer{engine: m.Scheduler}
	listOpts := []tasklist.Option{
		tasklist.WithDeferrer(m.busy),
		tasklist.WithLogger(m.log),
	}
	if d := cfg.BusyDelay(); d > 0 {
		listOpts = append(listOpts, tasklist.WithBusyDelay(d))
	}
	m.List = tasklist.New(listOpts...)
	m.log = m.log.WithField("module", "update")

	m.initBubbleComponents()
	m.refreshLearnContent()
	return m
}

func (m *Model) initBubbleComponents() {
	m.addInput = textinput.New()
	m.addInput.Prompt = "add> "
	m.addInput.Placeholder = "Add a Todo"
	m.addInput.CharLimit = 256
	m.addInput.Width = 42

	m.editInput = textinput.New()
	m.editInput.Prompt = "edit> "
	m.editInput.Placeholder = "Edit todo..."
	m.editInput.CharLimit = model.MaxTextLength
	m.editInput.Width = model.MaxTextLength

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.busySpinner = spinner.New()
	m.busySpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.learnViewport = viewport.New(58, 16)
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
