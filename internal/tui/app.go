package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/clipboard/internal/config"
	"github.com/jask/clipboard/internal/logic"
)

const appName = "CLIpboard"

type keyMap struct {
	Submit  key.Binding
	Close   key.Binding
	Quit    key.Binding
	History key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close view")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "save & quit")),
		History: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "history")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.History, k.Close, k.Quit}
}

// App is the interactive front end: one command line, the list for the
// current page, and a detail pane for whatever is selected on it.
type App struct {
	ctx    context.Context
	logic  *logic.Logic
	input  textinput.Model
	keys   keyMap
	styles styles

	feedback string
	isError  bool
	showHelp bool

	history []string
	histPos int

	width  int
	height int
}

// New builds the app. history seeds the command line's up/down recall.
func New(ctx context.Context, l *logic.Logic, cfg config.UIConfig, history []string) *App {
	in := textinput.New()
	in.Placeholder = "Type a command, e.g. select 1"
	in.Prompt = "> "
	in.CharLimit = 256
	in.Focus()
	return &App{
		ctx:      ctx,
		logic:    l,
		input:    in,
		keys:     newKeyMap(),
		styles:   newStyles(cfg.Accent),
		feedback: "Welcome to " + appName + "! Type help to see the commands.",
		history:  history,
		histPos:  len(history),
	}
}

// History is every command line entered, oldest first, including the
// history New was given.
func (a *App) History() []string { return a.history }

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.input.Width = max(10, m.Width-6)
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(m, a.keys.Quit):
			if err := a.logic.Save(a.ctx); err != nil {
				a.setError(err.Error())
				return a, nil
			}
			return a, tea.Quit
		case key.Matches(m, a.keys.Submit):
			return a, a.submit()
		case key.Matches(m, a.keys.Close):
			if a.showHelp {
				a.showHelp = false
			} else if a.logic.CloseView() {
				a.setFeedback("Closed view")
			}
			return a, nil
		case key.Matches(m, a.keys.History):
			if m.String() == "up" {
				a.recall(-1)
			} else {
				a.recall(1)
			}
			return a, nil
		}
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit runs the command line and clears it.
func (a *App) submit() tea.Cmd {
	text := strings.TrimSpace(a.input.Value())
	a.input.Reset()
	if text == "" {
		return nil
	}
	a.history = append(a.history, text)
	a.histPos = len(a.history)

	res, err := a.logic.Execute(a.ctx, text)
	if err != nil {
		msg := err.Error()
		if res.Message != "" {
			msg = res.Message + "\n" + msg
		}
		a.setError(msg)
		return nil
	}
	a.setFeedback(res.Message)
	a.showHelp = false

	switch res.Command.Kind {
	case logic.KindExit:
		if err := a.logic.Save(a.ctx); err != nil {
			a.setError(err.Error())
			return nil
		}
		return tea.Quit
	case logic.KindHelp:
		a.showHelp = true
	case logic.KindSelect, logic.KindSelectSessionStudent, logic.KindOpenSessions,
		logic.KindBack, logic.KindHome,
		logic.KindAddCourse, logic.KindAddGroup, logic.KindAddStudent, logic.KindAddSession,
		logic.KindMark, logic.KindUnmark:
	}
	return nil
}

// recall walks the command history; past the newest entry the line is empty.
func (a *App) recall(step int) {
	if len(a.history) == 0 {
		return
	}
	a.histPos = min(max(a.histPos+step, 0), len(a.history))
	if a.histPos == len(a.history) {
		a.input.SetValue("")
		return
	}
	a.input.SetValue(a.history[a.histPos])
	a.input.CursorEnd()
}

func (a *App) setFeedback(s string) {
	a.feedback, a.isError = s, false
}

func (a *App) setError(s string) {
	a.feedback, a.isError = s, true
}
