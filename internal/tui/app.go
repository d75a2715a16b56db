package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/minimallist/internal/config"
	"github.com/jask/minimallist/internal/motion"
	"github.com/jask/minimallist/internal/shake"
	"github.com/jask/minimallist/internal/todo"
)

// Sensor describes the accelerometer feeding shake to clear.
type Sensor struct {
	Source    motion.Source
	Simulator *motion.Simulated // set when Source polls a simulated reader
	Interval  time.Duration
	Threshold float64
}

// App is the single list screen.
type App struct {
	ctx       context.Context
	cfg       config.UIConfig
	todos     *todo.Controller
	detector  *shake.Detector
	simulator *motion.Simulated
	keys      *KeyRegistry
	input     textinput.Model
	feed      *sampleFeed

	tasks     []todo.Task
	cursor    int
	status    string
	statusErr bool
	width     int
	height    int
}

func New(ctx context.Context, cfg config.UIConfig, todos *todo.Controller, sensor Sensor) *App {
	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.Prompt = ""
	a := &App{
		ctx:       ctx,
		cfg:       cfg,
		todos:     todos,
		simulator: sensor.Simulator,
		keys:      NewKeyRegistry(DefaultKeyBindings()),
		input:     ti,
	}
	a.detector = shake.New(sensor.Source, a.onShake,
		shake.WithInterval(sensor.Interval),
		shake.WithThreshold(sensor.Threshold),
	)
	a.reload()
	return a
}

// Init starts listening for shakes; the screen is visible from here on.
func (a *App) Init() tea.Cmd {
	return a.startShake()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.input.Width = max(10, m.Width-6)
	case tea.FocusMsg:
		return a, a.startShake()
	case tea.BlurMsg:
		a.stopShake()
	case sampleMsg:
		if m.feed != a.feed {
			return a, nil
		}
		a.detector.Handle(m.sample)
		return a, m.feed.next()
	case tea.MouseMsg:
		return a, a.handleMouse(m)
	case tea.KeyMsg:
		if a.todos.Draft().Active {
			return a, a.handleEntryKey(m)
		}
		return a, a.handleListKey(m)
	}
	return a, nil
}

func (a *App) handleListKey(m tea.KeyMsg) tea.Cmd {
	action, ok := a.keys.Action(m, scopeList)
	if !ok {
		return nil
	}
	switch action {
	case actionQuit:
		return a.quit()
	case actionUp:
		if a.cursor == 0 {
			return a.beginEntry()
		}
		a.cursor--
	case actionDown:
		if a.cursor < len(a.tasks)-1 {
			a.cursor++
		}
	case actionNew:
		return a.beginEntry()
	case actionToggle:
		a.toggleSelected()
	case actionShake:
		a.simulateShake()
	}
	return nil
}

func (a *App) handleEntryKey(m tea.KeyMsg) tea.Cmd {
	if action, ok := a.keys.Action(m, scopeEntry); ok {
		switch action {
		case actionQuit:
			return a.quit()
		case actionSubmit:
			a.submit()
			return nil
		case actionCancel:
			a.todos.CancelEntry()
			a.input.Reset()
			a.input.Blur()
			a.setStatus("")
			return nil
		}
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	a.todos.UpdateDraft(a.input.Value())
	return cmd
}

// handleMouse treats scrolling up past the first row as a pull.
func (a *App) handleMouse(m tea.MouseMsg) tea.Cmd {
	if m.Action != tea.MouseActionPress || a.todos.Draft().Active {
		return nil
	}
	switch m.Button {
	case tea.MouseButtonWheelUp:
		if a.cursor == 0 {
			return a.beginEntry()
		}
		a.cursor--
	case tea.MouseButtonWheelDown:
		if a.cursor < len(a.tasks)-1 {
			a.cursor++
		}
	}
	return nil
}

func (a *App) beginEntry() tea.Cmd {
	a.todos.BeginEntry()
	a.input.SetValue(a.todos.Draft().Text)
	a.input.CursorEnd()
	return a.input.Focus()
}

func (a *App) submit() {
	task, ok, err := a.todos.SubmitEntry(a.ctx)
	if err != nil {
		a.setError(err)
		return
	}
	if !ok {
		return
	}
	a.input.Reset()
	a.input.Blur()
	a.reload()
	a.setStatus(fmt.Sprintf("added %q", task.Title))
}

func (a *App) toggleSelected() {
	if len(a.tasks) == 0 {
		return
	}
	id := a.tasks[a.cursor].ID
	if _, err := a.todos.ToggleCompleted(a.ctx, id); err != nil {
		a.setError(err)
		return
	}
	a.reload()
}

func (a *App) onShake() {
	n, err := a.todos.ClearCompleted(a.ctx)
	if err != nil {
		a.setError(err)
		return
	}
	a.reload()
	if n > 0 {
		a.setStatus(fmt.Sprintf("cleared %d completed", n))
	}
}

func (a *App) simulateShake() {
	if a.simulator == nil {
		a.setStatus("no simulated sensor; run with --sensor simulated")
		return
	}
	if a.detector.State() != shake.Listening {
		a.setStatus("not listening for shakes")
		return
	}
	a.simulator.Shake()
}

func (a *App) startShake() tea.Cmd {
	if a.feed != nil {
		return nil
	}
	f := newSampleFeed()
	a.detector.Start(f.dispatch)
	if a.detector.State() != shake.Listening {
		f.close()
		return nil
	}
	a.feed = f
	return f.next()
}

func (a *App) stopShake() {
	if a.feed != nil {
		a.feed.close()
		a.feed = nil
	}
	a.detector.Stop()
}

func (a *App) quit() tea.Cmd {
	a.stopShake()
	return tea.Quit
}

func (a *App) reload() {
	tasks, err := a.todos.Tasks(a.ctx)
	if err != nil {
		a.setError(err)
		return
	}
	a.tasks = tasks
	if a.cursor >= len(a.tasks) {
		a.cursor = max(0, len(a.tasks)-1)
	}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	log.Printf("[tui] %v", err)
	a.status = "error: " + err.Error()
	a.statusErr = true
}
