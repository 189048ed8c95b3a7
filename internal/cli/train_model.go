package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/alexanderramin/physio/internal/domain"
)

// saveSetsFunc persists the recorded sets and reports whether the day's
// session was created or replaced.
type saveSetsFunc func(values []float64) (*domain.ExerciseSession, bool, error)

type trainKeyMap struct {
	Toggle key.Binding
	Up     key.Binding
	Down   key.Binding
	Finish key.Binding
	Undo   key.Binding
	Save   key.Binding
	Quit   key.Binding
}

func newTrainKeyMap(kind domain.ExerciseKind) trainKeyMap {
	km := trainKeyMap{
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/stop")),
		Up:     key.NewBinding(key.WithKeys("up", "+", "k"), key.WithHelp("↑/+", "one more rep")),
		Down:   key.NewBinding(key.WithKeys("down", "-", "j"), key.WithHelp("↓/-", "one less")),
		Finish: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "finish set")),
		Undo:   key.NewBinding(key.WithKeys("u", "backspace"), key.WithHelp("u", "undo")),
		Save:   key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	if kind == domain.KindTimeBased {
		km.Up.SetEnabled(false)
		km.Down.SetEnabled(false)
	} else {
		km.Toggle.SetEnabled(false)
	}
	return km
}

func (k trainKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Up, k.Down, k.Finish, k.Undo, k.Save, k.Quit}
}

func (k trainKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type trainSavedMsg struct {
	session *domain.ExerciseSession
	created bool
	err     error
}

// trainModel runs one training session. Timed exercises use a stopwatch;
// rep exercises use a counter. Typing digits overrides either with a manual
// value for the current set.
type trainModel struct {
	exercise *domain.Exercise
	save     saveSetsFunc

	watch   stopwatch.Model
	keys    trainKeyMap
	help    help.Model
	count   int
	manual  string
	sets    []float64
	saving  bool
	saved   *trainSavedMsg
	aborted bool
	width   int
}

func newTrainModel(e *domain.Exercise, save saveSetsFunc) trainModel {
	return trainModel{
		exercise: e,
		save:     save,
		watch:    stopwatch.NewWithInterval(100 * time.Millisecond),
		keys:     newTrainKeyMap(e.Kind),
		help:     help.New(),
	}
}

func (m trainModel) timed() bool {
	return m.exercise.Kind == domain.KindTimeBased
}

func (m trainModel) Init() tea.Cmd {
	return nil
}

func (m trainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case trainSavedMsg:
		m.saving = false
		m.saved = &msg
		if msg.err != nil {
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.watch, cmd = m.watch.Update(msg)
	return m, cmd
}

func (m trainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '0' && msg.Runes[0] <= '9' {
		if len(m.manual) < 5 {
			m.manual += string(msg.Runes)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		return m, m.watch.Toggle()

	case key.Matches(msg, m.keys.Up):
		m.count++
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.count = max(0, m.count-1)
		return m, nil

	case key.Matches(msg, m.keys.Finish):
		v := m.currentValue()
		if v <= 0 {
			return m, nil
		}
		m.sets = append(m.sets, v)
		m.manual = ""
		m.count = 0
		if m.timed() {
			return m, tea.Batch(m.watch.Stop(), m.watch.Reset())
		}
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		if m.manual != "" {
			m.manual = m.manual[:len(m.manual)-1]
			return m, nil
		}
		if len(m.sets) > 0 {
			m.sets = m.sets[:len(m.sets)-1]
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		if len(m.sets) == 0 {
			return m, nil
		}
		m.saving = true
		return m, m.saveCmd()
	}
	return m, nil
}

// currentValue is the measurement the next finished set will record.
func (m trainModel) currentValue() float64 {
	if m.manual != "" {
		v, _ := strconv.Atoi(m.manual)
		return float64(v)
	}
	if m.timed() {
		return math.Round(m.watch.Elapsed().Seconds())
	}
	return float64(m.count)
}

func (m trainModel) saveCmd() tea.Cmd {
	values := append([]float64(nil), m.sets...)
	save := m.save
	return func() tea.Msg {
		session, created, err := save(values)
		return trainSavedMsg{session: session, created: created, err: err}
	}
}

func (m trainModel) View() string {
	e := m.exercise
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n\n",
		formatter.Header(e.Name),
		formatter.Dim("target "+formatter.FormatTarget(e.TargetSets, e.ActiveTarget(), e.Kind)))

	setNo := len(m.sets) + 1
	current := formatter.FormatMeasure(e.Kind, m.currentValue())
	switch {
	case m.manual != "":
		current = m.manual + "_"
	case m.timed():
		current = m.watch.View()
	}
	fmt.Fprintf(&b, "Set %d  %s\n\n", setNo, formatter.Bold(current))

	for i, v := range m.sets {
		mark := formatter.StyleYellow.Render("·")
		if v >= float64(e.ActiveTarget()) {
			mark = formatter.StyleGreen.Render("✓")
		}
		fmt.Fprintf(&b, "  %s set %d  %s\n", mark, i+1, formatter.FormatMeasure(e.Kind, v))
	}
	if len(m.sets) > 0 {
		total := 0.0
		for _, v := range m.sets {
			total += v
		}
		fmt.Fprintf(&b, "  %s\n", formatter.Dim(fmt.Sprintf("%d of %d sets, %s total",
			len(m.sets), e.TargetSets, formatter.FormatMeasure(e.Kind, total))))
	}
	b.WriteString("\n")

	switch {
	case m.saving:
		b.WriteString(formatter.Dim("Saving...") + "\n")
	case m.saved != nil && m.saved.err != nil:
		b.WriteString(formatter.StyleRed.Render("Save failed: "+m.saved.err.Error()) + "\n")
	case m.saved != nil:
		verb := "Saved"
		if !m.saved.created {
			verb = "Replaced today's session"
		}
		b.WriteString(formatter.StyleGreen.Render(fmt.Sprintf("%s: %d sets", verb, len(m.sets))) + "\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}
