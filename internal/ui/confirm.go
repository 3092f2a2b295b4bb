package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

var acceptKey = key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes"))

// confirmModel waits for a single key press. Y accepts, anything else declines.
type confirmModel struct {
	question string
	answered bool
	accepted bool
}

func newConfirmModel(question string) confirmModel {
	return confirmModel{question: question}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

// inputClosedMsg reports that the input reached EOF before a key was pressed
type inputClosedMsg struct{}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.answered = true
		m.accepted = key.Matches(msg, acceptKey)
		return m, tea.Quit
	case inputClosedMsg:
		m.answered = true
		m.accepted = false
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	return m.question + "\n"
}

// Confirm shows question and reads one key from in.
// It returns false when the user presses any key other than Y or when input ends.
func Confirm(ctx context.Context, in io.Reader, out io.Writer, question string) (bool, error) {
	input, notifier := confirmInput(in)
	program := tea.NewProgram(
		newConfirmModel(question),
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(out),
	)
	if notifier != nil {
		notifier.onEOF = func() { program.Send(inputClosedMsg{}) }
	}

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	m, ok := final.(confirmModel)
	if !ok {
		return false, nil
	}
	return m.answered && m.accepted, nil
}

// confirmInput hands a terminal to bubbletea unchanged so it switches to raw mode
// and a single key press answers. Other readers are wrapped to report EOF.
func confirmInput(in io.Reader) (io.Reader, *eofNotifier) {
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return f, nil
	}
	notifier := &eofNotifier{r: in}
	return notifier, notifier
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// eofNotifier calls onEOF once when the wrapped reader is exhausted
type eofNotifier struct {
	r     io.Reader
	onEOF func()
	done  sync.Once
}

func (e *eofNotifier) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if errors.Is(err, io.EOF) && e.onEOF != nil {
		e.done.Do(e.onEOF)
	}
	return n, err
}
