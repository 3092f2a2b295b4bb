package ui

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmModel_Update(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.Msg
		answered bool
		accepted bool
	}{
		{"lower y accepts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, true, true},
		{"upper Y accepts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Y'}}, true, true},
		{"n declines", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, true, false},
		{"enter declines", tea.KeyMsg{Type: tea.KeyEnter}, true, false},
		{"closed input declines", inputClosedMsg{}, true, false},
		{"window size is ignored", tea.WindowSizeMsg{Width: 80, Height: 24}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, cmd := newConfirmModel("Create it?").Update(tt.msg)
			m := model.(confirmModel)

			assert.Equal(t, tt.answered, m.answered)
			assert.Equal(t, tt.accepted, m.accepted)
			if tt.answered {
				require.NotNil(t, cmd)
				assert.IsType(t, tea.QuitMsg{}, cmd())
			} else {
				assert.Nil(t, cmd)
			}
		})
	}
}

func TestConfirmModel_View(t *testing.T) {
	m := newConfirmModel("Create it?")
	assert.Equal(t, "Create it?\n", m.View())

	m.answered = true
	assert.Equal(t, "Create it?\n", m.View(), "the question stays on screen after answering")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"y", "y", true},
		{"Y", "Y", true},
		{"other key", "q", false},
		{"empty input", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			var out bytes.Buffer
			got, err := Confirm(ctx, strings.NewReader(tt.input), &out, "Create it?")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirmInput(t *testing.T) {
	t.Run("plain readers report end of input", func(t *testing.T) {
		in := strings.NewReader("")
		input, notifier := confirmInput(in)

		require.NotNil(t, notifier)
		assert.Same(t, notifier, input)
	})

	t.Run("regular files are not terminals", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "input")
		require.NoError(t, err)
		defer f.Close()

		assert.False(t, isTerminal(f))
		_, notifier := confirmInput(f)
		assert.NotNil(t, notifier, "a redirected file still needs the end of input reported")
	})
}
