package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "todo-text/internal/errors"
	"todo-text/internal/validation"
)

func TestAddCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("appends to an existing file", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeStore(t, "01/03/26\tFirst")

		err := NewAddCommand(env.app).Execute(ctx, []string{"Buy milk", "14/03/26"})
		require.NoError(t, err)

		assert.Equal(t, "01/03/26\tFirst\n14/03/26\tBuy milk\n", env.readStore(t))
		assert.Equal(t, "Added task: Buy milk (14/03/26)\n", env.out.String())
		assert.Empty(t, env.confirmer.questions, "no prompt when the file exists")
	})

	t.Run("creates a missing file after confirmation", func(t *testing.T) {
		env := newTestEnv(t)

		err := NewAddCommand(env.app).Execute(ctx, []string{"Buy milk", "14/03/26"})
		require.NoError(t, err)

		require.Len(t, env.confirmer.questions, 1)
		assert.Equal(t,
			"File 'todo.txt' is missing, press Y to create it and continue or any other key to exit",
			env.confirmer.questions[0])
		assert.Equal(t, "14/03/26\tBuy milk\n", env.readStore(t))
		assert.Equal(t, "File created\nAdded task: Buy milk (14/03/26)\n", env.out.String())
	})

	t.Run("declining leaves no file behind", func(t *testing.T) {
		env := newTestEnv(t)
		env.confirmer.answer = false

		err := NewAddCommand(env.app).Execute(ctx, []string{"Buy milk", "14/03/26"})
		require.NoError(t, err)

		assert.False(t, env.storeExists())
		assert.Empty(t, env.out.String())
	})

	t.Run("assume yes skips the prompt", func(t *testing.T) {
		env := newTestEnv(t)
		env.app.assumeYes = true

		err := NewAddCommand(env.app).Execute(ctx, []string{"Buy milk", "14/03/26"})
		require.NoError(t, err)

		assert.Empty(t, env.confirmer.questions)
		assert.True(t, env.storeExists())
	})

	t.Run("prompt failure is returned", func(t *testing.T) {
		env := newTestEnv(t)
		env.confirmer.err = errors.New("terminal gone")

		err := NewAddCommand(env.app).Execute(ctx, []string{"Buy milk", "14/03/26"})
		assert.EqualError(t, err, "terminal gone")
		assert.False(t, env.storeExists())
	})

	t.Run("invalid input is rejected before touching the file", func(t *testing.T) {
		env := newTestEnv(t)

		err := NewAddCommand(env.app).Execute(ctx, []string{"  ", "31/02/24"})
		require.Error(t, err)

		var ve *validation.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Len(t, ve.Errors, 2)
		assert.Empty(t, env.confirmer.questions)
		assert.False(t, env.storeExists())
	})

	t.Run("names containing a tab are rejected", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeStore(t)

		err := NewAddCommand(env.app).Execute(ctx, []string{"a\tb", "14/03/26"})
		assert.True(t, validation.IsValidationError(err))
		assert.Empty(t, env.readStore(t))
	})

	t.Run("long names are accepted by default", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeStore(t)
		name := strings.Repeat("n", 300)

		err := NewAddCommand(env.app).Execute(ctx, []string{name, "14/03/26"})
		require.NoError(t, err)
		assert.Equal(t, "14/03/26\t"+name+"\n", env.readStore(t))
	})

	t.Run("signed years are rejected", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeStore(t)

		err := NewAddCommand(env.app).Execute(ctx, []string{"Buy milk", "01/06/+4"})
		assert.True(t, validation.IsValidationError(err))
		assert.Empty(t, env.readStore(t))
	})

	t.Run("wrong argument count", func(t *testing.T) {
		env := newTestEnv(t)

		err := NewAddCommand(env.app).Execute(ctx, []string{"only name"})
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
	})
}
