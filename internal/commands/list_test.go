package commands

import (
	"testing"

	"github.com/sandeepkv93/todoscreen/internal/tasklist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, h Handlers, line string) (Result, error) {
	t.Helper()
	cmd, err := Parse(line)
	require.NoError(t, err)
	return Execute(cmd, h)
}

func TestListHandlersScenario(t *testing.T) {
	list := tasklist.New()
	h := ListHandlers(list)

	res, err := run(t, h, "/add  Buy milk ")
	require.NoError(t, err)
	assert.Equal(t, "added #1: Buy milk", res.Message)

	_, err = run(t, h, "add Walk dog")
	require.NoError(t, err)

	res, err = run(t, h, "toggle 1")
	require.NoError(t, err)
	assert.Equal(t, "completed #1: Buy milk", res.Message)

	res, err = run(t, h, "edit 2 Walk the dog")
	require.NoError(t, err)
	assert.Equal(t, "updated #2: Walk the dog", res.Message)
	assert.False(t, list.ViewModel().Editing)

	res, err = run(t, h, "ls")
	require.NoError(t, err)
	assert.Equal(t, "1. ✓ Buy milk\n2. ○ Walk the dog", res.Message)

	res, err = run(t, h, "delete 1")
	require.NoError(t, err)
	assert.Equal(t, "deleted #1: Buy milk", res.Message)

	res, err = run(t, h, "clear")
	require.NoError(t, err)
	assert.Equal(t, "deleted 1 todo(s)", res.Message)
	assert.Equal(t, 0, list.Len())
}

func TestListHandlersToggleReopens(t *testing.T) {
	list := tasklist.New()
	h := ListHandlers(list)
	_, err := run(t, h, "add a")
	require.NoError(t, err)
	_, err = run(t, h, "toggle 1")
	require.NoError(t, err)

	res, err := run(t, h, "toggle 1")
	require.NoError(t, err)
	assert.Equal(t, "reopened #1: a", res.Message)
}

func TestListHandlersBadPosition(t *testing.T) {
	h := ListHandlers(tasklist.New())
	for _, line := range []string{"toggle 1", "edit 3 x", "delete 2"} {
		_, err := run(t, h, line)
		var ce *CommandError
		require.ErrorAs(t, err, &ce, line)
		assert.Equal(t, ErrCodeInvalidArgument, ce.Code)
	}
}

func TestListHandlersClearEmptyList(t *testing.T) {
	list := tasklist.New()
	_, err := run(t, ListHandlers(list), "clear")
	assert.ErrorIs(t, err, tasklist.ErrNoOp)
	assert.Equal(t, "No todos to delete", tasklist.UserMessage(err))
}

func TestFormatListEmpty(t *testing.T) {
	assert.Equal(t, "No todos yet", FormatList(tasklist.New().ViewModel()))
}
