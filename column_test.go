package sqlhelper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewColumn(t *testing.T) {
	for _, name := range []string{"Id", "user_name", "_x", "user.email", "a1.b2.c3"} {
		col, err := NewColumn(name)
		require.NoError(t, err)
		require.Equal(t, name, col.Name())
	}
}

func TestNewColumnRejectsInvalid(t *testing.T) {
	for _, name := range []string{"", "1col", "a-b", "a b", `a"b`, "t;DROP TABLE x", "a..b"} {
		_, err := NewColumn(name)
		require.Error(t, err, "expected %q to be rejected", name)
	}
}

func TestColumnQuoted(t *testing.T) {
	col, err := NewColumn("Value")
	require.NoError(t, err)
	require.Equal(t, `"Value"`, col.Quoted())
}

func TestNewColumnOrPanic(t *testing.T) {
	require.NotPanics(t, func() { NewColumnOrPanic("ok") })
	require.Panics(t, func() { NewColumnOrPanic("not ok") })
}
