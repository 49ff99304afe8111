package fsio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/csvtable/errs"
)

func TestMem(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		m := NewMem()
		require.False(t, m.Exists("a.csv"))

		require.NoError(t, m.WriteFile("a.csv", []byte("x,y"), false))
		require.True(t, m.Exists("a.csv"))

		size, err := m.Size("a.csv")
		require.NoError(t, err)
		require.Equal(t, int64(3), size)

		data, err := m.ReadFile("a.csv")
		require.NoError(t, err)
		require.Equal(t, "x,y", string(data))
	})

	t.Run("Missing file", func(t *testing.T) {
		m := NewMem()

		_, err := m.Size("missing.csv")
		require.ErrorIs(t, err, errs.ErrFileNotFound)

		_, err = m.ReadFile("missing.csv")
		require.ErrorIs(t, err, errs.ErrFileNotFound)
	})

	t.Run("Overwrite refusal", func(t *testing.T) {
		m := NewMem()
		require.NoError(t, m.WriteFile("a.csv", []byte("old"), false))

		err := m.WriteFile("a.csv", []byte("new"), false)
		require.ErrorIs(t, err, errs.ErrFileExists)

		data, err := m.ReadFile("a.csv")
		require.NoError(t, err)
		require.Equal(t, "old", string(data))

		require.NoError(t, m.WriteFile("a.csv", []byte("new"), true))
		data, err = m.ReadFile("a.csv")
		require.NoError(t, err)
		require.Equal(t, "new", string(data))
	})

	t.Run("ReadFile returns a copy", func(t *testing.T) {
		m := NewMem()
		m.Put("a.csv", []byte("abc"))

		data, err := m.ReadFile("a.csv")
		require.NoError(t, err)
		data[0] = 'z'

		again, err := m.ReadFile("a.csv")
		require.NoError(t, err)
		require.Equal(t, "abc", string(again))
	})
}

func TestOS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.csv")
	fs := OS{}

	t.Run("Missing file", func(t *testing.T) {
		require.False(t, fs.Exists(path))

		_, err := fs.Size(path)
		require.ErrorIs(t, err, errs.ErrFileNotFound)

		_, err = fs.ReadFile(path)
		require.ErrorIs(t, err, errs.ErrFileNotFound)
	})

	t.Run("Write then read", func(t *testing.T) {
		require.NoError(t, fs.WriteFile(path, []byte("a,b\r\n"), false))
		require.True(t, fs.Exists(path))

		size, err := fs.Size(path)
		require.NoError(t, err)
		require.Equal(t, int64(5), size)

		data, err := fs.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "a,b\r\n", string(data))
	})

	t.Run("Overwrite refusal", func(t *testing.T) {
		err := fs.WriteFile(path, []byte("other"), false)
		require.ErrorIs(t, err, errs.ErrFileExists)

		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		require.Equal(t, "a,b\r\n", string(content))

		require.NoError(t, fs.WriteFile(path, []byte("other"), true))
	})
}
