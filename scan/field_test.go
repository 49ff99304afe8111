package scan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collectFields(t *testing.T, line string) []string {
	t.Helper()

	var fields []string
	fs := NewFieldScanner([]byte(line))
	for {
		field, ok := fs.Next()
		if !ok {
			break
		}
		fields = append(fields, string(field))
	}

	return fields
}

func TestFieldScannerUnquoted(t *testing.T) {
	t.Run("Plain fields", func(t *testing.T) {
		require.Equal(t, []string{"a", "b", "c"}, collectFields(t, "a,b,c"))
	})

	t.Run("Single field", func(t *testing.T) {
		require.Equal(t, []string{"alpha"}, collectFields(t, "alpha"))
	})

	t.Run("Empty line yields one empty field", func(t *testing.T) {
		require.Equal(t, []string{""}, collectFields(t, ""))
	})

	t.Run("Trailing comma yields trailing empty field", func(t *testing.T) {
		require.Equal(t, []string{"a", ""}, collectFields(t, "a,"))
	})

	t.Run("Leading comma yields leading empty field", func(t *testing.T) {
		require.Equal(t, []string{"", "a"}, collectFields(t, ",a"))
	})

	t.Run("All empty fields", func(t *testing.T) {
		require.Equal(t, []string{"", "", ""}, collectFields(t, ",,"))
	})
}

func TestFieldScannerQuoted(t *testing.T) {
	t.Run("Quoted field with embedded comma", func(t *testing.T) {
		require.Equal(t, []string{"a,b", "c"}, collectFields(t, `"a,b",c`))
	})

	t.Run("Escaped quotes collapse", func(t *testing.T) {
		require.Equal(t, []string{`say "hi"`}, collectFields(t, `"say ""hi"""`))
	})

	t.Run("Quoted field in the middle", func(t *testing.T) {
		require.Equal(t, []string{"a", "b,c", "d"}, collectFields(t, `a,"b,c",d`))
	})

	t.Run("Quoted final field yields no spurious trailing field", func(t *testing.T) {
		require.Equal(t, []string{"a", "b"}, collectFields(t, `a,"b"`))
	})

	t.Run("Empty quoted field", func(t *testing.T) {
		require.Equal(t, []string{"", "x"}, collectFields(t, `"",x`))
		require.Equal(t, []string{"x", ""}, collectFields(t, `x,""`))
	})

	t.Run("Only escaped quotes", func(t *testing.T) {
		require.Equal(t, []string{`"`}, collectFields(t, `""""`))
		require.Equal(t, []string{`""`}, collectFields(t, `""""""`))
	})

	t.Run("Unterminated quote closes at end of line", func(t *testing.T) {
		require.Equal(t, []string{"abc"}, collectFields(t, `"abc`))
		require.Equal(t, []string{"a,b"}, collectFields(t, `"a,b`))
	})

	t.Run("Quote only counts at field start", func(t *testing.T) {
		// Mid-field quotes in an unquoted field are literal, as the original
		// comma scan never inspects them.
		require.Equal(t, []string{`a"b`, "c"}, collectFields(t, `a"b,c`))
	})

	t.Run("Unquoted then quoted then unquoted", func(t *testing.T) {
		require.Equal(t, []string{"x", `y "q" z`, "w"}, collectFields(t, `x,"y ""q"" z",w`))
	})
}

func TestFieldScannerCompactsInPlace(t *testing.T) {
	line := []byte(`"a""b",tail`)
	fs := NewFieldScanner(line)

	field, ok := fs.Next()
	require.True(t, ok)
	require.Equal(t, `a"b`, string(field))

	// The unescaped field aliases the line buffer.
	require.Equal(t, &line[0], &field[0])

	field, ok = fs.Next()
	require.True(t, ok)
	require.Equal(t, "tail", string(field))

	_, ok = fs.Next()
	require.False(t, ok)
}
