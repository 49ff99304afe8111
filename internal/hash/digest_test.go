package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sumRows(rows [][]string) uint64 {
	d := NewDigest()
	for _, row := range rows {
		for _, field := range row {
			d.WriteField([]byte(field))
		}
		d.EndRow()
	}

	return d.Sum64()
}

func TestDigest(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		rows := [][]string{{"name", "cost"}, {"zombie", "25"}}
		require.Equal(t, sumRows(rows), sumRows(rows))
	})

	t.Run("Field boundaries matter", func(t *testing.T) {
		require.NotEqual(t,
			sumRows([][]string{{"ab", "c"}}),
			sumRows([][]string{{"a", "bc"}}))
	})

	t.Run("Row boundaries matter", func(t *testing.T) {
		require.NotEqual(t,
			sumRows([][]string{{"a", "b"}}),
			sumRows([][]string{{"a"}, {"b"}}))
	})

	t.Run("Empty fields count", func(t *testing.T) {
		require.NotEqual(t,
			sumRows([][]string{{"a"}}),
			sumRows([][]string{{"a", ""}}))
	})
}
