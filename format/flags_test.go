package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFlagAccessors(t *testing.T) {
	t.Run("None has nothing set", func(t *testing.T) {
		require.False(t, None.HasPruneEmptyColumns())
		require.False(t, None.HasPruneEmptyRows())
		require.False(t, None.HasPruneCommentRows())
		require.False(t, None.HasHeaderlessSingleField())
		require.False(t, None.HasRowPruning())
	})

	t.Run("Default enables cleanup only", func(t *testing.T) {
		require.True(t, Default.HasPruneEmptyColumns())
		require.True(t, Default.HasPruneEmptyRows())
		require.True(t, Default.HasPruneCommentRows())
		require.False(t, Default.HasHeaderlessSingleField())
	})

	t.Run("Flags compose independently", func(t *testing.T) {
		f := PruneCommentRows | HeaderlessSingleField
		require.False(t, f.HasPruneEmptyColumns())
		require.False(t, f.HasPruneEmptyRows())
		require.True(t, f.HasPruneCommentRows())
		require.True(t, f.HasHeaderlessSingleField())
		require.True(t, f.HasRowPruning())
	})

	t.Run("Row pruning requires a row bit", func(t *testing.T) {
		require.False(t, (PruneEmptyColumns | HeaderlessSingleField).HasRowPruning())
		require.True(t, PruneEmptyRows.HasRowPruning())
	})
}

func TestLoadFlagString(t *testing.T) {
	require.Equal(t, "None", None.String())
	require.Equal(t, "PruneEmptyRows", PruneEmptyRows.String())
	require.Equal(t, "PruneEmptyColumns|PruneEmptyRows|PruneCommentRows", Default.String())
	require.Equal(t, "PruneCommentRows|HeaderlessSingleField", (PruneCommentRows | HeaderlessSingleField).String())
}
