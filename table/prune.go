package table

import "github.com/arloliu/csvtable/format"

// PruneColumns removes every column whose header field is empty and returns
// the number of columns removed.
//
// A non-empty value sitting in an unnamed column is discarded with a warning;
// that is explicitly not an error, since tools routinely emit padding columns
// with stray content.
func (t *Table) PruneColumns() int {
	if len(t.cells) == 0 {
		return 0
	}

	pruned := 0
	// c is the current index in the shrinking table; actual tracks the
	// column's position in the original file for warning messages.
	for c, actual := 0, 0; c < t.FieldCount(); actual++ {
		if len(t.cells[0][c]) != 0 {
			c++

			continue
		}

		for r := 1; r < len(t.cells); r++ {
			if len(t.cells[r][c]) != 0 {
				t.logger.Warnf("ignoring value %q in unnamed column %d (row %d)",
					t.cells[r][c], actual, r-1)
			}
			t.cells[r] = append(t.cells[r][:c], t.cells[r][c+1:]...)
		}

		t.cells[0] = append(t.cells[0][:c], t.cells[0][c+1:]...)
		pruned++
	}

	if pruned > 0 {
		t.logger.Infof("pruned %d empty columns from table", pruned)
	}

	return pruned
}

// PruneRows removes data rows selected by the flags and returns the number
// removed: comment rows (first field starting with '#') under
// PruneCommentRows, rows whose every field is empty under PruneEmptyRows.
// With neither flag set it is a no-op.
func (t *Table) PruneRows(flags format.LoadFlag) int {
	if !flags.HasRowPruning() || len(t.cells) == 0 {
		return 0
	}

	pruned := 0
	// The same index is re-examined after each removal, so runs of
	// removable rows are handled without skipping.
	for r := 0; r < t.RowCount(); {
		row := t.cells[r+1]

		if flags.HasPruneCommentRows() && len(row[0]) > 0 && row[0][0] == '#' {
			t.DeleteRow(r)
			pruned++

			continue
		}

		if flags.HasPruneEmptyRows() && rowEmpty(row) {
			t.DeleteRow(r)
			pruned++

			continue
		}

		r++
	}

	if pruned > 0 {
		t.logger.Infof("pruned %d rows from table", pruned)
	}

	return pruned
}

func rowEmpty(row [][]byte) bool {
	for _, field := range row {
		if len(field) != 0 {
			return false
		}
	}

	return true
}
