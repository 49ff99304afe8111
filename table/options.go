package table

import (
	"github.com/arloliu/csvtable/fsio"
	"github.com/arloliu/csvtable/internal/options"
	"github.com/arloliu/csvtable/logging"
)

// Option configures a Table at construction time.
type Option = options.Option[*Table]

// WithFileSystem sets the file access capability used by Load and WriteFile.
// The default is the real filesystem (fsio.OS).
func WithFileSystem(fs fsio.FileSystem) Option {
	return options.NoError(func(t *Table) {
		t.fs = fs
	})
}

// WithLogger sets the diagnostic sink. The default discards all messages.
func WithLogger(logger logging.Logger) Option {
	return options.NoError(func(t *Table) {
		t.logger = logger
	})
}
