package loader

import (
	"github.com/peterskim12/csvloader/internal/csvutil"
	"github.com/peterskim12/csvloader/internal/sanitize"
)

// Sentinels for the failure classes callers branch on with errors.Is().
// A missing CSV file wraps fs.ErrNotExist and carries the path.
var (
	ErrInvalidIdentifier = sanitize.ErrInvalidIdentifier
	ErrEmptyFile         = csvutil.ErrEmptyFile
)
