package reportlay

import (
	"errors"
	"fmt"
)

// ErrNoSections is returned by Render when the document is empty.
var ErrNoSections = errors.New("reportlay: document has no sections")

// LayoutError represents an error that occurred during a specific layout or
// canvas operation. It wraps an underlying error and includes the operation
// name for context.
type LayoutError struct {
	Op  string // operation name, e.g. "Render", "Output"
	Err error  // underlying error
}

func (e *LayoutError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reportlay.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("reportlay.%s: unknown error", e.Op)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// newLayoutError creates a new LayoutError wrapping the given error with
// operation context.
func newLayoutError(op string, err error) *LayoutError {
	return &LayoutError{Op: op, Err: err}
}

// BlockTooLargeError reports a content block that cannot fit on any page:
// even immediately after a page break its height exceeds the usable page
// height. It aborts the render; no partial artifact is valid.
type BlockTooLargeError struct {
	Section int     // index of the offending section
	Block   int     // index of the block within the section; -1 for the title
	Height  float64 // required height in points
	Usable  float64 // usable page height in points
}

func (e *BlockTooLargeError) Error() string {
	if e.Block < 0 {
		return fmt.Sprintf("reportlay: section %d title height %.1f exceeds usable page height %.1f",
			e.Section, e.Height, e.Usable)
	}
	return fmt.Sprintf("reportlay: section %d block %d height %.1f exceeds usable page height %.1f",
		e.Section, e.Block, e.Height, e.Usable)
}

// ConfigError reports an invalid document configuration. It is returned by
// New before any drawing begins.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("reportlay: invalid configuration: %s: %s", e.Field, e.Reason)
}
