package rewrite

import (
	"context"
	"io"

	"github.com/walteh/unityfix/pkg/rules"
)

// Result contains the outcome of rewriting one file's text
type Result struct {
	// WasModified indicates if any rule changed the text
	WasModified bool

	// ReplacementCount is the total number of matches replaced across all rules
	ReplacementCount int

	// OriginalContent is the text before rewriting
	OriginalContent []byte

	// ModifiedContent is the text after rewriting
	ModifiedContent []byte
}

// Rewriter defines the interface for applying an ordered rule table to text
type Rewriter interface {
	// Rewrite applies every rule, in table order, to the content.
	// Returns a Result containing the rewritten text and metadata.
	Rewrite(ctx context.Context, content io.Reader, table []rules.Rule) (*Result, error)
}
