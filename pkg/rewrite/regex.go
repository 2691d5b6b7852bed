package rewrite

import (
	"bytes"
	"context"
	"io"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/unityfix/pkg/rules"
	"gitlab.com/tozd/go/errors"
)

// RegexRewriter implements Rewriter using global regexp substitution
type RegexRewriter struct{}

// NewRegexRewriter creates a new RegexRewriter
func NewRegexRewriter() *RegexRewriter {
	return &RegexRewriter{}
}

// Rewrite implements Rewriter.Rewrite
func (r *RegexRewriter) Rewrite(ctx context.Context, content io.Reader, table []rules.Rule) (*Result, error) {
	// Read all content
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	// Regexp matching assumes valid text; refuse binary garbage up front
	if !utf8.Valid(originalContent) {
		return nil, errors.New("content is not valid UTF-8 text")
	}

	result := &Result{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	// Apply each rule against the current text, so rule N sees the output of
	// rule N-1 rather than the original. Substitution is global and
	// non-overlapping, leftmost first.
	currentContent := originalContent
	for _, rule := range table {
		matches := len(rule.Pattern.FindAllIndex(currentContent, -1))
		if matches == 0 {
			continue
		}

		newContent := rule.Pattern.ReplaceAll(currentContent, []byte(rule.Template))
		if !bytes.Equal(newContent, currentContent) {
			result.WasModified = true
			result.ReplacementCount += matches
			zerolog.Ctx(ctx).Debug().
				Str("rule", rule.Name).
				Int("matches", matches).
				Msg("applied rewrite rule")
		}

		currentContent = newContent
	}

	result.ModifiedContent = currentContent
	return result, nil
}
