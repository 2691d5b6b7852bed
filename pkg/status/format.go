package status

import (
	"fmt"

	"github.com/fatih/color"
)

// FileFormatter defines how per-file results and the run summary are formatted
type FileFormatter interface {
	// FormatFileChange formats the report line for a modified file
	FormatFileChange(path string, replacements int) string

	// FormatFileError formats the report line for a file that failed processing
	FormatFileError(path string, err error) string

	// FormatSummary formats the end-of-run summary block
	FormatSummary(filesModified, totalChanges int) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileChange formats a modified-file line with a colored check mark
func (f *DefaultFileFormatter) FormatFileChange(path string, replacements int) string {
	mark := color.New(color.FgGreen).Sprint("✓")
	return fmt.Sprintf("%s Fixed %d instance(s) in: %s", mark, replacements, path)
}

// FormatFileError formats a failed-file line with a colored cross
func (f *DefaultFileFormatter) FormatFileError(path string, err error) string {
	mark := color.New(color.FgRed).Sprint("✗")
	return fmt.Sprintf("%s Error processing %s: %v", mark, path, err)
}

// FormatSummary formats the summary block printed after the walk
func (f *DefaultFileFormatter) FormatSummary(filesModified, totalChanges int) string {
	header := color.New(color.Bold).Sprint("Summary:")
	out := fmt.Sprintf("%s\n  Files modified: %d\n  Total changes: %d", header, filesModified, totalChanges)
	if totalChanges == 0 {
		out += "\n  No deprecated FindObject calls found!"
	}
	return out
}
