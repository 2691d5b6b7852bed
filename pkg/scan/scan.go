// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scan

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/unityfix/pkg/rewrite"
	"github.com/walteh/unityfix/pkg/rules"
	"github.com/walteh/unityfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// DefaultGlob selects the files the fixer operates on
const DefaultGlob = "**/*.cs"

// 🔧 Options configures a Scanner
type Options struct {
	Root      string               // Directory to scan, must exist
	Glob      string               // Doublestar pattern relative to Root, DefaultGlob when empty
	Rewriter  rewrite.Rewriter     // Text transformation to apply per file
	Table     []rules.Rule         // Ordered rule table
	Formatter status.FileFormatter // Per-file and summary line formatting
	Console   io.Writer            // Destination for report lines
}

// 📄 FileResult records the outcome for a single candidate file
type FileResult struct {
	Path         string // Relative to the scan root
	Changed      bool
	Replacements int
	Err          error
}

// 📊 Summary accumulates results across one run
type Summary struct {
	FilesScanned  int
	FilesModified int
	TotalChanges  int
	Errors        int
}

// 🔍 Scanner walks a directory tree and rewrites matching files in place
type Scanner struct {
	opts Options
}

// 🏭 New creates a Scanner, validating the root path and glob pattern
func New(opts Options) (*Scanner, error) {
	if opts.Glob == "" {
		opts.Glob = DefaultGlob
	}
	if !doublestar.ValidatePattern(opts.Glob) {
		return nil, errors.Errorf("invalid glob pattern: %q", opts.Glob)
	}

	info, err := os.Stat(opts.Root)
	if err != nil {
		return nil, errors.Errorf("checking root path: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("root path %q is not a directory", opts.Root)
	}

	return &Scanner{opts: opts}, nil
}

// 🏃 Run discovers candidate files and processes each one sequentially.
// Per-file errors are reported and counted but never abort the walk.
func (s *Scanner) Run(ctx context.Context) (*Summary, error) {
	files, err := s.discover(ctx)
	if err != nil {
		return nil, errors.Errorf("discovering files: %w", err)
	}

	userLogger := status.NewUserLogger(ctx)
	userLogger.LogScanStart(s.opts.Root, len(files))

	summary := &Summary{}
	for _, relPath := range files {
		result := s.processFile(ctx, relPath)
		summary.FilesScanned++

		switch {
		case result.Err != nil:
			summary.Errors++
			fmt.Fprintln(s.opts.Console, s.opts.Formatter.FormatFileError(result.Path, result.Err))
		case result.Changed:
			summary.FilesModified++
			summary.TotalChanges += result.Replacements
			fmt.Fprintln(s.opts.Console, s.opts.Formatter.FormatFileChange(result.Path, result.Replacements))
		}
	}

	fmt.Fprintln(s.opts.Console)
	fmt.Fprintln(s.opts.Console, s.opts.Formatter.FormatSummary(summary.FilesModified, summary.TotalChanges))

	return summary, nil
}

// 🗺️ discover walks the root and returns the relative paths matching the glob
func (s *Scanner) discover(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var files []string
	err := filepath.WalkDir(s.opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory entries are skipped, not fatal
			logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(s.opts.Root, path)
		if err != nil {
			return errors.Errorf("resolving relative path for %s: %w", path, err)
		}

		match, err := doublestar.Match(s.opts.Glob, filepath.ToSlash(relPath))
		if err != nil {
			return errors.Errorf("matching %s against %q: %w", relPath, s.opts.Glob, err)
		}
		if match {
			files = append(files, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("candidates", len(files)).Str("glob", s.opts.Glob).Msg("discovery complete")
	return files, nil
}

// 📄 processFile reads, rewrites, and conditionally writes back one file
func (s *Scanner) processFile(ctx context.Context, relPath string) FileResult {
	absPath := filepath.Join(s.opts.Root, relPath)

	f, err := os.Open(absPath)
	if err != nil {
		return FileResult{Path: relPath, Err: errors.Errorf("opening file: %w", err)}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return FileResult{Path: relPath, Err: errors.Errorf("getting file info: %w", err)}
	}

	result, err := s.opts.Rewriter.Rewrite(ctx, f, s.opts.Table)
	if err != nil {
		return FileResult{Path: relPath, Err: errors.Errorf("rewriting content: %w", err)}
	}

	// Write back only when the text actually changed, once per file
	if result.WasModified {
		if err := os.WriteFile(absPath, result.ModifiedContent, info.Mode()); err != nil {
			return FileResult{Path: relPath, Err: errors.Errorf("writing file: %w", err)}
		}
	}

	return FileResult{
		Path:         relPath,
		Changed:      result.WasModified,
		Replacements: result.ReplacementCount,
	}
}

// TODO(dr.methodical): 🔒 Write via temp file + rename so a crash mid-write cannot truncate a source file
