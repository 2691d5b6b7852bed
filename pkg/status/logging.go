package status

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about the run
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📊 LogScanStart announces the walk before any file is touched
func (u *UserLogger) LogScanStart(root string, fileCount int) {
	msg := fmt.Sprintf("Found %d C# files to process in %s", fileCount, root)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "🔍"}).Println(msg)
	u.log.Info().Str("root", root).Int("files", fileCount).Msg("scan started")
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
	} else {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
		u.log.Warn().Msg(description)
	}
}

// 🏁 LogRunComplete logs the end-of-run state
func (u *UserLogger) LogRunComplete(filesModified, totalChanges int) {
	if totalChanges == 0 {
		pterm.Info.WithPrefix(pterm.Prefix{Text: "👍"}).Println("No deprecated FindObject calls found")
	} else {
		msg := fmt.Sprintf("Rewrote %d instance(s) across %d file(s)", totalChanges, filesModified)
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
	}
	u.log.Info().
		Int("files_modified", filesModified).
		Int("total_changes", totalChanges).
		Msg("run complete")
}
