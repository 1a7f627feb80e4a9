package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyPath       = "path"
	KeyPackage    = "package"
	KeyDocument   = "document"
	KeyEntries    = "entries"
	KeyPackages   = "packages"
	KeyStage      = "stage"
	KeyLintMode   = "lint"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Package(name string) slog.Attr   { return slog.String(KeyPackage, name) }
func Document(name string) slog.Attr  { return slog.String(KeyDocument, name) }
func Entries(n int) slog.Attr         { return slog.Int(KeyEntries, n) }
func Packages(n int) slog.Attr        { return slog.Int(KeyPackages, n) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func LintMode(on bool) slog.Attr      { return slog.Bool(KeyLintMode, on) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
