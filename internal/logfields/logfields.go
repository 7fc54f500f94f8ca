package logfields

import "log/slog"

// Canonical log field names shared by the store, backends and CLI.
const (
	KeyKey     = "key"
	KeyBackend = "backend"
	KeyPath    = "path"
	KeyPreset  = "preset"
	KeyView    = "view_id"
	KeySection = "section_id"
	KeyField   = "field_id"
	KeyTeam    = "team_id"
	KeyStatus  = "status"
	KeyVersion = "version"
	KeyCount   = "count"
	KeyError   = "error"
)

// Helpers returning slog.Attr so call sites stay consistent.
func Key(k string) slog.Attr        { return slog.String(KeyKey, k) }
func Backend(name string) slog.Attr { return slog.String(KeyBackend, name) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Preset(name string) slog.Attr  { return slog.String(KeyPreset, name) }
func View(id string) slog.Attr      { return slog.String(KeyView, id) }
func Section(id string) slog.Attr   { return slog.String(KeySection, id) }
func Field(id string) slog.Attr     { return slog.String(KeyField, id) }
func Team(id int) slog.Attr         { return slog.Int(KeyTeam, id) }
func Status(s string) slog.Attr     { return slog.String(KeyStatus, s) }
func Version(v string) slog.Attr    { return slog.String(KeyVersion, v) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
