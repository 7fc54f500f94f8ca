package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attr    slog.Attr
		wantKey string
		wantVal string
	}{
		{"Key", Key("teams"), KeyKey, "teams"},
		{"Backend", Backend("sqlite"), KeyBackend, "sqlite"},
		{"Path", Path("/tmp/x"), KeyPath, "/tmp/x"},
		{"Preset", Preset("stream"), KeyPreset, "stream"},
		{"View", View("v1"), KeyView, "v1"},
		{"Section", Section("s1"), KeySection, "s1"},
		{"Field", Field("f1"), KeyField, "f1"},
		{"Status", Status("checking"), KeyStatus, "checking"},
		{"Version", Version("v1.2.0"), KeyVersion, "v1.2.0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.attr.Key != c.wantKey {
				t.Fatalf("key = %q, want %q", c.attr.Key, c.wantKey)
			}
			if c.attr.Value.String() != c.wantVal {
				t.Fatalf("value = %q, want %q", c.attr.Value.String(), c.wantVal)
			}
		})
	}
}

func TestIntHelpers(t *testing.T) {
	if a := Team(7); a.Key != KeyTeam || a.Value.Int64() != 7 {
		t.Fatalf("Team attr mismatch: %v", a)
	}
	if a := Count(3); a.Key != KeyCount || a.Value.Int64() != 3 {
		t.Fatalf("Count attr mismatch: %v", a)
	}
}

func TestError(t *testing.T) {
	if a := Error(nil); a.Value.String() != "" {
		t.Fatalf("nil error should render empty, got %q", a.Value.String())
	}
	if a := Error(errors.New("boom")); a.Value.String() != "boom" {
		t.Fatalf("got %q", a.Value.String())
	}
}
