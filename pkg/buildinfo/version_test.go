package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func reset(t *testing.T) {
	t.Helper()
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
	Version, Commit, Date = "dev", "none", "unknown"
}

func TestFill(t *testing.T) {
	reset(t)
	fill(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})
	if Version != "v0.3.1" || Commit != "0123456789abcdef" || Date != "2026-01-02T03:04:05Z" {
		t.Errorf("fill() = %s %s %s", Version, Commit, Date)
	}
	if got := ShortCommit(); got != "0123456789ab" {
		t.Errorf("ShortCommit() = %q", got)
	}
}

func TestFillKeepsLdflags(t *testing.T) {
	reset(t)
	Version = "v1.0.0"
	fill(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if Version != "v1.0.0" {
		t.Errorf("Version = %q, want ldflags value", Version)
	}
}

func TestTemplate(t *testing.T) {
	reset(t)
	if tpl := Template(); !strings.HasPrefix(tpl, "{{.Name}} version dev\n") {
		t.Errorf("Template() = %q", tpl)
	}
	if s := String(); !strings.Contains(s, "commit: none") {
		t.Errorf("String() = %q", s)
	}
}
