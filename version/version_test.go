package version

import (
	"runtime/debug"
	"testing"
	"time"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		BuildTime = origBuildTime
	}
}

func TestGetDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	GitCommit = ""
	BuildTime = ""

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
}

func TestGetWithLdflags(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0"
	GitCommit = "abc1234"
	BuildTime = "2024-01-15T10:30:00Z"

	info := Get()
	if !info.IsRelease {
		t.Error("1.0.0 should be a release")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("expected 'abc1234', got %q", info.GitCommit)
	}
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	if !info.BuildDate.Equal(want) {
		t.Errorf("expected build date %v, got %v", want, info.BuildDate)
	}
}

func TestDirtyVersionIsNotRelease(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0-dirty"
	if Get().IsRelease {
		t.Error("dirty version should not be a release")
	}
}

func TestFromBuildInfo(t *testing.T) {
	info := Info{Version: "1.0.0"}
	info.fromBuildInfo(&debug.BuildInfo{
		GoVersion: "go1.26.0",
		Settings: []debug.BuildSetting{
			{Key: "-tags", Value: "stream_abort,stream_notypeinfo"},
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2025-03-01T12:00:00Z"},
		},
	})

	if info.GitCommit != "0123456" {
		t.Errorf("expected truncated commit, got %q", info.GitCommit)
	}
	if !info.IsDirty {
		t.Error("expected dirty build")
	}
	if !info.HasTag("stream_abort") || !info.HasTag("stream_notypeinfo") {
		t.Errorf("expected both stream tags, got %v", info.BuildTags)
	}
	if info.HasTag("other") {
		t.Error("unexpected tag")
	}
	if info.BuildTime != "2025-03-01T12:00:00Z" {
		t.Errorf("expected vcs time, got %q", info.BuildTime)
	}
}

func TestFromBuildInfoKeepsLdflagsCommit(t *testing.T) {
	info := Info{GitCommit: "fromld"}
	info.fromBuildInfo(&debug.BuildInfo{
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
	})
	if info.GitCommit != "fromld" {
		t.Errorf("expected ldflags commit to win, got %q", info.GitCommit)
	}
}

func TestShortAndString(t *testing.T) {
	tests := []struct {
		name      string
		info      Info
		wantShort string
		wantFull  string
	}{
		{
			name:      "version only",
			info:      Info{Version: "dev"},
			wantShort: "dev",
			wantFull:  "dev",
		},
		{
			name:      "commit",
			info:      Info{Version: "1.0.0", GitCommit: "abc1234"},
			wantShort: "1.0.0-abc1234",
			wantFull:  "1.0.0-abc1234",
		},
		{
			name: "everything",
			info: Info{
				Version:   "1.0.0",
				GitCommit: "abc1234",
				IsDirty:   true,
				GoVersion: "go1.26.0",
				BuildDate: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
				BuildTags: []string{"stream_abort"},
			},
			wantShort: "1.0.0-abc1234-dirty",
			wantFull:  "1.0.0-abc1234-dirty (built 2024-01-15T10:30:00Z) go1.26.0 tags=stream_abort",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.Short(); got != tc.wantShort {
				t.Errorf("Short() = %q, want %q", got, tc.wantShort)
			}
			if got := tc.info.String(); got != tc.wantFull {
				t.Errorf("String() = %q, want %q", got, tc.wantFull)
			}
		})
	}
}
