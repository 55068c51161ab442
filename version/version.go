package version

import (
	"fmt"
	"runtime/debug"
	"slices"
	"strings"
	"time"
)

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info represents version information.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit,omitempty"`
	BuildTime string    `json:"build_time,omitempty"`
	GoVersion string    `json:"go_version,omitempty"`
	BuildDate time.Time `json:"build_date"`
	BuildTags []string  `json:"build_tags,omitempty"`
	IsRelease bool      `json:"is_release"`
	IsDirty   bool      `json:"is_dirty"`
}

// Get returns the version information of the running binary.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}
	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.BuildDate = t
		}
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.fromBuildInfo(bi)
	}
	return info
}

func (info *Info) fromBuildInfo(bi *debug.BuildInfo) {
	info.GoVersion = bi.GoVersion
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "-tags":
			info.BuildTags = strings.FieldsFunc(setting.Value, func(r rune) bool {
				return r == ',' || r == ' '
			})
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = setting.Value
				if len(info.GitCommit) > 7 {
					info.GitCommit = info.GitCommit[:7]
				}
			}
		case "vcs.modified":
			info.IsDirty = setting.Value == "true"
		case "vcs.time":
			if info.BuildTime == "" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					info.BuildDate = t
					info.BuildTime = setting.Value
				}
			}
		}
	}
}

// HasTag reports whether the binary was built with tag.
func (info Info) HasTag(tag string) bool {
	return slices.Contains(info.BuildTags, tag)
}

// Short returns the version and commit, e.g. "1.2.0-abc1234-dirty".
func (info Info) Short() string {
	if info.GitCommit == "" {
		return info.Version
	}
	if info.IsDirty {
		return fmt.Sprintf("%s-%s-dirty", info.Version, info.GitCommit)
	}
	return fmt.Sprintf("%s-%s", info.Version, info.GitCommit)
}

// String returns the short version followed by the build date, Go version
// and build tags when they are known.
func (info Info) String() string {
	var b strings.Builder
	b.WriteString(info.Short())
	if !info.BuildDate.IsZero() {
		fmt.Fprintf(&b, " (built %s)", info.BuildDate.UTC().Format(time.RFC3339))
	}
	if info.GoVersion != "" {
		fmt.Fprintf(&b, " %s", info.GoVersion)
	}
	if len(info.BuildTags) > 0 {
		fmt.Fprintf(&b, " tags=%s", strings.Join(info.BuildTags, ","))
	}
	return b.String()
}
