package layeranim

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Platform identifies the runtime the animations are meant to match. The
// default animation changed from an ease-in-out curve to a spring in newer
// releases of the UI framework.
type Platform struct {
	OS      string `yaml:"os"`
	Version string `yaml:"version"`
}

// springDefaultSince lists the first release per OS whose default animation
// is a spring.
var springDefaultSince = map[string]string{
	"ios":      "v17",
	"ipados":   "v17",
	"macos":    "v14",
	"tvos":     "v17",
	"watchos":  "v10",
	"visionos": "v1",
}

// SupportsSpringDefault reports whether the platform's default animation is a
// spring. An empty platform means "latest" and an unknown OS is treated the
// same way. A version that is not valid semver (after adding the "v" prefix)
// is treated as too old.
func (p Platform) SupportsSpringDefault() bool {
	name := strings.ToLower(strings.TrimSpace(p.OS))
	if name == "" {
		return true
	}
	since, ok := springDefaultSince[name]
	if !ok {
		return true
	}
	v := canonicalVersion(p.Version)
	if v == "" {
		return strings.TrimSpace(p.Version) == ""
	}
	return semver.Compare(v, since) >= 0
}

func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}
