// Package editable provides a controlled plain-text box for Bubble Tea
// programs. The widget lives in package textbox; the editable surface it
// drives is package region.
package editable

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var rawVersion string

// semver 2.0.0, no leading "v".
var semverPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version is the release version without the leading "v".
func Version() string { return strings.TrimSpace(rawVersion) }

// Tag is the git tag for Version.
func Tag() string { return "v" + Version() }

func validVersion(v string) bool { return semverPattern.MatchString(strings.TrimSpace(v)) }
