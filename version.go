// Package tuitext is a toolkit for grapheme-aware terminal text: display
// columns (gcstring), a multi-line parser input (strslice, parse), an
// editing buffer (buffer), and a Bubble Tea editor (editor).
package tuitext

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer form, without a leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// UserAgent identifies a program built on this module, e.g. in log files.
func UserAgent(program string) string {
	if program == "" {
		program = "tuitext"
	}
	return program + "/" + VersionTag()
}

func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
