package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "1.0"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the caption and window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full build identifier for logs.
func String() string {
	s := Short()
	if Commit != "" && Commit != "unknown" && Commit != s {
		s += " " + Commit
	}
	if Date != "" && Date != "unknown" {
		s = fmt.Sprintf("%s, built %s", s, Date)
	}
	return s
}
