package app

import "fmt"

const applicationName = "growth-journal"

// Version, Commit and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/growth-journal-backend/internal/app.Version=1.0.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version line printed at startup.
func BuildVersion() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", applicationName, Version, Commit, BuildTime)
}
