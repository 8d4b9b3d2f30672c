package app

import "fmt"

// Build metadata, stamped by the release build:
//
//	go build -ldflags "-X github.com/RoniAntikainen/Taitoarvio-sub000/internal/app.Version=v1.2.0 \
//	  -X github.com/RoniAntikainen/Taitoarvio-sub000/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported in the startup log line and by /health.
func BuildVersion() string {
	if Commit == "unknown" && BuildTime == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime)
}
