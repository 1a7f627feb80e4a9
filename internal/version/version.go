package version

// Version is the hidldoc release. Set at build time:
// go build -ldflags "-X git.home.luguber.info/inful/hidldoc/internal/version.Version=v0.3.0".
var Version = "dev"

// Build metadata, also injected through ldflags.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by `hidldoc --version`.
func String() string {
	return Version + " (" + GitCommit + ", built " + BuildTime + ")"
}
