package version

// Set at build time via -ldflags
var (
	version = "Development"
	commit  = "none"
)

func GetVersion() string {
	return version
}

func GetCommit() string {
	return commit
}
