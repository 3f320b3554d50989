package info

var (
	// Version of the client
	Version = "dev"
	// Commit in git in short format
	Commit = ""
	// GoVersion info on build moment
	GoVersion = ""
	// BuildDate is date and time in format +%Y-%m-%d_%H:%M:%S
	BuildDate = ""
)

// Info about the build
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
	BuildDate string `json:"build_date"`
}

// New returns build info
func New(name string) *Info {
	return &Info{
		Name:      name,
		Version:   Version,
		Commit:    Commit,
		GoVersion: GoVersion,
		BuildDate: BuildDate,
	}
}
