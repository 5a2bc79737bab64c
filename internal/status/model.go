package status

// Data describes a finished cheatsheet run
type Data struct {
	Path       string
	Format     string
	Version    string
	ConfigPath string // empty when only built-in defaults were used

	Names  int
	Groups int
	Keys   []string

	FileSize int64
	Timing   string
}
