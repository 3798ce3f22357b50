package types

import "time"

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	Profile    string
	Start      time.Time
	End        time.Time
	OnlyTotal  bool
	Out        OutputFormat
	Dir        string
	Trend      bool
	Debug      bool
	NoBanner   bool
}
