// Package cmd provides CLI commands for the gauge binary.
package cmd

import "github.com/urfave/cli/v2"

// Shared flags.
var (
	// FormatFlag selects output format for read-only commands: json, table, yaml.
	FormatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: json, table, yaml",
	}

	// TUIFlag enables Bubble Tea interactive mode.
	// Only valid for the presets command.
	TUIFlag = &cli.BoolFlag{
		Name:  "tui",
		Usage: "Enable interactive TUI mode (presets only)",
	}

	// ProfileFlag points at a gauge.yaml display profile.
	ProfileFlag = &cli.StringFlag{
		Name:    "profile",
		Aliases: []string{"p"},
		Usage:   "Path to a gauge.yaml display profile",
	}

	// DebugFlag enables diagnostic logging to stderr.
	DebugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Log display diagnostics to stderr",
	}

	// StatsFlag prints render counters when the command finishes.
	StatsFlag = &cli.BoolFlag{
		Name:  "stats",
		Usage: "Print render statistics on exit",
	}

	// QuietFlag suppresses the live display and summary lines. Counters
	// still accumulate, so --quiet --stats reports without drawing.
	QuietFlag = &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "Suppress the progress display",
	}

	// NoColorFlag disables styled TUI output.
	NoColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable colored output",
	}
)

// ReadOnlyFlags returns the shared flags for read-only commands.
// Includes --tui so that unsupported commands can provide explicit error
// messages instead of generic "flag not defined" errors.
func ReadOnlyFlags() []cli.Flag {
	return []cli.Flag{
		FormatFlag,
		TUIFlag,
		NoColorFlag,
	}
}

// DisplayFlags returns the shared flags for commands that drive a live
// progress display.
func DisplayFlags() []cli.Flag {
	return []cli.Flag{
		ProfileFlag,
		DebugFlag,
		StatsFlag,
		QuietFlag,
	}
}
