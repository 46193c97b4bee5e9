package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/justapithecus/gauge/cli/render"
	"github.com/justapithecus/gauge/iox"
)

// FileCount is one row of the count listing.
type FileCount struct {
	Path  string `json:"path"`
	Lines int    `json:"lines"`
}

// CountCommand returns the count command.
// Count reports line counts without any progress display; unreadable
// files report zero lines rather than failing the whole listing.
func CountCommand() *cli.Command {
	return &cli.Command{
		Name:      "count",
		Usage:     "Count lines in files",
		ArgsUsage: "<path> [<path>...]",
		Flags:     ReadOnlyFlags(),
		Action:    countAction,
	}
}

func countAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("count requires at least one path argument", 1)
	}

	r, err := render.NewRenderer(c)
	if err != nil {
		return err
	}

	if c.Bool("tui") {
		return cli.Exit("--tui is not supported for count command", 1)
	}

	rows := make([]FileCount, 0, c.NArg())
	for _, path := range c.Args().Slice() {
		rows = append(rows, FileCount{
			Path:  path,
			Lines: iox.CountLines(path),
		})
	}

	return r.Render(rows)
}
