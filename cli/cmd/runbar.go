package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/gauge/indicator"
)

// RunBarCommand returns the run-bar command.
// Run-bar drives a determinate bar over simulated work so profiles and
// display flags can be previewed without a real workload.
func RunBarCommand() *cli.Command {
	return &cli.Command{
		Name:  "run-bar",
		Usage: "Drive a determinate progress bar over simulated work",
		Flags: append(DisplayFlags(),
			&cli.Int64Flag{
				Name:  "total",
				Usage: "Total number of work units",
				Value: 100,
			},
			&cli.DurationFlag{
				Name:  "delay",
				Usage: "Pause between work units",
				Value: 20 * time.Millisecond,
			},
			&cli.Int64Flag{
				Name:  "step",
				Usage: "Units completed per tick",
				Value: 1,
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Text shown before the bar",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "Bar width in cells",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Minimum time between redraws",
			},
			&cli.StringFlag{
				Name:  "fill",
				Usage: "Glyph for completed cells",
			},
			&cli.StringFlag{
				Name:  "empty",
				Usage: "Glyph for remaining cells",
			},
			&cli.BoolFlag{Name: "no-percent", Usage: "Hide the percentage"},
			&cli.BoolFlag{Name: "no-count", Usage: "Hide the current/total count"},
			&cli.BoolFlag{Name: "no-rate", Usage: "Hide the items/s rate"},
			&cli.BoolFlag{Name: "no-eta", Usage: "Hide the ETA"},
		),
		Action: runBarAction,
	}
}

func runBarAction(c *cli.Context) error {
	profile, err := loadProfile(c)
	if err != nil {
		return err
	}

	step := c.Int64("step")
	if step <= 0 {
		return cli.Exit(fmt.Sprintf("--step must be positive, got %d", step), 1)
	}

	col := newCollector(c)
	delay := c.Duration("delay")

	err = indicator.Run(barOptions(c, profile, col), func(b *indicator.Bar) error {
		for b.Current() < b.Total() {
			sleepFor(delay)
			if err := b.Update(step); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return emitStats(col)
}
