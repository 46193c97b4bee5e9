package cmd

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/gauge/indicator"
)

// RunSpinnerCommand returns the run-spinner command.
func RunSpinnerCommand() *cli.Command {
	return &cli.Command{
		Name:  "run-spinner",
		Usage: "Animate an indeterminate spinner for a fixed duration",
		Flags: append(DisplayFlags(),
			&cli.StringFlag{
				Name:  "preset",
				Usage: "Frame set name (see the presets command)",
			},
			&cli.DurationFlag{
				Name:  "for",
				Usage: "How long to spin",
				Value: 3 * time.Second,
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Text shown after the animation glyph",
				Value:   "Working",
			},
		),
		Action: runSpinnerAction,
	}
}

func runSpinnerAction(c *cli.Context) error {
	profile, err := loadProfile(c)
	if err != nil {
		return err
	}

	description := c.String("description")
	if description == "Working" && profile.Description != "" {
		description = profile.Description
	}

	col := newCollector(c)
	s := indicator.NewSpinner(indicator.SpinnerOptions{
		Description: description,
		Frames:      spinnerFrames(c, profile),
		Output:      displayTarget(c),
		Logger:      newLogger(c),
		Collector:   col,
	})

	s.Start()
	sleepFor(c.Duration("for"))
	s.Stop()

	return emitStats(col)
}
