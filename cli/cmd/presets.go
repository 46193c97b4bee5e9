package cmd

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/justapithecus/gauge/cli/render"
	"github.com/justapithecus/gauge/cli/tui"
	"github.com/justapithecus/gauge/indicator"
)

// PresetInfo is one row of the presets listing.
type PresetInfo struct {
	Name   string `json:"name"`
	Frames int    `json:"frames"`
	FPS    string `json:"fps"`
	Sample string `json:"sample"`
}

// PresetsCommand returns the presets command.
// Presets is the only command that supports --tui: the interactive view
// animates every frame set live instead of listing static rows.
func PresetsCommand() *cli.Command {
	return &cli.Command{
		Name:   "presets",
		Usage:  "List built-in spinner frame sets",
		Flags:  ReadOnlyFlags(),
		Action: presetsAction,
	}
}

func presetsAction(c *cli.Context) error {
	if c.Bool("tui") {
		if c.Bool("no-color") {
			tui.SetNoColor()
		}
		return tui.Run("presets")
	}

	r, err := render.NewRenderer(c)
	if err != nil {
		return err
	}

	names := indicator.PresetNames()
	rows := make([]PresetInfo, 0, len(names))
	for _, name := range names {
		fs := indicator.Preset(name)
		rows = append(rows, PresetInfo{
			Name:   name,
			Frames: len(fs.Glyphs),
			FPS:    fs.FPS.String(),
			Sample: strings.Join(fs.Glyphs, ""),
		})
	}

	return r.Render(rows)
}
