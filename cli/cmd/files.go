package cmd

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/justapithecus/gauge/indicator"
	"github.com/justapithecus/gauge/iox"
)

// FilesCommand returns the files command.
// Files scans each path line by line behind a multi-item tracker: one
// aggregate "N of M" line plus a per-file bar. Files whose line count
// cannot be determined up front fall back to an indeterminate cell.
func FilesCommand() *cli.Command {
	return &cli.Command{
		Name:      "files",
		Usage:     "Scan files line by line with a multi-item progress display",
		ArgsUsage: "<path> [<path>...]",
		Flags: append(DisplayFlags(),
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Text shown before the aggregate bar",
				Value:   "Scanning",
			},
			&cli.DurationFlag{
				Name:  "delay",
				Usage: "Pause between lines (for demos; 0 scans at full speed)",
			},
		),
		Action: filesAction,
	}
}

func filesAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("files requires at least one path argument", 1)
	}

	profile, err := loadProfile(c)
	if err != nil {
		return err
	}

	description := c.String("description")
	if description == "Scanning" && profile.Description != "" {
		description = profile.Description
	}

	paths := c.Args().Slice()
	col := newCollector(c)
	seq := indicator.NewSequence(indicator.SequenceOptions{
		Items:       paths,
		Description: description,
		Frames:      spinnerFrames(c, profile),
		Output:      displayTarget(c),
		Interval:    profile.Interval.Duration,
		Logger:      newLogger(c),
		Collector:   col,
	})

	delay := c.Duration("delay")
	start := time.Now()

	var totalLines, totalBytes int64
	for _, path := range paths {
		lines, bytes := scanFile(seq, path, delay)
		totalLines += lines
		totalBytes += bytes
		seq.CompleteItem()
	}
	if err := seq.Close(); err != nil {
		return err
	}

	if !c.Bool("quiet") {
		fmt.Printf("processed %d files, %s lines, %s in %s\n",
			len(paths),
			humanize.Comma(totalLines),
			humanize.Bytes(uint64(totalBytes)),
			time.Since(start).Round(time.Millisecond),
		)
	}

	return emitStats(col)
}

// scanFile reads one file line by line, reporting per-line progress.
// An unreadable file still occupies its slot in the sequence so the
// aggregate count stays honest; it contributes zero lines and bytes.
func scanFile(seq *indicator.Sequence, path string, delay time.Duration) (lines, bytes int64) {
	seq.StartItem(path, int64(iox.CountLines(path)))

	f, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer iox.DiscardClose(f)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines++
		bytes += int64(len(scanner.Bytes())) + 1
		_ = seq.UpdateItem(lines)
		sleepFor(delay)
	}
	return lines, bytes
}
