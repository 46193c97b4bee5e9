// Package iox provides I/O helpers for resource cleanup and display-only
// file inspection.
package iox

import (
	"bufio"
	"io"
	"os"
)

// DiscardClose closes c and discards the error.
// Use in defer statements where close errors are unactionable:
//
//	defer iox.DiscardClose(f)
func DiscardClose(c io.Closer) { _ = c.Close() }

// CloseFunc returns a cleanup function that closes c.
// Designed for t.Cleanup and b.Cleanup registration:
//
//	t.Cleanup(iox.CloseFunc(f))
func CloseFunc(c io.Closer) func() {
	return func() { _ = c.Close() }
}

// DiscardErr calls fn and discards the returned error.
// Use for non-Close cleanup calls (e.g. Flush) where errors are unactionable:
//
//	defer iox.DiscardErr(w.Flush)
func DiscardErr(fn func() error) { _ = fn() }

// CountLines returns the number of lines in the file at path.
//
// The count feeds display-only progress totals, so every failure mode
// (missing file, permission, read error mid-file) is converted to 0 rather
// than surfaced: the caller's indicator degrades to an immediate 100%
// instead of aborting the host operation. A final line without a trailing
// newline still counts.
func CountLines(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer DiscardClose(f)

	return CountReaderLines(f)
}

// CountReaderLines counts lines read from r until EOF or the first read
// error. Counting is byte-wise, so line length is unbounded.
func CountReaderLines(r io.Reader) int {
	br := bufio.NewReader(r)

	n := 0
	sawContent := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			// Partial last line counts; read errors end the count.
			if sawContent {
				n++
			}
			return n
		}
		if b == '\n' {
			n++
			sawContent = false
		} else {
			sawContent = true
		}
	}
}
