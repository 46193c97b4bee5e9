// Package indicator renders terminal progress displays for long-running
// operations: determinate bars, indeterminate spinners, and multi-item
// sequences.
//
// All three indicators share one line-rendering primitive that overwrites
// the current terminal line in place and throttles redraws to a minimum
// interval, so tight update loops cost one clamped add and a time check in
// the common case. Bars and sequences are driven synchronously by the
// caller; only the spinner runs its own goroutine, and Stop joins it before
// returning.
//
// The package is a best-effort visual aid. A negative increment is the only
// caller mistake that surfaces as an error; everything else (closed
// indicator, unwritable stream, unreadable file totals) degrades to a
// missing or stale display rather than failing the host's work.
//
// Driving a Spinner and a Bar against the same output stream at the same
// time is not supported; their lines would fight over the cursor.
package indicator
