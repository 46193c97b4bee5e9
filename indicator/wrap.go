package indicator

import (
	"iter"

	"github.com/justapithecus/gauge/iox"
)

// Wrap returns a sequence that yields the elements of seq while advancing
// a progress bar by one per element. The bar is closed when the sequence
// is exhausted and when the consumer breaks early; the returned sequence
// is restartable only if seq is.
//
// Invalid bar options degrade to passing the elements through undecorated;
// the host's iteration is never the casualty of a display problem.
func Wrap[T any](seq iter.Seq[T], opts BarOptions) iter.Seq[T] {
	return func(yield func(T) bool) {
		b, err := NewBar(opts)
		if err != nil {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
			return
		}
		defer iox.DiscardClose(b)

		for v := range seq {
			if !yield(v) {
				return
			}
			_ = b.Update(1)
		}
	}
}

// WrapSlice wraps a slice with a progress bar sized to its length,
// overriding opts.Total.
func WrapSlice[T any](items []T, opts BarOptions) iter.Seq[T] {
	opts.Total = int64(len(items))
	return Wrap(sliceSeq(items), opts)
}

func sliceSeq[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}
