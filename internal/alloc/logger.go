package alloc

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/dustin/go-humanize"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger installs the logger used for allocation events.
// A nil logger discards all records.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

func debugEnabled() (*slog.Logger, bool) {
	l := logger.Load()
	return l, l.Enabled(context.Background(), slog.LevelDebug)
}

func logAllocate[T any](b *Block[T]) {
	l, ok := debugEnabled()
	if !ok {
		return
	}
	l.Debug("buffer allocated",
		"capacity", b.Cap,
		"alignment", b.Layout.Align,
		"size", humanize.IBytes(uint64(b.Layout.Size)),
	)
}

func logGrow[T any](from, to *Block[T]) {
	l, ok := debugEnabled()
	if !ok {
		return
	}
	l.Debug("buffer reallocated",
		"len", from.Len,
		"old_capacity", from.Cap,
		"new_capacity", to.Cap,
		"size", humanize.IBytes(uint64(to.Layout.Size)),
	)
}

func logRelease[T any](b *Block[T]) {
	l, ok := debugEnabled()
	if !ok {
		return
	}
	l.Debug("buffer released",
		"capacity", b.Cap,
		"size", humanize.IBytes(uint64(b.Layout.Size)),
	)
}
