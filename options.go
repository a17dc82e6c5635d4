package gridsheet

import "github.com/tliron/commonlog"

// Default grid dimensions of a fresh editor session.
const (
	DefaultRows = 50
	DefaultCols = 26
)

// Options holds configuration for a Grid.
type Options struct {
	rows      int
	cols      int
	log       commonlog.Logger
	listeners []GridListener
}

func defaultOptions() *Options {
	return &Options{
		rows: DefaultRows,
		cols: DefaultCols,
		log:  commonlog.GetLogger("gridsheet"),
	}
}

// Option configures a Grid.
type Option func(*Options)

// WithSize sets the initial row and column counts (default: 50x26).
// Negative values are treated as zero.
func WithSize(rows, cols int) Option {
	return func(o *Options) {
		o.rows = max(rows, 0)
		o.cols = max(cols, 0)
	}
}

// WithLogger sets the logger used for mutation and evaluation traces.
func WithLogger(log commonlog.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithListener adds a listener notified after cell edits and structural changes.
func WithListener(listener GridListener) Option {
	return func(o *Options) { o.listeners = append(o.listeners, listener) }
}
