// SPDX-License-Identifier: MIT

// Package uniform: functional configuration shared by Send, SendDense and
// NewBlock. Options fields are unexported; public APIs consume ...Option and
// resolve them via gatherOptions. With* constructors panic on nonsensical
// values (programmer error).
package uniform

// ---------- Defaults ----------

const (
	// DefaultTranspose is the transpose flag of every call. The target API
	// reads the column-major memory as row-major.
	DefaultTranspose = true

	// DefaultLocationOffset is added to the location passed to Send.
	DefaultLocationOffset = 0

	// DefaultLayout is the Block layout.
	DefaultLayout = LayoutStd140
)

const (
	panicLocationOffsetInvalid = "uniform: WithLocationOffset: offset must be >= 0"
	panicLayoutInvalid         = "uniform: WithLayout: unknown layout"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	transpose      bool
	locationOffset int32
	layout         Layout
}

// WithTranspose overrides the transpose flag carried by the call.
func WithTranspose(transpose bool) Option {
	return func(o *Options) { o.transpose = transpose }
}

// WithLocationOffset shifts every location by off. Useful with a Block, where
// the location is a byte offset into the buffer.
//
// Errors:
//   - Panics when off < 0.
func WithLocationOffset(off int32) Option {
	if off < 0 {
		panic(panicLocationOffsetInvalid)
	}

	return func(o *Options) { o.locationOffset = off }
}

// WithLayout selects the memory layout of a Block.
//
// Errors:
//   - Panics on an unknown layout.
func WithLayout(l Layout) Option {
	if l != LayoutStd140 && l != LayoutWGSL {
		panic(panicLayoutInvalid)
	}

	return func(o *Options) { o.layout = l }
}

func defaultOptions() Options {
	return Options{
		transpose:      DefaultTranspose,
		locationOffset: DefaultLocationOffset,
		layout:         DefaultLayout,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
