// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state: String() always renders with the defaults,
//     Render(opts...) with an explicit override.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCellWidth is the minimum width every cell is centred in.
	DefaultCellWidth = 9

	// DefaultPrecision renders floats with the shortest representation
	// that round-trips (fmt verb %v). Non-negative values switch to %.<p>f.
	DefaultPrecision = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCellWidthInvalid = "matrix: WithCellWidth: width must be >= 0"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	cellWidth int // >= 0; DefaultCellWidth
	precision int // -1 (shortest) or >= 0; DefaultPrecision
}

// WithCellWidth sets the width every rendered cell is centred in. Cells
// longer than the width are printed in full.
//
// Errors:
//   - Panics when width < 0.
func WithCellWidth(width int) Option {
	if width < 0 {
		panic(panicCellWidthInvalid)
	}

	return func(o *Options) { o.cellWidth = width }
}

// WithPrecision renders floating-point cells with exactly p digits after the
// decimal point. Integer cells are unaffected.
//
// Errors:
//   - Panics when p < 0.
func WithPrecision(p int) Option {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		cellWidth: DefaultCellWidth,
		precision: DefaultPrecision,
	}
}

// gatherOptions applies opts on top of the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
