// SPDX-License-Identifier: MIT

package uniform

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// Layout is the rule set a Block places values by.
type Layout uint8

const (
	// LayoutStd140 follows the GLSL std140 uniform-block rules: vec3/vec4
	// align to four elements, matrix columns are padded to a 16-byte multiple.
	LayoutStd140 Layout = iota
	// LayoutWGSL follows the WGSL uniform address space: matCxR columns use
	// the alignment of vecR as stride. Float64 is not representable.
	LayoutWGSL
)

func (l Layout) String() string {
	switch l {
	case LayoutStd140:
		return "std140"
	case LayoutWGSL:
		return "wgsl"
	default:
		return "Layout(" + strconv.Itoa(int(l)) + ")"
	}
}

// blockAlign is the granularity of a Block's total size.
const blockAlign = 16

// placement describes where the elements of one call land: `cols` runs of
// `rows` elements, `stride` bytes apart.
type placement struct {
	elem       int
	rows, cols int
	stride     int
	align      int
	size       int
	transposed bool
}

// vector returns alignment and size of an n-element vector.
func vector(n, elem int) (align, size int) {
	switch n {
	case 1:
		return elem, elem
	case 2:
		return 2 * elem, 2 * elem
	default:
		return 4 * elem, n * elem
	}
}

func roundUp(n, m int) int { return (n + m - 1) / m * m }

func (l Layout) place(c Call) (placement, error) {
	if !c.Kind.valid() || (l == LayoutWGSL && c.Kind == Float64) {
		return placement{}, ErrUnsupportedKind
	}
	if !c.Target.valid() || c.Ptr == nil || c.Count > 1 || c.Len() != c.Target.Len() {
		return placement{}, ErrUnsupportedShape
	}
	p := placement{elem: c.Kind.Size()}

	if !c.Target.IsMatrix() {
		p.rows, p.cols = c.Len(), 1
		p.align, p.size = vector(p.rows, p.elem)
		p.stride = p.size

		return p, nil
	}
	if !c.Kind.IsFloat() {
		return placement{}, ErrUnsupportedKind
	}

	// The transpose flag reads the memory row-major, so the shader sees the
	// transposed shape.
	p.rows, p.cols = c.Rows, c.Cols
	if c.Transpose {
		p.rows, p.cols = c.Cols, c.Rows
		p.transposed = true
	}
	colAlign, _ := vector(p.rows, p.elem)
	p.stride = colAlign
	if l == LayoutStd140 {
		p.stride = roundUp(colAlign, 16)
	}
	p.align = p.stride
	p.size = p.cols * p.stride

	return p, nil
}

// Block is a CPU-side uniform buffer. It implements Sender: every call is
// written at byte offset Location following the block's Layout, in
// little-endian order.
//
// A Block is not safe for concurrent use.
type Block struct {
	buf     []byte
	layout  Layout
	version uint64
}

// NewBlock allocates a zeroed block of at least size bytes; the size is
// rounded up to a multiple of 16. Only WithLayout is consulted.
//
// Errors:
//   - ErrInvalidSize when size <= 0.
func NewBlock(size int, opts ...Option) (*Block, error) {
	if size <= 0 {
		return nil, fmt.Errorf("NewBlock(%d): %w", size, ErrInvalidSize)
	}
	o := gatherOptions(opts...)

	return &Block{
		buf:    make([]byte, roundUp(size, blockAlign)),
		layout: o.layout,
	}, nil
}

// Layout returns the block's layout.
func (b *Block) Layout() Layout { return b.layout }

// Len returns the block size in bytes.
func (b *Block) Len() int { return len(b.buf) }

// Bytes exposes the underlying buffer (not a copy).
func (b *Block) Bytes() []byte { return b.buf }

// Version increases with every successful write.
func (b *Block) Version() uint64 { return b.version }

// Reset zeroes the buffer.
func (b *Block) Reset() {
	clear(b.buf)
	b.version++
}

// SendUniform writes c into the block.
//
// Errors:
//   - ErrUnsupportedKind: Float64 in a WGSL block, integer matrices.
//   - ErrUnsupportedShape: arrays (Count > 1), missing data, a target
//     inconsistent with Rows×Cols.
//   - ErrMisaligned: Location is not a multiple of the value's alignment.
//   - ErrOutOfBounds: the value does not fit.
func (b *Block) SendUniform(c Call) error {
	p, err := b.layout.place(c)
	if err != nil {
		return fmt.Errorf("Block.SendUniform(%s@%d): %w", c.Target, c.Location, err)
	}
	off := int(c.Location)
	switch {
	case off < 0:
		err = ErrOutOfBounds
	case off%p.align != 0:
		err = ErrMisaligned
	case off+p.size > len(b.buf):
		err = ErrOutOfBounds
	}
	if err != nil {
		return fmt.Errorf("Block.SendUniform(%s@%d): %w", c.Target, c.Location, err)
	}

	dst := b.buf[off : off+p.size]
	clear(dst)
	put := elementWriter(c)
	for col := 0; col < p.cols; col++ {
		for row := 0; row < p.rows; row++ {
			src := col*p.rows + row
			if p.transposed {
				src = row*p.cols + col
			}
			put(dst[col*p.stride+row*p.elem:], src)
		}
	}
	b.version++

	return nil
}

// elementWriter returns a function encoding element i of c into the front of
// dst.
func elementWriter(c Call) func(dst []byte, i int) {
	le := binary.LittleEndian
	switch c.Kind {
	case Float32:
		v := c.Float32s()
		return func(dst []byte, i int) { le.PutUint32(dst, math.Float32bits(v[i])) }
	case Float64:
		v := c.Float64s()
		return func(dst []byte, i int) { le.PutUint64(dst, math.Float64bits(v[i])) }
	case Int32:
		v := c.Int32s()
		return func(dst []byte, i int) { le.PutUint32(dst, uint32(v[i])) }
	default:
		v := c.Uint32s()
		return func(dst []byte, i int) { le.PutUint32(dst, v[i]) }
	}
}
