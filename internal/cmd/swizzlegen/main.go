// SPDX-License-Identifier: MIT

// Command swizzlegen writes the generated vector surface of package matrix:
//   - Vec2/Vec3/Vec4 constructors, FromArray/FromMat conversions and the
//     arithmetic wrappers over SMat,
//   - the component readers of length 1…4 over the first N of x, y, z, w,
//   - SetX…SetW, one per existing component,
//   - a mixed constructor for every ordered split of 2, 3, 4 into parts of
//     size 1…3,
//   - MatRxCFromArray for every named static shape.
//
// It is run by `go generate ./matrix`.
package main

import (
	"bytes"
	"flag"
	"go/format"
	"os"
	"strconv"
	"strings"
	"text/template"

	log "github.com/golang/glog"
)

var out = flag.String("out", "vector_gen.go", "output file")

const components = "xyzw"

type swizzle struct {
	Name string // XWZZ
	Ret  string // T or VecL[T]
	Expr string
	Doc  string
}

type setter struct {
	Name  string
	Comp  string
	Index int
}

type ctor struct {
	Name   string
	Params string
	Args   string
	Doc    string
}

type vec struct {
	N        int
	Params   string
	Assign   string
	Elems    string
	Ctors    []ctor
	Setters  []setter
	Swizzles []swizzle
}

type mat struct {
	Name       string
	Rows, Cols int
}

type model struct {
	Vecs []vec
	Mats []mat
}

func main() {
	flag.Parse()
	defer log.Flush()

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, build()); err != nil {
		log.Exitf("swizzlegen: execute: %v", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Exitf("swizzlegen: gofmt: %v", err)
	}
	if err = os.WriteFile(*out, src, 0o644); err != nil {
		log.Exitf("swizzlegen: %v", err)
	}
	log.Infof("swizzlegen: wrote %s (%d bytes)", *out, len(src))
}

func build() model {
	var m model
	for n := 2; n <= 4; n++ {
		m.Vecs = append(m.Vecs, buildVec(n))
	}
	for _, s := range [][2]int{{2, 2}, {3, 3}, {4, 4}, {2, 3}, {2, 4}, {3, 2}, {3, 4}, {4, 2}, {4, 3}} {
		name := "Mat" + strconv.Itoa(s[0])
		if s[0] != s[1] {
			name += "x" + strconv.Itoa(s[1])
		}
		m.Mats = append(m.Mats, mat{Name: name, Rows: s[0], Cols: s[1]})
	}

	return m
}

func buildVec(n int) vec {
	v := vec{N: n}
	names := make([]string, n)
	slots := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = components[i : i+1]
		slots[i] = "v.data[" + strconv.Itoa(i) + "]"
		v.Setters = append(v.Setters, setter{
			Name:  "Set" + strings.ToUpper(names[i]),
			Comp:  names[i],
			Index: i,
		})
	}
	v.Params = strings.Join(names, ", ")
	v.Elems = strings.Join(slots, ", ")
	v.Assign = v.Elems + " = " + v.Params

	for _, parts := range splits(n) {
		if len(parts) == n {
			continue // all scalars: NewVecN
		}
		v.Ctors = append(v.Ctors, buildCtor(n, parts))
	}
	for l := 1; l <= 4; l++ {
		for _, sel := range selectors(n, l) {
			v.Swizzles = append(v.Swizzles, buildSwizzle(sel))
		}
	}

	return v
}

// splits lists the compositions of n into parts of size 1…3 with at least
// two parts, smaller leading parts first.
func splits(n int) [][]int {
	var out [][]int
	var walk func(rest int, acc []int)
	walk = func(rest int, acc []int) {
		if rest == 0 {
			if len(acc) > 1 {
				out = append(out, append([]int(nil), acc...))
			}
			return
		}
		for p := 1; p <= 3 && p <= rest; p++ {
			walk(rest-p, append(acc, p))
		}
	}
	walk(n, nil)

	return out
}

// ctorName spells the parts up to the last vector: runs of scalars become
// Scalar/Scalars, runs of equal vectors VecK/VecKs. Trailing scalars are
// implied by the parameter list.
func ctorName(n int, parts []int) string {
	last := len(parts)
	for last > 0 && parts[last-1] == 1 {
		last--
	}
	var b strings.Builder
	b.WriteString("Vec" + strconv.Itoa(n) + "From")
	for i := 0; i < last; {
		j := i
		for j < last && parts[j] == parts[i] {
			j++
		}
		if parts[i] == 1 {
			b.WriteString("Scalar")
		} else {
			b.WriteString("Vec" + strconv.Itoa(parts[i]))
		}
		if j-i > 1 {
			b.WriteString("s")
		}
		i = j
	}

	return b.String()
}

func buildCtor(n int, parts []int) ctor {
	var params, args, doc []string
	k := 0
	for _, p := range parts {
		name := components[k : k+p]
		doc = append(doc, name)
		if p == 1 {
			params = append(params, name+" T")
			args = append(args, name)
		} else {
			params = append(params, name+" Vec"+strconv.Itoa(p)+"[T]")
			for i := 0; i < p; i++ {
				args = append(args, name+".data["+strconv.Itoa(i)+"]")
			}
		}
		k += p
	}

	return ctor{
		Name:   ctorName(n, parts),
		Params: strings.Join(params, ", "),
		Args:   strings.Join(args, ", "),
		Doc:    strings.Join(doc, ", "),
	}
}

// selectors lists every length-l tuple over the first n components in
// lexicographic index order.
func selectors(n, l int) [][]int {
	var out [][]int
	idx := make([]int, l)
	for {
		out = append(out, append([]int(nil), idx...))
		i := l - 1
		for i >= 0 && idx[i] == n-1 {
			idx[i] = 0
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
	}
}

func buildSwizzle(sel []int) swizzle {
	var name strings.Builder
	args := make([]string, len(sel))
	comps := make([]string, len(sel))
	for i, c := range sel {
		comps[i] = components[c : c+1]
		name.WriteString(strings.ToUpper(comps[i]))
		args[i] = "v.data[" + strconv.Itoa(c) + "]"
	}
	if len(sel) == 1 {
		return swizzle{Name: name.String(), Ret: "T", Expr: args[0], Doc: "returns component " + comps[0] + "."}
	}
	l := strconv.Itoa(len(sel))

	return swizzle{
		Name: name.String(),
		Ret:  "Vec" + l + "[T]",
		Expr: "NewVec" + l + "(" + strings.Join(args, ", ") + ")",
		Doc:  "returns (" + strings.Join(comps, ", ") + ").",
	}
}

var fileTemplate = template.Must(template.New("vector_gen").Parse(`// SPDX-License-Identifier: MIT

// Code generated by swizzlegen; DO NOT EDIT.

package matrix
{{range $v := .Vecs}}
// ---------- Vec{{$v.N}} ----------

// NewVec{{$v.N}} returns the column vector ({{$v.Params}}).
func NewVec{{$v.N}}[T Scalar]({{$v.Params}} T) Vec{{$v.N}}[T] {
	var v Vec{{$v.N}}[T]
	{{$v.Assign}}

	return v
}

// Vec{{$v.N}}FromArray returns the column vector holding the elements of a.
func Vec{{$v.N}}FromArray[T Scalar](a [{{$v.N}}]T) Vec{{$v.N}}[T] {
	var v Vec{{$v.N}}[T]
	copy(v.data[:{{$v.N}}], a[:])

	return v
}

// Vec{{$v.N}}FromMat converts a {{$v.N}}×1 SMat into a Vec{{$v.N}}.
func Vec{{$v.N}}FromMat[T Scalar](m SMat[D{{$v.N}}, D1, T]) Vec{{$v.N}}[T] { return Vec{{$v.N}}[T](m) }
{{range $v.Ctors}}
// {{.Name}} assembles a Vec{{$v.N}} from {{.Doc}}.
func {{.Name}}[T Scalar]({{.Params}}) Vec{{$v.N}}[T] { return NewVec{{$v.N}}({{.Args}}) }
{{end}}
// Mat returns v as a {{$v.N}}×1 SMat.
func (v Vec{{$v.N}}[T]) Mat() SMat[D{{$v.N}}, D1, T] { return SMat[D{{$v.N}}, D1, T](v) }

// Array returns the elements of v.
func (v Vec{{$v.N}}[T]) Array() [{{$v.N}}]T { return [{{$v.N}}]T{ {{- $v.Elems -}} } }

// At returns element i. Out-of-range i panics.
func (v Vec{{$v.N}}[T]) At(i int) T { return v.Mat().At(i, 0) }

// Add returns v + o.
func (v Vec{{$v.N}}[T]) Add(o Vec{{$v.N}}[T]) Vec{{$v.N}}[T] { return Vec{{$v.N}}[T](v.Mat().Add(o.Mat())) }

// Sub returns v - o.
func (v Vec{{$v.N}}[T]) Sub(o Vec{{$v.N}}[T]) Vec{{$v.N}}[T] { return Vec{{$v.N}}[T](v.Mat().Sub(o.Mat())) }

// Scale returns k·v.
func (v Vec{{$v.N}}[T]) Scale(k T) Vec{{$v.N}}[T] { return Vec{{$v.N}}[T](v.Mat().Scale(k)) }

// Div returns v / k.
func (v Vec{{$v.N}}[T]) Div(k T) Vec{{$v.N}}[T] { return Vec{{$v.N}}[T](v.Mat().Div(k)) }

// Neg returns -v.
func (v Vec{{$v.N}}[T]) Neg() Vec{{$v.N}}[T] { return Vec{{$v.N}}[T](v.Mat().Neg()) }

// Dot returns the inner product of v and o.
func (v Vec{{$v.N}}[T]) Dot(o Vec{{$v.N}}[T]) T { return Inner(v.Mat(), o.Mat()) }

// Norm returns the Euclidean length of v.
func (v Vec{{$v.N}}[T]) Norm() T { return Norm(v.Mat()) }

// Normalize returns v / ‖v‖, or the zero vector when ‖v‖ is zero.
func (v Vec{{$v.N}}[T]) Normalize() Vec{{$v.N}}[T] { return Vec{{$v.N}}[T](Normalize(v.Mat())) }

// EqWithTolerance reports whether every component of v is within eps of o.
func (v Vec{{$v.N}}[T]) EqWithTolerance(o Vec{{$v.N}}[T], eps T) bool {
	return v.Mat().EqWithTolerance(o.Mat(), eps)
}

// TransformBy returns m·v.
func (v Vec{{$v.N}}[T]) TransformBy(m Mat{{$v.N}}[T]) Vec{{$v.N}}[T] { return Vec{{$v.N}}[T](Dot(m, v.Mat())) }

// String renders v as a {{$v.N}}×1 matrix.
func (v Vec{{$v.N}}[T]) String() string { return v.Mat().String() }
{{range $v.Setters}}
// {{.Name}} sets component {{.Comp}}.
func (v *Vec{{$v.N}}[T]) {{.Name}}({{.Comp}} T) { v.data[{{.Index}}] = {{.Comp}} }
{{end}}
// Component readers: one letter returns the element, two to four letters
// return a fresh vector of that length.
{{range $v.Swizzles}}
// {{.Name}} {{.Doc}}
func (v Vec{{$v.N}}[T]) {{.Name}}() {{.Ret}} { return {{.Expr}} }
{{end}}{{end}}
// ---------- MatRxCFromArray ----------
{{range .Mats}}
// {{.Name}}FromArray builds a {{.Name}} from {{.Cols}} columns of {{.Rows}} elements.
func {{.Name}}FromArray[T Scalar](a [{{.Cols}}][{{.Rows}}]T) {{.Name}}[T] {
	var m {{.Name}}[T]
	for j := range a {
		copy(m.data[j*{{.Rows}}:], a[j][:])
	}

	return m
}
{{end}}`))
