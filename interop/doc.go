// SPDX-License-Identifier: MIT

// Package interop converts mats matrices to and from the types of
// gonum.org/v1/gonum/mat and golang.org/x/image/math/f32.
//
// Both of those libraries store matrices row-major; mats stores them
// column-major. Every conversion copies and reorders, so the results never
// alias their input.
package interop
