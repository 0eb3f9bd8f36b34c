// SPDX-License-Identifier: MIT

package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns errors on misuse.
type Matrix interface {
	// Rows returns the number of rows. O(1).
	Rows() int

	// Cols returns the number of columns. O(1).
	Cols() int

	// At retrieves the element at (i, j); ErrOutOfRange on bad indices. O(1).
	At(i, j int) (float64, error)

	// Set assigns v at (i, j); ErrOutOfRange on bad indices. O(1).
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy. O(rows*cols).
	Clone() Matrix
}
