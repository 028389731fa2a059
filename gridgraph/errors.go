package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrDimensionMismatch indicates flat storage whose length is not width×height.
	ErrDimensionMismatch = errors.New("gridgraph: storage length does not match width×height")
	// ErrBadWeight indicates a weight that is neither 0 (blocked) nor a finite value ≥ 1.
	ErrBadWeight = errors.New("gridgraph: weight must be 0 or a finite value ≥ 1")
	// ErrBadCell indicates an unknown symbol in ASCII or flag input.
	ErrBadCell = errors.New("gridgraph: unknown cell symbol")
	// ErrInvalidStep indicates two consecutive path cells that are not one legal step apart.
	ErrInvalidStep = errors.New("gridgraph: cells are not one legal step apart")
)
