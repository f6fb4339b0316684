// SPDX-License-Identifier: MIT

package apsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orbitgraph/core"
)

var (
	// ErrGraphNotBuilt aliases core.ErrGraphNotBuilt.
	ErrGraphNotBuilt = core.ErrGraphNotBuilt

	// ErrNodeOutOfRange aliases core.ErrNodeOutOfRange.
	ErrNodeOutOfRange = core.ErrNodeOutOfRange

	// ErrNotComputed is returned when tables are queried before Compute or
	// after the graph changed.
	ErrNotComputed = errors.New("apsp: shortest paths not computed")

	// ErrPathNotFound is returned when no path joins the requested pair.
	ErrPathNotFound = errors.New("apsp: path not found")
)

// Operation names for error context.
const (
	opCompute     = "Compute"
	opReconstruct = "ReconstructPath"
	opTables      = "Tables"
)

// apspErrorf prefixes err with the package and operation.
func apspErrorf(op string, format string, args ...any) error {
	return fmt.Errorf("apsp: %s: %w", op, fmt.Errorf(format, args...))
}
