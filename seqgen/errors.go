// SPDX-License-Identifier: MIT
// Package: datagen/seqgen
//
// errors.go — sentinel errors for the seqgen package.

package seqgen

import "errors"

// ErrBadSize indicates a negative size was passed to Generate.
// Size 0 is valid for sequence variants and yields an empty slice.
var ErrBadSize = errors.New("seqgen: invalid size")

// ErrBadRange indicates an invalid construction domain: high < low for
// integer ranges, or a negative standard deviation for Gaussian.
var ErrBadRange = errors.New("seqgen: invalid range")
