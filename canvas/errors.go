// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import "errors"

var (
	// ErrNotSized is returned by operations that need a surface before the
	// first Resize.
	ErrNotSized = errors.New("canvas: Resize has not been called")

	// ErrPixelAccess is returned by BeginPixelAccess while access is
	// already held, and by EndPixelAccess when it is not.
	ErrPixelAccess = errors.New("canvas: unbalanced pixel access")

	// ErrNoDrawContext is returned by Present without a draw context.
	ErrNoDrawContext = errors.New("canvas: nil texture drawer")
)
