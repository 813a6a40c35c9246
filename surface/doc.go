// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the destination side of a drawer commit: window
// surfaces and the pixel buffers that back them.
//
// A Window has a logical size, measured in the units clients lay out in, and
// a scale factor. Its Buffer is allocated in device pixels, so a 100x20
// window at scale 2 is backed by a 200x40 *image.RGBA. Changes reach the
// display by attaching the buffer to the window's scene node together with
// a damage region:
//
//	win := surface.NewWindow(100, 20, 2)
//	defer win.Close()
//
//	region := damage.Get()
//	defer region.Release()
//	region.InitRect(0, 0, 200, 40)
//	win.SetBufferWithDamage(win.Buffer(), region)
//
// Windows and buffers are NOT thread-safe. They belong to the compositor's
// rendering goroutine.
package surface

import "errors"

// ErrWindowClosed is returned by operations on a window after Close.
var ErrWindowClosed = errors.New("surface: window is closed")
