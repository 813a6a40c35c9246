// Package drawer commits recorded widget drawing into compositor windows.
//
// # Overview
//
// A status bar or popup draws its widgets into an off-screen
// [recording.Recorder]. When a widget has changed, the bar asks a [Drawer]
// to copy part of that recording into the window's backing buffer and to
// report the changed area, in device pixels, to the scene graph. Only the
// reported area is presented on the next frame.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/drawer"
//	    "github.com/gogpu/drawer/recording"
//	    "github.com/gogpu/drawer/surface"
//	)
//
//	win := surface.NewWindow(1920, 24, 2)
//
//	rec := recording.NewRecorder(1920, 24)
//	rec.SetColor(color.Black)
//	rec.Clear()
//	rec.SetColor(color.White)
//	rec.DrawString("hello", 4, 16)
//
//	d := drawer.New(rec.FinishRecording(), win)
//	d.Commit(0, 0, drawer.WithScale(win.Scale()))
//
// # Coordinates
//
// Offsets and sizes passed to Commit are logical units. The destination
// buffer is allocated in device pixels, logical size times the output scale
// factor. Damage is always reported in device pixels.
//
// # Compositing
//
// Commit replaces pixels rather than blending: the committed area shows the
// recording exactly, transparent parts included. Pixels outside the
// committed area are never touched.
//
// # Packages
//
//   - [github.com/gogpu/drawer/recording]: command recording and raster playback
//   - [github.com/gogpu/drawer/surface]: windows and their device buffers
//   - [github.com/gogpu/drawer/damage]: pooled damage regions
//   - [github.com/gogpu/drawer/scene]: damage accumulation and presentation
//   - [github.com/gogpu/drawer/config]: TOML configuration
//
// # Logging
//
// drawer is silent by default. Use [SetLogger] to receive commit records.
package drawer
