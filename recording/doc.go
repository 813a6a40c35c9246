// Package recording stages drawing operations so they can be committed to a
// window later.
//
// Widgets draw into a Recorder instead of touching the window's pixels. When
// a frame is ready, FinishRecording freezes the commands into an immutable
// Recording, which the drawer package composites into the window buffer at
// the output's scale factor.
//
// # Architecture
//
// The package follows a Command Pattern with three main components:
//
//   - Recorder: captures drawing operations as typed commands
//   - Recording: stores the commands and replays them
//   - Backend: renders commands to a specific output (RasterBackend is built in)
//
// This design is inspired by Cairo's recording surface.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(300, 20)
//	rec.SetColor(color.RGBA{0x22, 0x22, 0x22, 0xff})
//	rec.Clear()
//	rec.SetColor(color.White)
//	rec.DrawString("12:00", 250, 14)
//	r := rec.FinishRecording()
//
//	// Composite at 2x into a device buffer, replacing the clipped area.
//	r.Paint(buf, f64.Aff3{2, 0, 0, 0, 2, 0}, image.Rect(0, 0, 600, 40), draw.Src)
//
// # Supported Operations
//
//   - Clear, FillRect with any color.Color
//   - DrawImage for pre-rendered icons
//   - DrawString with a fixed bitmap face (golang.org/x/image/font/basicfont)
//   - Translate, Scale, SetTransform, Save and Restore
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after FinishRecording and can be played back or painted from multiple
// goroutines.
package recording
