package recording

import (
	"image"
	"image/color"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave         CommandType = iota // Save current state
	CmdRestore                         // Restore previous state
	CmdSetTransform                    // Set transformation matrix

	// Drawing commands
	CmdClear     // Replace every pixel with a color
	CmdFillRect  // Fill a rectangle
	CmdDrawImage // Draw an image
	CmdDrawText  // Draw text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:         "Save",
	CmdRestore:      "Restore",
	CmdSetTransform: "SetTransform",
	CmdClear:        "Clear",
	CmdFillRect:     "FillRect",
	CmdDrawImage:    "DrawImage",
	CmdDrawText:     "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SaveCommand pushes the current transform onto the state stack.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand pops the state stack.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// SetTransformCommand replaces the current transformation matrix.
type SetTransformCommand struct {
	Matrix Matrix
}

// Type implements Command.
func (SetTransformCommand) Type() CommandType { return CmdSetTransform }

// ClearCommand replaces every pixel of the canvas, ignoring the transform.
type ClearCommand struct {
	Color color.Color
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// FillRectCommand fills a user-space rectangle, blending over what is
// already there.
type FillRectCommand struct {
	Rect  Rect
	Color color.Color
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// DrawImageCommand draws an image with its top-left corner at (X, Y).
type DrawImageCommand struct {
	Image image.Image
	X, Y  float64
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// DrawTextCommand draws a single line of text. (X, Y) is the baseline
// origin.
type DrawTextCommand struct {
	Text  string
	X, Y  float64
	Color color.Color
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
