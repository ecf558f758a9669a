// Package viz provides the live terminal view of the rotating cube.
//
// The view is a Bubble Tea program:
//
//   - [Model]: renders one frame per tick and shows it beside a stats panel
//   - [Theme]: the single cube color plus panel colors, chosen at startup
//
// # Key Bindings
//
//	Q / Esc / Ctrl-C - Quit
//
// Frames advance only after the previous frame has been drawn, so every
// frame shown was computed with one fixed set of angles.
package viz
