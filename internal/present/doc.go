// Package present draws completed frame buffers to a terminal.
//
//   - [LinePresenter]: homes the cursor and repaints the grid one row at a time
//   - [CellPresenter]: positions the cursor at every cell before writing it
//   - [ScreenPresenter]: per-cell drawing through a tcell screen
//
// All presenters use one constant foreground color.
package present
