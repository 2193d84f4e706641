// Package terminal provides a local terminal client for Blockfall.
//
// The client runs the game engine directly against a 60Hz ticker with no
// server in between, reads keys via tcell, and draws the well plus a
// stats panel. Key bindings:
//
//	←/→     move
//	↑ or x  rotate clockwise
//	z       rotate counter-clockwise
//	↓       soft drop (held; releases after key repeat stops)
//	space   hard drop
//	c       hold
//	p       pause
//	enter   start
//	q/esc   quit
//
// Terminals deliver no key-release events, so the soft drop is treated
// as released once the down arrow's auto-repeat goes quiet.
package terminal
