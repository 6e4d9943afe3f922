// Package app wires the components together and runs the main loop.
//
// An Application owns the shared infrastructure (configuration, event
// bus, logging) and the editor components built on it: the session of
// open documents, the automatic fold trigger, the command dispatcher,
// the keymap, and the renderer. Bootstrap brings the components up in
// dependency order; Run drives the terminal event loop until a quit
// action or Shutdown ends it.
package app
