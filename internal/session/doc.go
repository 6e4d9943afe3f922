// Package session manages open documents and their fold state.
//
// A Session is the registry of open documents. Opening a file builds a
// View: the document plus its fold state, cursor, and metadata. The
// View is the concrete type behind the host interfaces the rest of the
// application works against: the fold engine collapses it, command
// handlers move its cursor and toggle folds, and the renderer reads it
// to draw the screen.
//
// Sessions publish document lifecycle events (document.opened and
// friends) on the event bus; views publish fold lifecycle events
// (fold.applied and friends) as regions collapse and expand.
package session
