// Package command routes named actions to handlers.
//
// An action name is namespaced by its prefix before the first dot, so
// "fold.toggle" belongs to the "fold" namespace. A Handler serves one
// namespace; the Dispatcher routes each action to its namespace handler
// and returns the handler's Result, which tells the caller whether to
// redraw, quit, or surface a message.
//
// Handlers act on the dispatch Context, which carries the active view
// and the settings current at dispatch time rather than live subsystem
// references, keeping handlers trivial to test.
package command
