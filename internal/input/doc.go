// Package input maps terminal key presses to editor actions.
//
// A Keymap holds single-chord bindings from keys to the action names
// understood by the command dispatcher. Key specifications accept
// single characters ("q", "G"), special names ("space", "enter",
// "pgdn"), and control chords ("ctrl+d"). User overrides from the
// [keys] config table are merged over the defaults; an empty action
// removes a binding.
package input
