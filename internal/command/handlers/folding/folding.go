// Package folding implements the "fold" command namespace.
package folding

import (
	"github.com/dshills/notefold/internal/command"
)

// New creates the fold namespace handler.
func New() command.Handler {
	b := command.NewBase("fold")
	b.Register("fold.deepListItems", deepListItems)
	b.Register("fold.deepListItemsAtDepth", deepListItemsAtDepth)
	b.Register("fold.toggle", toggle)
	b.Register("fold.unfoldAll", unfoldAll)
	return b
}

// deepListItems folds the document down to the configured level.
func deepListItems(_ command.Action, ctx *command.Context) command.Result {
	if ctx.View == nil {
		return command.NoOpf("no open document")
	}
	applied := ctx.View.FoldDeep(ctx.Fold)
	if applied == 0 {
		return command.NoOpf("nothing to fold")
	}
	return command.Successf("folded %d blocks", applied).WithRedraw()
}

// deepListItemsAtDepth folds down to an explicit depth, from the
// "depth" argument or the repeat count.
func deepListItemsAtDepth(action command.Action, ctx *command.Context) command.Result {
	if ctx.View == nil {
		return command.NoOpf("no open document")
	}

	s := ctx.Fold
	if _, ok := action.Args.Get("depth"); ok {
		s.Level = action.Args.GetInt("depth")
	} else if action.Count > 0 {
		s.Level = action.Count
	}
	if s.Level < 0 {
		return command.Errorf("invalid fold depth %d", s.Level)
	}

	applied := ctx.View.FoldDeep(s)
	if applied == 0 {
		return command.NoOpf("nothing to fold at depth %d", s.Level)
	}
	return command.Successf("folded %d blocks", applied).WithRedraw()
}

// toggle folds the block under the cursor, or unfolds the region
// anchored there.
func toggle(_ command.Action, ctx *command.Context) command.Result {
	if ctx.View == nil {
		return command.NoOpf("no open document")
	}
	if _, err := ctx.View.ToggleFold(ctx.View.CursorLine()); err != nil {
		return command.NoOpf("%v", err)
	}
	return command.Success().WithRedraw()
}

// unfoldAll removes every fold in the view.
func unfoldAll(_ command.Action, ctx *command.Context) command.Result {
	if ctx.View == nil {
		return command.NoOpf("no open document")
	}
	removed := ctx.View.UnfoldAll()
	if removed == 0 {
		return command.NoOp()
	}
	return command.Successf("removed %d folds", removed).WithRedraw()
}
