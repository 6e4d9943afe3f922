// Package cursor implements the "cursor" command namespace. All
// movement is fold-aware; the view keeps the cursor on visible lines.
package cursor

import "github.com/dshills/notefold/internal/command"

// defaultPage is the page size used when the context does not know the
// content height.
const defaultPage = 20

// New creates the cursor namespace handler.
func New() command.Handler {
	b := command.NewBase("cursor")
	b.Register("cursor.moveDown", moveDown)
	b.Register("cursor.moveUp", moveUp)
	b.Register("cursor.pageDown", pageDown)
	b.Register("cursor.pageUp", pageUp)
	b.Register("cursor.top", top)
	b.Register("cursor.bottom", bottom)
	return b
}

func moveDown(action command.Action, ctx *command.Context) command.Result {
	return moveBy(ctx, action.Repeat())
}

func moveUp(action command.Action, ctx *command.Context) command.Result {
	return moveBy(ctx, -action.Repeat())
}

func pageDown(_ command.Action, ctx *command.Context) command.Result {
	return moveBy(ctx, pageLines(ctx))
}

func pageUp(_ command.Action, ctx *command.Context) command.Result {
	return moveBy(ctx, -pageLines(ctx))
}

func top(_ command.Action, ctx *command.Context) command.Result {
	if ctx.View == nil {
		return command.NoOpf("no open document")
	}
	before := ctx.View.CursorLine()
	if ctx.View.MoveCursorTo(0) == before {
		return command.NoOp()
	}
	return command.Success().WithRedraw()
}

func bottom(_ command.Action, ctx *command.Context) command.Result {
	if ctx.View == nil {
		return command.NoOpf("no open document")
	}
	before := ctx.View.CursorLine()
	if ctx.View.MoveCursorTo(ctx.View.LineCount()-1) == before {
		return command.NoOp()
	}
	return command.Success().WithRedraw()
}

func moveBy(ctx *command.Context, delta int) command.Result {
	if ctx.View == nil {
		return command.NoOpf("no open document")
	}
	before := ctx.View.CursorLine()
	if ctx.View.MoveCursor(delta) == before {
		return command.NoOp()
	}
	return command.Success().WithRedraw()
}

func pageLines(ctx *command.Context) int {
	if ctx.PageLines > 0 {
		return ctx.PageLines
	}
	return defaultPage
}
