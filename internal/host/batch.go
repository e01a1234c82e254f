package host

import (
	"github.com/dshills/cellbridge/internal/geom"
)

// CommandKind identifies a DrawBatch command.
type CommandKind int

const (
	CmdSet CommandKind = iota
	CmdCls
	CmdClsColor
)

func (k CommandKind) String() string {
	switch k {
	case CmdSet:
		return "set"
	case CmdCls:
		return "cls"
	case CmdClsColor:
		return "cls_color"
	default:
		return "unknown"
	}
}

// Command is one recorded draw operation.
type Command struct {
	Kind   CommandKind
	Pos    geom.Position
	Colors ColorPair
	Glyph  uint32
}

// Apply replays the command onto ctx.
func (c Command) Apply(ctx Context) {
	switch c.Kind {
	case CmdSet:
		ctx.Set(c.Pos.X, c.Pos.Y, c.Colors.Fg, c.Colors.Bg, c.Glyph)
	case CmdCls:
		ctx.Cls()
	case CmdClsColor:
		if con, ok := ctx.(interface{ ClsColor(RGBA) }); ok {
			con.ClsColor(c.Colors.Bg)
			return
		}
		w, h := ctx.CharSize()
		for y := range h {
			for x := range w {
				ctx.Set(x, y, White, c.Colors.Bg, ' ')
			}
		}
	}
}

// DrawBatch records draw commands off-screen. A batch is filled during a
// frame and handed to a Queue with Submit, which leaves it empty for the next
// frame. Batches are normally obtained from AcquireBatch.
type DrawBatch struct {
	commands []Command
	poolSize int
}

// NewDrawBatch creates an unpooled batch.
func NewDrawBatch() *DrawBatch {
	return &DrawBatch{}
}

// Set records a single cell write.
func (b *DrawBatch) Set(pos geom.Position, colors ColorPair, glyph uint32) *DrawBatch {
	b.commands = append(b.commands, Command{Kind: CmdSet, Pos: pos, Colors: colors, Glyph: glyph})
	return b
}

// Cls records a full clear.
func (b *DrawBatch) Cls() *DrawBatch {
	b.commands = append(b.commands, Command{Kind: CmdCls})
	return b
}

// ClsColor records a clear to a background colour.
func (b *DrawBatch) ClsColor(bg RGBA) *DrawBatch {
	b.commands = append(b.commands, Command{Kind: CmdClsColor, Colors: ColorPair{Fg: White, Bg: bg}})
	return b
}

// Commands returns the recorded commands. The slice is only valid until the
// batch is next modified.
func (b *DrawBatch) Commands() []Command {
	return b.commands
}

// Len returns the number of recorded commands.
func (b *DrawBatch) Len() int {
	return len(b.commands)
}

// Reset discards all recorded commands.
func (b *DrawBatch) Reset() {
	b.commands = b.commands[:0]
}

// Submit hands a copy of the recorded commands to q at depth z and empties
// the batch. Lower z renders first.
func (b *DrawBatch) Submit(q *Queue, z int) error {
	if q == nil {
		return ErrNilQueue
	}
	commands := make([]Command, len(b.commands))
	copy(commands, b.commands)
	q.push(z, commands)
	b.Reset()
	return nil
}
