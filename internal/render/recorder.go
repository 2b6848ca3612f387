package render

import (
	"image/color"

	"Sketcher/internal/state"
)

type OpKind int

const (
	OpLine OpKind = iota
	OpText
	OpFill
)

func (k OpKind) String() string {
	switch k {
	case OpLine:
		return "line"
	case OpText:
		return "text"
	case OpFill:
		return "fill"
	}
	return "unknown"
}

// Op is one recorded surface call. Only the fields of its Kind are set.
type Op struct {
	Kind  OpKind
	From  state.Point
	To    state.Point
	Text  string
	Area  state.Area
	Color color.Color
	Width float32
	Size  float32
}

// Recorder keeps every drawing call it receives and optionally forwards it
// to another surface.
type Recorder struct {
	ops  []Op
	next state.Surface
}

var _ state.Surface = (*Recorder)(nil)

// NewRecorder returns a Recorder forwarding to next, which may be nil.
func NewRecorder(next state.Surface) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) DrawLine(from, to state.Point, c color.Color, width float32) {
	r.ops = append(r.ops, Op{Kind: OpLine, From: from, To: to, Color: c, Width: width})
	if r.next != nil {
		r.next.DrawLine(from, to, c, width)
	}
}

func (r *Recorder) DrawText(s string, at state.Point, c color.Color, size float32) {
	r.ops = append(r.ops, Op{Kind: OpText, Text: s, From: at, Color: c, Size: size})
	if r.next != nil {
		r.next.DrawText(s, at, c, size)
	}
}

func (r *Recorder) FillRect(a state.Area, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpFill, Area: a, Color: c})
	if r.next != nil {
		r.next.FillRect(a, c)
	}
}

// Ops returns a copy of everything recorded so far.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// OpsOf returns the recorded ops of one kind, in order.
func (r *Recorder) OpsOf(k OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
