package graphics

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Paths returns the paths and paints of every DrawPath operation, in order.
func (d *DisplayList) Paths() ([]*Path, []Paint) {
	var paths []*Path
	var paints []Paint
	for _, op := range d.ops {
		if p, ok := op.(opPath); ok {
			paths = append(paths, p.path)
			paints = append(paints, p.paint)
		}
	}
	return paths, paints
}

// Texts returns the layouts and paints of every DrawText operation, in order.
func (d *DisplayList) Texts() ([]*TextLayout, []Paint) {
	var layouts []*TextLayout
	var paints []Paint
	for _, op := range d.ops {
		if t, ok := op.(opText); ok {
			layouts = append(layouts, t.layout)
			paints = append(paints, t.paint)
		}
	}
	return layouts, paints
}

// Rects returns the rectangles and paints of every DrawRect operation.
func (d *DisplayList) Rects() ([]Rect, []Paint) {
	var rects []Rect
	var paints []Paint
	for _, op := range d.ops {
		if r, ok := op.(opRect); ok {
			rects = append(rects, r.rect)
			paints = append(paints, r.paint)
		}
	}
	return rects, paints
}

// ClipCount returns the number of clip operations of any kind.
func (d *DisplayList) ClipCount() int {
	n := 0
	for _, op := range d.ops {
		switch op.(type) {
		case opClipRect, opClipRRect, opClipPath:
			n++
		}
	}
	return n
}

// Scales returns the arguments of every Scale operation, in order.
func (d *DisplayList) Scales() []Offset {
	var out []Offset
	for _, op := range d.ops {
		if s, ok := op.(opScale); ok {
			out = append(out, Offset{X: s.sx, Y: s.sy})
		}
	}
	return out
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(opSave{})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(opRestore{})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(opTranslate{dx: dx, dy: dy})
}

func (c *recordingCanvas) Scale(sx, sy float64) {
	c.recorder.append(opScale{sx: sx, sy: sy})
}

func (c *recordingCanvas) ClipRect(rect Rect) {
	c.recorder.append(opClipRect{rect: rect})
}

func (c *recordingCanvas) ClipRRect(rrect RRect) {
	c.recorder.append(opClipRRect{rrect: rrect})
}

func (c *recordingCanvas) ClipPath(path *Path) {
	c.recorder.append(opClipPath{path: path})
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.append(opClear{color: color})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(opRect{rect: rect, paint: paint})
}

func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	c.recorder.append(opPath{path: path, paint: paint})
}

func (c *recordingCanvas) DrawText(layout *TextLayout, position Offset, paint Paint) {
	c.recorder.append(opText{layout: layout, position: position, paint: paint})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

type opSave struct{}

func (opSave) execute(canvas Canvas) {
	canvas.Save()
}

type opRestore struct{}

func (opRestore) execute(canvas Canvas) {
	canvas.Restore()
}

type opTranslate struct {
	dx, dy float64
}

func (op opTranslate) execute(canvas Canvas) {
	canvas.Translate(op.dx, op.dy)
}

type opScale struct {
	sx, sy float64
}

func (op opScale) execute(canvas Canvas) {
	canvas.Scale(op.sx, op.sy)
}

type opClipRect struct {
	rect Rect
}

func (op opClipRect) execute(canvas Canvas) {
	canvas.ClipRect(op.rect)
}

type opClipRRect struct {
	rrect RRect
}

func (op opClipRRect) execute(canvas Canvas) {
	canvas.ClipRRect(op.rrect)
}

type opClipPath struct {
	path *Path
}

func (op opClipPath) execute(canvas Canvas) {
	canvas.ClipPath(op.path)
}

type opClear struct {
	color Color
}

func (op opClear) execute(canvas Canvas) {
	canvas.Clear(op.color)
}

type opRect struct {
	rect  Rect
	paint Paint
}

func (op opRect) execute(canvas Canvas) {
	canvas.DrawRect(op.rect, op.paint)
}

type opPath struct {
	path  *Path
	paint Paint
}

func (op opPath) execute(canvas Canvas) {
	canvas.DrawPath(op.path, op.paint)
}

type opText struct {
	layout   *TextLayout
	position Offset
	paint    Paint
}

func (op opText) execute(canvas Canvas) {
	canvas.DrawText(op.layout, op.position, op.paint)
}
