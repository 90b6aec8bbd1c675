package graphics

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// ClipRRect restricts future drawing to the given rounded rectangle.
	ClipRRect(rrect RRect)

	// ClipPath restricts future drawing to the interior of path.
	ClipPath(path *Path)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawText draws a pre-measured text layout with its top-left corner at
	// position. The paint supplies the glyph color or gradient.
	DrawText(layout *TextLayout, position Offset, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
