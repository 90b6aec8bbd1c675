package graphics

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color    Color
	Gradient *Gradient
	// Face is the font face used for measuring and drawing. Nil selects
	// the built-in 7x13 bitmap face.
	Face font.Face
}

// TextLine represents a single laid-out line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains measured text metrics and a resolved font face.
type TextLayout struct {
	Text       string
	Size       Size
	Ascent     float64
	Descent    float64
	Face       font.Face
	LineHeight float64
	Lines      []TextLine
}

// DefaultFace returns the face used when a TextStyle has none.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// LayoutText measures text line by line using the style's font face.
func LayoutText(text string, style TextStyle) *TextLayout {
	face := style.Face
	if face == nil {
		face = DefaultFace()
	}
	metrics := face.Metrics()
	ascent := float64(metrics.Ascent.Round())
	descent := float64(metrics.Descent.Round())
	lineHeight := float64(metrics.Height.Round())
	if lineHeight <= 0 {
		lineHeight = ascent + descent
	}

	layout := &TextLayout{
		Text:       text,
		Ascent:     ascent,
		Descent:    descent,
		Face:       face,
		LineHeight: lineHeight,
	}
	var maxWidth float64
	for _, line := range strings.Split(text, "\n") {
		w := float64(font.MeasureString(face, line).Round())
		if w > maxWidth {
			maxWidth = w
		}
		layout.Lines = append(layout.Lines, TextLine{Text: line, Width: w})
	}
	layout.Size = Size{
		Width:  maxWidth,
		Height: lineHeight * float64(len(layout.Lines)),
	}
	return layout
}
