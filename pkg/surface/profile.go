package surface

import (
	"fmt"
	"time"

	"github.com/veilar-ui/veilar/pkg/animation"
	"github.com/veilar-ui/veilar/pkg/graphics"
)

// Family identifies which control owns a surface.
type Family int

const (
	FamilyButton Family = iota
	FamilyContainer
	FamilyLabel
)

func (f Family) String() string {
	switch f {
	case FamilyButton:
		return "button"
	case FamilyContainer:
		return "container"
	case FamilyLabel:
		return "label"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// PressDuration is the length of every press and long-press scale animation.
const PressDuration = 100 * time.Millisecond

// Profile holds the per-family press constants.
type Profile struct {
	Family Family

	// DimFactor and GlowFactor scale the HSV value of every fill color
	// while pressed. Dim wins when both flags are set.
	DimFactor  float64
	GlowFactor float64

	// TintAlpha is the alpha of the black or white tint laid over a host
	// background that has no gradient of its own.
	TintAlpha uint8

	// ShrinkScale is the pressed scale for the shrink flag; 0 ignores it.
	ShrinkScale float64
	// PopScale is the peak of the long-press bounce for the pop flag; 0
	// ignores it.
	PopScale float64

	// Ripple draws RippleColor over the outline while pressed.
	Ripple      bool
	RippleColor graphics.Color

	// ClipComplexShapes clips content to cut-corner, squircle and polygon
	// outlines. When false only round rects, pills and ovals clip.
	ClipComplexShapes bool

	// PressAffectsText shifts the text gradient along with the fill.
	PressAffectsText bool

	Duration time.Duration
	// Curve eases every scale segment; nil is linear.
	Curve func(float64) float64
}

// ButtonProfile is the profile of Button.
func ButtonProfile() Profile {
	return Profile{
		Family:      FamilyButton,
		DimFactor:   0.8,
		GlowFactor:  1.2,
		TintAlpha:   60,
		ShrinkScale: 0.95,
		Ripple:      true,
		RippleColor: graphics.Color(0x40FFFFFF),
		Duration:    PressDuration,
		Curve:       animation.AccelerateDecelerate,
	}
}

// ContainerProfile is the profile of Container.
func ContainerProfile() Profile {
	return Profile{
		Family:            FamilyContainer,
		DimFactor:         0.85,
		GlowFactor:        1.15,
		TintAlpha:         40,
		ShrinkScale:       0.98,
		PopScale:          1.05,
		ClipComplexShapes: true,
		Duration:          PressDuration,
		Curve:             animation.AccelerateDecelerate,
	}
}

// LabelProfile is the profile of Label.
func LabelProfile() Profile {
	return Profile{
		Family:            FamilyLabel,
		DimFactor:         0.8,
		GlowFactor:        1.3,
		TintAlpha:         40,
		PopScale:          1.05,
		ClipComplexShapes: true,
		PressAffectsText:  true,
		Duration:          PressDuration,
		Curve:             animation.AccelerateDecelerate,
	}
}
