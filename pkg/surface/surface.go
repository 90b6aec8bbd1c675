// Package surface is the styled-surface engine shared by every control.
//
// A Surface owns one control's parsed style and everything derived from it:
// the outline for the current size, the fill and text shaders for the
// current press state, the fallback tint, and the scale animation. Controls
// forward their lifecycle events to it:
//
//	OnResize      rebuilds outline and shaders when the size changes; the
//	              first non-zero size also runs the after-layout hooks once
//	OnPressChange rebuilds only the shaders (or the tint) for the new state
//	OnLongPress   fires the haptic pulse and the pop bounce
//
// A Surface must only be used from the UI goroutine.
package surface

import (
	"fmt"

	"github.com/veilar-ui/veilar/pkg/animation"
	"github.com/veilar-ui/veilar/pkg/errors"
	"github.com/veilar-ui/veilar/pkg/graphics"
	"github.com/veilar-ui/veilar/pkg/logging"
	"github.com/veilar-ui/veilar/pkg/shader"
	"github.com/veilar-ui/veilar/pkg/shape"
	"github.com/veilar-ui/veilar/pkg/style"
)

// Haptics emits the long-press pulse. platform.Haptics implements it.
type Haptics interface {
	KeyboardTap() error
}

// Options configures a Surface.
type Options struct {
	// Background is the host's own background color, tinted while pressed
	// when the style has no gradient or shade. Nil means none.
	Background *graphics.Color
	// Haptics receives the vibe pulse. Nil disables it.
	Haptics Haptics
	// OnInvalidate is called whenever the surface needs repainting.
	OnInvalidate func()
	// Logger overrides logging.Default.
	Logger *logging.Logger
}

// Surface renders one styled control. Create it with New.
type Surface struct {
	profile Profile
	desc    *style.Descriptor
	opts    Options
	log     *logging.Logger

	size    graphics.Size
	laidOut bool

	outline    shape.Outline
	fill       *graphics.Gradient
	textShader *graphics.Gradient
	tint       *graphics.ColorFilter

	pressed bool
	factor  float64
	scale   *animation.AnimationController
}

// New returns a surface for desc. Nothing is built until the first
// non-zero OnResize.
func New(profile Profile, desc *style.Descriptor, opts Options) *Surface {
	if desc == nil {
		desc = &style.Descriptor{}
	}
	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}
	s := &Surface{
		profile: profile,
		desc:    desc,
		opts:    opts,
		log:     log.WithFields(map[string]any{"control": profile.Family.String()}),
		factor:  1,
	}
	s.scale = animation.NewAnimationController(profile.Duration)
	s.scale.Curve = profile.Curve
	s.scale.LowerBound = 1
	s.scale.UpperBound = 1
	if profile.ShrinkScale > 0 {
		s.scale.LowerBound = min(profile.ShrinkScale, 1)
	}
	if profile.PopScale > 0 {
		s.scale.UpperBound = max(profile.PopScale, 1)
	}
	s.scale.Value = 1
	s.scale.AddListener(s.invalidate)
	return s
}

// Descriptor returns the parsed style.
func (s *Surface) Descriptor() *style.Descriptor { return s.desc }

// Profile returns the family profile.
func (s *Surface) Profile() Profile { return s.profile }

// Size returns the last non-zero size passed to OnResize.
func (s *Surface) Size() graphics.Size { return s.size }

// LaidOut reports whether the surface has seen a non-zero size.
func (s *Surface) LaidOut() bool { return s.laidOut }

// OnResize applies the style for a new size. Zero or negative sizes are
// ignored, as is a size equal to the current one.
func (s *Surface) OnResize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	next := graphics.Size{Width: width, Height: height}
	if s.laidOut && next == s.size {
		return
	}
	s.size = next
	s.ApplyStyle()

	s.laidOut = true
}

// ApplyStyle rebuilds the outline and both shaders for the current size
// and press factor. It does nothing before the first non-zero size.
func (s *Surface) ApplyStyle() {
	if s.size.IsEmpty() {
		return
	}
	d := s.desc
	s.outline = shape.Build(d.Shape, d.ShapeParam, d.Radius, s.size.Width, s.size.Height)
	if s.outline.Degenerate {
		errors.ReportRender("surface.ApplyStyle", fmt.Errorf("polygon needs at least 3 sides, got %d", d.ShapeParam))
	}
	s.refreshShaders(true)
	s.log.Debug().
		Str("shape", s.outline.Kind.String()).
		Float64("width", s.size.Width).
		Float64("height", s.size.Height).
		Msg("style applied")
	s.invalidate()
}

// OnPressChange moves between idle and pressed. Release and cancel both
// pass false. Only the shaders and tint are rebuilt; the outline is kept.
func (s *Surface) OnPressChange(pressed bool) {
	if pressed == s.pressed {
		return
	}
	s.pressed = pressed
	s.factor = s.PressFactor(pressed)

	if s.laidOut {
		s.refreshShaders(s.profile.PressAffectsText)
	}
	s.updateTint()

	if s.profile.ShrinkScale > 0 && s.desc.Flags.Has(style.FlagShrink) {
		if pressed {
			s.scale.AnimateTo(s.profile.ShrinkScale)
		} else {
			s.scale.AnimateTo(1)
		}
	}
	s.invalidate()
}

// OnLongPress fires the vibe pulse and the pop bounce when their flags are
// set.
func (s *Surface) OnLongPress() {
	defer errors.Recover("surface.OnLongPress")

	if s.desc.Flags.Has(style.FlagVibe) && s.opts.Haptics != nil {
		if err := s.opts.Haptics.KeyboardTap(); err != nil {
			s.log.Debug().Err(err).Msg("haptic pulse failed")
		}
	}
	if s.profile.PopScale > 0 && s.desc.Flags.Has(style.FlagPop) {
		s.scale.AnimateThrough(s.profile.PopScale, 1)
	}
}

// PressFactor returns the brightness factor for the given state.
func (s *Surface) PressFactor(pressed bool) float64 {
	if !pressed {
		return 1
	}
	switch {
	case s.desc.Flags.Has(style.FlagDim):
		return s.profile.DimFactor
	case s.desc.Flags.Has(style.FlagGlow):
		return s.profile.GlowFactor
	default:
		return 1
	}
}

// refreshShaders rebuilds the fill shader, and the text shader when
// withText is set, at the current factor. If any rebuild fails the previous
// shaders are kept.
func (s *Surface) refreshShaders(withText bool) {
	fill, text, ok := s.buildShaders(withText)
	if !ok {
		return
	}
	s.fill = fill
	if withText {
		s.textShader = text
	}
}

func (s *Surface) buildShaders(withText bool) (fill, text *graphics.Gradient, ok bool) {
	defer errors.RecoverWithCallback("surface.refreshShaders", func(any) { ok = false })

	w, h := s.size.Width, s.size.Height
	if bg := s.desc.Background(); bg != nil {
		g, err := shader.Build(bg, w, h, s.factor)
		if err != nil {
			errors.ReportRender("surface.refreshShaders", err)
			return nil, nil, false
		}
		fill = g
	}
	if withText && s.desc.TextGradient != nil {
		textFactor := 1.0
		if s.profile.PressAffectsText {
			textFactor = s.factor
		}
		g, err := shader.Build(s.desc.TextGradient, w, h, textFactor)
		if err != nil {
			errors.ReportRender("surface.refreshShaders", err)
			return nil, nil, false
		}
		text = g
	}
	return fill, text, true
}

func (s *Surface) updateTint() {
	if s.desc.HasBackground() || !s.pressed || s.factor == 1 {
		s.tint = nil
		return
	}
	var c graphics.Color
	if s.factor < 1 {
		c = graphics.ARGB(s.profile.TintAlpha, 0, 0, 0)
	} else {
		c = graphics.ARGB(s.profile.TintAlpha, 255, 255, 255)
	}
	s.tint = graphics.NewTintFilter(c)
}

// Pressed reports the current interaction state.
func (s *Surface) Pressed() bool { return s.pressed }

// Factor returns the brightness factor in effect.
func (s *Surface) Factor() float64 { return s.factor }

// Scale returns the current uniform scale of the control.
func (s *Surface) Scale() float64 { return s.scale.Value }

// Animating reports whether a scale animation is running.
func (s *Surface) Animating() bool { return s.scale.IsAnimating() }

// Outline returns the outline for the current size.
func (s *Surface) Outline() shape.Outline { return s.outline }

// FillShader returns the current background shader, or nil.
func (s *Surface) FillShader() *graphics.Gradient { return s.fill }

// TextShader returns the current text shader, or nil.
func (s *Surface) TextShader() *graphics.Gradient { return s.textShader }

// Tint returns the pressed-state tint filter, or nil.
func (s *Surface) Tint() *graphics.ColorFilter { return s.tint }

// Dispose stops the scale animation.
func (s *Surface) Dispose() {
	s.scale.Dispose()
}

func (s *Surface) invalidate() {
	if s.opts.OnInvalidate != nil {
		s.opts.OnInvalidate()
	}
}
