package overlaycolor

import (
	"image/color"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/solarlune/overlaycolor/math32"
	"golang.org/x/image/colornames"
)

// A Color represents a color, containing R, G, B, and A components, each nominally ranging from 0 to 1.
// Components are not clamped; tints outside of that range are legal.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// White returns opaque white, the default multiplicative tint of a channel.
func White() Color {
	return Color{1, 1, 1, 1}
}

// Transparent returns fully transparent black, the default additive tint of a channel.
func Transparent() Color {
	return Color{0, 0, 0, 0}
}

// ColorFromVec4 creates a Color from an mgl32.Vec4 laid out as R, G, B, A.
func ColorFromVec4(v mgl32.Vec4) Color {
	return Color{v[0], v[1], v[2], v[3]}
}

// ColorFromHex parses a hex color string ("#rgb" or "#rrggbb"). The returned Color is opaque.
func ColorFromHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, errors.Wrapf(err, "invalid hex color %q", hex)
	}
	return Color{float32(c.R), float32(c.G), float32(c.B), 1}, nil
}

// ColorFromStd converts any image/color.Color into a Color (un-premultiplying the alpha).
func ColorFromStd(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		float32(n.R) / 0xffff,
		float32(n.G) / 0xffff,
		float32(n.B) / 0xffff,
		float32(n.A) / 0xffff,
	}
}

func (c Color) RGBA64() (float64, float64, float64, float64) {
	return float64(c.R), float64(c.G), float64(c.B), float64(c.A)
}

// Mult returns the component-wise product of the two Colors.
func (c Color) Mult(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// Add returns the component-wise sum of the two Colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// Lerp linearly interpolates each component towards the target Color by the percentage given.
func (c Color) Lerp(target Color, percentage float32) Color {
	return Color{
		math32.Lerp(c.R, target.R, percentage),
		math32.Lerp(c.G, target.G, percentage),
		math32.Lerp(c.B, target.B, percentage),
		math32.Lerp(c.A, target.A, percentage),
	}
}

// BlendLuv blends towards the target Color in the CIE L*u*v* space, which gives a perceptually smoother
// transition than Lerp for hues. Alpha is interpolated linearly. Components are clamped to 0-1 first.
func (c Color) BlendLuv(target Color, percentage float32) Color {
	blended := c.toColorful().BlendLuv(target.toColorful(), float64(percentage)).Clamped()
	return Color{float32(blended.R), float32(blended.G), float32(blended.B), math32.Lerp(c.A, target.A, percentage)}
}

// Hex returns the Color's RGB components as a "#rrggbb" string; alpha is dropped and components are clamped.
func (c Color) Hex() string {
	return c.toColorful().Clamped().Hex()
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Vec4 returns the Color as an mgl32.Vec4.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// ApproxEqual returns if each component of the two Colors is approximately equal (see math32.Approximately).
func (c Color) ApproxEqual(other Color) bool {
	return c.Vec4().ApproxFuncEqual(other.Vec4(), math32.Approximately)
}

// ToNRGBA64 converts the Color to a non-premultiplied image/color value, clamping each component to 0-1.
func (c Color) ToNRGBA64() color.NRGBA64 {
	return color.NRGBA64{
		R: uint16(math32.Clamp(c.R, 0, 1)*0xffff + 0.5),
		G: uint16(math32.Clamp(c.G, 0, 1)*0xffff + 0.5),
		B: uint16(math32.Clamp(c.B, 0, 1)*0xffff + 0.5),
		A: uint16(math32.Clamp(c.A, 0, 1)*0xffff + 0.5),
	}
}

// ConvertTosRGB converts the Color's RGB components from linear space to sRGB.
func (c *Color) ConvertTosRGB() {
	c.R = linearTosRGB(c.R)
	c.G = linearTosRGB(c.G)
	c.B = linearTosRGB(c.B)
}

// ConvertToLinear converts the Color's RGB components from sRGB to linear space.
func (c *Color) ConvertToLinear() {
	c.R = sRGBToLinear(c.R)
	c.G = sRGBToLinear(c.G)
	c.B = sRGBToLinear(c.B)
}

func linearTosRGB(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math32.Pow(v, 1/2.4) - 0.055
}

func sRGBToLinear(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// ColorFromName returns the Color matching the SVG 1.1 keyword given (i.e. "tomato", "SteelBlue"); the lookup is
// case-insensitive, and "transparent" is also accepted. The boolean is false if no such color exists.
func ColorFromName(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "transparent" {
		return Transparent(), true
	}
	rgba, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return ColorFromStd(rgba), true
}

// ParseColor parses a Color from a hex string ("#rrggbb" or "#rgb") or an SVG color keyword.
func ParseColor(text string) (Color, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "#") {
		return ColorFromHex(text)
	}
	if c, ok := ColorFromName(text); ok {
		return c, nil
	}
	return Color{}, errors.Errorf("unknown color %q", text)
}
