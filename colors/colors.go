package colors

// package colors contains shorthand constructors for frequently used overlaycolor.Color values (i.e. "White()", "Red()", etc).

import "github.com/solarlune/overlaycolor"

// Transparent returns fully transparent black, the tint a new channel's additive mask starts with.
func Transparent() overlaycolor.Color {
	return overlaycolor.NewColor(0, 0, 0, 0)
}

// White returns opaque white, the tint a new channel's multiplicative mask starts with.
func White() overlaycolor.Color {
	return overlaycolor.NewColor(1, 1, 1, 1)
}

// Black returns opaque black.
func Black() overlaycolor.Color {
	return overlaycolor.NewColor(0, 0, 0, 1)
}

// DarkGray returns an opaque, near-black gray; handy as a backdrop behind tinted swatches.
func DarkGray() overlaycolor.Color {
	return overlaycolor.NewColor(0.1, 0.1, 0.12, 1)
}

// Red returns opaque pure red.
func Red() overlaycolor.Color {
	return overlaycolor.NewColor(1, 0, 0, 1)
}

// Blue returns opaque pure blue.
func Blue() overlaycolor.Color {
	return overlaycolor.NewColor(0, 0, 1, 1)
}

// ByName returns the color matching the SVG 1.1 keyword given (i.e. "tomato", "SteelBlue"); see
// overlaycolor.ColorFromName.
func ByName(name string) (overlaycolor.Color, bool) {
	return overlaycolor.ColorFromName(name)
}
