// ebitenmask applies overlaycolor.ChannelSet tints when drawing overlay textures with Ebitengine.
package ebitenmask

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/solarlune/overlaycolor"
)

// ColorM returns a color matrix that multiplies by the channel's multiplicative color, and then adds its additive
// color. It panics if the channel is out of range of the set.
func ColorM(set *overlaycolor.ChannelSet, channel int) colorm.ColorM {
	var cm colorm.ColorM
	mult, add := set.Multiplicative[channel], set.Additive[channel]
	cm.Scale(mult.RGBA64())
	cm.Translate(add.RGBA64())
	return cm
}

// DrawTinted draws the src overlay texture onto dst, tinted by the given channel of the set. options may be nil.
func DrawTinted(dst, src *ebiten.Image, set *overlaycolor.ChannelSet, channel int, options *colorm.DrawImageOptions) {
	if options == nil {
		options = &colorm.DrawImageOptions{}
	}
	colorm.DrawImage(dst, src, ColorM(set, channel), options)
}
