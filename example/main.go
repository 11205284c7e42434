package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/solarlune/overlaycolor"
	"github.com/solarlune/overlaycolor/colors"
	"github.com/solarlune/overlaycolor/ebitenmask"
	"github.com/tanema/gween/ease"
)

const defaultRecipe = `
colors:
  - name: skin
    channels:
      - mult: [0.95, 0.76, 0.62, 1]
      - mult: [0.8, 0.4, 0.35, 1]
        add: [0.05, 0, 0, 0]
  - name: bruised
    channels:
      - mult: [0.6, 0.45, 0.6, 1]
      - mult: darkslateblue
        add: [0.1, 0, 0.1, 0]
  - name: frozen
    channels:
      - mult: lightsteelblue
      - mult: "#88ccff"
        add: [0, 0.05, 0.15, 0]
`

const swatchSize = 48

type Game struct {
	Width, Height int
	Sets          []*overlaycolor.ChannelSet
	Active        int
	Transition    *overlaycolor.Transition
	Swatch        *ebiten.Image
}

func NewGame(sets []*overlaycolor.ChannelSet) *Game {

	game := &Game{
		Width:  320,
		Height: 180,
		Sets:   sets,
		Swatch: ebiten.NewImage(swatchSize, swatchSize),
	}

	game.Swatch.Fill(colors.White().ToNRGBA64())

	return game
}

func (g *Game) Update() error {

	var err error

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		err = errors.New("quit")
	}

	// Space fades to the next color set in the recipe.
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && len(g.Sets) > 1 {
		next := (g.Active + 1) % len(g.Sets)
		from := g.Sets[g.Active]
		if g.Transition != nil {
			from = g.Transition.Current()
		}
		g.Transition = overlaycolor.NewTransition(from, g.Sets[next], 0.75, ease.InOutQuad)
		g.Active = next
	}

	if g.Transition != nil {
		if _, finished := g.Transition.Update(1.0 / float32(ebiten.TPS())); finished {
			g.Transition = nil
		}
	}

	return err

}

func (g *Game) Draw(screen *ebiten.Image) {

	screen.Fill(colors.DarkGray().ToNRGBA64())

	set := g.Sets[g.Active]
	if g.Transition != nil {
		set = g.Transition.Current()
	}

	for channel := 0; channel < set.ChannelCount(); channel++ {
		opt := &colorm.DrawImageOptions{}
		opt.GeoM.Translate(float64(16+channel*(swatchSize+8)), 32)
		ebitenmask.DrawTinted(screen, g.Swatch, set, channel, opt)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s (%d channels)\nSpace: next color set", set.Name, set.ChannelCount()))

}

func (g *Game) Layout(w, h int) (int, int) {
	return g.Width, g.Height
}

func main() {

	recipePath := flag.String("recipe", "", "path to a YAML color recipe to preview")
	flag.Parse()

	data := []byte(defaultRecipe)
	if *recipePath != "" {
		fileData, err := os.ReadFile(*recipePath)
		if err != nil {
			log.Fatal(err)
		}
		data = fileData
	}

	sets, err := overlaycolor.UnmarshalRecipe(data)
	if err != nil {
		log.Fatal(err)
	}
	if len(sets) == 0 {
		log.Fatal("recipe holds no color sets")
	}

	game := NewGame(sets)

	ebiten.SetWindowTitle("overlaycolor preview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && err.Error() != "quit" {
		log.Fatal(err)
	}

}
