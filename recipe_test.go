package overlaycolor

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"
)

const testRecipe = `
colors:
  - name: skin
    channels:
      - mult: [1, 0.8, 0.7, 1]
        add: [0.1, 0, 0, 0]
      - mult: "#ff0000"
      - add: [0, 0, 0.5]
  - name: eyes
    channels:
      - mult: SteelBlue
  - name: unset
  - name: empty
    channels: []
`

func TestUnmarshalRecipe(t *testing.T) {

	sets, err := UnmarshalRecipe([]byte(testRecipe))
	if err != nil {
		t.Fatal(err)
	}

	if len(sets) != 4 {
		t.Fatalf("expected 4 color sets, got %d", len(sets))
	}

	skin := sets[0]
	if skin.Name != "skin" || skin.ChannelCount() != 3 {
		t.Fatalf("unexpected skin set:\n%s", spew.Sdump(skin))
	}
	if !skin.PrimaryColor().ApproxEqual(NewColor(1, 0.8, 0.7, 1)) || !skin.Additive[0].ApproxEqual(NewColor(0.1, 0, 0, 0)) {
		t.Fatalf("unexpected skin channel 0:\n%s", spew.Sdump(skin))
	}
	if !skin.Multiplicative[1].ApproxEqual(NewColor(1, 0, 0, 1)) || skin.Additive[1] != Transparent() {
		t.Fatalf("unexpected skin channel 1:\n%s", spew.Sdump(skin))
	}
	if skin.Multiplicative[2] != White() || !skin.Additive[2].ApproxEqual(NewColor(0, 0, 0.5, 0)) {
		t.Fatalf("unexpected skin channel 2:\n%s", spew.Sdump(skin))
	}

	steelBlue, _ := ColorFromName("steelblue")
	if !sets[1].PrimaryColor().ApproxEqual(steelBlue) {
		t.Fatalf("unexpected eye color:\n%s", spew.Sdump(sets[1]))
	}

	if sets[2].Initialized() {
		t.Fatal("a set without channels should decode as uninitialized")
	}
	if !sets[3].Initialized() || sets[3].ChannelCount() != 0 {
		t.Fatal("a set with an empty channel list should decode as initialized with zero channels")
	}

}

func TestRecipeRoundTrip(t *testing.T) {

	skin := NewChannelSetWithChannels(2)
	skin.Name = "skin"
	skin.Multiplicative[0] = NewColor(0.9, 0.75, 0.6, 1)
	skin.Additive[1] = NewColor(0.05, 0.1, 0, 0)

	sets := []*ChannelSet{skin, NewChannelSet(), NewChannelSetWithChannels(0)}

	data, err := MarshalRecipe(sets, nil)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := UnmarshalRecipe(data)
	if err != nil {
		t.Fatal(err)
	}

	if len(decoded) != len(sets) {
		t.Fatalf("expected %d sets, got %d:\n%s", len(sets), len(decoded), data)
	}
	for i := range sets {
		if !decoded[i].Equals(sets[i]) || decoded[i].Name != sets[i].Name {
			t.Fatalf("set #%d changed through the recipe:\n%s\n%s", i, data, spew.Sdump(decoded[i]))
		}
	}

}

func TestMarshalRecipeHex(t *testing.T) {

	set := NewChannelSetWithChannels(2)
	set.SetPrimaryColor(NewColor(1, 0, 0, 1))
	set.Additive[1] = NewColor(0, 0, 1, 1)

	options := DefaultRecipeOptions()
	options.HexColors = true

	data, err := MarshalRecipe([]*ChannelSet{set}, options)
	if err != nil {
		t.Fatal(err)
	}

	text := string(data)
	if !strings.Contains(text, "#ff0000") || !strings.Contains(text, "#000000") {
		t.Fatalf("expected hex colors in the recipe:\n%s", text)
	}
	// An opaque additive color doesn't have the implicit additive alpha, so it stays a list.
	if !strings.Contains(text, "[0, 0, 1, 1]") {
		t.Fatalf("expected the opaque additive color as a component list:\n%s", text)
	}

	decoded, err := UnmarshalRecipe(data)
	if err != nil {
		t.Fatal(err)
	}
	if !decoded[0].Equals(set) {
		t.Fatalf("set changed through a hex recipe:\n%s\n%s", text, spew.Sdump(decoded[0]))
	}

	if _, err := MarshalRecipe([]*ChannelSet{nil}, nil); err == nil {
		t.Fatal("expected an error when marshaling a nil set")
	}

}

func TestRecipeImplicitAdditiveAlpha(t *testing.T) {

	recipe := `
colors:
  - channels:
      - add: [0.1, 0.2, 0.3]
      - add: "#ff0000"
      - add: tomato
      - add: [0.1, 0.2, 0.3, 1]
      - mult: [0.5, 0.5, 0.5]
`

	sets, err := UnmarshalRecipe([]byte(recipe))
	if err != nil {
		t.Fatal(err)
	}

	set := sets[0]
	for i := 0; i < 3; i++ {
		if set.Additive[i].A != 0 {
			t.Fatalf("additive channel %d should default to an alpha of 0:\n%s", i, spew.Sdump(set))
		}
	}
	if set.Additive[3].A != 1 {
		t.Fatal("an explicit additive alpha should be kept")
	}
	if set.Multiplicative[4].A != 1 {
		t.Fatal("multiplicative colors should default to an alpha of 1")
	}

}

func TestRecipeNonFiniteComponents(t *testing.T) {

	set := NewChannelSetWithChannels(1)
	set.Additive[0].R = float32(math.Inf(1))
	set.Additive[0].G = float32(math.Inf(-1))
	set.Multiplicative[0].B = float32(math.NaN())

	data, err := MarshalRecipe([]*ChannelSet{set}, nil)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := UnmarshalRecipe(data)
	if err != nil {
		t.Fatalf("recipe with non-finite components doesn't read back: %v\n%s", err, data)
	}

	add := decoded[0].Additive[0]
	if !math.IsInf(float64(add.R), 1) || !math.IsInf(float64(add.G), -1) {
		t.Fatalf("infinite components changed:\n%s", spew.Sdump(decoded[0]))
	}
	if !math.IsNaN(float64(decoded[0].Multiplicative[0].B)) {
		t.Fatalf("NaN component changed:\n%s", spew.Sdump(decoded[0]))
	}

}

func TestUnmarshalRecipeErrors(t *testing.T) {

	bad := []string{
		"colors:\n  - channels:\n      - mult: [1, 2]\n",
		"colors:\n  - channels:\n      - mult: notacolor\n",
		"colors:\n  - channels:\n      - mult: {r: 1}\n",
		"colors: [",
	}

	for _, text := range bad {
		if _, err := UnmarshalRecipe([]byte(text)); err == nil {
			t.Errorf("expected an error decoding:\n%s", text)
		}
	}

}

func TestChannelSetYAMLAndJSON(t *testing.T) {

	set := NewChannelSetWithChannels(2)
	set.Name = "hair"
	set.Multiplicative[1] = NewColor(0.3, 0.2, 0.1, 1)

	yamlData, err := yaml.Marshal(set)
	if err != nil {
		t.Fatal(err)
	}
	fromYAML := NewChannelSet()
	if err := yaml.Unmarshal(yamlData, fromYAML); err != nil {
		t.Fatal(err)
	}
	if !fromYAML.Equals(set) || fromYAML.Name != "hair" {
		t.Fatalf("YAML round trip changed the set:\n%s", yamlData)
	}

	jsonData, err := json.Marshal(set)
	if err != nil {
		t.Fatal(err)
	}
	fromJSON := NewChannelSet()
	if err := json.Unmarshal(jsonData, fromJSON); err != nil {
		t.Fatal(err)
	}
	if !fromJSON.Equals(set) || fromJSON.Name != "hair" {
		t.Fatalf("JSON round trip changed the set:\n%s", jsonData)
	}

}
