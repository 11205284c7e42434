package overlaycolor

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// RecipeOptions alters how ChannelSets are written out to recipes.
type RecipeOptions struct {
	// HexColors writes colors with components in the 0-1 range as "#rrggbb" strings instead of [r, g, b, a]
	// lists, as long as their alpha is the implicit one (1 for multiplicative colors, 0 for additive ones).
	// This is lossy: components are stored with 8 bits of precision.
	HexColors bool
	// Indent is the number of spaces used to indent YAML output.
	Indent int
}

// DefaultRecipeOptions creates an instance of RecipeOptions with some sensible defaults.
func DefaultRecipeOptions() *RecipeOptions {
	return &RecipeOptions{
		Indent: 2,
	}
}

// recipeColor is a Color as it appears in a recipe: either a list of 3 or 4 floats, a hex string, or an SVG
// color keyword. Hex strings, keywords and 3-component lists don't spell out alpha; additive colors written that
// way get an alpha of 0, multiplicative ones an alpha of 1.
type recipeColor struct {
	color         Color
	hex           bool
	additive      bool
	implicitAlpha bool
}

func (rc recipeColor) writeHex() bool {
	c := rc.color
	alpha := float32(1)
	if rc.additive {
		alpha = 0
	}
	return rc.hex && c.A == alpha && c.R >= 0 && c.R <= 1 && c.G >= 0 && c.G <= 1 && c.B >= 0 && c.B <= 1
}

// formatComponent writes a component as a YAML float; non-finite values use YAML's spelling so they read back.
func formatComponent(v float32) string {
	switch {
	case math.IsInf(float64(v), 1):
		return ".inf"
	case math.IsInf(float64(v), -1):
		return "-.inf"
	case math.IsNaN(float64(v)):
		return ".nan"
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func (rc recipeColor) components() []float32 {
	return []float32{rc.color.R, rc.color.G, rc.color.B, rc.color.A}
}

func (rc recipeColor) MarshalYAML() (interface{}, error) {
	if rc.writeHex() {
		return rc.color.Hex(), nil
	}
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range rc.components() {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: formatComponent(v),
		})
	}
	return node, nil
}

func (rc *recipeColor) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return rc.parse(value.Value)
	case yaml.SequenceNode:
		var components []float32
		if err := value.Decode(&components); err != nil {
			return errors.Wrapf(err, "line %d: invalid color", value.Line)
		}
		return errors.Wrapf(rc.fromComponents(components), "line %d", value.Line)
	}
	return errors.Errorf("line %d: a color must be a list of components or a string", value.Line)
}

func (rc recipeColor) MarshalJSON() ([]byte, error) {
	if rc.writeHex() {
		return json.Marshal(rc.color.Hex())
	}
	return json.Marshal(rc.components())
}

func (rc *recipeColor) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return errors.Wrap(err, "invalid color")
		}
		return rc.parse(text)
	}
	var components []float32
	if err := json.Unmarshal(data, &components); err != nil {
		return errors.Wrap(err, "invalid color")
	}
	return rc.fromComponents(components)
}

func (rc *recipeColor) parse(text string) error {
	c, err := ParseColor(text)
	if err != nil {
		return err
	}
	rc.color = c
	rc.implicitAlpha = c.A == 1
	return nil
}

func (rc *recipeColor) fromComponents(components []float32) error {
	switch len(components) {
	case 3:
		rc.color = NewColor(components[0], components[1], components[2], 1)
		rc.implicitAlpha = true
	case 4:
		rc.color = NewColor(components[0], components[1], components[2], components[3])
	default:
		return errors.Errorf("a color needs 3 or 4 components, got %d", len(components))
	}
	return nil
}

type channelData struct {
	Mult *recipeColor `yaml:"mult,omitempty" json:"mult,omitempty"`
	Add  *recipeColor `yaml:"add,omitempty" json:"add,omitempty"`
}

// channelSetData is the serialized shape of a ChannelSet. A nil Channels means the set is uninitialized,
// while an empty list is a set with zero channels.
type channelSetData struct {
	Name     string         `yaml:"name,omitempty" json:"name,omitempty"`
	Channels *[]channelData `yaml:"channels,omitempty" json:"channels,omitempty"`
}

func (set *ChannelSet) recipeData(options *RecipeOptions) channelSetData {

	data := channelSetData{Name: set.Name}

	if !set.Initialized() {
		return data
	}

	count := max(len(set.Multiplicative), len(set.Additive))
	channels := make([]channelData, count)

	for i := range channels {
		mult, add := White(), Transparent()
		if i < len(set.Multiplicative) {
			mult = set.Multiplicative[i]
		}
		if i < len(set.Additive) {
			add = set.Additive[i]
		}
		channels[i].Mult = &recipeColor{color: mult, hex: options.HexColors}
		channels[i].Add = &recipeColor{color: add, hex: options.HexColors, additive: true}
	}

	data.Channels = &channels
	return data

}

func (data channelSetData) channelSet() *ChannelSet {

	set := &ChannelSet{Name: data.Name}

	if data.Channels == nil {
		return set
	}

	set.EnsureChannels(len(*data.Channels))
	for i, channel := range *data.Channels {
		if channel.Mult != nil {
			set.Multiplicative[i] = channel.Mult.color
		}
		if channel.Add != nil {
			set.Additive[i] = channel.Add.color
			if channel.Add.implicitAlpha {
				set.Additive[i].A = 0
			}
		}
	}

	return set

}

func (set *ChannelSet) MarshalYAML() (interface{}, error) {
	return set.recipeData(DefaultRecipeOptions()), nil
}

func (set *ChannelSet) UnmarshalYAML(value *yaml.Node) error {
	var data channelSetData
	if err := value.Decode(&data); err != nil {
		return err
	}
	*set = *data.channelSet()
	return nil
}

func (set *ChannelSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(set.recipeData(DefaultRecipeOptions()))
}

func (set *ChannelSet) UnmarshalJSON(data []byte) error {
	var setData channelSetData
	if err := json.Unmarshal(data, &setData); err != nil {
		return err
	}
	*set = *setData.channelSet()
	return nil
}

type recipeDocument struct {
	Colors []channelSetData `yaml:"colors"`
}

// MarshalRecipe writes the ChannelSets given out as a YAML recipe document. Passing nil for options uses the
// default recipe options.
func MarshalRecipe(sets []*ChannelSet, options *RecipeOptions) ([]byte, error) {

	if options == nil {
		options = DefaultRecipeOptions()
	}

	doc := recipeDocument{Colors: make([]channelSetData, 0, len(sets))}
	for i, set := range sets {
		if set == nil {
			return nil, errors.Errorf("color set #%d is nil", i)
		}
		doc.Colors = append(doc.Colors, set.recipeData(options))
	}

	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	if options.Indent > 0 {
		enc.SetIndent(options.Indent)
	}
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "failed to encode recipe")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to encode recipe")
	}
	return buf.Bytes(), nil

}

// UnmarshalRecipe parses a YAML recipe document, returning the ChannelSets it holds in order.
func UnmarshalRecipe(data []byte) ([]*ChannelSet, error) {

	var doc recipeDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode recipe")
	}

	sets := make([]*ChannelSet, 0, len(doc.Colors))
	for _, setData := range doc.Colors {
		sets = append(sets, setData.channelSet())
	}
	return sets, nil

}
