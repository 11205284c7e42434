package overlaycolor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

// GLTFExtrasKey is the key under a glTF material's extras that holds its ChannelSet.
const GLTFExtrasKey = "overlayColorChannels__"

type GLTFLoadOptions struct {
	// ConvertBaseColorTosRGB converts the base color factor of materials without ChannelSet extras from linear to sRGB
	// before using it as the primary color, matching how tints are authored.
	ConvertBaseColorTosRGB bool
	// SkipUntinted skips materials that don't have ChannelSet extras, rather than building a one-channel set from their base color.
	SkipUntinted bool
}

// DefaultGLTFLoadOptions creates an instance of GLTFLoadOptions with some sensible defaults.
func DefaultGLTFLoadOptions() *GLTFLoadOptions {
	return &GLTFLoadOptions{
		ConvertBaseColorTosRGB: true,
	}
}

// LoadGLTFFile loads the ChannelSets of every material in a .gltf or .glb file from the filepath given, keyed by
// material name. Passing nil for loadOptions will load the file using default load options.
func LoadGLTFFile(path string, loadOptions *GLTFLoadOptions) (map[string]*ChannelSet, error) {

	fileData, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	return LoadGLTFData(fileData, loadOptions)

}

// LoadGLTFData loads the ChannelSets of every material in a .gltf or .glb file from the byte data given, keyed by
// material name. Unnamed materials are keyed by their index ("#2"), and a repeated name is keyed as "name#index"
// with a warning. Materials with malformed ChannelSet extras are skipped with a warning.
func LoadGLTFData(data []byte, loadOptions *GLTFLoadOptions) (map[string]*ChannelSet, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode glTF data")
	}

	if loadOptions == nil {
		loadOptions = DefaultGLTFLoadOptions()
	}

	sets := map[string]*ChannelSet{}

	for index, mat := range doc.Materials {

		if loadOptions.SkipUntinted && !HasGLTFChannelSet(mat) {
			continue
		}

		set, err := readGLTFMaterial(mat, loadOptions)
		if err != nil {
			log.Println("Warning: material " + mat.Name + " has malformed overlay colors and was skipped: " + err.Error())
			continue
		}

		key := materialKey(mat, index)
		if _, exists := sets[key]; exists {
			log.Printf("Warning: material name %s is used more than once; the material at index %d is keyed as %s#%d.\n", key, index, key, index)
			key = fmt.Sprintf("%s#%d", key, index)
		}

		sets[key] = set

	}

	return sets, nil

}

// HasGLTFChannelSet returns if the glTF material given holds ChannelSet extras.
func HasGLTFChannelSet(mat *gltf.Material) bool {
	if dataMap, isMap := mat.Extras.(map[string]interface{}); isMap {
		_, exists := dataMap[GLTFExtrasKey]
		return exists
	}
	return false
}

// ReadGLTFMaterial reads the ChannelSet stored in a glTF material's extras. If the material has none, a one-channel
// set is built from the material's base color factor instead (white if there is none). Default load options apply.
func ReadGLTFMaterial(mat *gltf.Material) (*ChannelSet, error) {
	return readGLTFMaterial(mat, DefaultGLTFLoadOptions())
}

func readGLTFMaterial(mat *gltf.Material, loadOptions *GLTFLoadOptions) (*ChannelSet, error) {

	if dataMap, isMap := mat.Extras.(map[string]interface{}); isMap {

		if value, exists := dataMap[GLTFExtrasKey]; exists {

			// Extras are either decoded JSON or whatever was assigned in code, so normalize through JSON.
			data, err := json.Marshal(value)
			if err != nil {
				return nil, errors.Wrapf(err, "material %s", mat.Name)
			}

			set := NewChannelSet()
			if err := json.Unmarshal(data, set); err != nil {
				return nil, errors.Wrapf(err, "material %s", mat.Name)
			}

			if !set.HasName() {
				set.Name = mat.Name
			}

			return set, nil

		}

	}

	set := NewChannelSetWithChannels(1)
	set.Name = mat.Name

	if mat.PBRMetallicRoughness != nil && mat.PBRMetallicRoughness.BaseColorFactor != nil {
		color := mat.PBRMetallicRoughness.BaseColorFactor
		primary := NewColor(color[0], color[1], color[2], color[3])
		if loadOptions.ConvertBaseColorTosRGB {
			primary.ConvertTosRGB()
		}
		set.SetPrimaryColor(primary)
	}

	return set, nil

}

// WriteGLTFMaterial stores the ChannelSet in the glTF material's extras, keeping any other extras the material has.
// The set's primary color, if it has one, also becomes the material's base color factor (as-is; no color space
// conversion is done).
func WriteGLTFMaterial(mat *gltf.Material, set *ChannelSet) error {

	var dataMap map[string]interface{}

	switch extras := mat.Extras.(type) {
	case nil:
		dataMap = map[string]interface{}{}
	case map[string]interface{}:
		dataMap = extras
	default:
		return errors.Errorf("material %s has extras that aren't an object", mat.Name)
	}

	data, err := json.Marshal(set)
	if err != nil {
		return errors.Wrapf(err, "material %s", mat.Name)
	}

	dataMap[GLTFExtrasKey] = json.RawMessage(data)
	mat.Extras = dataMap

	if set.ChannelCount() > 0 {
		if mat.PBRMetallicRoughness == nil {
			mat.PBRMetallicRoughness = &gltf.PBRMetallicRoughness{}
		}
		primary := set.PrimaryColor()
		mat.PBRMetallicRoughness.BaseColorFactor = &[4]float32{primary.R, primary.G, primary.B, primary.A}
	}

	return nil

}

// materialKey is the key a material's ChannelSet is stored under when loading: its name, or "#index" if it is unnamed.
func materialKey(mat *gltf.Material, index int) string {
	if mat.Name == "" {
		return fmt.Sprintf("#%d", index)
	}
	return mat.Name
}
