// Command overlaycolor inspects overlay color channel sets stored in glTF files and YAML recipes.
//
//	overlaycolor dump [-hex] [-tinted] <file.gltf|file.glb>
//	overlaycolor check <recipe.yaml>
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/solarlune/overlaycolor"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {

	if len(args) == 0 {
		return errors.New("usage: overlaycolor <dump|check> [flags] <file>")
	}

	switch args[0] {
	case "dump":
		return dump(args[1:], out)
	case "check":
		return check(args[1:], out)
	}

	return errors.Errorf("unknown command %q", args[0])

}

func dump(args []string, out io.Writer) error {

	flags := flag.NewFlagSet("dump", flag.ContinueOnError)
	hex := flags.Bool("hex", false, "write opaque colors as hex strings")
	tinted := flags.Bool("tinted", false, "only dump materials that hold channel sets")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return errors.New("usage: overlaycolor dump [-hex] [-tinted] <file.gltf|file.glb>")
	}

	loadOptions := overlaycolor.DefaultGLTFLoadOptions()
	loadOptions.SkipUntinted = *tinted

	setsByMaterial, err := overlaycolor.LoadGLTFFile(flags.Arg(0), loadOptions)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(setsByMaterial))
	for name := range setsByMaterial {
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([]*overlaycolor.ChannelSet, 0, len(names))
	for _, name := range names {
		sets = append(sets, setsByMaterial[name])
	}

	recipeOptions := overlaycolor.DefaultRecipeOptions()
	recipeOptions.HexColors = *hex

	data, err := overlaycolor.MarshalRecipe(sets, recipeOptions)
	if err != nil {
		return err
	}

	_, err = out.Write(data)
	return err

}

func check(args []string, out io.Writer) error {

	if len(args) != 1 {
		return errors.New("usage: overlaycolor check <recipe.yaml>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", args[0])
	}

	sets, err := overlaycolor.UnmarshalRecipe(data)
	if err != nil {
		return errors.Wrap(err, args[0])
	}

	for i, set := range sets {
		name := set.Name
		if !set.HasName() {
			name = fmt.Sprintf("#%d", i)
		}
		if !set.Initialized() {
			fmt.Fprintf(out, "%s: uninitialized\n", name)
			continue
		}
		fmt.Fprintf(out, "%s: %d channels\n", name, set.ChannelCount())
	}

	return nil

}
