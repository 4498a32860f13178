package scene

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // name accepted by -scene
	DisplayName string
	Description string
	Animated    bool // depends on Options.Frame

	build func(Options) (*Scene, error)
}

var builtinScenes = []SceneInfo{
	{ID: "cornell", Description: "Cornell box with a glass sphere and an aluminium block", build: NewCornellScene},
	{ID: "showcase", Description: "Outdoor spheres and meshes with motion blur and depth of field", build: NewShowcaseScene},
	{ID: "smoke", Description: "Cornell box with two blocks of smoke", build: NewSmokeScene},
	{ID: "fluor", Description: "Fluorescence switch animation, RGB then spectral frames", Animated: true, build: NewFluorescenceScene},
	{ID: "fluor-rgb", Description: "Fluorescence switch, RGB part", Animated: true, build: NewFluorescenceRGBScene},
	{ID: "fluor-spectral", Description: "Fluorescence switch, spectral part with a UV black light", Animated: true, build: NewFluorescenceSpectralScene},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	for i, info := range builtinScenes {
		info.DisplayName = titleCase(info.ID)
		scenes[i] = info
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the scene registered under id
func Create(id string, opts Options) (*Scene, error) {
	for _, info := range builtinScenes {
		if info.ID == id {
			s, err := info.build(opts)
			return s, errors.Wrapf(err, "building scene %s", id)
		}
	}
	return nil, errors.Errorf("unknown scene %q", id)
}

// titleCase turns an ID like "fluor-rgb" into "Fluor Rgb"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
