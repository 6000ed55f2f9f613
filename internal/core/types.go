package core

import "sort"

// SceneLoader populates a freshly cleared grid with an initial pattern. The
// options map carries flag-style key/value pairs such as "seed".
type SceneLoader func(g *Grid, opts map[string]string)

var scenes = map[string]SceneLoader{}

// RegisterScene adds a scene loader under the provided name.
func RegisterScene(name string, l SceneLoader) {
	if name == "" || l == nil {
		return
	}
	scenes[name] = l
}

// Scene returns the loader registered under name.
func Scene(name string) (SceneLoader, bool) {
	l, ok := scenes[name]
	return l, ok
}

// SceneNames lists registered scenes in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
