package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Recipe describes a cursor file assembled from PNG images.
type Recipe struct {
	Output      string        `yaml:"output"`
	Format      string        `yaml:"format"`
	Title       string        `yaml:"title"`
	Artist      string        `yaml:"artist"`
	DefaultRate uint32        `yaml:"default_rate"`
	Sequence    []uint32      `yaml:"sequence"`
	Rates       []uint32      `yaml:"rates"`
	Frames      []RecipeFrame `yaml:"frames"`
}

// RecipeFrame is one image of a recipe. Duration is in jiffies and only
// applies to animated cursors.
type RecipeFrame struct {
	Image    string `yaml:"image"`
	HotspotX uint16 `yaml:"hotspot_x"`
	HotspotY uint16 `yaml:"hotspot_y"`
	Duration uint32 `yaml:"duration"`
}

// LoadRecipe reads a recipe from path. Relative image and output paths
// are resolved against the recipe's directory.
func LoadRecipe(recipePath string) (*Recipe, error) {
	if _, err := os.Stat(recipePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("recipe file does not exist: %s", recipePath)
	}

	if !filepath.IsAbs(recipePath) {
		absPath, err := filepath.Abs(recipePath)
		if err != nil {
			return nil, fmt.Errorf("invalid recipe path: %w", err)
		}
		recipePath = absPath
	}

	data, err := os.ReadFile(recipePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}

	var recipe Recipe
	if err := yaml.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf("failed to parse recipe file: %w", err)
	}

	base := filepath.Dir(recipePath)
	recipe.Output = resolve(base, recipe.Output)
	for i := range recipe.Frames {
		recipe.Frames[i].Image = resolve(base, recipe.Frames[i].Image)
	}

	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Validate checks the recipe and fills in the format from the output
// extension when it is not set.
func (r *Recipe) Validate() error {
	if r.Output == "" {
		return fmt.Errorf("recipe: output is required")
	}
	r.Format = strings.ToLower(r.Format)
	switch r.Format {
	case "":
		r.Format = formatForPath(r.Output)
	case formatCUR, formatANI:
	default:
		return fmt.Errorf("recipe: unknown format %q (want cur or ani)", r.Format)
	}
	if len(r.Frames) == 0 {
		return fmt.Errorf("recipe: at least one frame is required")
	}
	for i, fr := range r.Frames {
		if fr.Image == "" {
			return fmt.Errorf("recipe: frame %d has no image", i)
		}
	}
	if r.Format == formatCUR && (len(r.Sequence) > 0 || len(r.Rates) > 0) {
		return fmt.Errorf("recipe: sequence and rates only apply to ani output")
	}
	return nil
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
