package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Game       string                `yaml:"game"`
	Characters map[string][]moveSpec `yaml:"characters"`
}

type moveSpec struct {
	Name      string   `yaml:"name"`
	Prob      float64  `yaml:"prob"`
	Recipe    string   `yaml:"recipe,omitempty"`
	SuperArts []string `yaml:"super_arts,omitempty"`
}

// LoadFile reads a catalog from a YAML file with the same shape as the
// built-in tables, for games or characters the built-ins don't cover:
//
//	game: sfiii
//	characters:
//	  Ken:
//	    - name: hadouken
//	      prob: 0.225
//	      recipe: comb_qc_p
//	    - name: super_art
//	      prob: 0.1
//	      super_arts: [comb_2qc_mp, comb_2qc_mk, comb_2qc_mk]
func LoadFile(path string) (*Catalog, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(bs, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	if file.Game == "" {
		return nil, fmt.Errorf("catalog file %q has no game name", path)
	}

	characters := make(map[string][]Move, len(file.Characters))
	for name, specs := range file.Characters {
		moves := make([]Move, len(specs))
		for i, s := range specs {
			moves[i] = Move{
				Name:      s.Name,
				Prob:      s.Prob,
				Recipe:    s.Recipe,
				SuperArts: s.SuperArts,
			}
		}
		characters[name] = moves
	}
	return New(file.Game, characters)
}
