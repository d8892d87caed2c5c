package cities

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tsp2opt/tsp"
)

// Instance is the structured (YAML/JSON) file layout:
//
//	name: square
//	points:
//	  - {x: 0, y: 0}
//	  - {x: 0, y: 1}
type Instance struct {
	Name   string      `json:"name,omitempty" yaml:"name,omitempty"`
	Points []tsp.Point `json:"points" yaml:"points"`
}

// LoadFile reads points from path, choosing the decoder by extension:
// .yaml/.yml and .json are structured instances, anything else is text.
func LoadFile(path string) ([]tsp.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var inst Instance
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &inst); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".json":
		if err = json.Unmarshal(data, &inst); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		pts, err := ReadPoints(strings.NewReader(string(data)))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return pts, nil
	}

	if len(inst.Points) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoCities)
	}
	for i, p := range inst.Points {
		if !finite(p.X) || !finite(p.Y) {
			return nil, fmt.Errorf("%s: point %d: %w", path, i, ErrNotNumber)
		}
	}

	return inst.Points, nil
}
