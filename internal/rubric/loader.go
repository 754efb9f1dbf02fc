package rubric

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File format for custom rubric catalogs:
//
//	axes:
//	  - id: strategy
//	    display_key: axis.strategy
//	    areas:
//	      - id: vision-alignment
//	        name: Vision & Alignment
//	        levels:
//	          - rank: 1
//	            title: Ad hoc
//	            rubric: No articulated digital vision.
//
// Areas are nested under their axis, so the file cannot express an area
// belonging to two axes. Ordering in the file is catalog order.

type catalogFile struct {
	Axes []axisNode `yaml:"axes"`
}

type axisNode struct {
	ID         string     `yaml:"id"`
	DisplayKey string     `yaml:"display_key"`
	Areas      []areaNode `yaml:"areas"`
}

type areaNode struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Levels []levelNode `yaml:"levels"`
}

type levelNode struct {
	Rank   int    `yaml:"rank"`
	Title  string `yaml:"title"`
	Rubric string `yaml:"rubric"`
}

// LoadFile reads a custom rubric catalog from a YAML file and validates it.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rubric file: %w", err)
	}
	return Load(data)
}

// Load parses and validates a YAML rubric definition.
func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rubric YAML: %w", err)
	}
	if len(file.Axes) == 0 {
		return nil, fmt.Errorf("rubric file defines no axes")
	}

	var axes []Axis
	var areas []Area
	for _, ax := range file.Axes {
		displayKey := ax.DisplayKey
		if displayKey == "" {
			displayKey = "axis." + ax.ID
		}
		axis := Axis{ID: ax.ID, DisplayKey: displayKey}
		for _, an := range ax.Areas {
			axis.AreaIDs = append(axis.AreaIDs, an.ID)
			area := Area{ID: an.ID, AxisID: ax.ID, Name: an.Name}
			for _, ln := range an.Levels {
				area.Levels = append(area.Levels, Level{
					Rank:   ln.Rank,
					Title:  ln.Title,
					Rubric: ln.Rubric,
				})
			}
			areas = append(areas, area)
		}
		axes = append(axes, axis)
	}

	return NewCatalog(axes, areas)
}
