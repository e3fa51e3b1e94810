package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FileConfig is the root structure of a catalog YAML file.
//
//	dashboards:
//	  - title: Dashboard Aset (SAP vs Easset)
//	    description: Semakan & reconciliation aset SAP vs Easset.
//	    tag: Asset
//	    url: https://dashboard-aset-sap-vs-easset.streamlit.app/
//	    image: aset.png
type FileConfig struct {
	Dashboards []DashboardProps `yaml:"dashboards"`
}

// DashboardProps holds one dashboard as written in the file.
type DashboardProps struct {
	Title       string      `yaml:"title"`
	Description Description `yaml:"description,omitempty"`
	Bullets     []string    `yaml:"bullets,omitempty"`
	Tag         string      `yaml:"tag"`
	URL         string      `yaml:"url"`
	Image       string      `yaml:"image,omitempty"`
}

// Description accepts either a single string or a list of strings.
// A list is kept as bullets.
type Description struct {
	Text  string
	Lines []string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Description) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&d.Text)
	case yaml.SequenceNode:
		return value.Decode(&d.Lines)
	default:
		return fmt.Errorf("line %d: description must be a string or a list of strings", value.Line)
	}
}
