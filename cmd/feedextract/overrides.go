package main

import (
	"os"

	"github.com/KikaPereira03/feedextract"
	gq "github.com/KikaPereira03/feedextract/goquery"
	"gopkg.in/yaml.v3"
)

// LoadOverrides reads a data-quality override table from a YAML file:
//
//	overrides:
//	  - match: "distinctive content phrase"
//	    name: "Author Name"
//	    pic: "https://..."
func LoadOverrides(path string) ([]gq.Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file struct {
		Overrides []gq.Override `yaml:"overrides"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, feedextract.Errorf(feedextract.EINVALID, "malformed overrides file %s: %v", path, err)
	}
	return file.Overrides, nil
}
