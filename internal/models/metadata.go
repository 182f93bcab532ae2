package models

import (
	"fmt"
	"strings"
)

// MetadataFile is the file that marks a directory as a mod root
const MetadataFile = "info.json"

// ThumbnailFile is the image the game shows for a mod in its browser
const ThumbnailFile = "thumbnail.png"

// Info represents the info.json structure of a mod
type Info struct {
	Name            string   `json:"name"`
	Version         string   `json:"version"`
	Title           string   `json:"title,omitempty"`
	Author          string   `json:"author,omitempty"`
	FactorioVersion string   `json:"factorio_version,omitempty"`
	Dependencies    []string `json:"dependencies,omitempty"`
}

// BaseName returns the archive folder and file stem
// Format: name_version
func (i *Info) BaseName() string {
	return fmt.Sprintf("%s_%s", i.Name, i.Version)
}

// Validate checks that name and version are present and usable as a
// single path component
func (i *Info) Validate() error {
	if err := validateComponent("name", i.Name); err != nil {
		return err
	}
	return validateComponent("version", i.Version)
}

func validateComponent(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required field %q", field)
	}
	if value == "." || value == ".." || strings.ContainsAny(value, `/\`) {
		return fmt.Errorf("field %q is not a valid path component: %q", field, value)
	}
	return nil
}
