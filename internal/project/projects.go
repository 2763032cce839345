package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/CubeClad/internal/model"
)

// ProjectExt is the file extension for saved projects.
const ProjectExt = ".cubeclad"

// DefaultProjectsDir returns the directory new projects are saved in.
func DefaultProjectsDir() string {
	return filepath.Join(DefaultConfigDir(), "projects")
}

// ProjectFileName returns a file name for the project derived from its name.
func ProjectFileName(p model.Project) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, p.Name)
	if name == "" {
		name = p.ID
	}
	return name + ProjectExt
}

// SaveProject writes a project to a JSON file. Projects whose grid is
// malformed are refused.
func SaveProject(path string, p model.Project) error {
	if err := p.Grid.Validate(); err != nil {
		return fmt.Errorf("failed to save project %q: %w", p.Name, err)
	}
	return writeJSON(path, p)
}

// LoadProject reads a project from a JSON file and validates its grid.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Project{}, fmt.Errorf("project file not found: %s", path)
		}
		return model.Project{}, fmt.Errorf("failed to read project: %w", err)
	}

	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project: %w", err)
	}
	if err := p.Grid.Validate(); err != nil {
		return model.Project{}, fmt.Errorf("invalid project %s: %w", filepath.Base(path), err)
	}
	return p, nil
}

// ListProjects returns the project files in dir, sorted by name.
// A missing directory yields an empty list.
func ListProjects(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+ProjectExt))
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []string{}
	}
	return matches, nil
}
