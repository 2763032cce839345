package model

import (
	"time"

	"github.com/google/uuid"
)

// LayoutTemplate is a reusable, user-saved grid layout. Unlike a Preset it
// carries an ID and timestamps and lives in the template store.
type LayoutTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	Grid        Grid   `json:"grid"`
}

// NewLayoutTemplate captures a copy of the grid under a new template ID.
func NewLayoutTemplate(name, description string, g Grid) LayoutTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return LayoutTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Grid:        g.Clone(),
	}
}

// ToProject creates a new project from this template. The project gets its
// own ID and an independent copy of the grid.
func (t LayoutTemplate) ToProject(projectName string) Project {
	p := NewProject(projectName, t.Grid.Size())
	p.Grid = t.Grid.Clone()
	return p
}

// AsPreset exposes the template through the preset type so it can be
// applied with Grid.ApplyPreset and compared alongside the built-ins.
func (t LayoutTemplate) AsPreset() Preset {
	return Preset{
		Name:        t.Name,
		Label:       t.Name,
		Description: t.Description,
		Grid:        t.Grid.Clone(),
	}
}

// TemplateStore holds a collection of layout templates.
type TemplateStore struct {
	Templates []LayoutTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []LayoutTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t LayoutTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *LayoutTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *LayoutTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}
