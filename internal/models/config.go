package models

import "encoding/json"

// ConfigModel is a named configuration record persisted as a flat object
type ConfigModel struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToMap returns the flat key/value form of the model
func (c ConfigModel) ToMap() map[string]string {
	return map[string]string{
		"name":        c.Name,
		"description": c.Description,
	}
}

// ConfigModelFromMap builds a model, defaulting absent keys to empty strings
func ConfigModelFromMap(data map[string]string) ConfigModel {
	return ConfigModel{
		Name:        data["name"],
		Description: data["description"],
	}
}

// UnmarshalJSON accepts any flat object; non-string values are rejected by
// the decoder and absent keys stay empty.
func (c *ConfigModel) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = ConfigModel{}
	if raw.Name != nil {
		c.Name = *raw.Name
	}
	if raw.Description != nil {
		c.Description = *raw.Description
	}
	return nil
}
