package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// file mirrors the configuration file layout for schema generation.
type file struct {
	Log        fileLog        `json:"log,omitempty"`
	Validation fileValidation `json:"validation,omitempty"`
}

type fileLog struct {
	Level  string `json:"level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `json:"format,omitempty" jsonschema:"enum=console,enum=json,default=console"`
}

type fileValidation struct {
	Mode     string `json:"mode,omitempty" jsonschema:"enum=manual,enum=rules,enum=tags,default=rules"`
	Lifetime string `json:"lifetime,omitempty" jsonschema:"enum=singleton,enum=prototype,default=singleton"`
}

// Schema returns the JSON Schema of the configuration file.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&file{})
	schema.Title = "beans configuration"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return data, nil
}
