package window

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// rawDesc mirrors the YAML layout. Pointers distinguish omitted keys from
// zero values so omitted keys keep their defaults.
type rawDesc struct {
	Width      *uint32 `yaml:"width"`
	Height     *uint32 `yaml:"height"`
	Title      *string `yaml:"title"`
	Mode       *string `yaml:"mode"`
	Resizable  *bool   `yaml:"resizable"`
	CursorMode *string `yaml:"cursor_mode"`
	Backend    *string `yaml:"backend"`
}

// LoadDesc reads a YAML window description from path and overlays it onto
// DefaultWindowDesc.
func LoadDesc(path string) (WindowDesc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WindowDesc{}, fmt.Errorf("failed to read window config: %w", err)
	}
	desc, err := ParseDesc(data)
	if err != nil {
		return WindowDesc{}, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

func ParseDesc(data []byte) (WindowDesc, error) {
	desc := DefaultWindowDesc()

	var raw rawDesc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return WindowDesc{}, fmt.Errorf("failed to parse window config: %w", err)
	}

	if raw.Width != nil {
		desc.Width = *raw.Width
	}
	if raw.Height != nil {
		desc.Height = *raw.Height
	}
	if raw.Title != nil {
		desc.Title = *raw.Title
	}
	if raw.Resizable != nil {
		desc.FixedSize = !*raw.Resizable
	}
	if raw.Mode != nil {
		m, err := ParseWindowMode(*raw.Mode)
		if err != nil {
			return WindowDesc{}, fmt.Errorf("mode: %w", err)
		}
		desc.Mode = m
	}
	if raw.CursorMode != nil {
		m, err := ParseCursorMode(*raw.CursorMode)
		if err != nil {
			return WindowDesc{}, fmt.Errorf("cursor_mode: %w", err)
		}
		desc.CursorMode = m
	}
	if raw.Backend != nil {
		k, err := ParseBackendKind(*raw.Backend)
		if err != nil {
			return WindowDesc{}, fmt.Errorf("backend: %w", err)
		}
		desc.Backend = k
	}

	if err := desc.Validate(); err != nil {
		return WindowDesc{}, err
	}
	return desc, nil
}
