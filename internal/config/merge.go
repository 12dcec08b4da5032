package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyOutput   = "output"
	keyLogging  = "logging"
	keyDefaults = "defaults"
	keyRequires = "requires"
)

// knownTopLevelKeys lists the YAML keys that correspond to Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyOutput:   true,
	keyLogging:  true,
	keyDefaults: true,
	keyRequires: true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Keys present in the overlay replace entire sections
// in the target, except "defaults", which is merged key by key. Keys absent
// in the overlay are left unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]interface{}
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}

		// Re-marshal the single section so it can be decoded onto the
		// strongly-typed target field.
		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling overlay section %q: %w", key, marshalErr)
		}

		if err = unmarshalSection(target, key, sectionBytes); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// unmarshalSection decodes data into a fresh zero value for the section named
// by key and assigns it to target, so the overlay replaces the whole section.
// The defaults section is decoded onto its current value instead.
func unmarshalSection(target *Config, key string, data []byte) error {
	switch key {
	case keyOutput:
		var v OutputConfig
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Output = v
		return nil
	case keyLogging:
		var v LoggingConfig
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Logging = v
		return nil
	case keyDefaults:
		// Each default stands alone, so keys missing from the overlay keep
		// their current values instead of becoming empty.
		v := target.Defaults
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Defaults = v
		return nil
	case keyRequires:
		var v string
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Requires = v
		return nil
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}
