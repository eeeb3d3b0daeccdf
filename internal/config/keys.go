package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// KeyBindingValue supports "a" or ["up", "k"] in YAML
type KeyBindingValue []string

// UnmarshalYAML implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var arr []string
		if err := value.Decode(&arr); err != nil {
			return err
		}
		*kv = arr
		return nil
	}

	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalYAML implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalYAML() (any, error) {
	if len(kv) == 1 {
		return kv[0], nil
	}
	return []string(kv), nil
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "checkout", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)

	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}
