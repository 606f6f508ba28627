package input

import (
	"encoding/json"
	"fmt"
)

// rawBinding accepts either a single key-name string or an array of
// key-name strings (§6 "input": { action: key-name | [key-names] }").
type rawBinding []string

func (r *rawBinding) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*r = rawBinding{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*r = rawBinding(list)
	return nil
}

func (r rawBinding) MarshalJSON() ([]byte, error) {
	if len(r) == 1 {
		return json.Marshal(r[0])
	}
	return json.Marshal([]string(r))
}

// LoadBindings parses the JSON "input" object into Bindings, starting
// from the builtin defaults and overriding/adding whatever actions data
// names. Unknown key names are skipped (the rest of the binding still
// loads); a malformed document leaves b entirely at its defaults (§7
// "JSON parse failure: the whole file is ignored, defaults remain").
func LoadBindings(data []byte) (*Bindings, error) {
	b := NewBindings()
	if len(data) == 0 {
		return b, nil
	}
	var raw map[string]rawBinding
	if err := json.Unmarshal(data, &raw); err != nil {
		return b, fmt.Errorf("input: parse bindings json: %w", err)
	}
	for action, names := range raw {
		keys := make([]Key, 0, len(names))
		for _, name := range names {
			if k, ok := KeyByName(name); ok {
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			b.Set(action, keys)
		}
	}
	return b, nil
}

// SaveBindings serializes b's current action set to the §6 JSON shape.
func SaveBindings(b *Bindings) ([]byte, error) {
	raw := make(map[string]rawBinding, len(b.actions))
	for action, keys := range b.actions {
		names := make(rawBinding, 0, len(keys))
		for _, k := range keys {
			if name := NameOfKey(k); name != "" {
				names = append(names, name)
			}
		}
		raw[action] = names
	}
	return json.MarshalIndent(raw, "", "  ")
}
