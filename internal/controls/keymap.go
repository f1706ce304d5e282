package controls

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Faultbox/cubik/internal/config"
)

// NormalizeKey returns the canonical lookup form of a key name. It folds
// keys the same way the config loader does when merging bindings.
func NormalizeKey(key string) string { return config.NormalizeKey(key) }

// Keymap resolves key names to actions.
type Keymap struct {
	actions map[string]Action
}

// NewKeymap parses every binding. All invalid bindings are reported
// together.
func NewKeymap(bindings map[string]string, steps Steps) (*Keymap, error) {
	km := &Keymap{actions: make(map[string]Action, len(bindings))}

	var errs []error
	for _, key := range sortedKeys(bindings) {
		a, err := ParseAction(bindings[key], steps)
		if err != nil {
			errs = append(errs, fmt.Errorf("binding %s: %w", key, err))
			continue
		}
		norm := NormalizeKey(key)
		if prev, dup := km.actions[norm]; dup {
			errs = append(errs, fmt.Errorf("binding %s: key already bound to %s", key, prev.Name))
			continue
		}
		km.actions[norm] = a
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return km, nil
}

// Lookup returns the action bound to key.
func (k *Keymap) Lookup(key string) (Action, bool) {
	a, ok := k.actions[NormalizeKey(key)]
	return a, ok
}

// Len returns the number of bound keys.
func (k *Keymap) Len() int { return len(k.actions) }

// Help lists "key action" pairs sorted by key, for on-screen help.
func (k *Keymap) Help() []string {
	keys := make([]string, 0, len(k.actions))
	for key := range k.actions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, key := range keys {
		lines[i] = key + " " + k.actions[key].Name
	}
	return lines
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
