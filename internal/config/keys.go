package config

import "strings"

// keyAliases folds the key names reported by different front ends onto
// one spelling. SDL reports "PageUp" and "Escape"; bubbletea reports
// "pgup" and "esc".
var keyAliases = map[string]string{
	"pgup":   "pageup",
	"pgdown": "pagedown",
	"esc":    "escape",
	"return": "enter",
}

// NormalizeKey returns the canonical form of a key name. Two binding keys
// name the same key exactly when their normalized forms are equal.
func NormalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	k := strings.ToLower(strings.TrimSpace(key))
	if alias, ok := keyAliases[k]; ok {
		return alias
	}
	return k
}

// mergeBindings returns defaults overridden by file. A file key replaces
// every default that names the same key in any spelling.
func mergeBindings(defaults, file map[string]string) map[string]string {
	overridden := make(map[string]bool, len(file))
	for k := range file {
		overridden[NormalizeKey(k)] = true
	}

	merged := make(map[string]string, len(defaults)+len(file))
	for k, v := range defaults {
		if !overridden[NormalizeKey(k)] {
			merged[k] = v
		}
	}
	for k, v := range file {
		merged[k] = v
	}
	return merged
}
