package appsync

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Substitution is a single placeholder name and its replacement.
type Substitution struct {
	Name  string
	Value string
}

// Substitutions is an insertion-ordered placeholder map. Order matters:
// replacements run in this order and a later one may match text produced by
// an earlier one.
type Substitutions []Substitution

// Get returns the value for name.
func (s Substitutions) Get(name string) (string, bool) {
	for _, sub := range s {
		if sub.Name == name {
			return sub.Value, true
		}
	}
	return "", false
}

// Set replaces the value of an existing name in place or appends a new one.
func (s *Substitutions) Set(name, value string) {
	for i := range *s {
		if (*s)[i].Name == name {
			(*s)[i].Value = value
			return
		}
	}
	*s = append(*s, Substitution{Name: name, Value: value})
}

// Merge returns a new map with overlay applied on top of s. Keys keep the
// position they have in s; keys only in overlay are appended. Neither input is
// modified.
func (s Substitutions) Merge(overlay Substitutions) Substitutions {
	merged := make(Substitutions, len(s), len(s)+len(overlay))
	copy(merged, s)
	for _, sub := range overlay {
		merged.Set(sub.Name, sub.Value)
	}
	return merged
}

// UnmarshalYAML decodes a mapping node, keeping key order.
func (s *Substitutions) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*s = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: substitutions must be a mapping", node.Line)
	}

	subs := make(Substitutions, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind == yaml.AliasNode && value.Alias != nil {
			value = value.Alias
		}
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: substitution %q must be a scalar", value.Line, key.Value)
		}
		subs.Set(key.Value, value.Value)
	}
	*s = subs
	return nil
}

// UnmarshalJSON decodes an object, keeping key order. Numbers and booleans
// are kept in their literal form.
func (s *Substitutions) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("substitutions must be an object")
	}

	var subs Substitutions
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		raw = bytes.TrimSpace(raw)
		switch {
		case len(raw) > 0 && raw[0] == '"':
			var str string
			if err := json.Unmarshal(raw, &str); err != nil {
				return err
			}
			subs.Set(key, str)
		case len(raw) > 0 && (raw[0] == '{' || raw[0] == '['):
			return fmt.Errorf("substitution %q must be a scalar", key)
		default:
			subs.Set(key, string(raw))
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = subs
	return nil
}

// MarshalJSON encodes the map as an object in insertion order.
func (s Substitutions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sub := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(sub.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(sub.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// placeholderPattern matches $name, ${name} and the lopsided ${name / $name}
// forms.
func placeholderPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`\$\{?` + regexp.QuoteMeta(name) + `\}?`)
}

// Substitute replaces every placeholder of every substitution in text, in
// order. Matching is case-sensitive and values are inserted literally. Since
// matching is prefix-based, $NAME also matches the start of $NAMESPACE.
// Empty names are ignored.
func Substitute(text string, subs Substitutions) string {
	for _, sub := range subs {
		if sub.Name == "" {
			continue
		}
		text = placeholderPattern(sub.Name).ReplaceAllLiteralString(text, sub.Value)
	}
	return text
}
