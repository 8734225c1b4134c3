package appsync

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FlatList is a list that accepts arbitrarily nested sequences when decoded
// from JSON or YAML and keeps the items in document order. A single item
// where a list is expected decodes as a list of one; null entries are skipped.
type FlatList[T any] []T

// UnmarshalJSON flattens nested JSON arrays.
func (l *FlatList[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := flattenJSON(data, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

// UnmarshalYAML flattens nested YAML sequences.
func (l *FlatList[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := flattenYAML(node, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

func flattenJSON[T any](data []byte, out *[]T) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '[' {
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return err
		}
		for _, elem := range elems {
			if err := flattenJSON(elem, out); err != nil {
				return err
			}
		}
		return nil
	}

	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return err
	}
	*out = append(*out, item)
	return nil
}

func flattenYAML[T any](node *yaml.Node, out *[]T) error {
	switch node.Kind {
	case yaml.AliasNode:
		if node.Alias == nil {
			return fmt.Errorf("line %d: dangling alias", node.Line)
		}
		return flattenYAML(node.Alias, out)
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			if err := flattenYAML(child, out); err != nil {
				return err
			}
		}
		return nil
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil
		}
	}

	var item T
	if err := node.Decode(&item); err != nil {
		return err
	}
	*out = append(*out, item)
	return nil
}

// StringList decodes from either a single string or a list of strings. An
// explicit empty list decodes to a non-nil empty StringList.
type StringList []string

// UnmarshalJSON accepts "a" as well as ["a", "b"].
func (s *StringList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*s = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		list := StringList{}
		if err := json.Unmarshal(trimmed, (*[]string)(&list)); err != nil {
			return err
		}
		*s = list
		return nil
	}
	var single string
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return err
	}
	*s = StringList{single}
	return nil
}

// UnmarshalYAML accepts a scalar as well as a sequence.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		if node.ShortTag() == "!!null" {
			*s = nil
			return nil
		}
		*s = StringList{node.Value}
		return nil
	}
	list := StringList{}
	if err := node.Decode((*[]string)(&list)); err != nil {
		return err
	}
	*s = list
	return nil
}
