package common

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a YAML file from the given path and unmarshals it into a *yaml.Node
func LoadYAML(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("unmarshal to node: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, fmt.Errorf("empty yaml document: %s", path)
	}
	return &node, nil
}

// WriteYAML encodes a *yaml.Node to YAML and writes it to the specified file path
func WriteYAML(path string, node *yaml.Node) error {
	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	enc.Close()
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// GetChildByKey returns the value node associated with the given key from a MappingNode
func GetChildByKey(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(node.Content); i += 2 {
		k := node.Content[i]
		if k.Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// SetMappingValue sets key to val on a MappingNode, replacing an existing
// entry or appending a new pair.
func SetMappingValue(mapNode, keyNode, valNode *yaml.Node) {
	for i := 0; i < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == keyNode.Value {
			mapNode.Content[i+1] = valNode
			return
		}
	}
	mapNode.Content = append(mapNode.Content, keyNode, valNode)
}
