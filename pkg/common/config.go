package common

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ProjectConfig is the per-workspace nearkit.yaml configuration.
type ProjectConfig struct {
	Project ProjectBlock `json:"project" yaml:"project"`
	Deploy  DeployBlock  `json:"deploy" yaml:"deploy"`
	Test    TestBlock    `json:"test,omitempty" yaml:"test,omitempty"`
}

type ProjectBlock struct {
	Name             string `json:"name" yaml:"name"`
	ProjectUUID      string `json:"project_uuid,omitempty" yaml:"project_uuid,omitempty"`
	TelemetryEnabled bool   `json:"telemetry_enabled" yaml:"telemetry_enabled"`
}

type DeployBlock struct {
	// Account receives fixed-account deploys; an upgrade of existing code
	Account string `json:"account" yaml:"account"`
	// Network scopes account namespaces and RPC endpoints for the whole sequence
	Network string `json:"network" yaml:"network"`
}

type TestBlock struct {
	Filter string `json:"filter,omitempty" yaml:"filter,omitempty"`
}

// LoadProjectConfig reads nearkit.yaml from the workspace root, filling
// defaults for anything unset. A missing file yields pure defaults.
func LoadProjectConfig() (*ProjectConfig, error) {
	return LoadProjectConfigFromPath(ProjectConfigFile)
}

func LoadProjectConfigFromPath(path string) (*ProjectConfig, error) {
	cfg := &ProjectConfig{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if cfg.Deploy.Account == "" {
		cfg.Deploy.Account = DefaultAccountID
	}
	if cfg.Deploy.Network == "" {
		cfg.Deploy.Network = DefaultNetwork
	}
	if cfg.Project.Name == "" {
		// fall back to the crate name from Cargo.toml
		name, err := CrateName(CargoManifest)
		if err == nil {
			cfg.Project.Name = name
		}
	}

	return cfg, nil
}

// SaveProjectConfig writes the config back to the given path.
func SaveProjectConfig(path string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// SetProjectUUID persists a project UUID into nearkit.yaml, preserving any
// comments and unrelated keys in the file.
func SetProjectUUID(path string, id string) error {
	node, err := LoadYAML(path)
	if err != nil {
		return err
	}
	rootNode := node.Content[0]

	projectSection := GetChildByKey(rootNode, "project")
	if projectSection == nil {
		projectSection = &yaml.Node{Kind: yaml.MappingNode}
		rootNode.Content = append(rootNode.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "project"},
			projectSection,
		)
	}

	SetMappingValue(projectSection,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "project_uuid"},
		&yaml.Node{Kind: yaml.ScalarNode, Value: id, Tag: "!!str"})

	return WriteYAML(path, node)
}

// getProjectUUIDFromLocation reads the persisted project UUID, minting a
// fresh one when the config file is absent or carries none.
func getProjectUUIDFromLocation(location string) string {
	cfg, err := LoadProjectConfigFromPath(location)
	if err != nil || cfg.Project.ProjectUUID == "" {
		return uuid.New().String()
	}
	return cfg.Project.ProjectUUID
}
