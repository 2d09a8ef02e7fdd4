package common

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Lib struct {
		CrateType []string `toml:"crate-type"`
	} `toml:"lib"`
}

// CrateName reads the package name from a Cargo.toml manifest. Cargo
// replaces dashes with underscores in produced artifact names, so the
// returned name is the artifact stem as well.
func CrateName(manifestPath string) (string, error) {
	var m cargoManifest
	if _, err := toml.DecodeFile(manifestPath, &m); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", manifestPath, err)
	}
	if m.Package.Name == "" {
		return "", fmt.Errorf("no package name in %s", manifestPath)
	}
	return strings.ReplaceAll(m.Package.Name, "-", "_"), nil
}
