package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/huxley-labs/nearkit-cli/pkg/common/iface"
)

// ErrNoArtifacts is returned when the build output directory is missing or
// holds no wasm modules, i.e. compilation did not run or produced nothing.
var ErrNoArtifacts = errors.New("no wasm artifacts in build output")

// Artifact is a compiled wasm module tracked from build output to the
// resource directory.
type Artifact struct {
	Name                    string
	SourceBuildPath         string
	ResourceDestinationPath string
}

// Collect copies every wasm artifact from buildDir into resDir,
// overwriting prior copies of the same name and pruning wasm files the
// current build did not produce. After success the resource directory
// holds exactly the artifacts of the most recent compilation.
func Collect(logger iface.Logger, buildDir, resDir string) ([]Artifact, error) {
	entries, err := os.ReadDir(buildDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s does not exist, run build first", ErrNoArtifacts, buildDir)
		}
		return nil, fmt.Errorf("failed to read build output %s: %w", buildDir, err)
	}

	var artifacts []Artifact
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".wasm") {
			continue
		}
		artifacts = append(artifacts, Artifact{
			Name:                    entry.Name(),
			SourceBuildPath:         filepath.Join(buildDir, entry.Name()),
			ResourceDestinationPath: filepath.Join(resDir, entry.Name()),
		})
	}
	if len(artifacts) == 0 {
		return nil, fmt.Errorf("%w: nothing to collect from %s", ErrNoArtifacts, buildDir)
	}

	if err := os.MkdirAll(resDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create resource dir %s: %w", resDir, err)
	}

	produced := make(map[string]bool, len(artifacts))
	for _, a := range artifacts {
		if err := CopyFile(a.SourceBuildPath, a.ResourceDestinationPath); err != nil {
			return nil, fmt.Errorf("failed to collect %s: %w", a.Name, err)
		}
		produced[a.Name] = true
		logger.Info("Collected %s -> %s", a.Name, a.ResourceDestinationPath)
	}

	// Prune stale wasm left over from crates no longer built
	resEntries, err := os.ReadDir(resDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource dir %s: %w", resDir, err)
	}
	for _, entry := range resEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".wasm") || produced[entry.Name()] {
			continue
		}
		if err := os.Remove(filepath.Join(resDir, entry.Name())); err != nil {
			return nil, fmt.Errorf("failed to prune stale artifact %s: %w", entry.Name(), err)
		}
		logger.Debug("Pruned stale artifact %s", entry.Name())
	}

	return artifacts, nil
}

// SHA256File returns the hex sha256 of a file's contents.
func SHA256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// CopyFile copies src to dst byte-for-byte, truncating any existing dst.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
