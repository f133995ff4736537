package prefabs

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var bundled embed.FS

// Dir is the prefabs directory on disk. Files found there shadow the
// bundled copies, so edits apply without a rebuild. Empty reads the bundled
// copies only.
var Dir = "prefabs"

// Load reads a spec file such as "game.yaml".
func Load(name string) ([]byte, error) { return read(prefabName(name)) }

// LoadScript reads a tengo script by file name.
func LoadScript(name string) ([]byte, error) { return read(scriptName(name)) }

func read(name string) ([]byte, error) {
	if Dir != "" {
		data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(name)))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return fs.ReadFile(bundled, name)
}

// prefabName strips a leading prefabs/ so callers may pass either form.
func prefabName(p string) string {
	return strings.TrimPrefix(path.Clean(filepath.ToSlash(p)), "prefabs/")
}

// scriptName maps "robot.tengo" and "prefabs/scripts/robot.tengo" alike to
// "scripts/robot.tengo".
func scriptName(p string) string {
	return "scripts/" + strings.TrimPrefix(prefabName(p), "scripts/")
}
