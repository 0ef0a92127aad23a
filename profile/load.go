package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the profile file Find looks for.
const FileName = "verbo.toml"

// Find walks up from the given directory looking for a verbo.toml. It
// returns the absolute path to the profile, or an empty string if none
// exists between startDir and the filesystem root.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load parses the TOML profile at path. Keys that map to no known field are
// reported as warnings rather than errors, so newer profiles keep working
// with older binaries. The result is not validated; call Validate.
func Load(path string) (*Profile, []string, error) {
	var p Profile
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, nil, fmt.Errorf("loading profile %s: %w", path, err)
	}
	return &p, undecodedWarnings(md), nil
}

func undecodedWarnings(md toml.MetaData) []string {
	var warnings []string
	for _, key := range md.Undecoded() {
		warnings = append(warnings, fmt.Sprintf("unknown profile key %q", key.String()))
	}
	return warnings
}
