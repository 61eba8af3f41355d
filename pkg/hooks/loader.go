package hooks

import (
	"os"
	"path/filepath"

	"github.com/wenget/bucketgen/pkg/errors"
)

// hookFileNames maps bucket hook files to their hook type.
var hookFileNames = map[string]HookType{
	"package-filter.tengo": PackageFilter,
	"script-filter.tengo":  ScriptFilter,
}

// LoadFromDir loads curation hooks from a bucket directory. Absent files are
// fine; a bucket without hooks accepts everything.
func LoadFromDir(manager Manager, dir string) error {
	for filename, hookType := range hookFileNames {
		path := filepath.Join(dir, filename)
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.Wrapf(errors.ErrHookLoad, "error reading hook file %s: %v", path, err)
		}
		manager.AddScript(hookType, string(content))
	}
	return nil
}
