package loxconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/logs"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config")

// searchDirs returns the directories holding config files, most local first.
func searchDirs() (dirs []string) {
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")
	return
}

func findFiles(dirs []string, filenames ...string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	// files given by -config take precedence over discovered ones
	paths := append([]string(nil), *configFiles...)
	paths = append(paths, findFiles(searchDirs(), "lox.cue", ".lox.cue")...)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}
