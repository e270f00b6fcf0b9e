// Package iofs prepares the directories and files GNpest keeps in the
// home directory of the user.
package iofs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gnames/gnpest/pkg/config"
	"github.com/gnames/gnpest/pkg/templates"
)

// EnsureDirs creates config, cache, data and log directories. The
// catalog file lives in the data directory.
func EnsureDirs(homeDir string) error {
	for _, v := range []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	} {
		if err := ensureDir(v); err != nil {
			return err
		}
	}
	return nil
}

func ensureDir(dir string) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return CreateDirError(dir, err)
	}
	return nil
}

// EnsureConfigFile writes the default config.yaml. A file that is
// already there is left untouched.
func EnsureConfigFile(homeDir string) error {
	path := config.ConfigFilePath(homeDir)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return CopyFileError(path, err)
	}

	_, err = f.WriteString(templates.ConfigYAML)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return CopyFileError(path, fmt.Errorf("writing template: %w", err))
	}
	return nil
}
