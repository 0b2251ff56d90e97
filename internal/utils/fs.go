package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// DirCheckResult represents the result of dir checks
type DirCheckResult struct {
	Exists   bool
	Writable bool
	Error    error
}

// FileExists simply checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// IsYAMLPath reports whether path has a .yaml or .yml extension.
func IsYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// SaveConfigFile writes data as TOML or YAML, picked by extension. The write
// holds an exclusive lock on a sibling .lock file so two wsolve processes
// creating the default config cannot interleave.
func SaveConfigFile(data any, filePath string) error {
	lock := flock.New(filePath + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", filePath, err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Warnf("Failed to release lock on %s: %v", filePath, err)
		}
		os.Remove(lock.Path())
	}()

	file, err := os.Create(filePath)
	if err != nil {
		log.Errorf("Failed to create file: %v", err)
		return err
	}
	defer file.Close()

	if IsYAMLPath(filePath) {
		enc := yaml.NewEncoder(file)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	}
	return toml.NewEncoder(file).Encode(data)
}

// GetAbsolutePath resolves path against the working directory, returning it
// unchanged if that fails. An empty path is reported as "unknown".
func GetAbsolutePath(path string) string {
	switch {
	case path == "":
		return "unknown"
	case filepath.IsAbs(path):
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// testWriteAccess creates and removes a scratch file in dirPath.
func testWriteAccess(dirPath string) bool {
	f, err := os.CreateTemp(dirPath, "."+AppName+"-writecheck-*")
	if err != nil {
		log.Debugf("Directory %s is not writable: %v", dirPath, err)
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}

// CheckDirStatus creates dirPath when missing and reports whether it can be
// written to.
func CheckDirStatus(dirPath string) DirCheckResult {
	if err := EnsureDir(dirPath); err != nil {
		log.Warnf("Cannot create directory %s: %v", dirPath, err)
		return DirCheckResult{Error: err}
	}
	return DirCheckResult{Exists: true, Writable: testWriteAccess(dirPath)}
}
