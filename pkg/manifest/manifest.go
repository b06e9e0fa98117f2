package manifest

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// Manifest holds the package metadata fields the publisher cares about
type Manifest struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

var (
	// matches `version = "1.2.3"` in toml manifests, first occurrence only
	tomlVersionRegex = regexp.MustCompile(`(?m)^(\s*version\s*=\s*)"[^"]*"`)
	// matches `version: 1.2.3` in yaml manifests, first occurrence only
	yamlVersionRegex = regexp.MustCompile(`(?m)^(\s*version\s*:\s*)\S+`)

	tomlNameRegex = regexp.MustCompile(`(?m)^\s*name\s*=\s*"([^"]*)"`)
	tomlVerRegex  = regexp.MustCompile(`(?m)^\s*version\s*=\s*"([^"]*)"`)
)

// ReadFromFile reads the package manifest, supporting toml (pyproject style) and yaml manifests
func ReadFromFile(path string) (m Manifest, err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}

	if strings.HasSuffix(path, ".toml") {
		if match := tomlNameRegex.FindSubmatch(data); match != nil {
			m.Name = string(match[1])
		}
		if match := tomlVerRegex.FindSubmatch(data); match != nil {
			m.Version = string(match[1])
		}
		if m.Name == "" {
			return m, fmt.Errorf("Manifest %v has no name field", path)
		}
		return m, nil
	}

	// unmarshal yaml manifest
	if err = yaml.Unmarshal(data, &m); err != nil {
		return m, err
	}
	if m.Name == "" {
		return m, fmt.Errorf("Manifest %v has no name field", path)
	}

	return m, nil
}

// RewriteVersion overwrites the manifest's version field in place with the passed version,
// preserving the rest of the file byte for byte; the version string is written verbatim,
// no semver validation is applied
func RewriteVersion(path, version string) (err error) {

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var rewritten []byte
	if strings.HasSuffix(path, ".toml") {
		if !tomlVersionRegex.Match(data) {
			return fmt.Errorf("Manifest %v has no version field to rewrite", path)
		}
		rewritten = replaceFirst(tomlVersionRegex, data, fmt.Sprintf(`${1}"%v"`, version))
	} else {
		if !yamlVersionRegex.Match(data) {
			return fmt.Errorf("Manifest %v has no version field to rewrite", path)
		}
		rewritten = replaceFirst(yamlVersionRegex, data, fmt.Sprintf(`${1}%v`, version))
	}

	return os.WriteFile(path, rewritten, info.Mode())
}

// replaceFirst applies the replacement to the first match only, later version fields
// (dependency pins and the like) stay untouched
func replaceFirst(re *regexp.Regexp, data []byte, replacement string) []byte {
	replaced := false
	return re.ReplaceAllFunc(data, func(match []byte) []byte {
		if replaced {
			return match
		}
		replaced = true

		return re.ReplaceAll(match, []byte(replacement))
	})
}
