// Package project provisions the React project that compiled units are
// written into.
//
// Provisioning is idempotent: scaffold files are only written when
// missing, so a project that has been edited or upgraded keeps its
// changes. Unit files are generated artifacts and always overwrite.
package project

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/mkoenig/framesmith/pkg/compiler"
	"github.com/mkoenig/framesmith/pkg/errors"
)

// ComponentsDir is the project-relative directory unit files land in.
const ComponentsDir = "src/components"

// Provisioner creates project scaffolding and writes compiled units.
type Provisioner struct {
	Log *log.Logger
}

// Provision ensures dir contains a runnable React project named after
// name. Existing files are left untouched.
func (p *Provisioner) Provision(dir, name string) error {
	if err := errors.ValidatePath(dir); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(dir, ComponentsDir), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeProvisionFailed, err, "failed to create project layout")
	}

	files := map[string]string{
		"package.json":   packageJSON(projectName(name)),
		"vite.config.js": viteConfig,
		"index.html":     indexHTML(name),
		"src/main.jsx":   mainJSX,
		"src/App.jsx":    appJSX,
	}
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeProvisionFailed, err, "failed to create %s", rel)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeProvisionFailed, err, "failed to write %s", rel)
		}
		if p.Log != nil {
			p.Log.Debug("scaffolded", "file", rel)
		}
	}
	return nil
}

// WriteUnit writes the unit's component and stylesheet files into the
// project's components directory, overwriting previous compilations of
// the same unit. It returns the written paths.
func (p *Provisioner) WriteUnit(dir string, unit compiler.Unit) ([]string, error) {
	target := filepath.Join(dir, ComponentsDir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeWriteFailed, err, "failed to write unit %s", unit.Name)
	}

	paths := []string{
		filepath.Join(target, unit.MarkupFilename()),
		filepath.Join(target, unit.StylesheetFilename()),
	}
	contents := []string{unit.Markup, unit.Stylesheet}
	for i, path := range paths {
		if err := os.WriteFile(path, []byte(contents[i]), 0o644); err != nil {
			return nil, errors.Wrap(errors.ErrCodeWriteFailed, err, "failed to write unit %s", unit.Name)
		}
	}
	if p.Log != nil {
		p.Log.Debug("wrote unit", "name", unit.Name, "files", len(paths))
	}
	return paths, nil
}
