package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/expresso-dev/expresso/internal/defs"
)

// StartScript returns the npm start command for the language.
func StartScript(lang Language) string {
	if lang.IsTypeScript() {
		return "ts-node-dev src/index.ts"
	}
	return "node server.js"
}

// PatchStartScript reads package.json in dir, sets scripts.start for the
// language, and rewrites the file. Existing script entries are preserved;
// unknown top-level keys pass through untouched.
func PatchStartScript(dir string, lang Language) error {
	path := filepath.Join(dir, defs.PackageJSON)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", defs.PackageJSON, err)
	}

	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	scripts, ok := manifest["scripts"].(map[string]any)
	if !ok {
		scripts = make(map[string]any)
	}
	scripts["start"] = StartScript(lang)
	manifest["scripts"] = scripts

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", defs.PackageJSON, err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", defs.PackageJSON, err)
	}
	return nil
}

// WriteManifestStub writes a minimal package.json when the npm init step
// is skipped, so the start-script patch still has a manifest to mutate.
func WriteManifestStub(dir string, name string) error {
	manifest := map[string]any{
		"name":    name,
		"version": "1.0.0",
		"scripts": map[string]any{},
	}
	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", defs.PackageJSON, err)
	}
	out = append(out, '\n')

	path := filepath.Join(dir, defs.PackageJSON)
	if err := os.WriteFile(path, out, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", defs.PackageJSON, err)
	}
	return nil
}
