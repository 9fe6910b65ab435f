package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStartScript(t *testing.T) {
	if got := StartScript(LangJavaScript); got != "node server.js" {
		t.Errorf("StartScript(javascript) = %q, want %q", got, "node server.js")
	}
	if got := StartScript(LangTypeScript); got != "ts-node-dev src/index.ts" {
		t.Errorf("StartScript(typescript) = %q, want %q", got, "ts-node-dev src/index.ts")
	}
}

func TestPatchStartScript_PreservesExistingScripts(t *testing.T) {
	dir := t.TempDir()
	original := `{
  "name": "demo",
  "version": "1.0.0",
  "scripts": {
    "test": "echo \"Error: no test specified\" && exit 1"
  },
  "license": "ISC"
}`
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(original), 0o644); err != nil {
		t.Fatalf("write package.json: %v", err)
	}

	if err := PatchStartScript(dir, LangJavaScript); err != nil {
		t.Fatalf("PatchStartScript: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatalf("read package.json: %v", err)
	}

	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		t.Fatalf("patched package.json is not valid JSON: %v", err)
	}

	scripts, ok := manifest["scripts"].(map[string]any)
	if !ok {
		t.Fatal("scripts key missing after patch")
	}
	if scripts["start"] != "node server.js" {
		t.Errorf("scripts.start = %v, want %q", scripts["start"], "node server.js")
	}
	if scripts["test"] == nil {
		t.Error("pre-existing scripts.test entry was lost")
	}
	if manifest["license"] != "ISC" {
		t.Errorf("unknown top-level key license = %v, want ISC", manifest["license"])
	}
}

func TestPatchStartScript_NoScriptsKey(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"demo"}`), 0o644); err != nil {
		t.Fatalf("write package.json: %v", err)
	}

	if err := PatchStartScript(dir, LangTypeScript); err != nil {
		t.Fatalf("PatchStartScript: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "package.json"))
	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	scripts := manifest["scripts"].(map[string]any)
	if scripts["start"] != "ts-node-dev src/index.ts" {
		t.Errorf("scripts.start = %v, want ts-node-dev src/index.ts", scripts["start"])
	}
}

func TestPatchStartScript_MalformedManifest(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write package.json: %v", err)
	}

	err := PatchStartScript(dir, LangJavaScript)
	if !errors.Is(err, ErrManifestParse) {
		t.Errorf("error = %v, want ErrManifestParse", err)
	}
}

func TestPatchStartScript_MissingManifest(t *testing.T) {
	dir := t.TempDir()
	if err := PatchStartScript(dir, LangJavaScript); err == nil {
		t.Error("expected error for missing package.json")
	}
}

func TestWriteManifestStub(t *testing.T) {
	dir := t.TempDir()
	if err := WriteManifestStub(dir, "demo"); err != nil {
		t.Fatalf("WriteManifestStub: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatalf("read stub: %v", err)
	}
	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		t.Fatalf("stub is not valid JSON: %v", err)
	}
	if manifest["name"] != "demo" {
		t.Errorf("stub name = %v, want demo", manifest["name"])
	}

	// The stub must be patchable.
	if err := PatchStartScript(dir, LangJavaScript); err != nil {
		t.Errorf("patch after stub: %v", err)
	}
}
