package template

import (
	"strings"

	"github.com/expresso-dev/expresso/internal/defs"
)

// Template file names in the embedded filesystem.
const (
	tmplServerJS    = "server.js.tmpl"
	tmplIndexTS     = "index.ts.tmpl"
	tmplDockerfile  = "Dockerfile.tmpl"
	tmplTSConfig    = "tsconfig.json.tmpl"
	tmplESLintJS    = "eslintrc.js.json.tmpl"
	tmplESLintTS    = "eslintrc.ts.json.tmpl"
	tmplPrettier    = "prettierrc.tmpl"
	tmplGitignore   = "gitignore.tmpl"
	tmplNextStepsJS = "next-steps.js.tmpl"
	tmplNextStepsTS = "next-steps.ts.tmpl"
)

// Context carries the values substituted into artifact templates.
type Context struct {
	ProjectName string
	Port        int
}

// Artifact is a rendered file destined for the generated project tree.
type Artifact struct {
	Path    string // Relative to the project root.
	Content []byte
}

// Builder renders project artifacts from the embedded templates.
type Builder struct {
	renderer Renderer
}

// NewBuilder creates a Builder using the given renderer.
func NewBuilder(renderer Renderer) *Builder {
	return &Builder{renderer: renderer}
}

// EntryPoint renders the Express server entry point. The file lands at
// src/index.ts for TypeScript projects and server.js otherwise.
func (b *Builder) EntryPoint(typescript bool, ctx Context) (Artifact, error) {
	name, path := tmplServerJS, defs.ServerJS
	if typescript {
		name, path = tmplIndexTS, defs.IndexTS
	}
	content, err := b.renderer.Render(name, ctx)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Path: path, Content: content}, nil
}

// Dockerfile renders the fixed container build file.
func (b *Builder) Dockerfile(ctx Context) (Artifact, error) {
	content, err := b.renderer.Render(tmplDockerfile, ctx)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Path: defs.DockerfileName, Content: content}, nil
}

// Gitignore renders the fixed ignore list.
func (b *Builder) Gitignore() (Artifact, error) {
	content, err := b.renderer.Render(tmplGitignore, nil)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Path: defs.GitignoreFile, Content: content}, nil
}

// TSConfig renders the TypeScript compiler configuration.
func (b *Builder) TSConfig() (Artifact, error) {
	content, err := b.renderer.Render(tmplTSConfig, nil)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Path: defs.TSConfigJSON, Content: content}, nil
}

// ESLintRC renders the lint configuration for the selected language.
func (b *Builder) ESLintRC(typescript bool) (Artifact, error) {
	name := tmplESLintJS
	if typescript {
		name = tmplESLintTS
	}
	content, err := b.renderer.Render(name, nil)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Path: defs.ESLintRCJSON, Content: content}, nil
}

// PrettierRC renders the empty formatter configuration.
func (b *Builder) PrettierRC() (Artifact, error) {
	content, err := b.renderer.Render(tmplPrettier, nil)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Path: defs.PrettierRC, Content: content}, nil
}

// NextSteps renders the human-readable completion instructions.
func (b *Builder) NextSteps(typescript bool, ctx Context) (string, error) {
	name := tmplNextStepsJS
	if typescript {
		name = tmplNextStepsTS
	}
	content, err := b.renderer.Render(name, ctx)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// EnvFile builds the .env artifact: one NAME= line per variable, values
// always empty, input order preserved. A nil name list yields an empty
// file.
func EnvFile(names []string) Artifact {
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(name)
		sb.WriteString("=\n")
	}
	return Artifact{Path: defs.EnvFile, Content: []byte(sb.String())}
}
