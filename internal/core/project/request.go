package project

import (
	"fmt"
	"strings"
)

// Language selects the flavor of the generated project.
type Language string

const (
	// LangJavaScript generates a plain JavaScript project.
	LangJavaScript Language = "javascript"

	// LangTypeScript generates a TypeScript project with compiler tooling.
	LangTypeScript Language = "typescript"
)

// IsTypeScript reports whether the language is TypeScript.
func (l Language) IsTypeScript() bool {
	return l == LangTypeScript
}

// Valid reports whether the language is a known value.
func (l Language) Valid() bool {
	return l == LangJavaScript || l == LangTypeScript
}

// ParseLanguage normalizes a user-supplied language string.
// Accepts "javascript"/"js" and "typescript"/"ts", case-insensitive.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "javascript", "js":
		return LangJavaScript, nil
	case "typescript", "ts":
		return LangTypeScript, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, s)
	}
}

// GenerationRequest is the complete answer set driving one generation run.
// It is constructed once from wizard answers, flags, or a preset file,
// consumed once by the Generator, and never persisted.
type GenerationRequest struct {
	ProjectName       string   // Directory name for the new project.
	Language          Language // javascript or typescript.
	UseMongo          bool     // Add mongoose to the dependency list.
	UseDocker         bool     // Write a Dockerfile.
	UseLint           bool     // Install and configure ESLint + Prettier.
	InitGit           bool     // git init / add / commit after generation.
	AddEnv            bool     // Write a .env file.
	ExtraDependencies []string // Additional npm packages, order preserved.
	EnvVarNames       []string // Variable names for .env, order preserved.
}

// Validate checks the request invariants before generation begins.
func (r *GenerationRequest) Validate() error {
	if strings.TrimSpace(r.ProjectName) == "" {
		return ErrEmptyProjectName
	}
	if !r.Language.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, string(r.Language))
	}
	return nil
}

// SplitList splits a comma-separated input into trimmed, non-empty tokens,
// preserving input order. Duplicates are kept.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var tokens []string
	for part := range strings.SplitSeq(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}
