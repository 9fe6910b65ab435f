// Package defs centralizes file names, paths, and permissions shared
// across the expresso generator.
package defs

// Common file names written into a generated project.
const (
	// PackageJSON is the npm manifest file.
	PackageJSON = "package.json"

	// ServerJS is the JavaScript entry point file.
	ServerJS = "server.js"

	// IndexTS is the TypeScript entry point file, relative to the project root.
	IndexTS = "src/index.ts"

	// EnvFile is the environment variable file.
	EnvFile = ".env"

	// DockerfileName is the container build file.
	DockerfileName = "Dockerfile"

	// GitignoreFile is the git ignore list.
	GitignoreFile = ".gitignore"

	// TSConfigJSON is the TypeScript compiler configuration.
	TSConfigJSON = "tsconfig.json"

	// ESLintRCJSON is the ESLint configuration file.
	ESLintRCJSON = ".eslintrc.json"

	// PrettierRC is the Prettier configuration file.
	PrettierRC = ".prettierrc"
)

// ProjectDirs lists the subdirectories created in every generated project.
var ProjectDirs = []string{"routes", "controllers", "models", "config"}

// SrcDir is the additional source directory created for TypeScript projects.
const SrcDir = "src"

// ServerPort is the port the generated Express server listens on.
const ServerPort = 3000

// File system permissions for generated directories and files.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)
