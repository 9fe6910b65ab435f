// Package project implements the generation pipeline behind the
// "expresso new" command: directory scaffolding, dependency assembly,
// artifact rendering, package-manager and git invocations, and the
// package.json start-script patch.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrProjectExists indicates the target project directory already exists.
	ErrProjectExists = errors.New("target directory already exists")

	// ErrEmptyProjectName indicates the request carries no project name.
	ErrEmptyProjectName = errors.New("project name must not be empty")

	// ErrInvalidLanguage indicates an unrecognized language value.
	ErrInvalidLanguage = errors.New("invalid language: must be javascript or typescript")

	// ErrManifestParse indicates package.json could not be parsed when
	// patching the start script.
	ErrManifestParse = errors.New("package.json is not valid JSON")
)
