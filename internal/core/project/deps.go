package project

// Base and conditional npm package names assembled per request.
const (
	pkgExpress  = "express"
	pkgMongoose = "mongoose"
)

// TypeScript tooling installed as dev dependencies.
var typescriptDevDeps = []string{"typescript", "@types/node", "@types/express", "ts-node-dev"}

// Lint tooling installed as dev dependencies when linting is requested.
var (
	lintDeps           = []string{"eslint", "prettier"}
	lintTypeScriptDeps = []string{"@typescript-eslint/parser", "@typescript-eslint/eslint-plugin"}
)

// RuntimeDeps assembles the runtime dependency list: express first,
// mongoose iff MongoDB was requested, then every extra dependency in input
// order. Duplicates are not removed.
func RuntimeDeps(req GenerationRequest) []string {
	deps := []string{pkgExpress}
	if req.UseMongo {
		deps = append(deps, pkgMongoose)
	}
	deps = append(deps, req.ExtraDependencies...)
	return deps
}

// DevDeps assembles the dev dependency list installed right after the
// runtime dependencies: empty for JavaScript, the TypeScript toolchain
// otherwise. Lint tooling is installed separately; see LintDeps.
func DevDeps(req GenerationRequest) []string {
	if !req.Language.IsTypeScript() {
		return nil
	}
	deps := make([]string, len(typescriptDevDeps))
	copy(deps, typescriptDevDeps)
	return deps
}

// LintDeps assembles the lint tooling installed by the lint step:
// eslint and prettier, plus the TypeScript parser and plugin when the
// project is TypeScript. Returns nil when linting was not requested.
func LintDeps(req GenerationRequest) []string {
	if !req.UseLint {
		return nil
	}
	deps := make([]string, len(lintDeps))
	copy(deps, lintDeps)
	if req.Language.IsTypeScript() {
		deps = append(deps, lintTypeScriptDeps...)
	}
	return deps
}
