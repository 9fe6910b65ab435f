package wizard

// DefaultQuestions returns the standard question set for project
// generation, in this order:
//  1. Project name
//  2. Language
//  3. MongoDB support
//  4. Docker support
//  5. Linting
//  6. Git initialization
//  7. Extra dependencies
//  8. Env file
//  9. Env variable names (conditional on 8)
func DefaultQuestions(defaultProjectName string) []Question {
	if defaultProjectName == "" {
		defaultProjectName = "my-app"
	}

	return []Question{
		{
			ID:          "project_name",
			Type:        QuestionTypeInput,
			Title:       "Enter project name",
			Description: "Used as the directory name for your new project.",
			Default:     defaultProjectName,
			Required:    true,
		},
		{
			ID:          "language",
			Type:        QuestionTypeSelect,
			Title:       "Select project language",
			Description: "TypeScript adds the compiler, type definitions, and ts-node-dev.",
			Options: []Option{
				{Label: "JavaScript", Value: "javascript", Desc: "plain Node.js"},
				{Label: "TypeScript", Value: "typescript", Desc: "typed, compiled to dist/"},
			},
			Default:  "javascript",
			Required: true,
		},
		{
			ID:          "use_mongo",
			Type:        QuestionTypeConfirm,
			Title:       "Add MongoDB support?",
			Description: "Adds mongoose to the dependency list.",
			Default:     "false",
		},
		{
			ID:          "use_docker",
			Type:        QuestionTypeConfirm,
			Title:       "Add a Dockerfile?",
			Description: "node:18 base image, exposes port 3000.",
			Default:     "false",
		},
		{
			ID:          "use_lint",
			Type:        QuestionTypeConfirm,
			Title:       "Set up linting?",
			Description: "Installs ESLint and Prettier with a starter configuration.",
			Default:     "false",
		},
		{
			ID:          "init_git",
			Type:        QuestionTypeConfirm,
			Title:       "Initialize a git repository?",
			Description: "Runs git init, stages everything, and makes an initial commit.",
			Default:     "false",
		},
		{
			ID:          "extra_deps",
			Type:        QuestionTypeInput,
			Title:       "Extra dependencies",
			Description: "Comma-separated npm package names. Press Enter to skip.",
		},
		{
			ID:          "add_env",
			Type:        QuestionTypeConfirm,
			Title:       "Create a .env file?",
			Description: "Writes NAME= lines for the variables you list next.",
			Default:     "false",
		},
		{
			ID:          "env_vars",
			Type:        QuestionTypeInput,
			Title:       "Environment variable names",
			Description: "Comma-separated, e.g. PORT, MONGO_URI. Values stay empty.",
			Condition: func(a *Answers) bool {
				return a.AddEnv
			},
		},
	}
}
