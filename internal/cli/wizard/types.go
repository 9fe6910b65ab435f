// Package wizard provides the interactive huh-based question flow for
// the "expresso new" command.
package wizard

import "errors"

// Answers holds the user's selections from the generation wizard.
// String fields keep the raw input; comma-separated lists are parsed by
// the caller with project.SplitList.
type Answers struct {
	ProjectName string // Project name (required).
	Language    string // "javascript" or "typescript".
	UseMongo    bool   // Add MongoDB support via mongoose.
	UseDocker   bool   // Write a Dockerfile.
	UseLint     bool   // Install and configure ESLint + Prettier.
	InitGit     bool   // Initialize a git repository.
	AddEnv      bool   // Write a .env file.
	ExtraDeps   string // Comma-separated extra npm packages.
	EnvVars     string // Comma-separated env variable names.
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string              // Unique identifier.
	Type        QuestionType        // Select, Input, or Confirm.
	Title       string              // Question title.
	Description string              // Additional description.
	Options     []Option            // Options for select questions.
	Default     string              // Default value ("true"/"false" for confirms).
	Required    bool                // Whether the field is required.
	Condition   func(*Answers) bool // Condition for showing this question.
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label.
	Value string // Actual value stored.
	Desc  string // Optional description.
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
