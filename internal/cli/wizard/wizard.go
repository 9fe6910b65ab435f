package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Brand colors for the wizard theme.
const (
	colorPrimary = "#B5651D"
	colorSuccess = "#10B981"
	colorError   = "#EF4444"
	colorText    = "#E5E7EB"
	colorMuted   = "#6B7280"
	colorBorder  = "#4B5563"
)

// Run executes the wizard and returns the collected answers.
// Each question runs as its own independent huh.Form so conditional
// questions can inspect the answers collected so far.
func Run(questions []Question) (*Answers, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	answers := &Answers{}
	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]

		// Skip questions whose condition is not met.
		if q.Condition != nil && !q.Condition(answers) {
			continue
		}

		form := huh.NewForm(buildQuestionGroup(q, answers)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return answers, nil
}

// RunWithDefaults runs the wizard with the default question set, using
// the given name as the project-name default.
func RunWithDefaults(defaultProjectName string) (*Answers, error) {
	return Run(DefaultQuestions(defaultProjectName))
}

// buildQuestionGroup creates a huh.Group for a single question.
func buildQuestionGroup(q *Question, answers *Answers) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, answers)
	case QuestionTypeInput:
		field = buildInputField(q, answers)
	case QuestionTypeConfirm:
		field = buildConfirmField(q, answers)
	}

	return huh.NewGroup(field)
}

// buildSelectField creates a huh.Select field for a select-type question.
func buildSelectField(q *Question, answers *Answers) *huh.Select[string] {
	var selected string
	if q.Default != "" {
		selected = q.Default
	}

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	// Store the value after each change.
	sel.Validate(func(val string) error {
		saveAnswer(q.ID, val, answers)
		return nil
	})

	return sel
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, answers *Answers) *huh.Input {
	var value string
	if q.Default != "" {
		value = q.Default
	}

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	qID := q.ID
	required := q.Required
	defVal := q.Default
	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" && defVal != "" {
			v = defVal
		}
		if required && v == "" {
			return errors.New("this field is required")
		}
		saveAnswer(qID, v, answers)
		return nil
	})

	return inp
}

// buildConfirmField creates a huh.Confirm field for a yes/no question.
func buildConfirmField(q *Question, answers *Answers) *huh.Confirm {
	value := q.Default == "true"

	conf := huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	qID := q.ID
	conf = conf.Validate(func(val bool) error {
		saveBoolAnswer(qID, val, answers)
		return nil
	})

	return conf
}

// saveAnswer stores a string answer.
func saveAnswer(id, value string, answers *Answers) {
	switch id {
	case "project_name":
		answers.ProjectName = value
	case "language":
		answers.Language = value
	case "extra_deps":
		answers.ExtraDeps = value
	case "env_vars":
		answers.EnvVars = value
	}
}

// saveBoolAnswer stores a confirm answer.
func saveBoolAnswer(id string, value bool, answers *Answers) {
	switch id {
	case "use_mongo":
		answers.UseMongo = value
	case "use_docker":
		answers.UseDocker = value
	case "use_lint":
		answers.UseLint = value
	case "init_git":
		answers.InitGit = value
	case "add_env":
		answers.AddEnv = value
	}
}

// newWizardTheme creates a huh.Theme with expresso branding.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#8B4513", Dark: colorPrimary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: colorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: colorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: colorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: colorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: colorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(primary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
