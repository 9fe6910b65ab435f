// Package config loads generation presets from YAML files, allowing
// non-interactive runs to supply a complete answer set.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/expresso-dev/expresso/internal/core/project"
)

// maxPresetSize is the maximum allowed size for a preset YAML file.
const maxPresetSize = 1 * 1024 * 1024 // 1MB

// ErrPresetTooLarge indicates the preset file exceeds the size limit.
var ErrPresetTooLarge = errors.New("preset file too large")

// Preset mirrors the wizard answer set in YAML form.
type Preset struct {
	Name         string   `yaml:"name"`
	Language     string   `yaml:"language"`
	Mongo        bool     `yaml:"mongo"`
	Docker       bool     `yaml:"docker"`
	Lint         bool     `yaml:"lint"`
	Git          bool     `yaml:"git"`
	Env          bool     `yaml:"env"`
	Dependencies []string `yaml:"dependencies"`
	EnvVars      []string `yaml:"env_vars"`
}

// LoadPreset reads and decodes a preset file. Unknown YAML keys are
// rejected so typos surface instead of silently defaulting.
func LoadPreset(path string) (*Preset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat preset %s: %w", path, err)
	}
	if info.Size() > maxPresetSize {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrPresetTooLarge, path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}

	preset := &Preset{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(preset); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}

	return preset, nil
}

// ToRequest converts the preset into a validated GenerationRequest.
// An omitted language defaults to JavaScript. List entries are trimmed;
// whitespace-only entries are dropped.
func (p *Preset) ToRequest() (project.GenerationRequest, error) {
	lang := project.LangJavaScript
	if strings.TrimSpace(p.Language) != "" {
		parsed, err := project.ParseLanguage(p.Language)
		if err != nil {
			return project.GenerationRequest{}, err
		}
		lang = parsed
	}

	req := project.GenerationRequest{
		ProjectName:       p.Name,
		Language:          lang,
		UseMongo:          p.Mongo,
		UseDocker:         p.Docker,
		UseLint:           p.Lint,
		InitGit:           p.Git,
		AddEnv:            p.Env,
		ExtraDependencies: trimAll(p.Dependencies),
		EnvVarNames:       trimAll(p.EnvVars),
	}
	if err := req.Validate(); err != nil {
		return project.GenerationRequest{}, err
	}
	return req, nil
}

// trimAll trims each entry and drops the empty ones, preserving order.
func trimAll(entries []string) []string {
	var out []string
	for _, e := range entries {
		if trimmed := strings.TrimSpace(e); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
