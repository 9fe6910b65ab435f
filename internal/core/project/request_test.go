package project

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input   string
		want    Language
		wantErr bool
	}{
		{"javascript", LangJavaScript, false},
		{"JavaScript", LangJavaScript, false},
		{"js", LangJavaScript, false},
		{"typescript", LangTypeScript, false},
		{"ts", LangTypeScript, false},
		{"  TypeScript  ", LangTypeScript, false},
		{"python", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLanguage(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLanguage(%q) expected error, got %q", tt.input, got)
			}
			if err != nil && !errors.Is(err, ErrInvalidLanguage) {
				t.Errorf("ParseLanguage(%q) error = %v, want ErrInvalidLanguage", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLanguage(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLanguage(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLanguage_IsTypeScript(t *testing.T) {
	if LangJavaScript.IsTypeScript() {
		t.Error("javascript should not be TypeScript")
	}
	if !LangTypeScript.IsTypeScript() {
		t.Error("typescript should be TypeScript")
	}
}

func TestGenerationRequest_Validate(t *testing.T) {
	valid := GenerationRequest{ProjectName: "demo", Language: LangJavaScript}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid request should pass: %v", err)
	}

	noName := GenerationRequest{Language: LangJavaScript}
	if err := noName.Validate(); !errors.Is(err, ErrEmptyProjectName) {
		t.Errorf("empty name: error = %v, want ErrEmptyProjectName", err)
	}

	blankName := GenerationRequest{ProjectName: "   ", Language: LangJavaScript}
	if err := blankName.Validate(); !errors.Is(err, ErrEmptyProjectName) {
		t.Errorf("blank name: error = %v, want ErrEmptyProjectName", err)
	}

	badLang := GenerationRequest{ProjectName: "demo", Language: "ruby"}
	if err := badLang.Validate(); !errors.Is(err, ErrInvalidLanguage) {
		t.Errorf("bad language: error = %v, want ErrInvalidLanguage", err)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "cors", []string{"cors"}},
		{"trimmed", " cors , dotenv ", []string{"cors", "dotenv"}},
		{"empty tokens dropped", "cors,,dotenv, ,", []string{"cors", "dotenv"}},
		{"duplicates kept", "cors,cors", []string{"cors", "cors"}},
		{"order preserved", "zod, axios, cors", []string{"zod", "axios", "cors"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
