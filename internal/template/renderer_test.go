package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRenderer_Render(t *testing.T) {
	fsys := fstest.MapFS{
		"greeting.tmpl": {Data: []byte("Hello, {{.Name}}!")},
	}
	r := NewRenderer(fsys)

	out, err := r.Render("greeting.tmpl", map[string]string{"Name": "expresso"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(out) != "Hello, expresso!" {
		t.Errorf("output = %q, want %q", out, "Hello, expresso!")
	}
}

func TestRenderer_TemplateNotFound(t *testing.T) {
	r := NewRenderer(fstest.MapFS{})

	_, err := r.Render("missing.tmpl", nil)
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("error = %v, want ErrTemplateNotFound", err)
	}
}

func TestRenderer_MissingKey(t *testing.T) {
	fsys := fstest.MapFS{
		"strict.tmpl": {Data: []byte("value: {{.Missing}}")},
	}
	r := NewRenderer(fsys)

	_, err := r.Render("strict.tmpl", map[string]string{})
	if !errors.Is(err, ErrMissingTemplateKey) {
		t.Errorf("error = %v, want ErrMissingTemplateKey", err)
	}
}

func TestRenderer_UnexpandedToken(t *testing.T) {
	fsys := fstest.MapFS{
		"leftover.tmpl": {Data: []byte("path: ${HOME_DIR}/bin")},
	}
	r := NewRenderer(fsys)

	_, err := r.Render("leftover.tmpl", nil)
	if !errors.Is(err, ErrUnexpandedToken) {
		t.Errorf("error = %v, want ErrUnexpandedToken", err)
	}
}

func TestRenderer_RuntimeInterpolationPassesThrough(t *testing.T) {
	fsys := fstest.MapFS{
		"log.tmpl": {Data: []byte("console.log(`Server running on port ${port}`);")},
	}
	r := NewRenderer(fsys)

	out, err := r.Render("log.tmpl", nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "${port}") {
		t.Error("runtime interpolation should survive rendering")
	}
}
