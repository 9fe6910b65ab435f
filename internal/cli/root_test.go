package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCmd_Use(t *testing.T) {
	if rootCmd.Use != "expresso" {
		t.Errorf("rootCmd.Use = %q, want expresso", rootCmd.Use)
	}
}

func TestRootCmd_HasVersion(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("rootCmd.Version should not be empty")
	}
}

func TestRootCmd_RegistersNew(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "new" {
			found = true
			break
		}
	}
	if !found {
		t.Error("new should be registered as a subcommand of root")
	}
}

func TestRenderKeyValueLines(t *testing.T) {
	out := renderKeyValueLines([]kvPair{
		{"Project", "demo"},
		{"Language", "javascript"},
	})
	if !strings.Contains(out, "demo") || !strings.Contains(out, "javascript") {
		t.Errorf("rendered lines missing values:\n%s", out)
	}
	if len(strings.Split(out, "\n")) != 2 {
		t.Errorf("expected 2 lines, got:\n%s", out)
	}
}

func TestPrintBanner_WritesToSink(t *testing.T) {
	buf := new(bytes.Buffer)
	PrintBanner(buf, "v0.1.0")
	if !strings.Contains(buf.String(), "expresso v0.1.0") {
		t.Errorf("banner missing version line:\n%s", buf.String())
	}
}

func TestPrintWelcomeMessage_WritesToSink(t *testing.T) {
	buf := new(bytes.Buffer)
	PrintWelcomeMessage(buf)
	if !strings.Contains(buf.String(), "scaffold an Express project") {
		t.Errorf("welcome message missing:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Ctrl+C") {
		t.Errorf("cancel hint missing:\n%s", buf.String())
	}
}

func TestRenderSuccessCard(t *testing.T) {
	out := renderSuccessCard("Express project generated", "details here")
	if !strings.Contains(out, "Express project generated") {
		t.Errorf("card missing title:\n%s", out)
	}
	if !strings.Contains(out, "details here") {
		t.Errorf("card missing details:\n%s", out)
	}
}
