package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigCommand_Defaults(t *testing.T) {
	setupWorkspace(t)

	res := executeCmd(t, "", "config")
	if res.err != nil {
		t.Fatalf("config failed: %v", res.err)
	}
	for _, want := range []string{
		"template: template.html (default)",
		"output_dir: generated (default)",
		"tokens.content: {{blog_content}} (default)",
	} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("output missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestConfigCommand_JSONOrigins(t *testing.T) {
	dir := setupWorkspace(t)
	writeTestFile(t, filepath.Join(dir, ".config-home", "config.yaml"), "output_dir: global-out\n")
	writeTestFile(t, "postgen.yaml", "template: project.html\n")

	res := executeCmd(t, "", "config", "--json", "--out-dir", "flag-out")
	if res.err != nil {
		t.Fatalf("config failed: %v", res.err)
	}

	var got struct {
		Config struct {
			Template  string            `json:"template"`
			OutputDir string            `json:"output_dir"`
			Origins   map[string]string `json:"origins"`
		} `json:"config"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", res.stdout, err)
	}
	if got.Config.Template != "project.html" || got.Config.Origins["template"] != "project" {
		t.Errorf("template = %q (%s)", got.Config.Template, got.Config.Origins["template"])
	}
	if got.Config.OutputDir != "flag-out" || got.Config.Origins["output_dir"] != "flag" {
		t.Errorf("output_dir = %q (%s)", got.Config.OutputDir, got.Config.Origins["output_dir"])
	}
}

func TestConfigCommand_MissingExplicitFile(t *testing.T) {
	setupWorkspace(t)

	res := executeCmd(t, "", "config", "--config", "nope.yaml")
	if res.err == nil {
		t.Fatal("expected error for missing --config file")
	}
	if !strings.Contains(res.stderr, "nope.yaml") {
		t.Errorf("stderr = %q", res.stderr)
	}
}
