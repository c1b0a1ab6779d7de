package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/qri-io/jsondiff"
)

func intPtr(i int) *int { return &i }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %s", err)
	}
	dc := cfg.DiffConfig(nil)
	if dc.MaxDepth != jsondiff.NoDepthLimit {
		t.Errorf("expected unbounded depth by default, got %d", dc.MaxDepth)
	}
}

func TestLoadFromFile(t *testing.T) {
	expect := &Config{
		IgnoreArrayOrder: true,
		KeyFields:        []string{"id", "name"},
		IgnoreCase:       true,
		NumericTolerance: 0.5,
		MaxDepth:         intPtr(3),
		Output:           OutputSummary,
		Color:            ColorNever,
	}

	files := map[string]string{
		"config.yaml": `
ignore_array_order: true
key_fields: [id, name]
ignore_case: true
numeric_tolerance: 0.5
max_depth: 3
output: summary
color: never
`,
		"config.toml": `
ignore_array_order = true
key_fields = ["id", "name"]
ignore_case = true
numeric_tolerance = 0.5
max_depth = 3
output = "summary"
color = "never"
`,
		"config.json": `{
  "ignore_array_order": true,
  "key_fields": ["id", "name"],
  "ignore_case": true,
  "numeric_tolerance": 0.5,
  "max_depth": 3,
  "output": "summary",
  "color": "never"
}`,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := LoadFromFile(writeFile(t, name, content))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(expect, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := LoadFromFile(writeFile(t, "partial.yml", "ignore_case: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output != OutputText || cfg.Color != ColorAuto || cfg.MaxDepth != nil {
		t.Errorf("expected unset fields to keep defaults, got %+v", cfg)
	}

	cfg, err = LoadFromFile(writeFile(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("empty file should load defaults: %s", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		description string
		name        string
		content     string
	}{
		{"unknown field", "c.yaml", "ignore_order: true\n"},
		{"negative tolerance", "c.yaml", "numeric_tolerance: -1\n"},
		{"negative depth", "c.toml", "max_depth = -1\n"},
		{"repeated key field", "c.json", `{"key_fields": ["id", "id"]}`},
		{"empty key field", "c.json", `{"key_fields": [""]}`},
		{"bad output", "c.yaml", "output: xml\n"},
		{"bad color", "c.toml", `color = "sometimes"`},
		{"wrong type", "c.json", `{"ignore_case": "yes"}`},
		{"malformed", "c.json", `{"ignore_case": }`},
		{"unsupported extension", "c.ini", "ignore_case=true"},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			_, err := LoadFromFile(writeFile(t, c.name, c.content))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected invalid config error, got %v", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("a missing file isn't a configuration error")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.MaxDepth = intPtr(-1)
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected invalid config error, got %v", err)
	}
	if !errors.Is(err, jsondiff.ErrInvalidOptions) {
		t.Errorf("expected the diff options error to be wrapped, got %v", err)
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.KeyFields = []string{"id"}

	a, err := jsondiff.ParseJSON([]byte(`[{"id":1,"v":"x"},{"id":2,"v":"y"}]`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := jsondiff.ParseJSON([]byte(`[{"id":2,"v":"y"},{"id":1,"v":"x"}]`))
	if err != nil {
		t.Fatal(err)
	}

	res, err := jsondiff.Compare(a, b, cfg.Options(nil)...)
	if err != nil {
		t.Fatal(err)
	}
	if res.HasChanges {
		t.Errorf("expected key fields from config to correlate elements, got: %s", jsondiff.Summarize(res))
	}
}
