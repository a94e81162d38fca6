package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

type initFlags struct {
	Verbose bool     `help:"Enable verbose output"`
	Output  string   `help:"Output file"`
	Count   int      `help:"Number of items"`
	Empty   string   `help:"Never set"`
	Dirs    []string `help:"Search directories"`
	Secret  string   `help:"Hidden flag" hidden:""`
}

func initContext(t *testing.T, confPath string, args ...string) context.Context {
	t.Helper()

	var cli initFlags

	parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath})
	if err != nil {
		t.Fatal(err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		t.Fatal(err)
	}

	return WithContext(context.Background(), kctx)
}

// TestInitRun tests the Init.Run command.
func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		force   bool
		setup   func(t *testing.T, path string) // setup function to prepare test
		wantErr error
	}{
		{
			name: "create_new_config",
		},
		{
			name:  "overwrite_existing_with_force",
			force: true,
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name: "fail_without_force",
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrFileExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "config.yaml")

			if tt.setup != nil {
				tt.setup(t, confPath)
			}

			ctx := initContext(t, confPath, "--verbose", "--output=out.txt", "--count=5")

			err := (&Init{Force: tt.force}).Run(ctx)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Init.Run() error = %v, want %v", err, tt.wantErr)
				}

				if !errors.Is(err, ErrWriteConfig) {
					t.Errorf("Init.Run() error = %v, want ErrWriteConfig", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("Init.Run() error = %v", err)
			}

			content, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			var keys map[string]map[string]any
			if err := yaml.Unmarshal(content, &keys); err != nil {
				t.Fatalf("generated config is not valid YAML: %v\n%s", err, content)
			}

			if n := len(keys[ConfigSection]); n != 3 {
				t.Errorf("config has %d entries, want 3:\n%s", n, content)
			}

			var doc struct {
				Config struct {
					Verbose bool   `yaml:"verbose"`
					Output  string `yaml:"output"`
					Count   int    `yaml:"count"`
				} `yaml:"config"`
			}
			if err := yaml.Unmarshal(content, &doc); err != nil {
				t.Fatal(err)
			}

			if !doc.Config.Verbose || doc.Config.Output != "out.txt" || doc.Config.Count != 5 {
				t.Errorf("config = %+v", doc.Config)
			}
		})
	}
}

func TestInitSettings_Order(t *testing.T) {
	t.Parallel()

	ctx := initContext(t, "", "--count=2", "--dirs=a,b", "--output=x", "--secret=s")

	got := (&Init{}).settings(kongContextFrom(ctx))

	var keys []string
	for _, item := range got {
		keys = append(keys, item.Key.(string))
	}

	// Declaration order; false booleans are kept, empty strings and hidden
	// flags are dropped.
	want := []string{"verbose", "output", "count", "dirs"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}
