package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/desertthunder/shelf/internal/shared"
	tu "github.com/desertthunder/shelf/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			catalog := tu.NewMockCatalog()

			runner := NewRunner(RunnerOpts{
				Config:  config,
				Catalog: catalog,
				Logger:  logger,
				Output:  output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.catalog != catalog {
				t.Error("expected catalog to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Fatal("expected default config to be set")
			}
			if runner.config.Database.Path != shared.DefaultConfig().Database.Path {
				t.Errorf("expected default database path, got %s", runner.config.Database.Path)
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("without catalog opens repository lazily", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.catalog != nil {
				t.Error("expected no catalog until a command runs")
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		names := []string{}
		for _, c := range runner.register() {
			names = append(names, c.Name)
		}

		if got := strings.Join(names, ","); got != "setup,book,tui" {
			t.Errorf("unexpected commands: %s", got)
		}
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes formatted text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("Hello %s\n", "World"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if output.String() != "Hello World\n" {
				t.Errorf("expected 'Hello World\\n', got %q", output.String())
			}
		})

		t.Run("returns error on write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			if err := runner.writePlain("test"); err == nil {
				t.Error("expected error on write failure")
			}
		})
	})

	t.Run("write", func(t *testing.T) {
		t.Run("fails after writer limit", func(t *testing.T) {
			output := &bytes.Buffer{}
			lw := tu.NewLimitedWriter(1, 0, output)
			runner := NewRunner(RunnerOpts{Output: &lw})

			if err := runner.write([]byte("first\n")); err != nil {
				t.Fatalf("first write should succeed: %v", err)
			}
			if err := runner.write([]byte("second\n")); err == nil {
				t.Error("expected second write to fail")
			}
			if output.String() != "first\n" {
				t.Errorf("expected only first write, got %q", output.String())
			}
		})
	})
}
