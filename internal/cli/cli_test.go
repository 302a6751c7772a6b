package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/errors"
)

const chartsTOML = `
duration = "200ms"

[[gauge]]
name = "cpu"
value = 42
units = "%"

[[card]]
name = "visits"
label = "Visits"
value = 1234

[[pie]]
name = "share"
labels = true
data = [{ name = "A", value = 1 }, { name = "B", value = 3 }]
`

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	c := New(&logs, log.DebugLevel)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeCharts(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "charts.toml")
	if err := os.WriteFile(path, []byte(chartsTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLayoutCommandStdout(t *testing.T) {
	out, err := execute(t, "layout", writeCharts(t), "-o", "-")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	var doc struct {
		Locale string `json:"locale"`
		Gauges []struct {
			Name        string  `json:"name"`
			ValueScale  float64 `json:"value_scale"`
			Transform   string  `json:"transform"`
			DisplayText string  `json:"display_value"`
		} `json:"gauges"`
		Cards []struct {
			Name     string `json:"name"`
			Value    string `json:"value"`
			Counting bool   `json:"counting"`
		} `json:"cards"`
		Pies []struct {
			Slices []json.RawMessage `json:"slices"`
		} `json:"pies"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	if doc.Locale != "en" {
		t.Errorf("locale = %q, want en", doc.Locale)
	}
	if len(doc.Gauges) != 1 || doc.Gauges[0].Name != "cpu" || doc.Gauges[0].DisplayText != "42" {
		t.Errorf("gauges = %+v", doc.Gauges)
	}
	if doc.Gauges[0].ValueScale == 1 {
		t.Error("gauge text was not fitted")
	}
	if len(doc.Cards) != 1 || doc.Cards[0].Value != "1,234" || doc.Cards[0].Counting {
		t.Errorf("cards = %+v, want settled 1,234", doc.Cards)
	}
	if len(doc.Pies) != 1 || len(doc.Pies[0].Slices) != 2 {
		t.Errorf("pies = %+v", doc.Pies)
	}
}

func TestLayoutCommandWritesFile(t *testing.T) {
	input := writeCharts(t)
	out, err := execute(t, "layout", input, "--compact")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	want := strings.TrimSuffix(input, ".toml") + ".layout.json"
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("expected output at %s: %v", want, err)
	}
	if bytes.Contains(data, []byte("\n")) {
		t.Error("--compact output contains newlines")
	}
	if !strings.Contains(out, want) {
		t.Errorf("output does not mention %s:\n%s", want, out)
	}
}

func TestLayoutCommandErrors(t *testing.T) {
	_, err := execute(t, "layout", filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("[[pie]]\nscheme = \"nope\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "layout", bad); err == nil {
		t.Error("layout with an unknown scheme succeeded")
	}
}

func TestCountPlain(t *testing.T) {
	out, err := execute(t, "count", "--plain", "--to", "1234.5", "--duration", "100ms")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 3 {
		t.Fatalf("got %d frames, want several:\n%s", len(lines), out)
	}
	if !strings.HasSuffix(lines[0], "0.0") {
		t.Errorf("first frame = %q, want 0.0", lines[0])
	}
	if last := lines[len(lines)-1]; !strings.HasSuffix(last, "1,234.5") {
		t.Errorf("last frame = %q, want 1,234.5", last)
	}
}

func TestCountPlainLocale(t *testing.T) {
	out, err := execute(t, "count", "--plain", "--to", "1234.5", "--duration", "50ms", "--locale", "de")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "1.234,5") {
		t.Errorf("last frame not in German format:\n%s", out)
	}
}

func TestFitCommand(t *testing.T) {
	out, err := execute(t, "fit", "1,234", "--width", "120", "--height", "40")
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	for _, want := range []string{"scale", "passes", "card font"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSchemesCommand(t *testing.T) {
	out, err := execute(t, "schemes")
	if err != nil {
		t.Fatalf("schemes: %v", err)
	}
	for _, want := range []string{"cool", "vivid", "ordinal"} {
		if !strings.Contains(out, want) {
			t.Errorf("list missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, "schemes", "cool", "--keys", "a,b")
	if err != nil {
		t.Fatalf("schemes cool: %v", err)
	}
	if !strings.Contains(out, "#a8385d") || !strings.Contains(out, "#7aa3e5") {
		t.Errorf("scheme detail missing colors:\n%s", out)
	}

	if _, err := execute(t, "schemes", "rainbow"); !errors.Is(err, errors.ErrCodeInvalidScheme) {
		t.Errorf("unknown scheme error = %v, want %s", err, errors.ErrCodeInvalidScheme)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "chartkit") {
		t.Error("bash completion does not mention chartkit")
	}
}

func TestWatchLayout(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "charts.toml")
	output := filepath.Join(dir, "out.json")
	if err := os.WriteFile(input, []byte("[[gauge]]\nname = \"g\"\nvalue = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var logs, out bytes.Buffer
	c := New(&logs, log.InfoLevel)
	ctx, cancel := context.WithCancel(withLogger(context.Background(), c.Logger))
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- c.watchLayout(ctx, input, layoutOptions{output: output, compact: true}, &out)
	}()

	waitFor := func(want string) {
		t.Helper()
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			if data, err := os.ReadFile(output); err == nil && strings.Contains(string(data), want) {
				return
			}
			time.Sleep(20 * time.Millisecond)
		}
		t.Fatalf("output never contained %s", want)
	}

	waitFor(`"display_value":"1"`)
	if err := os.WriteFile(input, []byte("[[gauge]]\nname = \"g\"\nvalue = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(`"display_value":"2"`)

	cancel()
	select {
	case err := <-errc:
		if err != context.Canceled {
			t.Errorf("watchLayout() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchLayout did not stop after cancel")
	}
}
