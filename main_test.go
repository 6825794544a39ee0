package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
)

func runApp(t *testing.T, args ...string) error {
	t.Helper()
	app := newApp()
	app.Writer = &bytes.Buffer{}
	return app.Run(append([]string{"pathtracer"}, args...))
}

func TestRender_WritesPPM(t *testing.T) {
	out := filepath.Join(t.TempDir(), "basic.ppm")

	err := runApp(t, "render", "--scene", "basic", "--width", "32", "--spp", "2", "--bounces", "4", "--seed", "7", "-o", out)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output failed: %v", err)
	}

	header := "P3\n32 18\n255\n"
	if !strings.HasPrefix(string(data), header) {
		t.Fatalf("Expected header %q, got %q", header, string(data[:min(len(data), 20)]))
	}

	lines := strings.Count(string(data[len(header):]), "\n")
	if lines != 32*18 {
		t.Errorf("Expected %d pixel lines, got %d", 32*18, lines)
	}
}

func TestRender_SameSeedSameBytes(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.ppm")
	second := filepath.Join(dir, "b.ppm")

	args := []string{"render", "--scene", "cover", "--width", "24", "--spp", "2", "--bounces", "5", "--seed", "99"}
	if err := runApp(t, append(args, "--workers", "1", "-o", first)...); err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	if err := runApp(t, append(args, "--workers", "3", "-o", second)...); err != nil {
		t.Fatalf("second render failed: %v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("Renders with the same seed should be byte-identical")
	}
}

func TestRender_UnknownScene(t *testing.T) {
	err := runApp(t, "render", "--scene", "nonexistent", "-o", filepath.Join(t.TempDir(), "x.ppm"))
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestRender_InvalidCamera(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.ppm")
	err := runApp(t, "render", "--scene", "basic", "--width", "0", "-o", out)
	if err == nil {
		t.Fatal("Expected an error for zero width")
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("No image should be written for an invalid camera")
	}
}

func TestScenes_ListsEveryScene(t *testing.T) {
	app := newApp()
	var buf bytes.Buffer
	app.Writer = &buf

	if err := app.Run([]string{"pathtracer", "scenes"}); err != nil {
		t.Fatalf("scenes failed: %v", err)
	}

	for _, name := range scene.Names() {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("Expected scene %q in listing:\n%s", name, buf.String())
		}
	}
}

func TestRender_NegativeWorkers(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.ppm")
	err := runApp(t, "render", "--scene", "basic", "--width", "8", "--spp", "1", "--workers", "-1", "--seed", "3", "-o", out)
	if !errors.Is(err, renderer.ErrInvalidWorkers) {
		t.Errorf("Expected ErrInvalidWorkers, got %v", err)
	}
}
