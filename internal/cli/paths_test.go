package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputBase(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derived from input", "", "essay.txt", "essay"},
		{"stdin input", "", "", stdinBase},
		{"dash input", "", "-", stdinBase},
		{"explicit output", "out", "essay.txt", "out"},
		{"output with format ext", "cloud.svg", "essay.txt", "cloud"},
		{"output with unknown ext", "cloud.bak", "essay.txt", "cloud.bak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputBase(tt.output, tt.input); got != tt.want {
				t.Errorf("outputBase(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestArtifactPath(t *testing.T) {
	// Single format with matching extension keeps the flag verbatim.
	if got := artifactPath("cloud", "svg", true, "cloud.svg"); got != "cloud.svg" {
		t.Errorf("artifactPath = %q, want cloud.svg", got)
	}
	// Multiple formats always derive from the base.
	if got := artifactPath("cloud", "png", false, "cloud.svg"); got != "cloud.png" {
		t.Errorf("artifactPath = %q, want cloud.png", got)
	}
	if got := artifactPath("essay", "json", true, ""); got != "essay.json" {
		t.Errorf("artifactPath = %q, want essay.json", got)
	}
}

func TestReadInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("hello words"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput error: %v", err)
	}
	if got != "hello words" {
		t.Errorf("readInput = %q, want %q", got, "hello words")
	}
}

func TestReadInput_Missing(t *testing.T) {
	if _, err := readInput(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestWriteArtifact_CreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "cloud.svg")
	if err := writeArtifact(path, []byte("<svg/>")); err != nil {
		t.Fatalf("writeArtifact error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("content = %q, want <svg/>", data)
	}
}

func TestCacheDir(t *testing.T) {
	// Clear XDG_CACHE_HOME to test default behavior
	oldXdg := os.Getenv("XDG_CACHE_HOME")
	os.Unsetenv("XDG_CACHE_HOME")
	defer func() {
		if oldXdg != "" {
			os.Setenv("XDG_CACHE_HOME", oldXdg)
		}
	}()

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	if dir == "" {
		t.Error("cacheDir() returned empty string")
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}

	if !strings.HasSuffix(dir, appName) {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}

	if !strings.Contains(dir, ".cache") {
		t.Errorf("cacheDir() = %q, should contain '.cache'", dir)
	}
}

func TestCacheDirStructure(t *testing.T) {
	// Clear XDG_CACHE_HOME to test default behavior
	oldXdg := os.Getenv("XDG_CACHE_HOME")
	os.Unsetenv("XDG_CACHE_HOME")
	defer func() {
		if oldXdg != "" {
			os.Setenv("XDG_CACHE_HOME", oldXdg)
		}
	}()

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := "/tmp/custom-cache"
	oldXdg := os.Getenv("XDG_CACHE_HOME")
	os.Setenv("XDG_CACHE_HOME", customCache)
	defer func() {
		if oldXdg != "" {
			os.Setenv("XDG_CACHE_HOME", oldXdg)
		} else {
			os.Unsetenv("XDG_CACHE_HOME")
		}
	}()

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}
