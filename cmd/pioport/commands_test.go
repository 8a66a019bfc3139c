package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muurk/pioport/internal/config"
	"github.com/muurk/pioport/internal/project"
)

func loadTestProject(t *testing.T, content string) (*project.Config, string) {
	t.Helper()
	dir := t.TempDir()
	settings := &config.Settings{
		PlatformIOFile: filepath.Join(dir, "platformio.ini"),
		ConfigFile:     filepath.Join(dir, "platformio_override.ini"),
		Section:        "common",
	}
	if err := os.WriteFile(settings.ConfigFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	proj, err := project.Load(settings, func(string) bool { return true })
	if err != nil {
		t.Fatalf("project.Load() error = %v", err)
	}
	return proj, settings.ConfigFile
}

func TestPersistSelection_DryRunLeavesFileUntouched(t *testing.T) {
	content := "[common]\nupload_port = /dev/tty.usbserial-OLD1\nupload_speed = 921600\n"
	proj, path := loadTestProject(t, content)

	if err := persistSelection(proj, "/dev/tty.usbserial-AB12", true); err != nil {
		t.Fatalf("persistSelection() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != content {
		t.Errorf("dry run modified the override config:\ngot:\n%s\nwant:\n%s", data, content)
	}
}

func TestPersistSelection_WritesSelectedPort(t *testing.T) {
	proj, path := loadTestProject(t, "[common]\nupload_speed = 921600\n")

	if err := persistSelection(proj, "/dev/tty.usbserial-AB12", false); err != nil {
		t.Fatalf("persistSelection() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	saved := string(data)
	if !strings.Contains(saved, "upload_port") || !strings.Contains(saved, "/dev/tty.usbserial-AB12") {
		t.Errorf("saved file missing selected port:\n%s", saved)
	}
	if !strings.Contains(saved, "upload_speed") {
		t.Errorf("saved file lost existing keys:\n%s", saved)
	}
}
