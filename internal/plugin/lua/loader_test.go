package lua

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/maskedit/internal/registry"
)

func TestLoadScriptRegistersMask(t *testing.T) {
	reg := registry.New()
	l := NewLoader(reg)
	defer l.Close()

	err := l.LoadScript("test", `
maskedit.register{
  name = "plate",
  pattern = "LLL-000",
  description = "license plate",
}
`)
	if err != nil {
		t.Fatalf("LoadScript error = %v", err)
	}

	def, ok := reg.Lookup("plate")
	if !ok {
		t.Fatal("script-registered mask not found")
	}
	if def.Pattern != "LLL-000" {
		t.Errorf("pattern = %q, want %q", def.Pattern, "LLL-000")
	}
}

func TestLoadScriptValidator(t *testing.T) {
	reg := registry.New()
	l := NewLoader(reg)
	defer l.Close()

	err := l.LoadScript("test", `
maskedit.register{ name = "month", pattern = "00" }
maskedit.validator("month", function(raw)
  local n = tonumber(raw)
  return n ~= nil and n >= 1 and n <= 12
end)
`)
	if err != nil {
		t.Fatalf("LoadScript error = %v", err)
	}

	validate, ok := l.Validator("month")
	if !ok {
		t.Fatal("validator not registered")
	}
	tests := []struct {
		raw  string
		want bool
	}{
		{"01", true},
		{"12", true},
		{"13", false},
		{"00", false},
		{"xx", false},
	}
	for _, tt := range tests {
		if got := validate(tt.raw); got != tt.want {
			t.Errorf("validate(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestLoadScriptErrorIsolated(t *testing.T) {
	reg := registry.New()
	l := NewLoader(reg)
	defer l.Close()

	if err := l.LoadScript("bad", `this is not lua`); err == nil {
		t.Error("LoadScript of invalid source succeeded")
	}

	// A later script still loads.
	if err := l.LoadScript("good", `maskedit.register{ name = "ok", pattern = "00" }`); err != nil {
		t.Fatalf("LoadScript after failure error = %v", err)
	}
	if _, ok := reg.Lookup("ok"); !ok {
		t.Error("mask from later script missing")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	good := `maskedit.register{ name = "from-file", pattern = "0000" }`
	bad := `maskedit.register{ name = "", pattern = "" }`
	if err := os.WriteFile(filepath.Join(dir, "10-good.lua"), []byte(good), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "20-bad.lua"), []byte(bad), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("writing non-script: %v", err)
	}

	reg := registry.New()
	l := NewLoader(reg)
	defer l.Close()

	if err := l.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir error = %v", err)
	}
	if _, ok := reg.Lookup("from-file"); !ok {
		t.Error("mask from good script missing")
	}
	if len(l.Errors()) != 1 {
		t.Errorf("Errors() = %v, want one entry for the bad script", l.Errors())
	}
}

func TestLoadDirMissing(t *testing.T) {
	l := NewLoader(registry.New())
	defer l.Close()
	if err := l.LoadDir(filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Errorf("LoadDir of missing directory error = %v, want nil", err)
	}
}

func TestSandboxWithholdsIO(t *testing.T) {
	l := NewLoader(registry.New())
	defer l.Close()

	err := l.LoadScript("escape", `io.open("/etc/passwd")`)
	if err == nil {
		t.Error("script reached the io library inside the sandbox")
	}
}
