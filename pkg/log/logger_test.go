package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetSink(&buf)
	t.Cleanup(func() {
		SetLevel(Notice)
		SetSink(os.Stderr)
	})
	return &buf
}

func TestLoggerRespectsLevel(t *testing.T) {
	buf := captureLogs(t)
	logger := New("test")

	SetLevel(Warning)
	logger.Infof("hidden %d", 1)
	logger.Warningf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden 1") {
		t.Errorf("Expected info message to be filtered at warning level, got %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("Expected warning message in output, got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in output, got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("trace %s", "on")
	if !strings.Contains(buf.String(), "trace on") {
		t.Errorf("Expected debug message at debug level, got %q", buf.String())
	}
}

func TestSetLevel_PerModule(t *testing.T) {
	buf := captureLogs(t)
	renderer := New(ModuleRenderer)
	server := New(ModuleServer)

	SetLevel(Debug, ModuleRenderer)
	renderer.Debugf("row %d", 3)
	server.Debugf("request %d", 4)

	out := buf.String()
	if !strings.Contains(out, "row 3") {
		t.Errorf("Expected renderer debug output, got %q", out)
	}
	if strings.Contains(out, "request 4") {
		t.Errorf("Expected server debug output to stay filtered, got %q", out)
	}
	if GetLevel(ModuleRenderer) != Debug || GetLevel(ModuleServer) != Notice {
		t.Errorf("Expected renderer=debug server=notice, got %v and %v", GetLevel(ModuleRenderer), GetLevel(ModuleServer))
	}

	// A global level clears module overrides
	buf.Reset()
	SetLevel(Notice)
	renderer.Debugf("row %d", 5)
	if strings.Contains(buf.String(), "row 5") {
		t.Errorf("Expected renderer override to be cleared, got %q", buf.String())
	}
}

func TestSetSink_KeepsLevels(t *testing.T) {
	captureLogs(t)
	SetLevel(Error, ModuleServer)

	var next bytes.Buffer
	SetSink(&next)
	New(ModuleServer).Warningf("dropped")
	New(ModuleCLI).Warningf("kept")

	if strings.Contains(next.String(), "dropped") {
		t.Errorf("Expected server level to survive a sink change, got %q", next.String())
	}
	if !strings.Contains(next.String(), "kept") {
		t.Errorf("Expected cli warning in new sink, got %q", next.String())
	}
}

func TestParseModuleLevel(t *testing.T) {
	testCases := []struct {
		input  string
		module string
		level  Level
		valid  bool
	}{
		{"renderer=debug", ModuleRenderer, Debug, true},
		{" server = WARNING ", ModuleServer, Warning, true},
		{"raytracer=info", ModuleCLI, Info, true},
		{"renderer", "", Notice, false},
		{"=debug", "", Notice, false},
		{"renderer=loud", "", Notice, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			module, level, err := ParseModuleLevel(tc.input)
			if tc.valid != (err == nil) {
				t.Fatalf("Expected valid=%v, got error %v", tc.valid, err)
			}
			if !tc.valid {
				return
			}
			if module != tc.module || level != tc.level {
				t.Errorf("Expected %s=%v, got %s=%v", tc.module, tc.level, module, level)
			}
		})
	}
}
