package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

var (
	testBinary     string
	testBinaryOnce sync.Once
	testBinaryErr  error
)

// buildTestBinary builds the ballast binary once for all tests
func buildTestBinary() (string, error) {
	testBinaryOnce.Do(func() {
		tmpBinary := filepath.Join(os.TempDir(), "ballast-test")
		cmd := exec.Command("go", "build", "-o", tmpBinary, ".")
		if out, err := cmd.CombinedOutput(); err != nil {
			testBinaryErr = err
			testBinary = string(out)
			return
		}
		testBinary = tmpBinary
	})

	if testBinaryErr != nil {
		return "", testBinaryErr
	}
	return testBinary, nil
}

// TestVersionCommand tests the version command
func TestVersionCommand(t *testing.T) {
	binary, err := buildTestBinary()
	if err != nil {
		t.Fatalf("failed to build test binary: %v", err)
	}

	out, err := exec.Command(binary, "version").CombinedOutput()
	if err != nil {
		t.Fatalf("version command failed: %v\n%s", err, out)
	}

	if !strings.Contains(string(out), "ballast version:") {
		t.Errorf("unexpected version output: %s", out)
	}
}

// TestRunCommand runs one full pass and checks it exits zero even with
// nothing routable in the environment
func TestRunCommand(t *testing.T) {
	binary, err := buildTestBinary()
	if err != nil {
		t.Fatalf("failed to build test binary: %v", err)
	}

	cmd := exec.Command(binary, "run")
	cmd.Dir = t.TempDir() // no ballast.yml, defaults apply
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("run command failed: %v\n%s", err, out)
	}

	output := string(out)
	if !strings.Contains(output, "Types touched:") {
		t.Errorf("run output missing walk summary: %s", output)
	}
	if !strings.Contains(output, "Anchor storage:") {
		t.Errorf("run output missing final anchor: %s", output)
	}
}
