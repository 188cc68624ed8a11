package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the magsub binary and checks exit codes and output.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "magsub"
	if runtime.GOOS == "windows" {
		binName = "magsub.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD; build from the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/magsub")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build magsub: %v", err)
	}

	jobs := filepath.Join(tmpDir, "jobs.txt")
	if err := os.WriteFile(jobs, []byte("10 3\n3 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantOut  string // substring match
		wantCode int
	}{
		{"Signed subtraction", []string{"265252859812191058636308480000000", "26525285981219105863630848000000"}, "", "= 238727573830971952772677632000000", 0},
		{"Negative result", []string{"-q", "26525285981219105863630848000000", "265252859812191058636308480000000"}, "", "-238727573830971952772677632000000", 0},
		{"Strict underflow", []string{"--op", "sub", "2", "5"}, "", "b is larger than a", 2},
		{"Parse error", []string{"1x", "2"}, "", "invalid unsigned integer", 3},
		{"Config error", []string{"--radix", "1", "1", "2"}, "", "radix", 4},
		{"Batch file", []string{"-q", "--batch", jobs}, "", "7\n-7", 0},
		{"Batch stdin", []string{"-q", "--batch", "-"}, "5 5\n", "0", 0},
		{"Help", []string{"--help"}, "", "usage", 0},
		{"Version", []string{"--version"}, "", "magsub", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			cmd.Stdin = strings.NewReader(tt.stdin)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running magsub: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}
			if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
