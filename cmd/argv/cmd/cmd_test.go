package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/shlex"

	mdwerror "github.com/msto63/argv/foundation/core/error"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	classifyFlags = classifierFlags{}
	exploreFlags = classifierFlags{}
	outputFormat, commandLine = "table", ""
	logLevel, logFormat, logFile, verbose = "warn", "console", "", false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := Execute()
	return stdout.String(), stderr.String(), err
}

func TestClassifyTokens(t *testing.T) {
	out, _, err := execute(t, "classify", "-o", "tokens", "-c", "output,j", "--",
		"build", "--output", "bin/app", "-vj", "4", "my file")
	if err != nil {
		t.Fatalf("classify error = %v", err)
	}
	if want := "build --output=bin/app -vj=4 \"my file\"\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestClassifyJSON(t *testing.T) {
	out, _, err := execute(t, "classify", "--output", "json", "-c", "o", "--", "-o", "x", "-5", "--dry-run")
	if err != nil {
		t.Fatalf("classify error = %v", err)
	}

	var got []map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	want := []map[string]string{
		{"kind": "flag", "name": "o", "value": "x"},
		{"kind": "parameter", "name": "-5"},
		{"kind": "option", "name": "dry-run"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyTable(t *testing.T) {
	out, _, err := execute(t, "classify", "-c", "output", "--", "--output", "bin/app", "main.go")
	if err != nil {
		t.Fatalf("classify error = %v", err)
	}
	for _, want := range []string{"KIND", "option", "bin/app", "main.go", "2 records, 1 captured values, 1 parameters"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestClassifyLineAndProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "argv.hcl")
	content := "classifier {\n  name = \"win\"\n  delimiters = [\"/\", \"-\"]\n  negative_numbers = false\n  captures = [\"/out\"]\n}\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "classify", "-p", path, "-o", "tokens", "--line", `//out 'C:\build dir' /x`, "--", "-7")
	if err != nil {
		t.Fatalf("classify error = %v", err)
	}
	if want := "\"//out=C:\\\\build dir\" /x7\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	out, _, err = execute(t, "classify", "-p", path, "-d", "-", "-c", "n", "-o", "tokens", "--", "/out", "-n", "1")
	if err != nil {
		t.Fatalf("classify with overrides error = %v", err)
	}
	if want := "/out -n=1\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExitCodes(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.toml")

	tests := []struct {
		name     string
		args     []string
		wantCode mdwerror.Code
		wantExit int
	}{
		{"unknown output", []string{"classify", "-o", "xml", "--", "a"}, mdwerror.CodeInvalidInput, 64},
		{"unterminated line", []string{"classify", "--line", `a "b`}, mdwerror.CodeInvalidInput, 64},
		{"missing profile", []string{"classify", "-p", missing, "--", "a"}, mdwerror.CodeNotFound, 66},
		{"equals delimiter", []string{"classify", "-d", "=", "--", "a"}, mdwerror.CodeInvalidConfig, 78},
		{"bad log level", []string{"--log-level", "loud", "classify", "--", "a"}, mdwerror.CodeInvalidInput, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("want error")
			}
			if !mdwerror.HasCode(err, tt.wantCode) {
				t.Errorf("error = %v (code %v), want %v", err, mdwerror.GetCode(err), tt.wantCode)
			}
			if got := ExitCode(err); got != tt.wantExit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.wantExit)
			}
			if !strings.Contains(stderr, "Error:") {
				t.Errorf("stderr = %q, want error line", stderr)
			}
		})
	}

	if ExitCode(nil) != 0 {
		t.Error("ExitCode(nil) must be 0")
	}
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "argv.log")

	_, stderr, err := execute(t, "--log-level", "trace", "--log-format", "json", "--log-file", path,
		"classify", "-o", "tokens", "--", "-ab")
	if err != nil {
		t.Fatalf("classify error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	for _, want := range []string{`"classify completed"`, `"classified token"`, `"request_id"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log file missing %s:\n%s", want, data)
		}
	}
	if !strings.Contains(stderr, "classify completed") {
		t.Errorf("stderr does not mirror the log file:\n%s", stderr)
	}
}

func TestFailureIsLogged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "argv.log")

	if _, _, err := execute(t, "--log-level", "debug", "--log-format", "json", "--log-file", path,
		"classify", "-o", "xml", "--", "a"); err == nil {
		t.Fatal("want error")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	for _, want := range []string{`"command failed"`, `"code":"INVALID_INPUT"`, `"module":"cli"`, `"operation":"output"`, `"error":"invalid input for cli.output`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log file missing %s:\n%s", want, data)
		}
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "argv "+Version) || !strings.Contains(out, "Go Version") {
		t.Errorf("version output = %q", out)
	}
}

func TestQuoteLineRoundTrip(t *testing.T) {
	args := []string{"plain", "with space", "it's", `back\slash`, `"quoted"`, "#hash", "-x=1"}

	got, err := shlex.Split(quoteLine(args))
	if err != nil {
		t.Fatalf("shlex.Split() error = %v", err)
	}
	if diff := cmp.Diff(args, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
