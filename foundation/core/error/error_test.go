// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and the
//              JSON representation used by the logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-03-02 v0.2.0: Tests follow the reduced code set

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	trace := err.StackTrace()
	if len(trace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(trace[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", trace[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("bad delimiter %q", "==")
	if err.Error() != `bad delimiter "=="` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("original").WithCode(CodeInvalidConfig),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original",
			wantCode: CodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if result != nil {
					t.Errorf("Wrap() = %v, want nil", result)
				}
				return
			}

			if result.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", result.Error(), tt.wantMsg)
			}
			if result.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", result.Code(), tt.wantCode)
			}
			if !errors.Is(result, tt.err) {
				t.Error("errors.Is should find the wrapped cause")
			}
		})
	}
}

func TestWrapInheritsDetails(t *testing.T) {
	inner := New("inner").WithDetail("path", "/tmp/p.toml")
	outer := Wrap(inner, "outer")

	if outer.Details()["path"] != "/tmp/p.toml" {
		t.Errorf("Details() = %v, want inherited path", outer.Details())
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidConfig, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetails(map[string]interface{}{"a": 1, "b": 2})
	details := err.Details()
	details["a"] = 99

	if err.Details()["a"] != 1 {
		t.Error("Details() must return a copy")
	}
}

func TestHasCode(t *testing.T) {
	base := New("base").WithCode(CodeNotFound)
	wrapped := Wrap(base, "outer").WithCode(CodeConfigError)
	stdWrapped := fmt.Errorf("std: %w", wrapped)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", base, CodeNotFound, true},
		{"outer code", wrapped, CodeConfigError, true},
		{"inner code through chain", wrapped, CodeNotFound, true},
		{"through fmt wrapping", stdWrapped, CodeNotFound, true},
		{"absent", wrapped, CodeInvalidFormat, false},
		{"standard error", errors.New("plain"), CodeUnknown, false},
		{"nil", nil, CodeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	err := New("x").WithCode(CodeInvalidFormat)

	if GetCode(err) != CodeInvalidFormat {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() on plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() on plain error should be SeverityMedium")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "outer")

	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}

	single := New("alone")
	if single.RootCause() != single {
		t.Error("RootCause() of an unwrapped error should be itself")
	}
}

func TestString(t *testing.T) {
	err := New("bad rules").
		WithCode(CodeInvalidConfig).
		WithOperation("args.PrefixRules.Validate").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{
		"Error: bad rules",
		"Code: INVALID_CONFIG",
		"Operation: args.PrefixRules.Validate",
		"Details: {a=1, b=2}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "outer").
		WithCode(CodeInvalidInput).
		WithOperation("profile.Load")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal() error = %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jsonErr)
	}

	if decoded["code"] != "INVALID_INPUT" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "profile.Load" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
}

func TestCodeHelpers(t *testing.T) {
	tests := []struct {
		code     Code
		valid    bool
		category string
		exit     int
	}{
		{CodeInvalidConfig, true, "configuration", 78},
		{CodeInvalidFormat, true, "validation", 64},
		{CodeNotFound, true, "generic", 66},
		{CodeInternal, true, "generic", 1},
		{Code("MADE_UP"), false, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if tt.code.IsValid() != tt.valid {
				t.Errorf("IsValid() = %v, want %v", tt.code.IsValid(), tt.valid)
			}
			if tt.code.Category() != tt.category {
				t.Errorf("Category() = %v, want %v", tt.code.Category(), tt.category)
			}
			if tt.code.ExitCode() != tt.exit {
				t.Errorf("ExitCode() = %v, want %v", tt.code.ExitCode(), tt.exit)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
		alert    bool
	}{
		{SeverityLow, "low", false},
		{SeverityMedium, "medium", false},
		{SeverityHigh, "high", true},
		{SeverityCritical, "critical", true},
		{Severity(42), "unknown", true},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if tt.severity.String() != tt.want {
				t.Errorf("String() = %v, want %v", tt.severity.String(), tt.want)
			}
			if tt.severity.ShouldAlert() != tt.alert {
				t.Errorf("ShouldAlert() = %v, want %v", tt.severity.ShouldAlert(), tt.alert)
			}
		})
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New("benchmark error")
	}
}

func BenchmarkWrap(b *testing.B) {
	base := New("base").WithCode(CodeInvalidConfig)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(base, "wrapped")
	}
}
