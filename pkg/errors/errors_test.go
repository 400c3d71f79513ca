package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidColor, "invalid fill color: %q", "notacolor")

	if err.Code != ErrCodeInvalidColor {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidColor)
	}
	if !strings.Contains(err.Error(), "notacolor") {
		t.Errorf("Error() should contain offending value, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), string(ErrCodeInvalidColor)) {
		t.Errorf("Error() should contain the code, got %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "failed to fetch %s", "https://example.com")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() should include cause, got %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeUnsupportedShape, "unsupported shape type: %q", "kite")

	if !Is(err, ErrCodeUnsupportedShape) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeInvalidColor) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeUnsupportedShape) {
		t.Error("Is should not match plain errors")
	}

	// Code survives wrapping with fmt.Errorf
	wrapped := fmt.Errorf("produce entry 2: %w", err)
	if !Is(wrapped, ErrCodeUnsupportedShape) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "missing")); got != ErrCodeNotFound {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %s, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidLink, "unrecognized link: %q", "ftp://nope")
	msg := UserMessage(err)
	if strings.Contains(msg, string(ErrCodeInvalidLink)) {
		t.Errorf("UserMessage should strip the code prefix, got %q", msg)
	}
	if !strings.Contains(msg, "ftp://nope") {
		t.Errorf("UserMessage should keep the detail, got %q", msg)
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"scene.json", false},
		{"out/scene.json", false},
		{"", true},
		{"../escape.json", true},
		{"bad\x00name", true},
		{strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		err := ValidateOutputPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://api.example.com", false},
		{"http://localhost:8080", false},
		{"", true},
		{"ftp://example.com", true},
		{"example.com", true},
	}

	for _, tt := range tests {
		err := ValidateURL(tt.url)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
}
