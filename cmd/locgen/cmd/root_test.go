package cmd

import (
	"errors"
	"strings"
	"testing"

	lgerror "github.com/locgen/locgen/core/error"
)

func TestFormatError(t *testing.T) {
	t.Run("coded error carries its code", func(t *testing.T) {
		err := lgerror.New("bad locale tag").WithCode(lgerror.CodeValidationFailed)
		out := formatError("validation failed", err)
		if !strings.Contains(out, "[VALIDATION_FAILED]") {
			t.Errorf("Expected the error code in the output, got %q", out)
		}
		if !strings.Contains(out, "bad locale tag") {
			t.Errorf("Expected the message in the output, got %q", out)
		}
	})

	t.Run("plain error prints without a code", func(t *testing.T) {
		out := formatError("something broke", errors.New("disk full"))
		if strings.Contains(out, "[") {
			t.Errorf("Expected no code bracket for a plain error, got %q", out)
		}
		if out != "Error: something broke: disk full" {
			t.Errorf("Unexpected output: %q", out)
		}
	})
}
