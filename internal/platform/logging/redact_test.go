package logging_test

import (
	"strings"
	"testing"

	"github.com/jsamuelsen11/demo-bd/internal/platform/logging"
)

func TestRedactValue_FieldNames(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"authorization", "password", "secret", "token", "x-api-key", "secret_value"} {
		got := logging.RedactValue(key, "hunter2")
		if got == "hunter2" {
			t.Errorf("RedactValue(%q) = %v, want it redacted", key, got)
		}
	}
}

func TestRedactValue_BearerRegex(t *testing.T) {
	t.Parallel()

	got, _ := logging.RedactValue("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9").(string)

	if strings.Contains(got, "eyJhbGciOiJSUzI1NiJ9") {
		t.Errorf("RedactValue = %q, want the token redacted", got)
	}
}

func TestRedactValue_KeepsNonSensitive(t *testing.T) {
	t.Parallel()

	if got := logging.RedactValue("user_id", "usr-123"); got != "usr-123" {
		t.Errorf("RedactValue(user_id) = %v, want usr-123", got)
	}
	if got := logging.RedactValue("empty", nil); got != nil {
		t.Errorf("RedactValue(nil) = %v, want nil", got)
	}
}
