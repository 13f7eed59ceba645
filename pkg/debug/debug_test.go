package debug

import "testing"

func TestSetEnabled(t *testing.T) {
	orig := enabled
	defer SetEnabled(orig)

	SetEnabled(true)
	if !Enabled() {
		t.Error("Enabled() = false after SetEnabled(true)")
	}
	// Logging with a live logger must not panic.
	Log("test message %d", 1)
	done := LogEnterExit("testFunc")
	done()

	SetEnabled(false)
	if Enabled() {
		t.Error("Enabled() = true after SetEnabled(false)")
	}
	Log("dropped message")
}
