package executor

import (
	"context"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	exec := New()

	out, err := exec.Execute(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Execute() output = %q, want hello", out)
	}
}

func TestExecuteWithInput(t *testing.T) {
	exec := New()

	out, err := exec.ExecuteWithInput(context.Background(), "payload\n", "cat")
	if err != nil {
		t.Fatalf("ExecuteWithInput() error = %v", err)
	}
	if strings.TrimSpace(out) != "payload" {
		t.Errorf("ExecuteWithInput() output = %q, want payload", out)
	}
}

func TestExecuteFailure(t *testing.T) {
	exec := New()

	if _, err := exec.Execute(context.Background(), "false"); err == nil {
		t.Error("Execute() should fail for non-zero exit")
	}
}

func TestExecuteMissingBinary(t *testing.T) {
	exec := New()

	if _, err := exec.Execute(context.Background(), "definitely-not-a-binary-xyz"); err == nil {
		t.Error("Execute() should fail for missing binary")
	}
}
