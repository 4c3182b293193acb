package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"invtrack/pkg/inventory/memory"
)

func TestShellSession(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	in := strings.NewReader("add apple 5\nadd apple 3\nget apple\nget banana\nreport\nquit\n")
	var out bytes.Buffer

	if err := runShell(ctx, store, in, &out, 5); err != nil {
		t.Fatalf("shell: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "apple: 8") {
		t.Fatalf("expected accumulated total in output:\n%s", got)
	}

	// The session is saved on quit.
	inv, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if q := inv.Quantity("apple"); q != 8 {
		t.Fatalf("expected saved quantity 8, got %d", q)
	}
}

func TestShellRejectsUnknownCommands(t *testing.T) {
	store := memory.New()
	in := strings.NewReader("__import__('os') system\ndelete everything\nquit\n")
	var out bytes.Buffer

	if err := runShell(context.Background(), store, in, &out, 5); err != nil {
		t.Fatalf("shell: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, `unknown command "__import__('os')"`) {
		t.Fatalf("code-shaped input must be rejected, got:\n%s", got)
	}
	if !strings.Contains(got, `unknown command "delete"`) {
		t.Fatalf("expected unknown command error, got:\n%s", got)
	}
}

func TestShellReportsErrorsAndContinues(t *testing.T) {
	store := memory.New()
	in := strings.NewReader("add apple notanumber\nremove orange 1\nadd apple 2\nquit\n")
	var out bytes.Buffer

	if err := runShell(context.Background(), store, in, &out, 5); err != nil {
		t.Fatalf("shell: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "must be an integer") {
		t.Fatalf("expected quantity parse error, got:\n%s", got)
	}
	if !strings.Contains(got, "item not found") {
		t.Fatalf("expected not-found error, got:\n%s", got)
	}
	if !strings.Contains(got, "apple: 2") {
		t.Fatalf("session must continue after errors, got:\n%s", got)
	}
}
