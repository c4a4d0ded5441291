package main

import (
	"bytes"
	"strings"
	"testing"
)

func runRoot(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		flagDrag = ""
		flagSeed = 0
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error = %v", args, err)
	}
	return out.String()
}

func TestShowIsDeterministic(t *testing.T) {
	first := runRoot(t, "show", "classic", "--seed", "42")
	second := runRoot(t, "show", "classic", "--seed", "42")

	if first != second {
		t.Errorf("same seed printed different boards:\n%s\n%s", first, second)
	}
	if !strings.HasPrefix(first, "classic (seed 42)\n") {
		t.Errorf("output = %q, expected header", first)
	}

	lines := strings.Split(strings.TrimSpace(first), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header and 5 board rows, got %d lines", len(lines))
	}
	for _, row := range lines[1:] {
		if len(strings.Fields(row)) != 5 {
			t.Errorf("row %q should have 5 tiles", row)
		}
	}
}

func TestShowShortDragClearsNothing(t *testing.T) {
	out := runRoot(t, "show", "--seed", "1", "--drag", "0,0")

	if !strings.Contains(out, "(0,0) begun") {
		t.Errorf("output = %q, expected drag report", out)
	}
	if !strings.Contains(out, "nothing cleared") {
		t.Errorf("output = %q, expected nothing cleared", out)
	}
}

func TestShowRejectsBadDrag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	rootCmd.SetArgs([]string{"show", "--drag", "x"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagDrag = ""
	})

	if err := rootCmd.Execute(); err == nil {
		t.Error("malformed --drag should fail")
	}
}
