package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandAt(t *testing.T) {
	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--at", "1483185600", "--tz", "0", "--leap", "table", "--format", "{D} {T}"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")

	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), out.String())
	}

	want := []string{
		"Local | 2016-12-31 12:00:00 | timezone UTC+0",
		"UTC   | 2016-12-31 12:00:00 | MJD 57753.50000",
		"GPS   | 2016-12-31 12:00:17 | week 1929 561617 s",
	}

	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i+1, lines[i], want[i])
		}
	}
}
