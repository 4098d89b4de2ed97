package main

import "testing"

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "host", "port", "debug", "log-level"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing flag %q", name)
		}
	}
	if got := cmd.Flags().Lookup("port").DefValue; got != "5000" {
		t.Fatalf("default port = %q, want 5000", got)
	}
	if got := cmd.Flags().Lookup("host").DefValue; got != "0.0.0.0" {
		t.Fatalf("default host = %q, want 0.0.0.0", got)
	}
}
