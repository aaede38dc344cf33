package main

import "testing"

func TestEnvOr(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	if got := envOr("LOG_LEVEL", "info"); got != "debug" {
		t.Fatalf("got %q want %q", got, "debug")
	}
	t.Setenv("LOG_LEVEL", "")
	if got := envOr("LOG_LEVEL", "info"); got != "info" {
		t.Fatalf("got %q want %q", got, "info")
	}
}
