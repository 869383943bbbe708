package main

import "testing"

func TestHostSource(t *testing.T) {
	t.Run("explicit host wins", func(t *testing.T) {
		t.Setenv("APP_HOST", "from-env.example.com")

		source := hostSource("explicit.example.com", "APP_HOST")
		name, err := source.HostName()
		if err != nil {
			t.Fatalf("HostName returned error: %v", err)
		}
		if name != "explicit.example.com" {
			t.Fatalf("expected explicit host, got %s", name)
		}
	})

	t.Run("env variable when no explicit host", func(t *testing.T) {
		t.Setenv("APP_HOST", "from-env.example.com")

		source := hostSource("", "APP_HOST")
		name, err := source.HostName()
		if err != nil {
			t.Fatalf("HostName returned error: %v", err)
		}
		if name != "from-env.example.com" {
			t.Fatalf("expected env host, got %s", name)
		}
	})

	t.Run("falls back to OS host name", func(t *testing.T) {
		source := hostSource("", "")
		name, err := source.HostName()
		if err != nil {
			t.Fatalf("HostName returned error: %v", err)
		}
		if name == "" {
			t.Fatalf("expected a non-empty OS host name")
		}
	})
}
