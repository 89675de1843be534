package main

import (
	"errors"
	"testing"
)

func TestSimPlayer(t *testing.T) {
	tests := []struct {
		name     string
		hostname func() (string, error)
		expected string
	}{
		{"host", func() (string, error) { return "box", nil }, "sim@box"},
		{"lookup error", func() (string, error) { return "", errors.New("no host") }, "sim@localhost"},
		{"empty host", func() (string, error) { return "", nil }, "sim@localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := simPlayer(tt.hostname); got != tt.expected {
				t.Errorf("simPlayer() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
