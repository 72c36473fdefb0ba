package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/health", "/health"},
		{"/api/v1/recalculations", "/api/v1/recalculations"},
		{"/api/v1/counterparties/cp-42", "/api/v1/counterparties/:id"},
		{"/api/v1/counterparties/cp-42/recalculate", "/api/v1/counterparties/:id/recalculate"},
		{"/api/v1/counterparties/cp-42/pending-invoices", "/api/v1/counterparties/:id/pending-invoices"},
		{"/api/v1/counterparties/", "/api/v1/counterparties/"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.path); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
