package domain_test

import (
	"errors"
	"testing"

	"github.com/iho/cartera/internal/domain"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name                  string
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{"defaults applied", 0, 0, 50, 0},
		{"negative values clamped", -1, -10, 50, 0},
		{"limit capped at max", 10000, 5, 500, 5},
		{"valid values pass through", 25, 100, 25, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := domain.ValidatePagination(tt.limit, tt.offset)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("expected (%d, %d), got (%d, %d)", tt.wantLimit, tt.wantOffset, limit, offset)
			}
		})
	}
}

func TestParseBalanceRole(t *testing.T) {
	tests := []struct {
		input string
		want  domain.BalanceRole
	}{
		{"receivable", domain.RoleReceivable},
		{"RECEIVABLE", domain.RoleReceivable},
		{"cxc", domain.RoleReceivable},
		{"payable", domain.RolePayable},
		{" cxp ", domain.RolePayable},
	}

	for _, tt := range tests {
		got, err := domain.ParseBalanceRole(tt.input)
		if err != nil {
			t.Errorf("ParseBalanceRole(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBalanceRole(%q): expected %q, got %q", tt.input, tt.want, got)
		}
	}

	if _, err := domain.ParseBalanceRole("equity"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}
