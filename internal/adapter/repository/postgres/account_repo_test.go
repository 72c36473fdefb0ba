package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	tests := []string{"0", "1", "100", "12.34", "-5.5", "0.000001", "99999999999.999999"}

	for _, s := range tests {
		want := decimal.RequireFromString(s)
		got := numericToDecimal(decimalToNumeric(want))

		if !got.Equal(want) {
			t.Errorf("round trip of %s yielded %s", want, got)
		}
	}
}

func TestNumericToDecimalInvalid(t *testing.T) {
	got := numericToDecimal(pgtype.Numeric{})
	if !got.IsZero() {
		t.Errorf("expected zero for invalid numeric, got %s", got)
	}
}
