package money

import (
	"encoding/json"
	"testing"
)

func TestMarshalTwoFractionDigits(t *testing.T) {
	tests := []struct {
		in   Amount
		want string
	}{
		{20, "20.00"},
		{0, "0.00"},
		{19.999, "20.00"},
		{12.5, "12.50"},
		{1234.567, "1234.57"},
	}
	for _, tt := range tests {
		b, err := json.Marshal(tt.in)
		if err != nil {
			t.Fatalf("marshal %v: %v", tt.in, err)
		}
		if string(b) != tt.want {
			t.Errorf("marshal %v = %s, want %s", float64(tt.in), b, tt.want)
		}
	}
}

func TestUnmarshalInStruct(t *testing.T) {
	var body struct {
		Price Amount `json:"price"`
	}
	if err := json.Unmarshal([]byte(`{"price": 45.5}`), &body); err != nil {
		t.Fatal(err)
	}
	if body.Price != 45.5 {
		t.Errorf("price = %v", body.Price)
	}
	if err := json.Unmarshal([]byte(`{"price": "cheap"}`), &body); err == nil {
		t.Error("expected error for non-numeric price")
	}
}

func TestTimes(t *testing.T) {
	if got := Amount(20).Times(1); got != 20 {
		t.Errorf("20 x 1 = %v", got)
	}
	if got := Amount(0.1).Times(3); got.String() != "0.30" {
		t.Errorf("0.1 x 3 = %s", got)
	}
}
