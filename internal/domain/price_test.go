package domain_test

import (
	"testing"

	"weblarek/internal/domain"
)

func TestFormatPrice(t *testing.T) {
	if got := domain.FormatPrice(nil); got != "priceless" {
		t.Fatalf("nil price: got %q", got)
	}
	if got := domain.FormatPrice(domain.Ptr(129.9)); got != "129.90 synapses" {
		t.Fatalf("numeric price: got %q", got)
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"10.00 synapses", 10, true},
		{"  750 synapses", 750, true},
		{"10", 10, true},
		{"priceless", 0, false},
		{"", 0, false},
		{"1.2.3 synapses", 0, false},
	}
	for _, tc := range cases {
		got, ok := domain.ParsePrice(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParsePrice(%q) = %v,%v; want %v,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
