package money

import "testing"

func TestParsePriceCents(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"$12.99":    1299,
		"12.99":     1299,
		" $1,250.5": 125050,
		"0":         0,
		"":          0,
		"free":      0,
		"$-3.00":    -300,
	}

	for raw, want := range cases {
		if got := ParsePriceCents(raw); got != want {
			t.Fatalf("ParsePriceCents(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestParseRateCents(t *testing.T) {
	t.Parallel()

	if cents, ok := ParseRateCents("$6.99"); !ok || cents != 699 {
		t.Fatalf("expected 699 cents, got %d ok=%v", cents, ok)
	}
	if _, ok := ParseRateCents("0"); ok {
		t.Fatal("zero rate price must not be usable")
	}
	if _, ok := ParseRateCents("-4.99"); ok {
		t.Fatal("negative rate price must not be usable")
	}
	if _, ok := ParseRateCents("n/a"); ok {
		t.Fatal("non-numeric rate price must not be usable")
	}
}

func TestFormatCents(t *testing.T) {
	t.Parallel()

	if got := FormatCents(699); got != "6.99" {
		t.Fatalf("FormatCents(699) = %q", got)
	}
	if got := FormatCents(0); got != "0.00" {
		t.Fatalf("FormatCents(0) = %q", got)
	}
	if got := FormatCents(125050); got != "1250.50" {
		t.Fatalf("FormatCents(125050) = %q", got)
	}
}
