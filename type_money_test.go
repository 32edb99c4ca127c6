package velo

import (
	"encoding/json"
	"testing"
)

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{in: "3000", want: M(3000)},
		{in: "499.50", want: M(499.50)},
		{in: "-12", want: M(-12)},
		{in: "", wantErr: true},
		{in: "12a", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseMoney(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMoney(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMoney(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseMoney(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, b := M(100), M(30)
	if got := a.Sub(b); !got.Equal(M(70)) {
		t.Errorf("100 - 30 = %s", got)
	}
	if got := a.Add(b); !got.Equal(M(130)) {
		t.Errorf("100 + 30 = %s", got)
	}
	if got := b.Neg(); !got.Equal(M(-30)) {
		t.Errorf("-30 = %s", got)
	}
	if !b.LessThan(a) || !a.GreaterThan(b) || !a.GreaterThanOrEqual(a) {
		t.Error("comparison operators disagree")
	}
	// No float drift across repeated cents.
	sum := M(0)
	for i := 0; i < 10; i++ {
		sum = sum.Add(M(0.1))
	}
	if !sum.Equal(M(1)) {
		t.Errorf("10 * 0.10 = %s, want 1", sum)
	}
}

func TestMoneyPlain(t *testing.T) {
	if got := M(9500).Plain(); got != "9500" {
		t.Errorf("Plain() = %q, want 9500", got)
	}
	if got := M(499.5).Plain(); got != "499.5" {
		t.Errorf("Plain() = %q, want 499.5", got)
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(0).SignedString(); got != "-" {
		t.Errorf("zero renders as %q, want -", got)
	}
	if got := M(5).SignedString(); got[0] != '+' {
		t.Errorf("positive renders as %q, want a leading +", got)
	}
}

func TestMoneyJSON(t *testing.T) {
	// Amounts travel as bare JSON numbers.
	raw, err := json.Marshal(M(2500))
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "2500" {
		t.Errorf("marshaled as %s, want 2500", raw)
	}
	var back Money
	if err := json.Unmarshal([]byte("499.5"), &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(M(499.5)) {
		t.Errorf("unmarshaled %s, want 499.5", back)
	}
}
