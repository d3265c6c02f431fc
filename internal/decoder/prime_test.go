package decoder

import "testing"

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n        int
		expected bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{5, true},
		{6, false},
		{7, true},
		{8, false},
		{9, false},
		{11, true},
		{25, false},
		{97, true},
		{121, false},
		{997, true},
		{999, false},
	}

	for _, test := range tests {
		if got := IsPrime(test.n); got != test.expected {
			t.Errorf("IsPrime(%d) = %t, expected %t", test.n, got, test.expected)
		}
	}
}

func TestIsPrime_TwoIsOnlyEvenPrime(t *testing.T) {
	for n := 4; n <= 1000; n += 2 {
		if IsPrime(n) {
			t.Errorf("IsPrime(%d) = true for even n > 2", n)
		}
	}
}

func TestIsPrime_CountUpTo1000(t *testing.T) {
	count := 0
	for n := 1; n <= 1000; n++ {
		if IsPrime(n) {
			count++
		}
	}
	if count != 168 {
		t.Errorf("prime count in [1,1000] = %d, expected 168", count)
	}
}
