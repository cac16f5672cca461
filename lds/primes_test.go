package lds

import (
	"testing"
)

func TestPrimeTable(t *testing.T) {
	if PrimeTable[0] != 2 || PrimeTable[1] != 3 || PrimeTable[4] != 11 {
		t.Errorf("PrimeTable starts with %d, %d, ..., %d at index 4 "+
			"instead of 2, 3, ..., 11.",
			PrimeTable[0], PrimeTable[1], PrimeTable[4])
	}
	if PrimeTable[999] != 7919 {
		t.Errorf("The 1000th prime should be 7919, but the table ends "+
			"with %d.", PrimeTable[999])
	}

	for i := range PrimeTable {
		if i > 0 && PrimeTable[i] <= PrimeTable[i-1] {
			t.Errorf("PrimeTable[%d] = %d is not larger than its "+
				"predecessor %d.", i, PrimeTable[i], PrimeTable[i-1])
		}
		if !isPrime(PrimeTable[i]) {
			t.Errorf("PrimeTable[%d] = %d is not prime.", i, PrimeTable[i])
		}
	}
}

func isPrime(n int) bool {
	if n < 2 { return false }
	for d := 2; d*d <= n; d++ {
		if n%d == 0 { return false }
	}
	return true
}
