package decoder

// IsPrime reports whether n is prime, by trial division up to the square
// root of n. 1 is not prime; 2 is the only even prime.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
