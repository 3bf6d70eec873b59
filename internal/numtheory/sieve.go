package numtheory

// SmallPrimes returns all primes <= bound in increasing order.
// It uses plain trial division and is meant for bounds of a few hundred.
func SmallPrimes(bound int) []int64 {
	primes := make([]int64, 0)
	for i := int64(2); i <= int64(bound); i++ {
		isPrime := true
		for j := int64(2); j*j <= i; j++ {
			if i%j == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			primes = append(primes, i)
		}
	}
	return primes
}
