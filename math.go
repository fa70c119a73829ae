package cubesolver

import "math/bits"

// Combinatoric helpers for ranking and unranking permutations and
// combinations. These define the coordinate encodings used throughout the
// move and pruning tables, so they must stay stable: a change here
// invalidates every cached table.

var factorials = [13]int{
	1, 1, 2, 6, 24, 120, 720, 5040, 40320,
	362880, 3628800, 39916800, 479001600,
}

func factorial(n int) int {
	return factorials[n]
}

var pascal = [13][13]int{
	{1},
	{1, 1},
	{1, 2, 1},
	{1, 3, 3, 1},
	{1, 4, 6, 4, 1},
	{1, 5, 10, 10, 5, 1},
	{1, 6, 15, 20, 15, 6, 1},
	{1, 7, 21, 35, 35, 21, 7, 1},
	{1, 8, 28, 56, 70, 56, 28, 8, 1},
	{1, 9, 36, 84, 126, 126, 84, 36, 9, 1},
	{1, 10, 45, 120, 210, 252, 210, 120, 45, 10, 1},
	{1, 11, 55, 165, 330, 462, 462, 330, 165, 55, 11, 1},
	{1, 12, 66, 220, 495, 792, 924, 792, 495, 220, 66, 12, 1},
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	return pascal[n][k]
}

// combinationIndex returns the rank of combination (strictly increasing
// positions out of n) in the lexicographically sorted list of all
// combinations of n elements taken len(combination) at a time.
func combinationIndex(n int, combination []uint8) int {
	index := 0
	j := 0
	k := len(combination)

	for i := 0; i < k; i++ {
		j++
		for j < int(combination[i])+1 {
			index += binomial(n-j, k-i-1)
			j++
		}
	}
	return index
}

// nthCombination writes the combination of n elements taken len(out) at a
// time with the given lexicographic rank.
func nthCombination(n, index int, out []uint8) {
	k := len(out)
	size := 0

	for i := 0; i < n; i++ {
		count := binomial(n-1-i, k-size-1)
		if count > index {
			out[size] = uint8(i)
			size++
			if size == k {
				return
			}
		} else {
			index -= count
		}
	}
}

// permutationIndex returns the lexicographic rank of a permutation of
// {0..len-1}.
func permutationIndex(permutation []uint8) int {
	size := len(permutation)
	index := 0
	bitboard := uint64(0)

	for i, v := range permutation {
		mask := uint64(1) << v

		// Remaining elements smaller than the current element
		smaller := int(v) - bits.OnesCount64(bitboard&(mask-1))

		index += smaller * factorial(size-i-1)
		bitboard |= mask
	}
	return index
}

// nthPermutation writes the permutation of {0..len-1} with the given
// lexicographic rank.
func nthPermutation(index int, out []uint8) {
	size := len(out)
	unused := uint64(1)<<size - 1

	for i := size - 1; i >= 0; i-- {
		f := factorial(i)
		pos := index / f
		index %= f

		// Find the pos-th set bit in unused
		mask := unused
		for j := 0; j < pos; j++ {
			mask &= mask - 1
		}
		selected := mask & -mask

		out[size-1-i] = uint8(bits.TrailingZeros64(selected))
		unused ^= selected
	}
}

// isEvenPermutationSlice reports whether a permutation, given as a slice,
// has an even number of inversions.
func isEvenPermutationSlice(permutation []uint8) bool {
	count := 0
	for i := 0; i < len(permutation); i++ {
		for j := i + 1; j < len(permutation); j++ {
			if permutation[i] > permutation[j] {
				count++
			}
		}
	}
	return count%2 == 0
}

// isEvenPermutation reports parity from a lexicographic rank alone, via
// the digit sum of the rank's factoradic representation.
func isEvenPermutation(index int) bool {
	sum := 0
	for i := 2; index > 0; i++ {
		sum += index % i
		index /= i
	}
	return sum%2 == 0
}
