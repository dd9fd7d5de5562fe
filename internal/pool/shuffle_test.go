package pool

import (
	"math/rand/v2"
	"testing"
)

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestShuffle_PreservesElements(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	shuffled := Shuffled(seededRand(42), items)

	if len(shuffled) != len(items) {
		t.Fatalf("len = %d, want %d", len(shuffled), len(items))
	}

	seen := make(map[int]int)
	for _, v := range shuffled {
		seen[v]++
	}
	for _, v := range items {
		if seen[v] != 1 {
			t.Errorf("element %d appears %d times, want 1", v, seen[v])
		}
	}
}

func TestShuffle_DeterministicWithSameSeed(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	first := Shuffled(seededRand(7), items)
	second := Shuffled(seededRand(7), items)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different orders: %v vs %v", first, second)
		}
	}
}

func TestShuffled_DoesNotMutateOriginal(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	original := make([]int, len(items))
	copy(original, items)

	Shuffled(seededRand(3), items)

	for i := range items {
		if items[i] != original[i] {
			t.Fatal("Shuffled mutated its input")
		}
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	Shuffle(seededRand(1), []int{})
	single := []int{9}
	Shuffle(seededRand(1), single)
	if single[0] != 9 {
		t.Error("single-element shuffle changed the element")
	}
}
