package review

import (
	"math/rand/v2"
	"testing"

	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
)

func testQuestion(id string) pool.Question {
	return pool.Question{
		ID:    id,
		Text:  "question " + id,
		Topic: "Topic_A",
		Choices: []pool.Choice{
			{Label: "A", Text: "first"},
			{Label: "B", Text: "second"},
			{Label: "C", Text: "third"},
			{Label: "D", Text: "fourth"},
		},
		CorrectLabel: "B",
	}
}

func TestRecord_DeduplicatesByID(t *testing.T) {
	log := NewLog(nil)

	log.Record(testQuestion("1"))
	log.Record(testQuestion("2"))
	log.Record(testQuestion("1"))

	if log.Len() != 2 {
		t.Fatalf("Len = %d, want 2", log.Len())
	}

	questions := log.Questions()
	if questions[0].ID != "1" || questions[1].ID != "2" {
		t.Errorf("order = [%s %s], want [1 2]", questions[0].ID, questions[1].ID)
	}
}

func TestReviewCopy_DoesNotMutateStored(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11))
	log := NewLog(rng)
	log.Record(testQuestion("1"))

	// Shuffle enough times that at least one permutation differs.
	for i := 0; i < 10; i++ {
		if _, ok := log.ReviewCopy(0); !ok {
			t.Fatal("ReviewCopy reported missing entry")
		}
	}

	stored := log.Questions()[0]
	want := testQuestion("1")
	for i, c := range stored.Choices {
		if c != want.Choices[i] {
			t.Fatalf("stored choices mutated: %v", stored.Choices)
		}
	}
}

func TestReviewCopy_SameChoiceSet(t *testing.T) {
	log := NewLog(rand.New(rand.NewPCG(5, 5)))
	log.Record(testQuestion("1"))

	copyQ, ok := log.ReviewCopy(0)
	if !ok {
		t.Fatal("ReviewCopy reported missing entry")
	}
	if copyQ.CorrectLabel != "B" {
		t.Errorf("CorrectLabel = %q, want B", copyQ.CorrectLabel)
	}

	seen := make(map[pool.Choice]bool)
	for _, c := range copyQ.Choices {
		seen[c] = true
	}
	for _, c := range testQuestion("1").Choices {
		if !seen[c] {
			t.Errorf("choice %v missing from review copy", c)
		}
	}
}

func TestReviewCopy_OutOfRange(t *testing.T) {
	log := NewLog(nil)
	if _, ok := log.ReviewCopy(0); ok {
		t.Error("expected out-of-range ReviewCopy to report false")
	}
	if _, ok := log.ReviewCopy(-1); ok {
		t.Error("expected negative index to report false")
	}
}

func TestReset(t *testing.T) {
	log := NewLog(nil)
	log.Record(testQuestion("1"))
	log.Reset()

	if log.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", log.Len())
	}

	// A previously seen id records again after reset.
	log.Record(testQuestion("1"))
	if log.Len() != 1 {
		t.Errorf("Len = %d, want 1", log.Len())
	}
}
