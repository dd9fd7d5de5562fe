package quiz

// TopicAll selects questions from every topic.
const TopicAll = "all"

// UI-enforced bounds for the round size.
const (
	MinRoundSize     = 5
	MaxRoundSize     = 50
	DefaultRoundSize = 10
)

// FallbackSize caps the degraded round sampled from the whole pool when a
// topic filter yields nothing.
const FallbackSize = 5

// RoundConfig describes one requested round.
type RoundConfig struct {
	// Topic is TopicAll or an exact topic value drawn from the pool.
	Topic string

	// Size is the target number of questions, >= 1.
	Size int
}
