package quiz

import (
	"math/rand/v2"
	"sort"

	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
)

// selectQuestions picks and orders the round's questions from the pool.
//
// For TopicAll the selection is stratified: the pool is partitioned by
// topic, up to ceil(size/numGroups) questions are sampled from each group
// without replacement, and the concatenation is shuffled and truncated to
// size. This keeps a single over-represented topic from dominating an
// all-topics round. A specific topic is shuffled and sliced directly.
//
// If the filter yields nothing but the pool itself has questions, a
// degraded round of min(size, FallbackSize) is sampled from the whole pool
// so the UI never dead-ends on an undersupplied topic.
func selectQuestions(questions []pool.Question, cfg RoundConfig, rng *rand.Rand) []pool.Question {
	if cfg.Size < 1 || len(questions) == 0 {
		return nil
	}

	var selected []pool.Question
	if cfg.Topic == TopicAll {
		selected = stratifiedSample(questions, cfg.Size, rng)
	} else {
		filtered := pool.FilterByTopic(questions, cfg.Topic)
		selected = pool.Shuffled(rng, filtered)
		if len(selected) > cfg.Size {
			selected = selected[:cfg.Size]
		}
	}

	if len(selected) == 0 {
		n := cfg.Size
		if n > FallbackSize {
			n = FallbackSize
		}
		selected = pool.Shuffled(rng, questions)
		if len(selected) > n {
			selected = selected[:n]
		}
	}

	return selected
}

// stratifiedSample partitions by topic and samples evenly across groups.
func stratifiedSample(questions []pool.Question, size int, rng *rand.Rand) []pool.Question {
	groups := make(map[string][]pool.Question)
	for _, q := range questions {
		groups[q.Topic] = append(groups[q.Topic], q)
	}

	topics := make([]string, 0, len(groups))
	for topic := range groups {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	perGroup := (size + len(topics) - 1) / len(topics)

	var sampled []pool.Question
	for _, topic := range topics {
		group := pool.Shuffled(rng, groups[topic])
		if len(group) > perGroup {
			group = group[:perGroup]
		}
		sampled = append(sampled, group...)
	}

	pool.Shuffle(rng, sampled)
	if len(sampled) > size {
		sampled = sampled[:size]
	}
	return sampled
}
