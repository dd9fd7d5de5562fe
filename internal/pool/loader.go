package pool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"
)

// DefaultSource is the published question pool used when no override is
// given via --pool or MKTQUIZ_POOL.
const DefaultSource = "https://waverandrew.github.io/marketing-quiz-app/questions.json"

// ErrEmptyPool is returned when the source parses to zero questions.
var ErrEmptyPool = errors.New("question pool is empty")

// fetchTimeout bounds the one-time pool download at startup.
const fetchTimeout = 30 * time.Second

// rawRecord mirrors the wire format of one pool entry. Number and
// Alternatives use RawMessage so that mixed-type ids and malformed
// alternative arrays degrade gracefully instead of failing the decode.
type rawRecord struct {
	Number        json.RawMessage `json:"number"`
	QuestionText  string          `json:"question_text"`
	Alternatives  json.RawMessage `json:"alternatives"`
	PDFFilename   string          `json:"pdf_filename"`
	CorrectAnswer string          `json:"correct_answer"`
}

// Load fetches and parses the question pool from source. An http(s) URL is
// fetched with a GET; anything else is treated as a local file path.
func Load(ctx context.Context, source string) ([]Question, error) {
	data, err := ReadSource(ctx, source)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a JSON array of question records, normalizing each one.
func Parse(data []byte) ([]Question, error) {
	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse question pool: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyPool
	}

	questions := make([]Question, 0, len(raw))
	for _, r := range raw {
		questions = append(questions, normalize(r))
	}
	return questions, nil
}

// normalize converts one wire record into a Question, applying the
// Unknown-topic sentinel and tolerating malformed alternatives.
func normalize(r rawRecord) Question {
	q := Question{
		ID:           normalizeID(r.Number),
		Text:         r.QuestionText,
		Topic:        r.PDFFilename,
		CorrectLabel: r.CorrectAnswer,
	}
	if q.Topic == "" {
		q.Topic = UnknownTopic
	}

	// A record whose alternatives field is missing or not an array keeps
	// nil choices; the round presents it as-is instead of crashing.
	var choices []Choice
	if len(r.Alternatives) > 0 {
		if err := json.Unmarshal(r.Alternatives, &choices); err == nil {
			q.Choices = choices
		}
	}
	return q
}

// normalizeID renders the source "number" field (JSON number or string)
// as an opaque string id.
func normalizeID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return strings.TrimSpace(string(raw))
}

// Topics returns the distinct topics in the pool with their question
// counts, sorted by topic name.
func Topics(questions []Question) []TopicCount {
	counts := make(map[string]int)
	for _, q := range questions {
		counts[q.Topic]++
	}

	topics := make([]TopicCount, 0, len(counts))
	for topic, count := range counts {
		topics = append(topics, TopicCount{Topic: topic, Count: count})
	}
	sort.Slice(topics, func(i, j int) bool {
		return topics[i].Topic < topics[j].Topic
	})
	return topics
}

// FilterByTopic returns the questions matching the given topic exactly.
func FilterByTopic(questions []Question, topic string) []Question {
	var filtered []Question
	for _, q := range questions {
		if q.Topic == topic {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// ReadSource returns the raw pool bytes for a URL or local file path,
// without parsing. The validate command uses it to inspect a pool as
// published.
func ReadSource(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetch(ctx, source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read pool file: %w", err)
	}
	return data, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch question pool: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch question pool: HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
