package pool

// UnknownTopic is the sentinel grouping key for questions whose source
// document name is missing from the pool data.
const UnknownTopic = "Unknown"

// Choice is a single answer alternative.
type Choice struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Question is one loaded question record. Questions are immutable after
// loading; rounds work on copies.
type Question struct {
	ID           string
	Text         string
	Topic        string
	Choices      []Choice
	CorrectLabel string
}

// TopicCount pairs a topic with the number of questions it holds.
type TopicCount struct {
	Topic string
	Count int
}
