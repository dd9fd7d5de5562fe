package telemetry

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// emitTimeout bounds a single delivery attempt.
const emitTimeout = 5 * time.Second

// HTTPSink POSTs each event as JSON to a collector endpoint. Deliveries
// run in their own goroutine so Emit never blocks the UI event loop.
type HTTPSink struct {
	endpoint string
	client   *http.Client
	wg       sync.WaitGroup
}

// NewHTTPSink creates a sink for the given endpoint.
func NewHTTPSink(endpoint string) *HTTPSink {
	return &HTTPSink{
		endpoint: endpoint,
		client:   &http.Client{Timeout: emitTimeout},
	}
}

// Emit delivers the event in the background. Errors are dropped.
func (s *HTTPSink) Emit(ev Event) {
	body, err := json.Marshal(ev)
	if err != nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(body))
		if err != nil {
			return
		}
		_ = resp.Body.Close()
	}()
}

// Flush waits for in-flight deliveries, used on shutdown and in tests.
func (s *HTTPSink) Flush() {
	s.wg.Wait()
}
