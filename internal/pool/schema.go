package pool

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchema is the strict shape of a well-formed pool record. Loading
// stays tolerant of violations; this schema backs the validate command so
// pool authors can find broken records before publishing.
const recordSchema = `{
	"type": "object",
	"required": ["number", "question_text", "alternatives", "correct_answer"],
	"properties": {
		"number": {"type": ["integer", "string"]},
		"question_text": {"type": "string", "minLength": 1},
		"alternatives": {
			"type": "array",
			"minItems": 2,
			"items": {
				"type": "object",
				"required": ["label", "text"],
				"properties": {
					"label": {"type": "string", "minLength": 1, "maxLength": 1},
					"text": {"type": "string", "minLength": 1}
				}
			}
		},
		"pdf_filename": {"type": "string"},
		"correct_answer": {"type": "string", "minLength": 1}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Issue describes one schema violation found in the pool data.
type Issue struct {
	Record int    // zero-based index into the pool array
	ID     string // normalized question id, if present
	Detail string
}

func (i Issue) String() string {
	if i.ID != "" {
		return fmt.Sprintf("question %s: %s", i.ID, i.Detail)
	}
	return fmt.Sprintf("record %d: %s", i.Record, i.Detail)
}

// Validate checks raw pool data against the record schema and reports one
// issue per violating record. A nil slice means the pool is clean. The
// top-level value must be an array; anything else is a hard error.
func Validate(data []byte) ([]Issue, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, err
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("pool is not a JSON array: %w", err)
	}

	var issues []Issue
	for i, rec := range records {
		var parsed any
		if err := json.Unmarshal(rec, &parsed); err != nil {
			issues = append(issues, Issue{Record: i, Detail: err.Error()})
			continue
		}
		if err := schema.Validate(parsed); err != nil {
			var r rawRecord
			_ = json.Unmarshal(rec, &r)
			issues = append(issues, Issue{
				Record: i,
				ID:     normalizeID(r.Number),
				Detail: err.Error(),
			})
		}
	}
	return issues, nil
}

// getSchema compiles the record schema once and caches it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(recordSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse record schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://question-record.json", def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://question-record.json")
	})
	return compiledSchema, compileErr
}
