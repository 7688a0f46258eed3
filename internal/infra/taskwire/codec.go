package taskwire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/todo/internal/domain"
)

// DecodeJSON parses a JSON task list and keeps at most limit elements from
// its front (limit <= 0 keeps all). Elements of that prefix that do not match
// the task schema are skipped and reported. Only a document that is not an
// array fails as a whole.
func DecodeJSON(data []byte, limit int) (*domain.FetchResult, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return decodeList(doc, limit)
}

// DecodeYAML parses a YAML task list. The document is converted to JSON
// and goes through the same validation as DecodeJSON.
func DecodeYAML(data []byte, limit int) (*domain.FetchResult, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	if doc == nil {
		doc = []any{}
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return DecodeJSON(jsonData, limit)
}

func decodeList(doc any, limit int) (*domain.FetchResult, error) {
	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an array, got %s", domain.ErrInvalidPayload, jsonKind(doc))
	}

	res := &domain.FetchResult{Total: len(items)}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	res.Tasks = make([]domain.Task, 0, len(items))
	for i, item := range items {
		task, err := decodeTask(i, item)
		if err != nil {
			res.Skipped = append(res.Skipped, err.Error())
			continue
		}
		res.Tasks = append(res.Tasks, task)
	}
	return res, nil
}

func decodeTask(index int, item any) (domain.Task, error) {
	if err := Validate(index, item); err != nil {
		return domain.Task{}, err
	}

	raw, err := json.Marshal(item)
	if err != nil {
		return domain.Task{}, fmt.Errorf("[%d]: %w", index, err)
	}
	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return domain.Task{}, fmt.Errorf("[%d]: %w", index, err)
	}
	return r.Task(), nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

// Encoder implements domain.TaskEncoder.
type Encoder struct{}

// Ensure Encoder implements domain.TaskEncoder.
var _ domain.TaskEncoder = Encoder{}

// Encode writes tasks to w in the given format.
func (Encoder) Encode(w io.Writer, format domain.ExportFormat, tasks []domain.Task) error {
	records := FromTasks(tasks)

	switch format {
	case domain.ExportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case domain.ExportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
}
