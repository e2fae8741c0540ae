package quiz

import (
	_ "embed"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data.json
var embeddedData []byte

// repositorySchema validates the raw data file before decoding. The
// generator is the usual producer, but data files can be hand-edited.
const repositorySchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"category": {"type": "string", "minLength": 1},
			"question": {"type": "string", "minLength": 1},
			"solution": {
				"type": "array",
				"items": {"type": "string"},
				"minItems": 1
			}
		},
		"required": ["category", "question", "solution"]
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// getRepositorySchema compiles the data-file schema once.
func getRepositorySchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(repositorySchema), &parsed); err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://repository.json", parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://repository.json")
	})
	return compiledSchema, schemaErr
}

// LoadRepository reads, validates, and decodes a quiz data file.
// Items without an id get a synthesized one; duplicate ids and empty
// answer lists are load errors rather than silent degradations.
func LoadRepository(r io.Reader) ([]Item, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getRepositorySchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	seen := make(map[string]string, len(items))
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = SynthesizeID(items[i].Category, items[i].Prompt)
		}
		if prev, ok := seen[items[i].ID]; ok {
			return nil, fmt.Errorf("duplicate item id %q (%q and %q)", items[i].ID, prev, items[i].Prompt)
		}
		seen[items[i].ID] = items[i].Prompt
		if len(items[i].Answers) == 0 {
			return nil, fmt.Errorf("item %q has no answers", items[i].ID)
		}
	}

	return items, nil
}

// LoadRepositoryFile loads items from path, or the embedded default
// data set when path is empty.
func LoadRepositoryFile(path string) ([]Item, error) {
	if path == "" {
		return LoadRepository(bytes.NewReader(embeddedData))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()
	items, err := LoadRepository(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}
