package ngram

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// File names expected inside a table directory. The 4grams.json name is
// historical, kept for compatibility with existing data sets.
const (
	bigramsFile   = "bigrams.json"
	trigramsFile  = "trigrams.json"
	fourgramsFile = "4grams.json"
)

// tableSchema constrains a table file to an object of non-negative integer
// counts. Anything else fails the load.
const tableSchema = `{
	"type": "object",
	"additionalProperties": {"type": "integer", "minimum": 0}
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("ngram-table.json", strings.NewReader(tableSchema)); err != nil {
		return nil, err
	}
	return c.Compile("ngram-table.json")
})

// Dir returns a Source that reads bigrams.json, trigrams.json, and
// 4grams.json from dir at load time. Every file must exist and validate
// against the table schema; there is no partial load.
func Dir(dir string) Source {
	return dirSource{dir}
}

type dirSource struct {
	dir string
}

func (s dirSource) Load() (*Tables, error) {
	t := &Tables{}
	if err := s.loadFile(bigramsFile, &t.Bigrams); err != nil {
		return nil, err
	}
	if err := s.loadFile(trigramsFile, &t.Trigrams); err != nil {
		return nil, err
	}
	if err := s.loadFile(fourgramsFile, &t.Fourgrams); err != nil {
		return nil, err
	}
	return t, nil
}

func (s dirSource) loadFile(name string, dst *map[string]uint64) error {
	path := filepath.Join(s.dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ngram: reading %s: %w", path, err)
	}
	if err := validateTable(raw); err != nil {
		return fmt.Errorf("ngram: invalid table %s: %w", path, err)
	}
	if err := sonic.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("ngram: decoding %s: %w", path, err)
	}
	return nil
}

func validateTable(raw []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}
	var v any
	if err := sonic.Unmarshal(raw, &v); err != nil {
		return err
	}
	return schema.Validate(v)
}
