package adapter

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	m "rocqtrace.dev/pkg/rocqtrace/internal/model"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

var (
	schemaMu    sync.Mutex
	schemaCache = map[m.Stage]*gojsonschema.Schema{}
)

func stageSchema(stage m.Stage) (*gojsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()

	if schema, ok := schemaCache[stage]; ok {
		return schema, nil
	}

	data, err := schemaFS.ReadFile("schemas/" + string(stage) + ".schema.json")
	if err != nil {
		return nil, fmt.Errorf("%w: no record schema for stage %q", m.ErrConfiguration, stage)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s schema: %w", stage, err)
	}

	schemaCache[stage] = schema

	return schema, nil
}

// ValidateRecord checks one raw result line against the schema of stage.
func ValidateRecord(stage m.Stage, line []byte) error {
	schema, err := stageSchema(stage)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(line))
	if err != nil {
		return fmt.Errorf("%w: %w", m.ErrRecordInvalid, err)
	}

	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}

	return fmt.Errorf("%w: %s", m.ErrRecordInvalid, strings.Join(problems, "; "))
}
