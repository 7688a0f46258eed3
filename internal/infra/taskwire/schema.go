package taskwire

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaSource string

const schemaURL = "mem://todo/task.schema.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// Validate checks element index of a task list against the task schema.
// Paths in the error are relative to the list, as in "[3].id".
// doc must come from a json.Decoder with UseNumber enabled.
func Validate(index int, doc any) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		var msgs []string
		collectSchemaErrors(&msgs, fmt.Sprintf("/%d", index), ve)
		return errors.New(strings.Join(msgs, "; "))
	}
	return nil
}

func collectSchemaErrors(msgs *[]string, base string, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		*msgs = append(*msgs, fmt.Sprintf("%s: %s", pointerToPath(base+err.InstanceLocation), err.Message))
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(msgs, base, cause)
	}
}

// pointerToPath turns "/3/id" into "[3].id".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return "(root)"
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		if part != "" && strings.Trim(part, "0123456789") == "" {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
