package todostore

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema/todo.schema.json
var schemaJSON string

const schemaURL = "todo.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Problem is one schema violation, located by a slash-separated path into
// the document ("items/0/sub_list/id_pool").
type Problem struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	if p.Path == "" {
		return p.Message
	}
	return p.Path + ": " + p.Message
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("loading schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// Validate checks a JSON document against the todo file schema.
func Validate(data []byte) ([]Problem, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, err
	}

	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return []Problem{{Message: fmt.Sprintf("malformed JSON: %v", err)}}, nil
	}

	if err := schema.Validate(v); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, err
		}
		var problems []Problem
		collectProblems(&problems, ve)
		return problems, nil
	}
	return nil, nil
}

// ValidateEncoded checks an encoded document of format f against the todo
// file schema. YAML and TOML are decoded into generic values first, so wrong
// types are reported as problems instead of failing the decode.
func ValidateEncoded(f Format, data []byte) ([]Problem, error) {
	var v interface{}
	switch f {
	case FormatJSON:
		return Validate(data)
	case FormatYAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return []Problem{{Message: fmt.Sprintf("malformed YAML: %v", err)}}, nil
		}
	case FormatTOML:
		var m map[string]interface{}
		if _, err := toml.Decode(string(data), &m); err != nil {
			return []Problem{{Message: fmt.Sprintf("malformed TOML: %v", err)}}, nil
		}
		v = m
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}

	generic, err := json.Marshal(v)
	if err != nil {
		return []Problem{{Message: fmt.Sprintf("unsupported %s value: %v", f, err)}}, nil
	}
	return Validate(generic)
}

// ValidateDocument validates a decoded document, whatever format it came from.
func ValidateDocument(doc *Document) ([]Problem, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document for validation: %w", err)
	}
	return Validate(data)
}

func collectProblems(out *[]Problem, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		*out = append(*out, Problem{
			Path:    strings.TrimPrefix(err.InstanceLocation, "/"),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectProblems(out, cause)
	}
}
