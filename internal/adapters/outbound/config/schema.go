package config

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/mmasias/evaluacion-automatica/internal/domain"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed criteria.schema.json
var criteriaSchema []byte

const schemaURL = "https://github.com/mmasias/evaluacion-automatica/criteria.schema.json"

// SchemaValidator implements domain.CriteriaValidator with the embedded
// criteria JSON Schema.
type SchemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles the embedded schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(criteriaSchema))
	if err != nil {
		return nil, fmt.Errorf("parsing criteria schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("loading criteria schema: %w", err)
	}

	sch, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling criteria schema: %w", err)
	}
	return &SchemaValidator{schema: sch}, nil
}

func (v *SchemaValidator) Validate(c domain.Criteria) error {
	data, err := c.JSON()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}

	if err := v.schema.Validate(inst); err != nil {
		return fmt.Errorf("invalid criteria: %w", err)
	}
	return nil
}
