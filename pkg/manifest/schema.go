package manifest

import (
	"bytes"
	_ "embed"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/wenget/bucketgen/pkg/errors"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = errors.Wrap(err, "failed to parse embedded manifest schema")
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("manifest.schema.json", doc); err != nil {
			schemaErr = errors.Wrap(err, "failed to register manifest schema")
			return
		}
		schema, schemaErr = compiler.Compile("manifest.schema.json")
	})
	return schema, schemaErr
}

// ValidateBytes checks JSON manifest data against the bucket schema.
func ValidateBytes(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(errors.ErrManifestParse, err.Error())
	}

	if err := sch.Validate(instance); err != nil {
		return errors.Wrap(errors.ErrManifestValidate, strings.TrimSpace(err.Error()))
	}
	return nil
}

// ValidateFile checks a manifest file against the bucket schema.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "cannot read manifest %s", path)
	}
	return ValidateBytes(data)
}
