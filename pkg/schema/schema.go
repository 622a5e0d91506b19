// Package schema describes the enrollment data file as a JSON Schema and
// validates documents against it.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/invopop/jsonschema"
	sjsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/grovetools/enroll/pkg/enrollment"
)

// URL identifies the schema when it is compiled for validation.
const URL = "https://grovetools.dev/schema/enrollments.schema.json"

// Generate reflects the schema of the data file from enrollment.Record.
func Generate() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}
	s := r.Reflect([]enrollment.Record{})
	s.Title = "Enrollments"
	s.Description = "Student course enrollments, in registration order."
	return s
}

// JSON returns the generated schema as indented JSON.
func JSON() ([]byte, error) {
	b, err := json.MarshalIndent(Generate(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return b, nil
}

// Validate checks that data is a JSON array of well-formed enrollment records.
func Validate(data []byte) error {
	raw, err := JSON()
	if err != nil {
		return err
	}
	compiled, err := sjsonschema.CompileString(URL, string(raw))
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	// The validator expects raw JSON values with numbers kept as json.Number.
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return &enrollment.Error{Op: "schema.decode", Kind: enrollment.KindDecode, Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return &enrollment.Error{Op: "schema.decode", Kind: enrollment.KindDecode, Err: errors.New("unexpected data after the top-level value")}
	}
	if err := compiled.Validate(doc); err != nil {
		return &enrollment.Error{Op: "schema.validate", Kind: enrollment.KindDecode, Err: err}
	}
	return nil
}

// ValidateFile validates the document stored at path.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		kind := enrollment.KindIO
		if os.IsNotExist(err) {
			kind = enrollment.KindNotFound
		}
		return &enrollment.Error{Op: "schema.read", Kind: kind, Path: path, Err: err}
	}
	if err := Validate(data); err != nil {
		var e *enrollment.Error
		if errors.As(err, &e) {
			e.Path = path
		}
		return err
	}
	return nil
}
