// Package validation checks job payloads against a JSON schema and applies
// the salary rules that a schema cannot express.
package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/justsurfingit/job-board/internal/apperr"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/xeipuuv/gojsonschema"
)

const (
	minSalary = 1000
	maxSalary = 999999999
)

var salaryFields = map[string]bool{"fixedSalary": true, "salaryFrom": true, "salaryTo": true}

var (
	createSchema = mustSchema(true)
	updateSchema = mustSchema(false)
)

// jobSchema describes a job payload. Salaries may be numbers or numeric
// strings; an empty string or null means the field is not set.
func jobSchema(create bool) map[string]any {
	str := func(minLen, maxLen int) map[string]any {
		s := map[string]any{"type": "string", "minLength": minLen}
		if maxLen > 0 {
			s["maxLength"] = maxLen
		}
		return s
	}
	amount := map[string]any{"anyOf": []any{
		map[string]any{"type": "null"},
		map[string]any{"type": "integer", "minimum": minSalary, "maximum": maxSalary},
		map[string]any{"type": "string", "pattern": "^ *([0-9]{4,9})? *$"},
	}}

	schema := map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":    "object",
		"properties": map[string]any{
			"title":       str(3, 30),
			"description": str(30, 500),
			"category":    map[string]any{"type": "string", "enum": models.Categories},
			"country":     str(1, 0),
			"city":        str(1, 0),
			"location":    str(20, 0),
			"fixedSalary": amount,
			"salaryFrom":  amount,
			"salaryTo":    amount,
			"expired":     map[string]any{"type": "boolean"},
		},
	}
	if create {
		schema["required"] = []string{"title", "description", "category", "country", "city", "location"}
	}
	return schema
}

func mustSchema(create bool) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(jobSchema(create)))
	if err != nil {
		panic(fmt.Sprintf("validation: compile job schema: %v", err))
	}
	return s
}

// JobCreate validates a raw job creation payload.
func JobCreate(raw []byte) error { return validate(createSchema, raw) }

// JobUpdate validates a raw partial job payload.
func JobUpdate(raw []byte) error { return validate(updateSchema, raw) }

func validate(schema *gojsonschema.Schema, raw []byte) error {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return apperr.Validation("Invalid JSON payload.")
	}
	if res.Valid() {
		return nil
	}
	// anyOf failures also report the closest branch's errors; keep one
	// message per field.
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		if m := describe(e); !slices.Contains(msgs, m) {
			msgs = append(msgs, m)
		}
	}
	return apperr.Validation(strings.Join(msgs, " "))
}

func describe(e gojsonschema.ResultError) string {
	field := e.Field()
	switch {
	case field == "(root)" || field == "":
		return upperFirst(e.Description()) + "."
	case salaryFields[field]:
		return fmt.Sprintf("%s must be a whole number between %d and %d.", field, minSalary, maxSalary)
	case field == "category":
		return "Please select a valid job category."
	}
	return fmt.Sprintf("%s: %s.", field, e.Description())
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Salary checks that a job carries exactly one salary form and that a
// range is ordered.
func Salary(fixed, from, to *int64) error {
	hasFixed := fixed != nil
	hasRange := from != nil || to != nil

	switch {
	case !hasFixed && !hasRange:
		return apperr.Validation("Please either provide fixed salary or ranged salary.")
	case hasFixed && hasRange:
		return apperr.Validation("Cannot Enter Fixed and Ranged Salary together.")
	case hasRange && (from == nil || to == nil):
		return apperr.Validation("Please provide both salaryFrom and salaryTo.")
	case hasRange && *from > *to:
		return apperr.Validation("salaryFrom cannot be greater than salaryTo.")
	}
	return nil
}
