package validate

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://scorecard.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func part() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"count": map[string]any{"type": "integer", "minimum": 0},
			"score": map[string]any{"type": "number", "minimum": 0},
			"total": map[string]any{"type": "number", "minimum": 0},
		},
		"required":             []any{"count", "score", "total"},
		"additionalProperties": false,
	}
}

func numberSeries() map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "number"}}
}

func stringSeries() map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
}

func comparison() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"labels":             stringSeries(),
			"studentScores":      numberSeries(),
			"classAverageScores": numberSeries(),
		},
		"required":             []any{"labels", "studentScores", "classAverageScores"},
		"additionalProperties": false,
	}
}

// DocumentSchema describes a dataset or export document. It checks shape
// only; cross-field invariants are left to Dataset.
var DocumentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{"type": "string", "enum": []any{"v1", "v2"}},
		"student": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"version":          map[string]any{"type": "string", "enum": []any{"v1", "v2"}},
				"name":             map[string]any{"type": "string", "minLength": 1},
				"programmingLevel": map[string]any{"type": "string", "minLength": 1},
				"age":              map[string]any{"type": "integer", "minimum": 1},
				"classNumber":      map[string]any{"type": "string"},
				"grade":            map[string]any{"type": "string"},
				"studentId":        map[string]any{"type": "string"},
			},
			"required":             []any{"version", "name", "programmingLevel"},
			"additionalProperties": false,
		},
		"scores": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":           map[string]any{"type": "string", "minLength": 1},
					"stage":        map[string]any{"type": "integer", "minimum": 1},
					"subject":      map[string]any{"type": "string", "minLength": 1},
					"score":        map[string]any{"type": "number", "minimum": 0},
					"fullScore":    map[string]any{"type": "number", "exclusiveMinimum": 0},
					"testDate":     map[string]any{"type": "string", "format": "date"},
					"rank":         map[string]any{"type": "integer", "minimum": 1},
					"classAverage": map[string]any{"type": "number", "minimum": 0},
					"comment":      map[string]any{"type": "string"},
					"scoreComposition": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"multipleChoice": part(),
							"multipleSelect": part(),
							"trueFalse":      part(),
							"programming":    part(),
						},
						"required":             []any{"multipleChoice", "multipleSelect", "trueFalse", "programming"},
						"additionalProperties": false,
					},
					"skills": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"name":  map[string]any{"type": "string", "minLength": 1},
								"score": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
							},
							"required":             []any{"name", "score"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "stage", "subject", "score", "fullScore", "testDate", "skills"},
				"additionalProperties": false,
			},
		},
		"knowledgeMastery": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"labels":        stringSeries(),
				"masteryLevels": numberSeries(),
			},
			"required":             []any{"labels", "masteryLevels"},
			"additionalProperties": false,
		},
		"knowledgeTrend": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"labels": stringSeries(),
				"skills": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name": map[string]any{"type": "string", "minLength": 1},
							"data": numberSeries(),
						},
						"required":             []any{"name", "data"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"labels", "skills"},
			"additionalProperties": false,
		},
		"subjectComparison": comparison(),
		"scoreTrend":        comparison(),
		"stats": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"averageScore": map[string]any{"type": "number"},
				"highestScore": map[string]any{"type": "number"},
				"lowestScore":  map[string]any{"type": "number"},
				"totalStages":  map[string]any{"type": "integer", "minimum": 0},
				"passedStages": map[string]any{"type": "integer", "minimum": 0},
			},
			"required":             []any{"averageScore", "highestScore", "lowestScore", "totalStages", "passedStages"},
			"additionalProperties": false,
		},
	},
	"required":             []any{"version", "student", "scores"},
	"additionalProperties": false,
}

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain JSON value, so round-trip the Go literal.
		defBytes, err := json.Marshal(DocumentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		c.AssertFormat()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Document validates raw JSON against DocumentSchema.
func Document(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
