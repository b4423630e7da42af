// Package dataset holds the literal score cards.
package dataset

import (
	"fmt"

	"github.com/pavelanni/scorecard/internal/model"
)

// ByVersion returns the built-in score card for the given schema version.
func ByVersion(v model.SchemaVersion) (model.Dataset, error) {
	switch v {
	case model.SchemaV1:
		return ScoreCardV1(), nil
	case model.SchemaV2:
		return ScoreCardV2(), nil
	default:
		return model.Dataset{}, fmt.Errorf("unknown dataset version %q", v)
	}
}
