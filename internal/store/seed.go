package store

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"finboard/internal/model"
)

//go:embed seed.json
var seedJSON []byte

// Seed returns the bundled starter dataset, used when no valid persisted
// snapshot exists.
func Seed() model.Dataset {
	var ds model.Dataset
	if err := json.Unmarshal(seedJSON, &ds); err != nil {
		// The seed is compiled into the binary; failing to parse it is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("store: invalid embedded seed dataset: %v", err))
	}
	return ds
}
