package formats

import (
	"encoding/json"
	"fmt"
)

// JSONStage mirrors the stageN.json files used by the web build:
// explicit dimensions, a time limit in seconds and a boolean mask.
type JSONStage struct {
	ID        int      `json:"id"`
	Name      string   `json:"name,omitempty"`
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	TimeLimit int      `json:"timeLimit"`
	Layout    [][]bool `json:"layout"`
}

// ParseJSON parses a JSON stage file.
func ParseJSON(data []byte) (Stage, error) {
	var js JSONStage
	if err := json.Unmarshal(data, &js); err != nil {
		return Stage{}, fmt.Errorf("json unmarshal: %w", err)
	}

	return Stage{
		ID:               js.ID,
		Name:             js.Name,
		Rows:             js.Rows,
		Cols:             js.Cols,
		TimeLimitSeconds: js.TimeLimit,
		Layout:           js.Layout,
	}, nil
}
