// Package model loads the pre-trained wellness regression model and exposes
// it as a prediction capability. The artifact is a JSON bundle exported by
// the training pipeline: feature names, linear coefficients and the training
// metrics. Loaded parameters are immutable; reloads swap the whole artifact
// atomically so in-flight predictions are unaffected.
package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// TrainingMetrics are the evaluation metrics recorded when the model was
// trained, surfaced on the admin model endpoint.
type TrainingMetrics struct {
	RMSE float64 `json:"rmse"`
	R2   float64 `json:"r2"`
}

// Artifact is the serialized regression model.
type Artifact struct {
	ModelName    string             `json:"model_name"`
	Features     []string           `json:"features"`
	Intercept    float64            `json:"intercept"`
	Coefficients map[string]float64 `json:"coefficients"`
	Metrics      TrainingMetrics    `json:"metrics"`
}

// LoadArtifact reads and validates a model artifact from disk.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model artifact: %w", err)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing model artifact: %w", err)
	}
	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}
	return &a, nil
}

func (a *Artifact) validate() error {
	if len(a.Features) == 0 {
		return fmt.Errorf("no features declared")
	}
	for _, f := range a.Features {
		if _, ok := a.Coefficients[f]; !ok {
			return fmt.Errorf("missing coefficient for feature %q", f)
		}
	}
	return nil
}

// Info is the model metadata returned by the admin model endpoint. The
// coefficients double as per-feature weights for inspecting what drives
// predictions.
type Info struct {
	ModelName    string             `json:"model_name"`
	Features     []string           `json:"features"`
	Coefficients map[string]float64 `json:"coefficients,omitempty"`
	Metrics      TrainingMetrics    `json:"metrics"`
	Loaded       bool               `json:"model_loaded"`
}
