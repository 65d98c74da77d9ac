package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/axesim/internal/dynamo"
)

type ExportData struct {
	Model      string             `json:"model"`
	Integrator string             `json:"integrator"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Steps      int                `json:"steps"`
	Times      []float64          `json:"times"`
	States     [][]float64        `json:"states"`
	Metrics    map[string]float64 `json:"metrics"`
}

func exportJSON(w io.Writer, model, integrator string, dt, duration float64, result *dynamo.Result) error {
	data := ExportData{
		Model:      model,
		Integrator: integrator,
		Dt:         dt,
		Duration:   duration,
		Steps:      len(result.Times),
		Times:      result.Times,
		States:     make([][]float64, len(result.States)),
		Metrics:    result.Metrics,
	}

	for i, s := range result.States {
		data.States[i] = s
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, model, integrator string, dt, duration float64, result *dynamo.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return exportJSON(file, model, integrator, dt, duration, result)
}

func ExportJSONStdout(model, integrator string, dt, duration float64, result *dynamo.Result) error {
	return exportJSON(os.Stdout, model, integrator, dt, duration, result)
}
