package batch

import (
	"fmt"

	assessment "Stratum/internal/calc/assessment"
)

type Input struct {
	Items []assessment.Input `json:"items"`
}

type Result struct {
	Results []assessment.Result `json:"results"`
}

func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]assessment.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := assessment.Run(item)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
