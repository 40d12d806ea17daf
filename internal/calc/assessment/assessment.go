package assessment

import (
	rmr "Stratum/internal/calc/rmr"
	support "Stratum/internal/calc/support"
)

type Input struct {
	Rock       rmr.Input        `json:"rock"`
	Excavation support.Geometry `json:"excavation"`
}

type Result struct {
	Rating  rmr.Result       `json:"rating"`
	Support support.Spec     `json:"support"`
	Bolting support.Estimate `json:"bolting"`
}

// Run performs the full chain: rating, class-based recommendation, bolt
// quantities for the given excavation.
func Run(in Input) (Result, error) {
	rating, err := rmr.Classify(in.Rock)
	if err != nil {
		return Result{}, err
	}
	spec, err := support.Recommend(rating.Class, in.Excavation.WidthM)
	if err != nil {
		return Result{}, err
	}
	bolting, err := support.EstimateBolts(spec, in.Excavation)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Rating:  rating,
		Support: spec,
		Bolting: bolting,
	}, nil
}
