package rmr

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrTableDamage      = errors.New("rating table damaged")
)

type Class string

const (
	ClassI   Class = "I"
	ClassII  Class = "II"
	ClassIII Class = "III"
	ClassIV  Class = "IV"
	ClassV   Class = "V"
)

type Condition string

const (
	ConditionVeryRough       Condition = "very_rough"
	ConditionSlightlyRough   Condition = "slightly_rough"
	ConditionHighlyWeathered Condition = "highly_weathered"
	ConditionSlickensided    Condition = "slickensided"
	ConditionSoftGouge       Condition = "soft_gouge"
)

type Water string

const (
	WaterDry      Water = "dry"
	WaterDamp     Water = "damp"
	WaterWet      Water = "wet"
	WaterDripping Water = "dripping"
	WaterFlowing  Water = "flowing"
)

type Input struct {
	UCSMPa     float64   `json:"ucs_mpa"`
	RQDPercent float64   `json:"rqd_percent"`
	SpacingM   float64   `json:"spacing_m"`
	Condition  Condition `json:"condition"`
	Water      Water     `json:"water"`
}

type ParameterRating struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

type Result struct {
	Strength    ParameterRating `json:"strength"`
	RQD         ParameterRating `json:"rqd"`
	Spacing     ParameterRating `json:"spacing"`
	Condition   ParameterRating `json:"condition"`
	Water       ParameterRating `json:"water"`
	RMR         int             `json:"rmr"`
	Class       Class           `json:"class"`
	Description string          `json:"description"`
	Notes       string          `json:"notes"`
}

// rangeBin rates a measured value; FromValue is the inclusive lower bound
// of the bin, bins are ordered ascending and the last matching bin wins.
type rangeBin struct {
	FromValue float64
	Label     string
	Points    int
}

var ucsBins = []rangeBin{
	{0, "<1 MPa", 0},
	{1, "1-5 MPa", 1},
	{5, "5-25 MPa", 2},
	{25, "25-50 MPa", 4},
	{50, "50-100 MPa", 7},
	{100, "100-250 MPa", 12},
	{250, ">250 MPa", 15},
}

var rqdBins = []rangeBin{
	{0, "<25%", 3},
	{25, "25-50%", 8},
	{50, "50-75%", 13},
	{75, "75-90%", 17},
	{90, "90-100%", 20},
}

var spacingBins = []rangeBin{
	{0, "<60 mm", 5},
	{0.06, "60-200 mm", 8},
	{0.2, "200-600 mm", 10},
	{0.6, "0.6-2 m", 15},
	{2, ">2 m", 20},
}

type labelBin struct {
	Label  string
	Points int
}

var conditionBins = map[Condition]labelBin{
	ConditionVeryRough:       {"Very rough, not continuous, no separation, unweathered", 30},
	ConditionSlightlyRough:   {"Slightly rough, separation < 1 mm, slightly weathered", 25},
	ConditionHighlyWeathered: {"Slightly rough, separation < 1 mm, highly weathered", 20},
	ConditionSlickensided:    {"Slickensided/gouge < 5 mm, or separation 1-5 mm", 10},
	ConditionSoftGouge:       {"Soft gouge > 5 mm, or separation > 5 mm", 0},
}

var waterBins = map[Water]labelBin{
	WaterDry:      {"Completely dry", 15},
	WaterDamp:     {"Damp", 10},
	WaterWet:      {"Wet", 7},
	WaterDripping: {"Dripping", 4},
	WaterFlowing:  {"Flowing", 0},
}

// classBands cover every integer score 0..100 exactly once (checked at init).
type classBand struct {
	MinScore    int
	MaxScore    int
	Class       Class
	Description string
}

var classBands = []classBand{
	{0, 20, ClassV, "Very poor rock"},
	{21, 40, ClassIV, "Poor rock"},
	{41, 60, ClassIII, "Fair rock"},
	{61, 80, ClassII, "Good rock"},
	{81, 100, ClassI, "Very good rock"},
}

func init() {
	if err := checkTables(); err != nil {
		panic(err)
	}
}

func checkTables() error {
	maxTotal := ucsBins[len(ucsBins)-1].Points +
		rqdBins[len(rqdBins)-1].Points +
		spacingBins[len(spacingBins)-1].Points +
		maxConditionPoints() +
		maxWaterPoints()
	if maxTotal != 100 {
		return fmt.Errorf("%w: parameter maxima sum to %d, want 100", ErrTableDamage, maxTotal)
	}
	for score := 0; score <= 100; score++ {
		matches := 0
		for _, band := range classBands {
			if score >= band.MinScore && score <= band.MaxScore {
				matches++
			}
		}
		if matches != 1 {
			return fmt.Errorf("%w: score %d matches %d class bands", ErrTableDamage, score, matches)
		}
	}
	return nil
}

func maxConditionPoints() int {
	max := 0
	for _, b := range conditionBins {
		if b.Points > max {
			max = b.Points
		}
	}
	return max
}

func maxWaterPoints() int {
	max := 0
	for _, b := range waterBins {
		if b.Points > max {
			max = b.Points
		}
	}
	return max
}

func Classify(in Input) (Result, error) {
	if in.UCSMPa <= 0 {
		return Result{}, fmt.Errorf("%w: ucs_mpa must be positive", ErrInvalidParameter)
	}
	if in.RQDPercent < 0 || in.RQDPercent > 100 {
		return Result{}, fmt.Errorf("%w: rqd_percent must be within 0-100", ErrInvalidParameter)
	}
	if in.SpacingM <= 0 {
		return Result{}, fmt.Errorf("%w: spacing_m must be positive", ErrInvalidParameter)
	}
	condition, ok := conditionBins[in.Condition]
	if !ok {
		return Result{}, fmt.Errorf("%w: unknown condition %q", ErrInvalidParameter, in.Condition)
	}
	water, ok := waterBins[in.Water]
	if !ok {
		return Result{}, fmt.Errorf("%w: unknown water %q", ErrInvalidParameter, in.Water)
	}

	strength := rateValue(ucsBins, in.UCSMPa)
	rqd := rateValue(rqdBins, in.RQDPercent)
	spacing := rateValue(spacingBins, in.SpacingM)

	total := strength.Points + rqd.Points + spacing.Points + condition.Points + water.Points
	band, err := classOf(total)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Strength:    ParameterRating{Label: strength.Label, Points: strength.Points},
		RQD:         ParameterRating{Label: rqd.Label, Points: rqd.Points},
		Spacing:     ParameterRating{Label: spacing.Label, Points: spacing.Points},
		Condition:   ParameterRating{Label: condition.Label, Points: condition.Points},
		Water:       ParameterRating{Label: water.Label, Points: water.Points},
		RMR:         total,
		Class:       band.Class,
		Description: band.Description,
		Notes:       "Bieniawski RMR89 rating from five parameters.",
	}, nil
}

func rateValue(bins []rangeBin, v float64) rangeBin {
	picked := bins[0]
	for _, b := range bins {
		if v >= b.FromValue {
			picked = b
		}
	}
	return picked
}

func classOf(score int) (classBand, error) {
	if score < 0 || score > 100 {
		return classBand{}, fmt.Errorf("%w: score %d outside 0-100", ErrTableDamage, score)
	}
	for _, band := range classBands {
		if score >= band.MinScore && score <= band.MaxScore {
			return band, nil
		}
	}
	return classBand{}, fmt.Errorf("%w: no class band for score %d", ErrTableDamage, score)
}
