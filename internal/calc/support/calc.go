package support

import (
	"errors"
	"fmt"
	"math"

	rmr "Stratum/internal/calc/rmr"
)

var (
	ErrUnknownClass    = errors.New("unknown rock class")
	ErrInvalidGeometry = errors.New("invalid geometry")
)

type Pattern string

const (
	PatternSpot      Pattern = "spot"
	PatternSquare    Pattern = "square"
	PatternStaggered Pattern = "staggered"
)

type Spec struct {
	Class        rmr.Class `json:"class"`
	BoltLengthM  float64   `json:"bolt_length_m"`
	BoltSpacingM float64   `json:"bolt_spacing_m"`
	Pattern      Pattern   `json:"pattern"`
	PatternNote  string    `json:"pattern_note"`
	BoltType     string    `json:"bolt_type"`
	CapacityT    float64   `json:"capacity_t"`
	Extras       []string  `json:"extras"`
}

type Geometry struct {
	WidthM  float64 `json:"width_m"`
	HeightM float64 `json:"height_m"`
	LengthM float64 `json:"length_m"`
}

type Estimate struct {
	BoltsPerRow      int     `json:"bolts_per_row"`
	RowsPerMeter     float64 `json:"rows_per_meter"`
	BoltsPerMeter    float64 `json:"bolts_per_meter"`
	TotalBolts       int     `json:"total_bolts"`
	TotalBoltLengthM float64 `json:"total_bolt_length_m"`
	Notes            string  `json:"notes"`
}

// classSpec is the per-class support table. Bolt length is
// max(BaseLengthM, span/SpanDivisor) so wider openings get longer bolts.
type classSpec struct {
	BaseLengthM  float64
	SpanDivisor  float64
	BoltSpacingM float64
	Pattern      Pattern
	PatternNote  string
	BoltType     string
	CapacityT    float64
	Extras       []string
}

var specs = map[rmr.Class]classSpec{
	rmr.ClassI: {
		BaseLengthM:  2.0,
		SpanDivisor:  5,
		BoltSpacingM: 2.0,
		Pattern:      PatternSpot,
		PatternNote:  "Spot bolting only where necessary",
		BoltType:     "Friction or fully grouted bolts",
		CapacityT:    10,
		Extras:       nil,
	},
	rmr.ClassII: {
		BaseLengthM:  2.5,
		SpanDivisor:  4,
		BoltSpacingM: 1.5,
		Pattern:      PatternSquare,
		PatternNote:  "Systematic bolting at 1.5-2.0 m spacing",
		BoltType:     "Fully grouted rebar or friction bolts",
		CapacityT:    15,
		Extras:       []string{"Spot mesh in crown where needed"},
	},
	rmr.ClassIII: {
		BaseLengthM:  3.0,
		SpanDivisor:  3,
		BoltSpacingM: 1.2,
		Pattern:      PatternSquare,
		PatternNote:  "Systematic bolting at 1.0-1.5 m spacing in crown and walls",
		BoltType:     "Fully grouted rebar",
		CapacityT:    20,
		Extras: []string{
			"Wire mesh in crown",
			"Spot fiber-reinforced shotcrete (50 mm)",
		},
	},
	rmr.ClassIV: {
		BaseLengthM:  4.0,
		SpanDivisor:  2.5,
		BoltSpacingM: 1.0,
		Pattern:      PatternStaggered,
		PatternNote:  "Systematic bolting at 1.0 m spacing with wire mesh in crown and walls",
		BoltType:     "Fully grouted rebar or cable bolts",
		CapacityT:    25,
		Extras: []string{
			"Wire mesh in crown and walls",
			"Fiber-reinforced shotcrete (100-150 mm)",
		},
	},
	rmr.ClassV: {
		BaseLengthM:  4.5,
		SpanDivisor:  2,
		BoltSpacingM: 0.6,
		Pattern:      PatternStaggered,
		PatternNote:  "Systematic bolting at 0.5-0.8 m spacing with wire mesh and straps",
		BoltType:     "Fully grouted cable bolts and rebar",
		CapacityT:    30,
		Extras: []string{
			"Wire mesh with straps in crown and walls",
			"Fiber-reinforced shotcrete (150-200 mm)",
			"Light steel sets",
		},
	},
}

func init() {
	for _, class := range []rmr.Class{rmr.ClassI, rmr.ClassII, rmr.ClassIII, rmr.ClassIV, rmr.ClassV} {
		cs, ok := specs[class]
		if !ok {
			panic(fmt.Sprintf("support: no spec for class %s", class))
		}
		if cs.BaseLengthM <= 0 || cs.SpanDivisor <= 0 || cs.BoltSpacingM <= 0 {
			panic(fmt.Sprintf("support: bad spec for class %s", class))
		}
	}
}

// Recommend returns the support table entry for a rock class. spanM is the
// excavation width; non-positive span keeps the base bolt length.
func Recommend(class rmr.Class, spanM float64) (Spec, error) {
	cs, ok := specs[class]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}
	length := cs.BaseLengthM
	if spanM > 0 {
		length = math.Max(cs.BaseLengthM, spanM/cs.SpanDivisor)
	}
	return Spec{
		Class:        class,
		BoltLengthM:  length,
		BoltSpacingM: cs.BoltSpacingM,
		Pattern:      cs.Pattern,
		PatternNote:  cs.PatternNote,
		BoltType:     cs.BoltType,
		CapacityT:    cs.CapacityT,
		Extras:       cs.Extras,
	}, nil
}

// EstimateBolts sizes a rows-by-columns bolting pattern for the excavation.
// Spot bolting places a half row per meter of advance, systematic patterns
// one row every spacing interval. Counts round up, never down.
func EstimateBolts(spec Spec, g Geometry) (Estimate, error) {
	if g.WidthM <= 0 || g.HeightM <= 0 || g.LengthM <= 0 {
		return Estimate{}, fmt.Errorf("%w: dimensions must be positive", ErrInvalidGeometry)
	}
	if spec.BoltSpacingM <= 0 {
		return Estimate{}, fmt.Errorf("%w: bolt spacing must be positive", ErrInvalidGeometry)
	}

	perRow := int(math.Ceil(g.WidthM / spec.BoltSpacingM))
	rowsPerMeter := 1.0 / spec.BoltSpacingM
	if spec.Pattern == PatternSpot {
		if perRow < 2 {
			perRow = 2
		}
		rowsPerMeter = 0.5
	} else if perRow < 3 {
		perRow = 3
	}

	perMeter := float64(perRow) * rowsPerMeter
	total := int(math.Ceil(perMeter * g.LengthM))

	return Estimate{
		BoltsPerRow:      perRow,
		RowsPerMeter:     rowsPerMeter,
		BoltsPerMeter:    perMeter,
		TotalBolts:       total,
		TotalBoltLengthM: float64(total) * spec.BoltLengthM,
		Notes:            "Rows-by-columns roof bolt pattern over the tunnel advance.",
	}, nil
}
