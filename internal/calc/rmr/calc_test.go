package rmr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	rmr "Stratum/internal/calc/rmr"
)

func TestClassify(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		input       rmr.Input
		rmrValue    int
		class       rmr.Class
		description string
	}{
		{
			name: "good rock worked example",
			input: rmr.Input{
				UCSMPa:     150,
				RQDPercent: 80,
				SpacingM:   0.3,
				Condition:  rmr.ConditionHighlyWeathered,
				Water:      rmr.WaterDamp,
			},
			rmrValue:    69, // 12+17+10+20+10
			class:       rmr.ClassII,
			description: "Good rock",
		},
		{
			name: "maximum score",
			input: rmr.Input{
				UCSMPa:     300,
				RQDPercent: 95,
				SpacingM:   2.5,
				Condition:  rmr.ConditionVeryRough,
				Water:      rmr.WaterDry,
			},
			rmrValue:    100,
			class:       rmr.ClassI,
			description: "Very good rock",
		},
		{
			name: "weak wet rock",
			input: rmr.Input{
				UCSMPa:     0.5,
				RQDPercent: 10,
				SpacingM:   0.05,
				Condition:  rmr.ConditionSoftGouge,
				Water:      rmr.WaterFlowing,
			},
			rmrValue:    8,
			class:       rmr.ClassV,
			description: "Very poor rock",
		},
		{
			name: "score 81 lands in class I",
			input: rmr.Input{
				UCSMPa:     150,
				RQDPercent: 80,
				SpacingM:   2.5,
				Condition:  rmr.ConditionSlightlyRough,
				Water:      rmr.WaterWet,
			},
			rmrValue:    81, // 12+17+20+25+7
			class:       rmr.ClassI,
			description: "Very good rock",
		},
		{
			name: "score 80 stays in class II",
			input: rmr.Input{
				UCSMPa:     300,
				RQDPercent: 95,
				SpacingM:   0.3,
				Condition:  rmr.ConditionSlightlyRough,
				Water:      rmr.WaterDamp,
			},
			rmrValue:    80, // 15+20+10+25+10
			class:       rmr.ClassII,
			description: "Good rock",
		},
		{
			name: "score 61 lands in class II",
			input: rmr.Input{
				UCSMPa:     300,
				RQDPercent: 60,
				SpacingM:   0.1,
				Condition:  rmr.ConditionSlickensided,
				Water:      rmr.WaterDry,
			},
			rmrValue:    61, // 15+13+8+10+15
			class:       rmr.ClassII,
			description: "Good rock",
		},
		{
			name: "score 60 stays in class III",
			input: rmr.Input{
				UCSMPa:     300,
				RQDPercent: 80,
				SpacingM:   0.1,
				Condition:  rmr.ConditionSlickensided,
				Water:      rmr.WaterDamp,
			},
			rmrValue:    60, // 15+17+8+10+10
			class:       rmr.ClassIII,
			description: "Fair rock",
		},
		{
			name: "score 41 lands in class III",
			input: rmr.Input{
				UCSMPa:     30,
				RQDPercent: 30,
				SpacingM:   1.0,
				Condition:  rmr.ConditionSlickensided,
				Water:      rmr.WaterDripping,
			},
			rmrValue:    41, // 4+8+15+10+4
			class:       rmr.ClassIII,
			description: "Fair rock",
		},
		{
			name: "score 40 stays in class IV",
			input: rmr.Input{
				UCSMPa:     70,
				RQDPercent: 10,
				SpacingM:   2.5,
				Condition:  rmr.ConditionSlickensided,
				Water:      rmr.WaterFlowing,
			},
			rmrValue:    40, // 7+3+20+10+0
			class:       rmr.ClassIV,
			description: "Poor rock",
		},
		{
			name: "score 21 lands in class IV",
			input: rmr.Input{
				UCSMPa:     0.5,
				RQDPercent: 10,
				SpacingM:   0.1,
				Condition:  rmr.ConditionSlickensided,
				Water:      rmr.WaterFlowing,
			},
			rmrValue:    21, // 0+3+8+10+0
			class:       rmr.ClassIV,
			description: "Poor rock",
		},
		{
			name: "score 20 stays in class V",
			input: rmr.Input{
				UCSMPa:     0.5,
				RQDPercent: 10,
				SpacingM:   0.3,
				Condition:  rmr.ConditionSoftGouge,
				Water:      rmr.WaterWet,
			},
			rmrValue:    20, // 0+3+10+0+7
			class:       rmr.ClassV,
			description: "Very poor rock",
		},
		{
			name: "bin lower bounds are inclusive",
			input: rmr.Input{
				UCSMPa:     50,  // 50-100 MPa bin
				RQDPercent: 25,  // 25-50% bin
				SpacingM:   0.6, // 0.6-2 m bin
				Condition:  rmr.ConditionVeryRough,
				Water:      rmr.WaterDry,
			},
			rmrValue:    75, // 7+8+15+30+15
			class:       rmr.ClassII,
			description: "Good rock",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := rmr.Classify(tc.input)
			rq.NoError(err)
			rq.Equal(tc.rmrValue, res.RMR)
			rq.Equal(tc.class, res.Class)
			rq.Equal(tc.description, res.Description)

			sum := res.Strength.Points + res.RQD.Points + res.Spacing.Points +
				res.Condition.Points + res.Water.Points
			rq.Equal(sum, res.RMR)

			again, err := rmr.Classify(tc.input)
			rq.NoError(err)
			rq.Equal(res, again)
		})
	}
}

func TestClassifyInvalidInput(t *testing.T) {
	rq := require.New(t)

	valid := rmr.Input{
		UCSMPa:     150,
		RQDPercent: 80,
		SpacingM:   0.3,
		Condition:  rmr.ConditionHighlyWeathered,
		Water:      rmr.WaterDamp,
	}

	testCases := []struct {
		name   string
		mutate func(*rmr.Input)
	}{
		{"zero ucs", func(in *rmr.Input) { in.UCSMPa = 0 }},
		{"negative ucs", func(in *rmr.Input) { in.UCSMPa = -10 }},
		{"rqd above 100", func(in *rmr.Input) { in.RQDPercent = 120 }},
		{"negative rqd", func(in *rmr.Input) { in.RQDPercent = -1 }},
		{"zero spacing", func(in *rmr.Input) { in.SpacingM = 0 }},
		{"unknown condition", func(in *rmr.Input) { in.Condition = "polished" }},
		{"unknown water", func(in *rmr.Input) { in.Water = "moist" }},
		{"empty water", func(in *rmr.Input) { in.Water = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)
			res, err := rmr.Classify(input)
			rq.ErrorIs(err, rmr.ErrInvalidParameter)
			rq.Zero(res)
		})
	}
}

// Every combination of valid bins must produce a score within 0..100 and a
// class, with the score equal to the sum of the five parameter points.
func TestClassifyCoversAllBins(t *testing.T) {
	rq := require.New(t)

	ucsValues := []float64{0.5, 2, 10, 30, 70, 150, 300}
	rqdValues := []float64{10, 30, 60, 80, 95}
	spacingValues := []float64{0.03, 0.1, 0.3, 1, 2.5}
	conditions := []rmr.Condition{
		rmr.ConditionVeryRough,
		rmr.ConditionSlightlyRough,
		rmr.ConditionHighlyWeathered,
		rmr.ConditionSlickensided,
		rmr.ConditionSoftGouge,
	}
	waters := []rmr.Water{
		rmr.WaterDry,
		rmr.WaterDamp,
		rmr.WaterWet,
		rmr.WaterDripping,
		rmr.WaterFlowing,
	}

	for _, ucs := range ucsValues {
		for _, rqd := range rqdValues {
			for _, spacing := range spacingValues {
				for _, condition := range conditions {
					for _, water := range waters {
						res, err := rmr.Classify(rmr.Input{
							UCSMPa:     ucs,
							RQDPercent: rqd,
							SpacingM:   spacing,
							Condition:  condition,
							Water:      water,
						})
						rq.NoError(err)
						rq.GreaterOrEqual(res.RMR, 0)
						rq.LessOrEqual(res.RMR, 100)
						rq.NotEmpty(res.Class)
						rq.NotEmpty(res.Description)
					}
				}
			}
		}
	}
}
