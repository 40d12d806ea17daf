package report_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	assessment "Stratum/internal/calc/assessment"
	report "Stratum/internal/calc/report"
	rmr "Stratum/internal/calc/rmr"
	support "Stratum/internal/calc/support"
)

func TestGenerate(t *testing.T) {
	rq := require.New(t)

	input := report.Input{
		Project: "North drift",
		Author:  "Site engineer",
		Notes:   "Advance rate 4 m per day.",
		Assessment: assessment.Input{
			Rock: rmr.Input{
				UCSMPa:     150,
				RQDPercent: 80,
				SpacingM:   0.3,
				Condition:  rmr.ConditionHighlyWeathered,
				Water:      rmr.WaterDamp,
			},
			Excavation: support.Geometry{WidthM: 6, HeightM: 4, LengthM: 50},
		},
	}
	payload, err := json.Marshal(input)
	rq.NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/report/pdf", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	h := &report.Handler{}
	h.Generate(rec, req)

	rq.Equal(http.StatusOK, rec.Code)
	rq.Equal("application/pdf", rec.Header().Get("Content-Type"))
	rq.True(bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestGenerateBadInput(t *testing.T) {
	rq := require.New(t)

	input := report.Input{
		Assessment: assessment.Input{
			Rock: rmr.Input{
				UCSMPa:     150,
				RQDPercent: 80,
				SpacingM:   0.3,
				Condition:  rmr.ConditionHighlyWeathered,
				Water:      "moist",
			},
			Excavation: support.Geometry{WidthM: 6, HeightM: 4, LengthM: 50},
		},
	}
	payload, err := json.Marshal(input)
	rq.NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/report/pdf", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	h := &report.Handler{}
	h.Generate(rec, req)

	rq.Equal(http.StatusBadRequest, rec.Code)
}
