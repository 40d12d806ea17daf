package rmr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	rmr "Stratum/internal/calc/rmr"
)

func TestHandlerCalc(t *testing.T) {
	rq := require.New(t)

	payload := `{"ucs_mpa":150,"rqd_percent":80,"spacing_m":0.3,"condition":"highly_weathered","water":"damp"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/rmr/classify", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	h := &rmr.Handler{}
	h.Calc(rec, req)

	rq.Equal(http.StatusOK, rec.Code)
	var res rmr.Result
	rq.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	rq.Equal(69, res.RMR)
	rq.Equal(rmr.ClassII, res.Class)
}

func TestHandlerCalcBadPayload(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		payload string
	}{
		{"not json", "length=6"},
		{"unknown water token", `{"ucs_mpa":150,"rqd_percent":80,"spacing_m":0.3,"condition":"highly_weathered","water":"moist"}`},
		{"missing parameters", `{}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/user/tools/rmr/classify", strings.NewReader(tc.payload))
			rec := httptest.NewRecorder()

			h := &rmr.Handler{}
			h.Calc(rec, req)

			rq.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}
