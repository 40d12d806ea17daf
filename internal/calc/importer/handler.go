package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	assessment "Stratum/internal/calc/assessment"
	rmr "Stratum/internal/calc/rmr"
	support "Stratum/internal/calc/support"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int                 `json:"count"`
	Results []assessment.Result `json:"results"`
}

func (h *Handler) Assessments(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []assessment.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		res, err := assessment.Run(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(results), Results: results})
}

// expected columns: ucs_mpa, rqd_percent, spacing_m, condition, water,
// width_m, height_m, length_m
func parseRow(row []string) (assessment.Input, error) {
	if len(row) < 8 {
		return assessment.Input{}, fmt.Errorf("bad row")
	}
	ucs, err := toFloat(row[0])
	if err != nil {
		return assessment.Input{}, err
	}
	rqd, err := toFloat(row[1])
	if err != nil {
		return assessment.Input{}, err
	}
	spacing, err := toFloat(row[2])
	if err != nil {
		return assessment.Input{}, err
	}
	width, err := toFloat(row[5])
	if err != nil {
		return assessment.Input{}, err
	}
	height, err := toFloat(row[6])
	if err != nil {
		return assessment.Input{}, err
	}
	length, err := toFloat(row[7])
	if err != nil {
		return assessment.Input{}, err
	}
	return assessment.Input{
		Rock: rmr.Input{
			UCSMPa:     ucs,
			RQDPercent: rqd,
			SpacingM:   spacing,
			Condition:  rmr.Condition(row[3]),
			Water:      rmr.Water(row[4]),
		},
		Excavation: support.Geometry{
			WidthM:  width,
			HeightM: height,
			LengthM: length,
		},
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
