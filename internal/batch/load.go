package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexiusacademia/govdrop/internal/conductor"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Circuit is one named circuit of a batch file
type Circuit struct {
	Name            string `json:"name" yaml:"name"`
	conductor.Input `yaml:",inline"`
}

// Workbook column headers, matched case-insensitively
const (
	colName     = "name"
	colVoltage  = "voltage"
	colCurrent  = "current"
	colDistance = "distance"
	colDrop     = "allowed_drop_percentage"
)

var requiredColumns = []string{colVoltage, colCurrent, colDistance, colDrop}

// ValidationError reports a malformed record of a batch file
type ValidationError struct {
	Row    int // 1-based row or record number
	Column string
	msg    string
}

func (e *ValidationError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.msg)
	}
	return fmt.Sprintf("row %d, column %s: %s", e.Row, e.Column, e.msg)
}

// LoadFile reads circuits from a .json, .yaml/.yml or .xlsx file.
// Non-positive values are kept; the calculator reports them as invalid.
func LoadFile(path string, log logrus.FieldLogger) ([]Circuit, error) {
	var (
		circuits []Circuit
		err      error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		circuits, err = loadJSON(path)
	case ".yaml", ".yml":
		circuits, err = loadYAML(path)
	case ".xlsx":
		circuits, err = loadWorkbook(path, log)
	default:
		return nil, fmt.Errorf("unsupported batch file type %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if len(circuits) == 0 {
		return nil, fmt.Errorf("no circuits in %s", path)
	}

	for i := range circuits {
		if strings.TrimSpace(circuits[i].Name) == "" {
			circuits[i].Name = fmt.Sprintf("Circuit %d", i+1)
		}
	}
	log.WithField("file", path).Debugf("loaded %d circuits", len(circuits))

	return circuits, nil
}

func loadJSON(path string) ([]Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var circuits []Circuit
	if err := json.Unmarshal(data, &circuits); err != nil {
		return nil, err
	}
	return circuits, nil
}

func loadYAML(path string) ([]Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var circuits []Circuit
	if err := yaml.Unmarshal(data, &circuits); err != nil {
		return nil, err
	}
	return circuits, nil
}

func loadWorkbook(path string, log logrus.FieldLogger) ([]Circuit, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// Header row
	index := make(map[string]int)
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &ValidationError{Row: 1, Column: col, msg: "missing header"}
		}
	}

	var circuits []Circuit
	for i, row := range rows[1:] {
		rowNum := i + 2
		if blank(row) {
			log.WithField("sheet", sheet).Debugf("skipping blank row %d", rowNum)
			continue
		}

		var c Circuit
		if j, ok := index[colName]; ok {
			c.Name = cell(row, j)
		}
		fields := []struct {
			col string
			dst *float64
		}{
			{colVoltage, &c.Voltage},
			{colCurrent, &c.Current},
			{colDistance, &c.Distance},
			{colDrop, &c.AllowedDropPercentage},
		}
		for _, fld := range fields {
			v, err := parseNumber(cell(row, index[fld.col]))
			if err != nil {
				return nil, &ValidationError{Row: rowNum, Column: fld.col, msg: err.Error()}
			}
			*fld.dst = v
		}
		circuits = append(circuits, c)
	}

	return circuits, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseNumber accepts "2.5" and the decimal comma form "2,5"
func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}
