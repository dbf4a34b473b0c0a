package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fadilmartias/hr-backend/internal/model"
	"github.com/xuri/excelize/v2"
)

const (
	PipelineSheet = "Pipeline"
	VacancySheet  = "Vacancy"
)

var pipelineHeaders = []string{"Candidate", "Status", "Interview", "Interview Date", "Interview ID", "Overall Score", "Red Flags"}

var border = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

// VacancyPipeline renders the vacancy's interviews as an xlsx workbook.
// Interviews are expected to have their Candidate loaded.
func VacancyPipeline(vacancy *model.Vacancy, interviews []model.Interview) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PipelineSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(VacancySheet); err != nil {
		return nil, err
	}

	scores, err := createPipelineSheet(f, interviews)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline sheet: %w", err)
	}
	if err := createVacancySheet(f, vacancy, len(interviews), scores); err != nil {
		return nil, fmt.Errorf("failed to create vacancy sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func createPipelineSheet(f *excelize.File, interviews []model.Interview) ([]int, error) {
	sheet := PipelineSheet
	widths := map[string]float64{"A": 25, "B": 20, "C": 25, "D": 20, "E": 38, "F": 14, "G": 50}
	for col, w := range widths {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, err
	}

	bands := make(map[string]int, 4)
	for name, color := range map[string]string{"high": "C6EFCE", "mid": "FFEB9C", "low": "FFC7CE", "none": "FFFFFF"} {
		style, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
			Border:    border,
		})
		if err != nil {
			return nil, err
		}
		bands[name] = style
	}

	for col, header := range pipelineHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	var scores []int
	for i, interview := range interviews {
		row := i + 2

		name, status := "", ""
		if interview.Candidate != nil {
			name = interview.Candidate.Name
			status = string(interview.Candidate.Status)
		}

		values := []any{name, status, interview.InterviewName, interview.InterviewDate.Format("2006-01-02 15:04"), interview.ID.String(), "", ""}

		band := "none"
		analysis, err := interview.Analysis()
		if err != nil {
			return nil, fmt.Errorf("interview %s: %w", interview.ID, err)
		}
		if analysis != nil {
			values[5] = analysis.OverallScore
			values[6] = strings.Join(analysis.RedFlagsIdentified, "; ")
			band = scoreBand(analysis.OverallScore)
			scores = append(scores, analysis.OverallScore)
		}

		start, _ := excelize.CoordinatesToCellName(1, row)
		end, _ := excelize.CoordinatesToCellName(len(values), row)
		if err := f.SetSheetRow(sheet, start, &values); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, start, end, bands[band]); err != nil {
			return nil, err
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, err
	}
	return scores, nil
}

func createVacancySheet(f *excelize.File, vacancy *model.Vacancy, interviewCount int, scores []int) error {
	sheet := VacancySheet
	if err := f.SetColWidth(sheet, "A", "A", 25); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 60); err != nil {
		return err
	}

	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	published := ""
	if vacancy.PublishedDate != nil {
		published = vacancy.PublishedDate.Format("2006-01-02")
	}

	average := "n/a"
	if len(scores) > 0 {
		total := 0
		for _, s := range scores {
			total += s
		}
		average = fmt.Sprintf("%.1f", float64(total)/float64(len(scores)))
	}

	rows := [][2]any{
		{"Title", vacancy.Title},
		{"Status", string(vacancy.Status)},
		{"Published", published},
		{"Required Experience", vacancy.RequirementsExperience},
		{"Required Skills", strings.Join(vacancy.RequirementsSkills, ", ")},
		{"Interviews", interviewCount},
		{"Analyzed", len(scores)},
		{"Average Score", average},
	}
	for i, r := range rows {
		row := i + 1
		label := fmt.Sprintf("A%d", row)
		if err := f.SetCellValue(sheet, label, r[0]); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, label, label, labelStyle); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r[1]); err != nil {
			return err
		}
	}
	return nil
}

func scoreBand(score int) string {
	switch {
	case score >= 75:
		return "high"
	case score >= 50:
		return "mid"
	default:
		return "low"
	}
}
