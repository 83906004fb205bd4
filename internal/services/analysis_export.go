package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportResults renders a completed analysis to an xlsx workbook for the
// presentation layer to serve as a download: one sheet of student records,
// one of item statistics.
func (s *analysisService) ExportResults(ctx context.Context, result *AnalysisResult) ([]byte, error) {
	f := excelize.NewFile()

	if err := s.writeStudentSheet(f, result); err != nil {
		return nil, err
	}
	if err := s.writeItemSheet(f, result); err != nil {
		return nil, err
	}

	// Drop the default sheet excelize creates.
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *analysisService) writeStudentSheet(f *excelize.File, result *AnalysisResult) error {
	sheetName := "Students"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []interface{}{"ID", "Name", "Classroom", "Total Score", "Achievement"}
	for _, item := range result.Items {
		headers = append(headers, fmt.Sprintf("Item %d", item.Number))
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return err
	}

	for i, student := range result.Students {
		row := []interface{}{
			student.ID,
			student.Name,
			student.Classroom,
			student.TotalScore,
			string(student.Achievement),
		}
		for _, item := range result.Items {
			token := ""
			if item.Number >= 1 && item.Number <= len(student.Responses) {
				token = student.Responses[item.Number-1].Token()
			}
			row = append(row, token)
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	return nil
}

func (s *analysisService) writeItemSheet(f *excelize.File, result *AnalysisResult) error {
	sheetName := "Items"
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []interface{}{
		"Number", "Standard", "Expected Difficulty", "Points", "Correct Option",
		"Difficulty", "Discrimination",
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return err
	}

	statByNumber := make(map[int]int, len(result.ItemStats))
	for i, st := range result.ItemStats {
		statByNumber[st.Number] = i
	}

	for i, item := range result.Items {
		row := []interface{}{
			item.Number,
			item.Standard,
			string(item.ExpectedDifficulty),
			item.Points,
			item.CorrectOption,
		}
		if idx, ok := statByNumber[item.Number]; ok {
			row = append(row, result.ItemStats[idx].Difficulty, result.ItemStats[idx].Discrimination)
		} else {
			row = append(row, "", "")
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	return nil
}
