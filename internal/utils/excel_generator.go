package utils

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"jyotish/internal/models"
)

// CreateMuhuratExcelFile создает Excel файл с найденными окнами
func CreateMuhuratExcelFile(filepath string, result *models.MuhuratResult) error {
	f := excelize.NewFile()
	defer f.Close()

	// Создаем новый лист
	index, err := f.NewSheet("Windows")
	if err != nil {
		return err
	}

	// Устанавливаем заголовки
	headers := []string{"Start", "End", "Quality", "Score", "Tithi", "Nakshatra", "Yoga", "Karana", "Vaara"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("Windows", cell, header)
	}

	// Заполняем данные
	for rowIdx, win := range result.Windows {
		rowNum := rowIdx + 2 // Заголовок в первой строке

		f.SetCellValue("Windows", fmt.Sprintf("A%d", rowNum),
			win.Start.Format("2006-01-02 15:04"))
		f.SetCellValue("Windows", fmt.Sprintf("B%d", rowNum),
			win.End.Format("2006-01-02 15:04"))
		f.SetCellValue("Windows", fmt.Sprintf("C%d", rowNum), string(win.Quality))
		f.SetCellValue("Windows", fmt.Sprintf("D%d", rowNum), win.Score)
		f.SetCellValue("Windows", fmt.Sprintf("E%d", rowNum), win.Tithi)
		f.SetCellValue("Windows", fmt.Sprintf("F%d", rowNum), win.Nakshatra)
		f.SetCellValue("Windows", fmt.Sprintf("G%d", rowNum), win.Yoga)
		f.SetCellValue("Windows", fmt.Sprintf("H%d", rowNum), win.Karana)
		f.SetCellValue("Windows", fmt.Sprintf("I%d", rowNum), win.Vaara)
	}

	// Авто-ширина колонок
	for i := 1; i <= len(headers); i++ {
		colName, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth("Windows", colName, colName, 18)
	}

	// Зеленый для отличных окон (балл >= 80)
	excellentRule := []excelize.ConditionalFormatOptions{
		{
			Type:     "cell",
			Criteria: ">=",
			Value:    "80",
			Format:   getConditionalFormatStyle(f, "#CCFFCC"),
		},
	}
	if err := f.SetConditionalFormat("Windows", "D2:D1000", excellentRule); err != nil {
		return err
	}

	// Красный для слабых окон (балл < 40)
	poorRule := []excelize.ConditionalFormatOptions{
		{
			Type:     "cell",
			Criteria: "<",
			Value:    "40",
			Format:   getConditionalFormatStyle(f, "#FFCCCC"),
		},
	}
	if err := f.SetConditionalFormat("Windows", "D2:D1000", poorRule); err != nil {
		return err
	}

	// Создаем график баллов
	if len(result.Windows) > 1 {
		createScoreChart(f, len(result.Windows))
	}

	// Создаем информационный лист
	createMuhuratInfoSheet(f, result)

	// Устанавливаем активный лист
	f.SetActiveSheet(index)

	if err := f.SaveAs(filepath); err != nil {
		return err
	}

	return nil
}

// CreatePanchangExcelFile создает Excel файл с месячной сводкой панчанга
func CreatePanchangExcelFile(filepath string, title string, days []models.PanchangDay) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet("Panchang")
	if err != nil {
		return err
	}

	headers := []string{"Date", "Vaara", "Tithi", "Paksha", "Nakshatra", "Yoga", "Karana", "Sunrise", "Sunset"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("Panchang", cell, header)
	}

	for rowIdx, d := range days {
		rowNum := rowIdx + 2

		f.SetCellValue("Panchang", fmt.Sprintf("A%d", rowNum), d.Date.Format("2006-01-02"))
		f.SetCellValue("Panchang", fmt.Sprintf("B%d", rowNum), d.Vaara)
		f.SetCellValue("Panchang", fmt.Sprintf("C%d", rowNum), d.Tithi)
		f.SetCellValue("Panchang", fmt.Sprintf("D%d", rowNum), string(d.Paksha))
		f.SetCellValue("Panchang", fmt.Sprintf("E%d", rowNum), d.Nakshatra)
		f.SetCellValue("Panchang", fmt.Sprintf("F%d", rowNum), d.Yoga)
		f.SetCellValue("Panchang", fmt.Sprintf("G%d", rowNum), d.Karana)
		f.SetCellValue("Panchang", fmt.Sprintf("H%d", rowNum), d.Sunrise.Format("15:04"))
		f.SetCellValue("Panchang", fmt.Sprintf("I%d", rowNum), d.Sunset.Format("15:04"))
	}

	for i := 1; i <= len(headers); i++ {
		colName, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth("Panchang", colName, colName, 16)
	}

	createPanchangInfoSheet(f, title, days)

	f.SetActiveSheet(index)

	if err := f.SaveAs(filepath); err != nil {
		return err
	}

	return nil
}

func createScoreChart(f *excelize.File, count int) {
	// График баллов по окнам
	chart := &excelize.Chart{
		Type: excelize.Col3DClustered,
		Series: []excelize.ChartSeries{
			{
				Name:       "Score",
				Categories: "Windows!$A$2:$A$" + fmt.Sprintf("%d", count+1),
				Values:     "Windows!$D$2:$D$" + fmt.Sprintf("%d", count+1),
			},
		},
		Title: []excelize.RichTextRun{
			{
				Text: "Window Scores",
			},
		},
		XAxis: excelize.ChartAxis{
			MajorGridLines: true,
		},
		YAxis: excelize.ChartAxis{
			MajorGridLines: true,
		},
		Dimension: excelize.ChartDimension{
			Width:  600,
			Height: 400,
		},
	}

	f.AddChart("Windows", "K2", chart)
}

func createMuhuratInfoSheet(f *excelize.File, result *models.MuhuratResult) {
	f.NewSheet("Info")

	best := "none"
	if result.Best != nil {
		best = fmt.Sprintf("%s (score %.1f)", result.Best.Start.Format("2006-01-02 15:04"), result.Best.Score)
	}

	metadata := map[string]interface{}{
		"Report Generated": time.Now().Format("2006-01-02 15:04:05"),
		"Event":            string(result.Event),
		"Search Range": fmt.Sprintf("%s to %s",
			result.SearchStart.Format("2006-01-02"),
			result.SearchEnd.Format("2006-01-02")),
		"Location":      fmt.Sprintf("%.4f, %.4f", result.Latitude, result.Longitude),
		"Total Windows": result.TotalFound,
		"Best Window":   best,
	}

	row := 1
	for key, value := range metadata {
		f.SetCellValue("Info", fmt.Sprintf("A%d", row), key)
		f.SetCellValue("Info", fmt.Sprintf("B%d", row), value)
		row++
	}

	f.SetColWidth("Info", "A", "B", 30)
}

func createPanchangInfoSheet(f *excelize.File, title string, days []models.PanchangDay) {
	f.NewSheet("Info")

	metadata := map[string]interface{}{
		"Report Generated": time.Now().Format("2006-01-02 15:04:05"),
		"Month":            title,
		"Total Days":       len(days),
	}

	row := 1
	for key, value := range metadata {
		f.SetCellValue("Info", fmt.Sprintf("A%d", row), key)
		f.SetCellValue("Info", fmt.Sprintf("B%d", row), value)
		row++
	}

	f.SetColWidth("Info", "A", "B", 30)
}

// getConditionalFormatStyle создает стиль для условного форматирования
func getConditionalFormatStyle(f *excelize.File, color string) *int {
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{color},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil
	}
	return &style
}
