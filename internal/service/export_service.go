package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"jyotish/internal/models"
	"jyotish/internal/utils"
)

// ExportService сохраняет результаты расчётов в файлы для выгрузки.
type ExportService interface {
	ExportMuhurat(ctx context.Context, result *models.MuhuratResult, format string) (string, error)
	ExportMonthlyPanchang(ctx context.Context, title string, days []models.PanchangDay, format string) (string, error)
}

type exportService struct {
	outputDir string
}

func NewExportService(outputDir string) ExportService {
	if outputDir == "" {
		outputDir = "./exports"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Printf("Failed to create output directory: %v", err)
	}
	return &exportService{outputDir: outputDir}
}

// exportName собирает имя файла с меткой времени и коротким суффиксом,
// чтобы одновременные выгрузки не затирали друг друга.
func exportName(prefix, ext string) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	return fmt.Sprintf("%s_%s_%s.%s", prefix, timestamp, uuid.New().String()[:8], ext)
}

func (s *exportService) ExportMuhurat(_ context.Context, result *models.MuhuratResult, format string) (string, error) {
	if result == nil || len(result.Windows) == 0 {
		return "", fmt.Errorf("no windows found for the specified range")
	}

	prefix := fmt.Sprintf("muhurat_%s", result.Event)

	switch format {
	case "excel", "xlsx":
		filePath := filepath.Join(s.outputDir, exportName(prefix, "xlsx"))
		if err := utils.CreateMuhuratExcelFile(filePath, result); err != nil {
			return "", fmt.Errorf("failed to create Excel file: %w", err)
		}
		return filePath, nil

	case "csv":
		filePath := filepath.Join(s.outputDir, exportName(prefix, "csv"))
		if err := s.saveMuhuratCSV(filePath, result); err != nil {
			return "", err
		}
		return filePath, nil

	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (s *exportService) ExportMonthlyPanchang(_ context.Context, title string, days []models.PanchangDay, format string) (string, error) {
	if len(days) == 0 {
		return "", fmt.Errorf("no data found for the specified range")
	}

	switch format {
	case "excel", "xlsx":
		filePath := filepath.Join(s.outputDir, exportName("panchang", "xlsx"))
		if err := utils.CreatePanchangExcelFile(filePath, title, days); err != nil {
			return "", fmt.Errorf("failed to create Excel file: %w", err)
		}
		return filePath, nil

	case "csv":
		filePath := filepath.Join(s.outputDir, exportName("panchang", "csv"))
		if err := s.savePanchangCSV(filePath, days); err != nil {
			return "", err
		}
		return filePath, nil

	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (s *exportService) saveMuhuratCSV(path string, result *models.MuhuratResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Start", "End", "Quality", "Score", "Tithi", "Nakshatra", "Yoga", "Karana", "Vaara"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, win := range result.Windows {
		row := []string{
			win.Start.Format("2006-01-02 15:04:05"),
			win.End.Format("2006-01-02 15:04:05"),
			string(win.Quality),
			fmt.Sprintf("%.1f", win.Score),
			win.Tithi,
			win.Nakshatra,
			win.Yoga,
			win.Karana,
			win.Vaara,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func (s *exportService) savePanchangCSV(path string, days []models.PanchangDay) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Date", "Vaara", "Tithi", "Paksha", "Nakshatra", "Yoga", "Karana", "Sunrise", "Sunset"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, d := range days {
		row := []string{
			d.Date.Format("2006-01-02"),
			d.Vaara,
			d.Tithi,
			string(d.Paksha),
			d.Nakshatra,
			d.Yoga,
			d.Karana,
			d.Sunrise.Format("15:04:05"),
			d.Sunset.Format("15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}
