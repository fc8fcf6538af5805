package export

import (
	"fmt"

	"github.com/tealeg/xlsx"

	"speaker-scribe/internal/app/converter"
)

const sheetName = "Transcriptions"

// ToExcel writes one row per converter result to a new workbook at outputFilePath
func ToExcel(results []converter.Result, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "File"
	headerRow.AddCell().Value = "MIME Type"
	headerRow.AddCell().Value = "Size (MB)"
	headerRow.AddCell().Value = "Transcription"
	headerRow.AddCell().Value = "Output File"
	headerRow.AddCell().Value = "Error Message"

	for _, r := range results {
		errMsg := ""
		if r.Err != nil {
			errMsg = r.Err.Error()
		}

		row := sheet.AddRow()
		row.AddCell().Value = r.Path
		row.AddCell().Value = r.MIMEType
		row.AddCell().Value = fmt.Sprintf("%.2f", float64(r.Size)/1024/1024)
		row.AddCell().Value = r.Text
		row.AddCell().Value = r.OutputPath
		row.AddCell().Value = errMsg
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
