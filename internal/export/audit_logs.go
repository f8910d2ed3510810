package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"syntheo-client/internal/domain"
)

const auditSheet = "Audit log"

// AuditLogHeader 导出表头
var AuditLogHeader = []string{
	"Tijdstip",
	"Gebruiker",
	"Actie",
	"Type",
	"Object ID",
	"Details",
}

var auditColumnWidths = []float64{20, 24, 16, 18, 12, 60}

// AuditLogsXLSX 生成审计日志工作簿；logs 为空时只有表头
// 调用方负责 Close
func AuditLogsXLSX(logs []domain.AuditLog) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(auditSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range AuditLogHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(auditSheet, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(auditSheet, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetColWidth(auditSheet, name, name, auditColumnWidths[col]); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := f.SetPanes(auditSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	for i, l := range logs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := auditRow(l)
		if err := f.SetSheetRow(auditSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f, nil
}

// WriteAuditLogs 生成工作簿并写入 w
func WriteAuditLogs(w io.Writer, logs []domain.AuditLog) error {
	f, err := AuditLogsXLSX(logs)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// auditRow 一行数据；所有单元格写为字符串
func auditRow(l domain.AuditLog) []any {
	user := ""
	switch {
	case l.User != nil:
		user = l.User.Name
	case l.UserID != nil:
		user = "#" + strconv.Itoa(*l.UserID)
	}
	entityID := ""
	if l.EntityID != nil {
		entityID = strconv.Itoa(*l.EntityID)
	}
	details := ""
	if len(l.Details) > 0 && string(l.Details) != "null" {
		details = string(l.Details)
	}
	ts := ""
	if !l.Timestamp.IsZero() {
		ts = l.Timestamp.Format("2006-01-02 15:04:05")
	}
	return []any{ts, user, l.Action, l.EntityType, entityID, details}
}
