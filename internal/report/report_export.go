package report

import (
	"bytes"

	"leaveflow/internal/leave"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const leavesSheet = "Leave Requests"

var leaveHeaders = []string{
	"Employee", "Email", "Department", "Leave Type", "Start Date", "End Date",
	"Days", "Status", "Reason", "Admin Comment", "Applied On",
}

// WriteLeavesWorkbook renders rows as a single-sheet XLSX workbook with a
// bold header row.
func WriteLeavesWorkbook(rows []leave.LeaveRequest) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			zap.L().Named("report.export").Warn("close workbook failed", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", leavesSheet); err != nil {
		return nil, err
	}

	if err := writeHeader(f, leavesSheet, leaveHeaders); err != nil {
		return nil, err
	}

	for i, lr := range rows {
		resp := leave.ToResponse(lr)
		comment := ""
		if resp.AdminComment != nil {
			comment = *resp.AdminComment
		}
		values := []any{
			resp.EmployeeName, resp.Email, resp.Department, resp.LeaveType,
			resp.StartDate, resp.EndDate, resp.Days, resp.Status,
			resp.Reason, comment, lr.AppliedOn.UTC().Format("2006-01-02 15:04"),
		}
		if err := writeRow(f, leavesSheet, i+2, values); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return err
	}

	first, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return err
	}

	values := make([]any, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	return writeRow(f, sheet, 1, values)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
