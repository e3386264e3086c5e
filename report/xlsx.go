/*
Package report renders approved timesheets as Excel workbooks.

PURPOSE:
  Supervisors file a paper-equivalent record after approving a period.
  The workbook has one sheet per week plus a summary sheet with the
  period totals and the signature date.

FORMAT:
  Sheet "Week 1" / "Week 2": one row per day with the date, day type,
  each clock pair, and the daily total. Sheet "Summary": employee,
  period, weekly totals, overtime, personal leave, decision fields.

USAGE:
  buf, filename, err := report.Workbook(sub)
  // write buf.Bytes() with an .xlsx content type
*/
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/warp/timeclock-engine/approval"
	"github.com/warp/timeclock-engine/timesheet"
)

// Workbook builds the .xlsx for one submission and returns the file
// content plus a suggested filename.
func Workbook(sub *approval.Submission) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	ts := &sub.Timesheet
	period, ok := timesheet.ParsePeriodLabel(ts.PayPeriod)
	if !ok {
		return nil, "", fmt.Errorf("submission %s has unparseable period %q", sub.ID, ts.PayPeriod)
	}

	for week := 0; week < 2; week++ {
		name := fmt.Sprintf("Week %d", week+1)
		if week == 0 {
			f.SetSheetName("Sheet1", name)
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, "", err
			}
		}
		if err := writeWeek(f, name, ts, period, week); err != nil {
			return nil, "", err
		}
	}

	if err := writeSummary(f, sub); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}

	filename := fmt.Sprintf("timesheet-%s-%s.xlsx",
		strings.ReplaceAll(sub.EmployeeName, " ", "_"),
		period.Start.Format("2006-01-02"))
	return &buf, filename, nil
}

func writeWeek(f *excelize.File, sheet string, ts *timesheet.Timesheet, period timesheet.PayPeriod, week int) error {
	header := []any{"Date", "Type", "Times", "Hours"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for day := 0; day < timesheet.DaysPerWeek; day++ {
		index := week*timesheet.DaysPerWeek + day
		record := ts.Day(index)
		result := record.Recompute()

		var times []string
		for _, iv := range record.Intervals {
			if iv.IsComplete() {
				times = append(times, iv.FormatRange())
			}
		}
		for _, entry := range record.ManualEntries {
			if label := entry.Label(); label != "" {
				times = append(times, label)
			}
		}

		hours := ""
		if result.HasInput {
			hours = result.Total.String()
		}

		row := []any{
			timesheet.FormatDayDate(period.DateOf(index)),
			string(record.DayType),
			strings.Join(times, "; "),
			hours,
		}
		cell, err := excelize.CoordinatesToCellName(1, day+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	weekRecords := &ts.Week1
	if week == 1 {
		weekRecords = &ts.Week2
	}
	totalRow := []any{"", "", "Week total", weekRecords.Total().String()}
	cell, err := excelize.CoordinatesToCellName(1, timesheet.DaysPerWeek+2)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &totalRow)
}

func writeSummary(f *excelize.File, sub *approval.Submission) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	totals := timesheet.ComputeTotals(&sub.Timesheet, false)
	rows := [][]any{
		{"Employee", sub.EmployeeName},
		{"Pay period", sub.PayPeriod},
		{"Week 1 total", totals.Week1Total.String()},
		{"Week 2 total", totals.Week2Total.String()},
		{"Overtime", totals.Overtime.String()},
		{"Period total", totals.PeriodTotal.String()},
		{"Personal leave", sub.Timesheet.PersonalLeave.String()},
		{"Status", string(sub.Status)},
		{"Submitted", sub.SubmittedAt.Format("1/2/2006")},
	}
	if sub.SignatureDate != "" {
		rows = append(rows, []any{"Signed", sub.SignatureDate})
	}
	if sub.RejectReason != "" {
		rows = append(rows, []any{"Reject reason", sub.RejectReason})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
