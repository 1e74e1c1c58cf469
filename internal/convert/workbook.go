package convert

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"wuwaconv/internal"
)

// WorkbookConverter reads a gacha-history workbook. The first all-digit
// sheet name is taken as the account uid; every sheet carrying the required
// columns contributes records.
type WorkbookConverter struct {
	path string
	opts Options
	env  internal.ExportEnvelope
}

func NewWorkbookConverter(path string, opts Options) *WorkbookConverter {
	return &WorkbookConverter{path: path, opts: opts, env: newEnvelope()}
}

func (c *WorkbookConverter) Process() error {
	if err := checkReadable(c.path); err != nil {
		return err
	}

	f, err := excelize.OpenFile(c.path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	for _, sheet := range sheets {
		if isAllDigits(sheet) {
			c.env.Info.UID = sheet
			break
		}
	}

	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			fmt.Printf("sheet %s: read failed: %v\n", sheet, err)
			continue
		}
		c.processSheet(sheet, rows)
	}
	return nil
}

func (c *WorkbookConverter) processSheet(sheet string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	col := map[string]int{}
	for i, header := range rows[0] {
		col[strings.TrimSpace(header)] = i
	}

	missing := []string{}
	for _, required := range c.opts.RequiredColumns {
		if _, ok := col[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		fmt.Printf("sheet %s skipped, missing required columns: %s\n", sheet, strings.Join(missing, ", "))
		return
	}

	for i, cells := range rows[1:] {
		if isEmptyRow(cells) {
			continue
		}
		record, err := c.recordFromRow(cells, col)
		if err != nil {
			fmt.Printf("sheet %s row %d skipped: %v\n", sheet, i+2, err)
			continue
		}
		c.env.List = append(c.env.List, record)
	}
}

func (c *WorkbookConverter) recordFromRow(cells []string, col map[string]int) (internal.Record, error) {
	get := func(name string) string {
		idx := col[name]
		if idx >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[idx])
	}

	resourceID, err := cellInt(get("资源ID"), "资源ID")
	if err != nil {
		return internal.Record{}, err
	}
	quality, err := cellInt(get("星级"), "星级")
	if err != nil {
		return internal.Record{}, err
	}
	count, err := cellInt(get("数量"), "数量")
	if err != nil {
		return internal.Record{}, err
	}

	return internal.Record{
		CardPoolType: get("卡池"),
		ResourceID:   resourceID,
		QualityLevel: quality,
		ResourceType: get("类型"),
		Name:         get("名称"),
		Count:        count,
		Time:         get("时间"),
	}, nil
}

func (c *WorkbookConverter) Envelope() internal.ExportEnvelope {
	return c.env
}

func (c *WorkbookConverter) UID() string {
	return c.env.Info.UID
}

func (c *WorkbookConverter) RecordCount() int {
	return len(c.env.List)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isEmptyRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// cellInt tolerates the "3.0" shape spreadsheet tools produce for numeric
// cells.
func cellInt(raw, column string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: not a number: %q", column, raw)
	}
	return int(f), nil
}

func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %w", err)
		}
		if os.IsPermission(err) {
			return fmt.Errorf("file not readable: %w", err)
		}
		return err
	}
	return f.Close()
}
