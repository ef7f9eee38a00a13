// Package directory resolves addresses from a local workbook of known
// companies.
package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"ndagen/internal/domain"
)

var headerNames = map[string]bool{
	"name":    true,
	"company": true,
	"公司名称":    true,
	"公司":      true,
	"企业名称":    true,
}

// Directory is an in-memory list of known companies. It is read-only after
// construction and safe for concurrent use.
type Directory struct {
	entries []domain.CompanyEntry
}

// New creates a Directory from entries, dropping rows without a name or address.
func New(entries []domain.CompanyEntry) *Directory {
	d := &Directory{}
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		addr := strings.TrimSpace(e.Address)
		if name == "" || addr == "" {
			continue
		}
		d.entries = append(d.entries, domain.CompanyEntry{Name: name, Address: addr})
	}
	return d
}

// Load reads a workbook whose first column is the company name and second
// column the registered address. An empty sheet name selects the first sheet.
// A leading header row is skipped.
func Load(path, sheet string) (*Directory, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open directory workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("directory workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var entries []domain.CompanyEntry
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		if i == 0 && headerNames[strings.ToLower(strings.TrimSpace(row[0]))] {
			continue
		}
		entries = append(entries, domain.CompanyEntry{Name: row[0], Address: row[1]})
	}
	return New(entries), nil
}

// Save writes entries to a new workbook at path with a header row.
func Save(path string, entries []domain.CompanyEntry) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"公司名称", "注册地址"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{e.Name, e.Address}); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save directory workbook: %w", err)
	}
	return nil
}

// Entries returns a copy of the known companies.
func (d *Directory) Entries() []domain.CompanyEntry {
	return append([]domain.CompanyEntry(nil), d.entries...)
}

// Len returns the number of known companies.
func (d *Directory) Len() int { return len(d.entries) }

// Resolve returns the address of an exact name match, or else of the first
// entry whose name contains companyName or is contained in it.
func (d *Directory) Resolve(_ context.Context, companyName string) (string, bool) {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return "", false
	}
	for _, e := range d.entries {
		if e.Name == name {
			return e.Address, true
		}
	}
	for _, e := range d.entries {
		if strings.Contains(e.Name, name) || strings.Contains(name, e.Name) {
			return e.Address, true
		}
	}
	return "", false
}

// DemoEntries returns the sample companies shipped with the form.
func DemoEntries() []domain.CompanyEntry {
	return []domain.CompanyEntry{
		{Name: "千寻智能(杭州)科技有限公司", Address: "浙江省杭州市萧山区宁围街道利一路188号天人大厦浙大研究院数字经济孵化器4层401室-38"},
		{Name: "苏州易航智能科技有限公司", Address: "江苏省苏州市苏州工业园区金鸡湖大道88号人工智能产业园G1栋"},
		{Name: "深圳元宇互动科技有限公司", Address: "广东省深圳市南山区粤海街道科苑路8号科技大厦西座12楼1201室"},
		{Name: "北京智云科技有限公司", Address: "北京市海淀区中关村大街1号鼎好大厦A座12层"},
		{Name: "上海未来机器人有限公司", Address: "上海市浦东新区张江高科技园区科苑路151号"},
	}
}
