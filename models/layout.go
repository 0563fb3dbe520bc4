// ABOUTME: Data hall layout parsing and column aggregation
// ABOUTME: Parses CxRxF descriptors, generates hall names, and groups loads by column

package models

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// layoutPattern matches "CxRxF" descriptors; the multiplication sign is
// accepted as a separator alongside x/X.
var layoutPattern = regexp.MustCompile(`^\s*(\d+)\s*[x×X]\s*(\d+)\s*[x×X]\s*(\d+)\s*$`)

// Layout is a data hall grid: columns of halls, rows per column, floors.
type Layout struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
	Floors  int `json:"floors"`
}

// ParseLayout parses a descriptor like "4×3×2" or "4x3x2".
func ParseLayout(s string) (Layout, error) {
	if strings.TrimSpace(s) == "" {
		return Layout{}, fmt.Errorf("layout descriptor cannot be empty")
	}
	m := layoutPattern.FindStringSubmatch(s)
	if m == nil {
		return Layout{}, fmt.Errorf("invalid layout %q: expected CxRxF (columns x rows x floors)", s)
	}
	columns, _ := strconv.Atoi(m[1])
	rows, _ := strconv.Atoi(m[2])
	floors, _ := strconv.Atoi(m[3])
	if columns <= 0 || rows <= 0 || floors <= 0 {
		return Layout{}, fmt.Errorf("invalid layout %q: all dimensions must be positive", s)
	}
	return Layout{Columns: columns, Rows: rows, Floors: floors}, nil
}

// TotalHalls returns the hall count across all floors.
func (l Layout) TotalHalls() int {
	return l.Columns * l.Rows * l.Floors
}

// HallNames generates hall names floor by floor, e.g. A1-F1, A2-F1, B1-F1.
// With includeFloors false the -F suffix is omitted (single-floor sites).
func (l Layout) HallNames(includeFloors bool) []string {
	names := make([]string, 0, l.TotalHalls())
	for floor := 1; floor <= l.Floors; floor++ {
		for col := 0; col < l.Columns; col++ {
			for row := 1; row <= l.Rows; row++ {
				name := columnLetters(col) + strconv.Itoa(row)
				if includeFloors {
					name += "-F" + strconv.Itoa(floor)
				}
				names = append(names, name)
			}
		}
	}
	return names
}

// columnLetters maps a zero-based column index to A..Z, then AA, AB, ...
func columnLetters(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	first := rune('A' + i/26 - 1)
	second := rune('A' + i%26)
	return string(first) + string(second)
}

// ExtractColumn returns the column letters of a hall name like "A1-F2" or
// "AA3". Names without a leading letter map to "Unknown".
func ExtractColumn(hall string) string {
	base, _, _ := strings.Cut(hall, "-F")
	var b strings.Builder
	for _, r := range base {
		if r < 'A' || r > 'Z' {
			break
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "Unknown"
	}
	return b.String()
}

// ColumnAggregate sums hall loads sharing one riser column.
type ColumnAggregate struct {
	Column    string   `json:"column"`
	TotalMW   float64  `json:"total_mw"`
	HallCount int      `json:"hall_count"`
	Halls     []string `json:"halls"`
}

// ColumnAggregates groups per-hall loads by column letter and returns the
// aggregates sorted by column name.
func ColumnAggregates(hallLoadsMW map[string]float64) []ColumnAggregate {
	byColumn := make(map[string]*ColumnAggregate)
	for hall, mw := range hallLoadsMW {
		col := ExtractColumn(hall)
		agg, ok := byColumn[col]
		if !ok {
			agg = &ColumnAggregate{Column: col}
			byColumn[col] = agg
		}
		agg.TotalMW += mw
		agg.HallCount++
		agg.Halls = append(agg.Halls, hall)
	}

	out := make([]ColumnAggregate, 0, len(byColumn))
	for _, agg := range byColumn {
		sort.Strings(agg.Halls)
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Column < out[j].Column })
	return out
}
