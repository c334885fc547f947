package commands

import (
	"fmt"
	"sort"

	"github.com/bobmatnyc/memory-client-go/utils"
)

// printResponse shows a raw service response as indented JSON.
func printResponse(result map[string]any) {
	fmt.Println(utils.FormatJSON(result))
}

// printSearchResults renders result rows as a table. With --plain, or when
// the response shape is unrecognized, it falls back to raw JSON.
func printSearchResults(result map[string]any, columns []string) {
	if plainOutput {
		printResponse(result)
		return
	}

	items := utils.ServiceItems(result)
	if items == nil {
		printResponse(result)
		return
	}
	if len(items) == 0 {
		fmt.Println("No results.")
		return
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			val := utils.FieldString(item, col)
			if col == "created_at" || col == "updated_at" {
				val = utils.FormatTimestamp(val)
			}
			row = append(row, utils.Truncate(val, 60))
		}
		rows = append(rows, row)
	}

	utils.RenderTable(columns, rows)
	fmt.Printf("%d result(s)\n", len(items))
}

// flattenPairs turns a nested response map into sorted dotted-key rows.
func flattenPairs(prefix string, m map[string]any) [][2]string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var pairs [][2]string
	for _, k := range keys {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		if nested, ok := m[k].(map[string]any); ok {
			pairs = append(pairs, flattenPairs(name, nested)...)
			continue
		}
		pairs = append(pairs, [2]string{name, utils.FieldString(m, k)})
	}
	return pairs
}
