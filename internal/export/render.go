package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pantrycore/internal/core"
)

// RenderTextList renders the categorized cart as a printable shopping list:
// a dated title, one block per category in master-list order, one line per
// entry in its display form, and a trailing item count.
func RenderTextList(groups []core.CategoryCart, at time.Time) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "Grocery List - %s\n", at.Format("January 02, 2006"))
	total := 0
	for _, group := range groups {
		if len(group.Entries) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(group.Category)
		b.WriteString("\n")
		for _, entry := range group.Entries {
			b.WriteString(entry.DisplayLine())
			b.WriteString("\n")
			total++
		}
	}
	fmt.Fprintf(&b, "\n%d item%s\n", total, pluralSuffix(total))
	return []byte(b.String())
}

// RenderBackup encodes the four preference documents as the portable backup
// payload, indented the way the import endpoint accepts it back.
func RenderBackup(bundle core.BackupBundle) ([]byte, error) {
	return json.MarshalIndent(bundle, "", "  ")
}

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
