package index

import "strings"

// RenderTable renders sorted entries as the HTML table substituted into the
// index page. Cell contents are written verbatim. No entries renders "".
func RenderTable(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("<table>\n" +
		"  <tr>\n" +
		"    <th>Entry</th>\n" +
		"    <th>Version</th>\n" +
		"    <th>Summary</th>\n" +
		"  </tr>\n")
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeRow(&sb, e)
	}
	sb.WriteString("\n</table>")
	return sb.String()
}

func writeRow(sb *strings.Builder, e Entry) {
	sb.WriteString("<tr>\n  <td>\n<a href=\"")
	sb.WriteString(e.RelativePath)
	sb.WriteString("\">")
	sb.WriteString(e.FullName)
	sb.WriteString("</a>\n  </td>\n  <td>\n")
	sb.WriteString(e.PackageVersion.String())
	sb.WriteString("\n  </td>\n  <td>\n")
	sb.WriteString(e.Summary)
	sb.WriteString("\n  </td>\n</tr>")
}
