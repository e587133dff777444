// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
)

const listHotKeys = "/: search │ a: add │ enter: open │ d: delete │ r: reload │ v: about │ q: quit"

func (m appModel) viewList() string {
	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString("Search: " + m.search.View() + "\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("The vault is empty. Press a to add an item.\n")
	case len(m.visible) == 0:
		b.WriteString("No matches\n")
	default:
		b.WriteString(fmt.Sprintf("  %-28s │ %-28s │ %s\n", "Service", "Account", "Modified"))
		b.WriteString("  ─────────────────────────────┼──────────────────────────────┼──────────────────\n")
		for i, item := range m.visible {
			line := fmt.Sprintf("%-28s │ %-28s │ %s",
				fitText(item.Service, 28),
				fitText(item.Account, 28),
				item.LastModified.Local().Format("2006-01-02 15:04"),
			)
			if i == m.idx {
				b.WriteString(cursorStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if len(m.visible) != len(m.items) {
			b.WriteString(fmt.Sprintf("\n%d of %d items\n", len(m.visible), len(m.items)))
		}
	}

	b.WriteString(m.viewFooter())

	hotKeys := listHotKeys
	if m.searching {
		hotKeys = "enter: keep filter │ esc: clear filter"
	}
	return renderPage("GO-PASS-VAULT", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m appModel) viewFooter() string {
	out := ""
	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status) + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	return out
}
