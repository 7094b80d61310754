package mcp

import (
	"fmt"
	"strings"

	"github.com/EnglandLobster/yuque-mcp/internal/yuque"
)

// Output formatters render typed entities as agent-readable markdown.
// They live at the presentation boundary; nothing here talks to the API.

func strOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}

func intOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

func visibilityLabel(public int) string {
	if public == yuque.VisibilityPublic {
		return "Public"
	}
	return "Private"
}

func formatUser(u *yuque.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👤 %s (@%s)\n\n", u.Name, u.Login)
	fmt.Fprintf(&b, "**ID**: %d\n", u.ID)
	fmt.Fprintf(&b, "**Description**: %s\n", strOr(u.Description, "No description"))
	fmt.Fprintf(&b, "**Knowledge Bases**: %d\n", intOr(u.BooksCount, 0))
	fmt.Fprintf(&b, "**Public Knowledge Bases**: %d\n", intOr(u.PublicBooksCount, 0))
	fmt.Fprintf(&b, "**Followers**: %d\n", intOr(u.FollowersCount, 0))
	fmt.Fprintf(&b, "**Following**: %d\n", intOr(u.FollowingCount, 0))
	return b.String()
}

func formatRepository(r *yuque.Repository) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Name)
	fmt.Fprintf(&b, "**ID**: %d\n", r.ID)
	fmt.Fprintf(&b, "**Namespace**: %s\n", strOr(r.Namespace, ""))
	fmt.Fprintf(&b, "**Slug**: %s\n", r.Slug)
	fmt.Fprintf(&b, "**Type**: %s\n", r.Type)
	fmt.Fprintf(&b, "**Description**: %s\n", strOr(r.Description, "No description"))
	fmt.Fprintf(&b, "**Visibility**: %s\n", visibilityLabel(r.Public))
	fmt.Fprintf(&b, "**Documents**: %d\n", intOr(r.ItemsCount, 0))
	return b.String()
}

func formatDocument(d *yuque.Document) string {
	content := strOr(d.Body, strOr(d.BodyHTML, "(No content)"))

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Title)
	fmt.Fprintf(&b, "**ID**: %d\n", d.ID)
	fmt.Fprintf(&b, "**Slug**: %s\n", d.Slug)
	fmt.Fprintf(&b, "**Format**: %s\n", strOr(d.Format, ""))
	fmt.Fprintf(&b, "**Word Count**: %d\n", intOr(d.WordCount, 0))
	fmt.Fprintf(&b, "**Visibility**: %s\n\n", visibilityLabel(d.Public))
	fmt.Fprintf(&b, "---\n\n%s", content)
	return b.String()
}

func formatTOC(nodes []yuque.TocNode) string {
	if len(nodes) == 0 {
		return "Table of contents is empty."
	}

	icons := map[string]string{
		yuque.NodeTypeDoc:   "📄",
		yuque.NodeTypeLink:  "🔗",
		yuque.NodeTypeTitle: "📁",
	}

	var b strings.Builder
	b.WriteString("📑 Table of Contents\n\n")
	for _, node := range nodes {
		// The API reports level 0 for some root nodes; anything below 1
		// renders at the top level.
		level := intOr(node.Level, 1)
		if level < 1 {
			level = 1
		}
		indent := strings.Repeat("  ", level-1)
		icon, ok := icons[node.Type]
		if !ok {
			icon = "•"
		}
		fmt.Fprintf(&b, "%s%s %s\n", indent, icon, node.Title)

		docID := ""
		if node.DocID.Valid {
			docID = fmt.Sprintf("%d", node.DocID.Int)
		}
		fmt.Fprintf(&b, "%s   UUID: %s | Doc ID: %s\n", indent, node.UUID, docID)
	}
	return b.String()
}
