package ui

import "time"

// Toast is one notification line, severity-styled.
type Toast struct {
	Title    string
	Body     string
	Severity string // "info" | "success" | "error" | "destructive"
	At       time.Time
}

// RenderToast renders a toast as a single styled line.
func RenderToast(t Toast) string {
	stamp := StyleMeta.Render(t.At.Format("15:04:05"))
	body := t.Title
	if t.Body != "" {
		body += "  " + StyleMeta.Render("·") + "  " + t.Body
	}

	switch t.Severity {
	case "success":
		return stamp + "  " + StyleSuccess.Render(body)
	case "error":
		return stamp + "  " + StyleError.Render(body)
	case "destructive":
		return stamp + "  " + StyleError.Render("⚠ "+body)
	default:
		return stamp + "  " + StyleInfo.Render(body)
	}
}
