package web

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/itams/internal/asset"
)

// statusTone groups statuses by how urgent they look.
var statusTone = map[asset.Status]string{
	asset.StatusActive:      "ok",
	asset.StatusRepair:      "warn",
	asset.StatusInactive:    "idle",
	asset.StatusLost:        "bad",
	asset.StatusDamaged:     "bad",
	asset.StatusTransferred: "info",
}

// statusBadge renders an asset status as a coloured label. Unknown labels
// are shown as they are, in the neutral tone.
func statusBadge(s asset.Status) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		tone, ok := statusTone[s]
		if !ok {
			tone = "idle"
		}
		_, err := io.WriteString(w, `<span class="badge badge-`+tone+`">`+templ.EscapeString(string(s))+`</span>`)
		return err
	})
}

// badge embeds statusBadge in a html/template page.
func badge(status string) (template.HTML, error) {
	return templ.ToGoHTML(context.Background(), statusBadge(asset.Status(status)))
}
