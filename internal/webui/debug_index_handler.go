package webui

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/davecgh/go-spew/spew"

	"linetrack.dev/internal/models"
	"linetrack.dev/internal/selection"
	"linetrack.dev/internal/utils"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

type debugData struct {
	Title string
	Line  string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title, line string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := debugTemplate.Execute(w, debugData{
		Title: title,
		Line:  line,
		Pre:   spew.Sdump(data),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// debugIndexHandler dumps catalog and selection data for a line:
// ?dataType=lines|patterns|directions|itinerary|shape&line=&direction=&date=
func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dataType := query.Get("dataType")
	lineRef := query.Get("line")
	ctx := r.Context()

	if dataType == "lines" {
		writeDebugData(w, "Catalog - Lines", lineRef, webUI.Catalog.Lines(ctx))
		return
	}

	if dataType == "" || lineRef == "" {
		writeDebugData(w, "Choose a data type", lineRef, map[string]string{
			"error": "Please use dataType=lines, or one of patterns, directions, itinerary, shape together with line=.",
		})
		return
	}

	date := utils.ServiceDateOrToday(query.Get("date"), time.Now())
	snap, err := selection.Load(ctx, webUI.Catalog, lineRef, date)
	if err != nil {
		writeDebugData(w, "Line "+lineRef, lineRef, map[string]string{"error": err.Error()})
		return
	}
	if raw := query.Get("direction"); raw != "" {
		if direction, err := utils.ParseDirection(raw); err == nil {
			snap = snap.WithDirection(direction)
		}
	}

	var data interface{}
	var title string

	switch dataType {
	case "patterns":
		data = snap.Patterns
		title = "Catalog - Patterns of " + snap.Line.DisplayName()
	case "directions":
		data = snap.Directions()
		title = "Directions of " + snap.Line.DisplayName()
	case "itinerary":
		data = snap.Itinerary()
		title = "Itinerary of " + snap.Line.DisplayName() + " - " + snap.DirectionLabel()
	case "shape":
		shape := models.Shape{}
		if p, ok := snap.ActivePattern(); ok {
			shape, _ = webUI.Catalog.Shape(ctx, p.ShapeID)
		}
		data = shape
		title = "Catalog - Shape of " + snap.PatternID
	default:
		data = map[string]string{"error": "unknown data type " + dataType}
		title = "Choose a data type"
	}

	writeDebugData(w, title, snap.Line.DisplayName(), data)
}
