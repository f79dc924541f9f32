package restapi

import (
	"net/http"
	"strings"

	"github.com/twpayne/go-polyline"

	"linetrack.dev/internal/models"
	"linetrack.dev/internal/utils"
)

// encodeShape encodes a shape as Google polylines. Repeated points are
// dropped and a segment already traversed ends the current polyline.
func encodeShape(shape models.Shape) string {
	var polylines []string
	var currentLine [][]float64
	edges := make(map[models.Edge]bool)

	for i, c := range shape.Coordinates {
		point := models.PointFromShape(c)
		if i > 0 {
			prev := models.PointFromShape(shape.Coordinates[i-1])
			if prev == point {
				continue
			}
			edge := models.NewEdge(prev, point)
			if edges[edge] {
				if len(currentLine) > 1 {
					polylines = append(polylines, string(polyline.EncodeCoords(currentLine)))
				}
				currentLine = [][]float64{}
			} else {
				edges[edge] = true
			}
		}
		currentLine = append(currentLine, []float64{point.Lat, point.Lon})
	}

	if len(currentLine) > 1 {
		polylines = append(polylines, string(polyline.EncodeCoords(currentLine)))
	}

	return strings.Join(polylines, "")
}

func (api *RestAPI) shapesHandler(w http.ResponseWriter, r *http.Request) {
	shapeID := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(shapeID); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return
	}

	shape, ok := api.Catalog.Shape(r.Context(), shapeID)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	encodedPoints := encodeShape(shape)
	shapeEntry := models.ShapeEntry{
		ID:     shape.ID,
		Length: len(encodedPoints),
		Levels: "",
		Points: encodedPoints,
	}

	api.sendResponse(w, r, models.NewEntryResponse(shapeEntry, models.NewEmptyReferences()))
}
