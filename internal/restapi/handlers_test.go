package restapi

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linetrack.dev/internal/catalog"
	"linetrack.dev/internal/gpx"
	"linetrack.dev/internal/models"
)

func TestHandlersRequireValidApiKey(t *testing.T) {
	endpoints := []string{
		"/api/lines.json",
		"/api/lines/1001",
		"/api/itinerary/1001",
		"/api/patterns/1001_0_1",
		"/api/shapes/SH1",
		"/api/gpx/1001/1001_0_1",
		"/api/selection?line=1001",
	}

	for _, endpoint := range endpoints {
		t.Run(endpoint, func(t *testing.T) {
			_, resp, model := serveAndRetrieveEndpoint(t, endpoint)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, http.StatusUnauthorized, model.Code)
			assert.Equal(t, "permission denied", model.Text)
		})
	}
}

func TestLinesHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/lines.json?key=TEST")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 2, model.Version)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 1)
	line := list[0].(map[string]interface{})
	assert.Equal(t, "L1001", line["id"])
	assert.Equal(t, "1001", line["shortName"])
}

func TestLinesHandlerEmptyCatalog(t *testing.T) {
	api := createTestApi(t)
	api.Catalog = catalog.NewMock()

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/lines.json?key=TEST")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := model.Data.(map[string]interface{})
	assert.Equal(t, []interface{}{}, data["list"])
}

func TestLineHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/lines/1001.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	line := entry["line"].(map[string]interface{})
	assert.Equal(t, "L1001", line["id"])

	directions := entry["directions"].([]interface{})
	require.Len(t, directions, 2)
	outbound := directions[0].(map[string]interface{})
	assert.Equal(t, 0.0, outbound["id"])
	assert.Equal(t, "Reboleira", outbound["label"], "two trips outvote one")
	assert.Equal(t, []interface{}{"1001_0_1", "1001_0_2"}, outbound["patternIds"])

	refs := model.Data.(map[string]interface{})["references"].(map[string]interface{})
	assert.Len(t, refs["patterns"], 3)
	assert.Len(t, refs["lines"], 1)
}

func TestLineHandlerNotFound(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/lines/9999?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
	assert.Nil(t, model.Data)
}

func TestItineraryHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/itinerary/1001?key=TEST&direction=0&date=20240101")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, "L1001", entry["lineId"])
	assert.Equal(t, "Reboleira", entry["directionLabel"])
	assert.Equal(t, false, entry["fallback"])
	assert.Equal(t, false, entry["noService"])

	trips := entry["trips"].([]interface{})
	require.Len(t, trips, 3)
	var order []string
	for _, tr := range trips {
		order = append(order, tr.(map[string]interface{})["tripId"].(string))
	}
	assert.Equal(t, []string{"T2", "T1", "T3"}, order, "extended-hour trips sort last")
}

func TestItineraryHandlerFallback(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/itinerary/1001?key=TEST&direction=1&date=20240105")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, true, entry["fallback"])
	assert.Equal(t, "20240105", entry["requestedDate"])
	assert.Equal(t, "20240110", entry["serviceDate"], "only future dates, so the earliest is used")
	assert.Equal(t, "Alfragide", entry["directionLabel"])
}

func TestItineraryHandlerDefaultsToToday(t *testing.T) {
	_, _, model := serveAndRetrieveEndpoint(t, "/api/itinerary/1001?key=TEST")
	entry := entryOf(t, model)
	assert.Equal(t, "20240101", entry["requestedDate"])
	assert.Equal(t, 0.0, entry["directionId"])
}

func TestItineraryHandlerNoService(t *testing.T) {
	api := createTestApi(t)
	m := newTestCatalog()
	m.MockAddLine(models.Line{ID: "L2", ShortName: "2"})
	m.MockAddPattern(models.Pattern{ID: "2_0_1", LineID: "L2", Path: []models.PathStop{testStop("S1", "A", 1, 1, 1)}})
	api.Catalog = m

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/itinerary/2?key=TEST&date=20240101")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entry := entryOf(t, model)
	assert.Equal(t, true, entry["noService"])
	assert.Equal(t, []interface{}{}, entry["trips"])
}

func TestItineraryHandlerValidation(t *testing.T) {
	api := createTestApi(t)
	resp := serveApi(t, api, "/api/itinerary/1001?key=TEST&direction=3&date=2024-01-01")
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"direction":["direction must be 0 or 1"]`)
	assert.Contains(t, string(body), `"date":["invalid date format, use YYYYMMDD"]`)
}

func TestPatternHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/patterns/1001_1_1?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, "1001_1_1", entry["id"])
	assert.Equal(t, 1.0, entry["directionId"])
	assert.Equal(t, 1.0, entry["tripCount"])
	assert.Len(t, entry["path"], 2)

	_, resp, _ = serveAndRetrieveEndpoint(t, "/api/patterns/missing?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestShapesHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/shapes/SH1.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, "SH1", entry["id"])
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", entry["points"])
	assert.Equal(t, 27.0, entry["length"])
	assert.Equal(t, "", entry["levels"])
}

func TestShapesHandlerNotFound(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/shapes/wrong_id.json?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
	assert.Nil(t, model.Data)
}

func TestEncodeShapeSplitsRetracedSegments(t *testing.T) {
	outAndBack := models.Shape{Coordinates: [][2]float64{{0, 0}, {0, 0}, {1, 1}, {0, 0}}}
	single := models.Shape{Coordinates: [][2]float64{{0, 0}, {1, 1}}}

	assert.Equal(t, encodeShape(single), encodeShape(outAndBack), "the retraced edge is dropped")
	assert.Empty(t, encodeShape(models.Shape{Coordinates: [][2]float64{{1, 1}}}))
}

func TestGpxHandler(t *testing.T) {
	api := createTestApi(t)
	resp := serveApi(t, api, "/api/gpx/1001/1001_0_1.gpx?key=TEST&stops=true")
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/gpx+xml", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="1001_1001_0_1.gpx"`, resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `creator="linetrack-test"`)

	doc, err := gpx.Parse(body)
	require.NoError(t, err)
	assert.Equal(t, "Reboleira", doc.Name)
	assert.Len(t, doc.Waypoints, 2)
	assert.Equal(t, 3, doc.PointCount())
	require.Len(t, doc.Tracks, 1)
	assert.Equal(t, "Reboleira (Ida)", doc.Tracks[0].Name)
}

func TestGpxHandlerWithoutShapeOrStops(t *testing.T) {
	api := createTestApi(t)
	resp := serveApi(t, api, "/api/gpx/1001/1001_0_2?key=TEST")
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	doc, err := gpx.Parse(body)
	require.NoError(t, err)
	assert.Empty(t, doc.Waypoints)
	assert.Equal(t, 0, doc.PointCount())
}

func TestGpxHandlerUnknownPattern(t *testing.T) {
	_, resp, _ := serveAndRetrieveEndpoint(t, "/api/gpx/1001/1001_9_9?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, resp, _ = serveAndRetrieveEndpoint(t, "/api/gpx/9999/1001_0_1?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSelectionHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/selection?key=TEST&line=L1001&active_pattern_id=1001_1_1&date=20240110")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, "L1001", entry["lineId"])
	assert.Equal(t, 1.0, entry["directionId"])
	assert.Equal(t, "1001_1_1", entry["activePatternId"])
	assert.Equal(t, "20240110", entry["date"])
	assert.Equal(t, "active_pattern_id=1001_1_1&line=1001", entry["query"])
}

func TestSelectionHandlerErrors(t *testing.T) {
	_, resp, _ := serveAndRetrieveEndpoint(t, "/api/selection?key=TEST")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, resp, _ = serveAndRetrieveEndpoint(t, "/api/selection?key=TEST&line=9999")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"status": "ok"}, model.Data)
}

func TestUnknownRoute(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/stops.json?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}
