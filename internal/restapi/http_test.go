package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"linetrack.dev/internal/app"
	"linetrack.dev/internal/appconf"
	"linetrack.dev/internal/catalog"
	"linetrack.dev/internal/logging"
	"linetrack.dev/internal/models"
)

func fptr(f float64) *float64 { return &f }

func testStop(id, name string, seq int, lat, lon float64) models.PathStop {
	return models.PathStop{StopID: id, StopName: name, Lat: fptr(lat), Lon: fptr(lon), StopSequence: seq}
}

func testTrip(id, start string, dates ...string) models.Trip {
	return models.Trip{
		ID:       id,
		Dates:    dates,
		Schedule: []models.ScheduleEntry{{ArrivalTime: start, StopID: "S1", StopSequence: 1}},
	}
}

// newTestCatalog holds line 1001 with two outbound patterns and one inbound pattern.
func newTestCatalog() *catalog.Mock {
	m := catalog.NewMock()
	m.MockAddLine(models.Line{ID: "L1001", ShortName: "1001", LongName: "Alfragide - Reboleira", Color: "#ED1C24", TextColor: "#FFFFFF"})

	m.MockAddPattern(models.Pattern{
		ID: "1001_0_1", LineID: "L1001", Headsign: "Reboleira", DirectionID: 0, ShapeID: "SH1",
		Path: []models.PathStop{
			testStop("S1", "Alfragide", 1, 38.5, -120.2),
			testStop("S2", "Reboleira", 2, 43.252, -126.453),
		},
		Trips: []models.Trip{
			testTrip("T1", "08:00:00", "20240101", "20240102"),
			testTrip("T2", "07:30:00", "20240101"),
		},
	})
	m.MockAddPattern(models.Pattern{
		ID: "1001_0_2", LineID: "L1001", Headsign: "Amadora", DirectionID: 0,
		Path:  []models.PathStop{testStop("S1", "Alfragide", 1, 38.5, -120.2), {StopID: "S3", StopName: "Amadora", StopSequence: 2}},
		Trips: []models.Trip{testTrip("T3", "25:10:00", "20240101")},
	})
	m.MockAddPattern(models.Pattern{
		ID: "1001_1_1", LineID: "L1001", Headsign: "Alfragide", DirectionID: 1, ShapeID: "SH2",
		Path:  []models.PathStop{testStop("S2", "Reboleira", 1, 43.252, -126.453), testStop("S1", "Alfragide", 2, 38.5, -120.2)},
		Trips: []models.Trip{testTrip("T4", "09:00:00", "20240110")},
	})

	m.MockAddShape(models.Shape{ID: "SH1", Coordinates: [][2]float64{{-120.2, 38.5}, {-120.95, 40.7}, {-126.453, 43.252}}})
	return m
}

// createTestApi creates a RestAPI over the in-memory test catalog, with the clock fixed to 2024-01-01.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()
	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.EnvFlagToEnvironment("test"),
			ApiKeys:   []string{"TEST"},
			RateLimit: 0,
			Creator:   "linetrack-test",
		},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Catalog: newTestCatalog(),
	}

	api := NewRestAPI(application)
	api.now = func() time.Time { return time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(api.Shutdown)
	return api
}

func serveApi(t *testing.T, api *RestAPI, endpoint string) *http.Response {
	t.Helper()
	server := httptest.NewServer(api.Handler())
	t.Cleanup(server.Close)
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	return resp
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	resp := serveApi(t, api, endpoint)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err := json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

func entryOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)
	return entry
}
