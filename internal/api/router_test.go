package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"waste-route-service/internal/adapters/binjson"
	"waste-route-service/internal/adapters/distance"
	"waste-route-service/internal/adapters/mockdata"
	"waste-route-service/internal/adapters/repositories"
	"waste-route-service/internal/api/dto"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	repo := repositories.NewMemoryBinRepository([]domain.BinRecord{
		{ID: "A", Lat: 0, Lng: 1, Level: 80, LastUpdate: "2024-05-01T00:00:00.000Z"},
		{ID: "B", Lat: 0, Lng: 2, Level: 60, LastUpdate: "2024-05-01T00:00:00.000Z"},
		{ID: "C", Lat: 1, Lng: 1, Level: 90, LastUpdate: "2024-05-01T00:00:00.000Z"},
	})
	calc := distance.HaversineCalculator{}
	depot := domain.GeoPoint{Lat: 0, Lng: 0}

	dashboard := services.NewDashboard(repo, calc, depot, domain.DefaultVehicleProfile, domain.RouteModeOptimized)
	bins := services.NewBinService(
		repo,
		repositories.NewMemoryReportLog(),
		mockdata.NewRand(7),
		func() time.Time { return fixedNow },
	)
	return NewRouter(dashboard, bins)
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestRoutesDefaultMode(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodGet, "/routes", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RoutesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, "OPTIMIZED", res.Mode)
	assert.Equal(t, []string{"A", "B", "C"}, binIDs(res.Fixed))
	assert.Equal(t, []string{"A", "C"}, binIDs(res.Optimized))
	assert.Equal(t, binIDs(res.Optimized), binIDs(res.Active))
}

func TestRoutesQueryOverridesMode(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodGet, "/routes?mode=fixed", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RoutesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "FIXED", res.Mode)
	assert.Equal(t, []string{"A", "B", "C"}, binIDs(res.Active))

	// the override does not change the stored mode
	rec = do(r, http.MethodGet, "/mode", "")
	assert.JSONEq(t, `{"mode":"OPTIMIZED"}`, rec.Body.String())
}

func TestRoutesRejectsUnknownMode(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodGet, "/routes?mode=fastest", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetMode(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodPut, "/mode", `{"mode":"fixed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"mode":"FIXED"}`, rec.Body.String())

	rec = do(r, http.MethodGet, "/mode", "")
	assert.JSONEq(t, `{"mode":"FIXED"}`, rec.Body.String())

	rec = do(r, http.MethodPut, "/mode", `{"mode":"random"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodPut, "/mode", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetrics(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ComparisonResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, 3, res.Fixed.BinsCollected)
	assert.Equal(t, 2, res.Optimized.BinsCollected)
	assert.Less(t, res.Optimized.Distance, res.Fixed.Distance)
	assert.Greater(t, res.Gains.Distance, 0.0)
	assert.Greater(t, res.Gains.Fuel, 0.0)
	assert.Greater(t, res.Gains.Time, 0.0)
}

func TestReplaceBins(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodPut, "/bins", `[{"id":"X","lat":0,"lng":0.5,"level":75}]`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(r, http.MethodGet, "/bins", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"X"`)
	assert.NotContains(t, rec.Body.String(), `"id":"A"`)
}

func TestReplaceBinsInvalidKeepsState(t *testing.T) {
	r := newTestRouter(t)
	before := do(r, http.MethodGet, "/bins", "").Body.String()

	for _, body := range []string{
		`not json`,
		`{"id":"X"}`,
		`[{"id":"X","lat":0,"lng":0,"level":101}]`,
		`[{"id":"X","lat":0,"lng":0,"level":5},{"id":"X","lat":1,"lng":1,"level":5}]`,
	} {
		rec := do(r, http.MethodPut, "/bins", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "invalid bin data format", body)
	}

	assert.Equal(t, before, do(r, http.MethodGet, "/bins", "").Body.String())
}

func TestReplaceBinsEmptyCollection(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodPut, "/bins", `[]`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ComparisonResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, dto.ComparisonResponse{}, res)
}

func TestRegenerateKeepsIdentity(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodPost, "/bins/regenerate", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var bins []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bins))
	require.Len(t, bins, 3)

	want := domain.FormatTimestamp(fixedNow)
	for i, id := range []string{"A", "B", "C"} {
		assert.Equal(t, id, bins[i]["id"])
		assert.Equal(t, want, bins[i]["lastUpdate"])
		level := bins[i]["level"].(float64)
		assert.GreaterOrEqual(t, level, 0.0)
		assert.Less(t, level, 100.0)
	}
}

func TestReportFlow(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodPost, "/bins/A/reports", `{"status":"CLEARED","imageUrl":"https://example.com/a.jpg"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var res dto.ApplyReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "A", res.Report.BinID)
	assert.Equal(t, "CLEARED", res.Report.Status)
	assert.Equal(t, 0, *res.Bin.Level)

	// a cleared bin drops out of the optimized route
	rec = do(r, http.MethodGet, "/routes", "")
	var routes dto.RoutesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &routes))
	assert.Equal(t, []string{"C"}, binIDs(routes.Optimized))

	rec = do(r, http.MethodGet, "/reports", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list dto.ListReportsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Reports, 1)
	assert.Equal(t, "A", list.Reports[0].BinID)
}

func TestReportErrors(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodPost, "/bins/NOPE/reports", `{"status":"FULL"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(r, http.MethodPost, "/bins/A/reports", `{"status":"MISSING"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodPost, "/bins/A/reports", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodGet, "/reports", "")
	assert.JSONEq(t, `{"reports":[]}`, rec.Body.String())
}

func TestWorkbookDownload(t *testing.T) {
	rec := do(newTestRouter(t), http.MethodGet, "/report.xlsx", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentTypeForTest, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "route-comparison.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Efficiency")
}

const xlsxContentTypeForTest = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func binIDs(bins []binjson.Bin) []string {
	out := make([]string, 0, len(bins))
	for _, b := range bins {
		out = append(out, b.ID)
	}
	return out
}
