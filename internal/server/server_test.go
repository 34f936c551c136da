package server

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgEdge/pgedge-agrigen/internal/agri"
	"github.com/pgEdge/pgedge-agrigen/internal/analysis"
	"github.com/pgEdge/pgedge-agrigen/internal/asset"
	"github.com/pgEdge/pgedge-agrigen/internal/session"
)

func newTestServer(t *testing.T, fetcher *asset.Fetcher) *Server {
	t.Helper()
	sess := session.New(session.Config{Seed: 2025})
	return New(Config{Addr: ":0"}, sess, fetcher, NewMetricsForTesting())
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestRecords_Filtered(t *testing.T) {
	s := newTestServer(t, nil)

	var all struct {
		Rows    int           `json:"rows"`
		Records []agri.Record `json:"records"`
	}
	rec := get(t, s, "/api/records")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &all)
	assert.Equal(t, 400, all.Rows)
	assert.Len(t, all.Records, 400)

	var one struct {
		Rows    int           `json:"rows"`
		Records []agri.Record `json:"records"`
	}
	rec = get(t, s, "/api/records?crop=Corn&state=Iowa")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &one)
	require.Equal(t, 1, one.Rows)
	assert.Equal(t, "Iowa", one.Records[0].State)
	assert.Equal(t, "Corn", one.Records[0].Crop)

	var sentinel struct {
		Rows int `json:"rows"`
	}
	rec = get(t, s, "/api/records?crop=All+Crops&state=Texas")
	decode(t, rec, &sentinel)
	assert.Equal(t, len(agri.Crops()), sentinel.Rows)
}

func TestRecords_SameTableAcrossRequests(t *testing.T) {
	s := newTestServer(t, nil)

	a := get(t, s, "/api/records").Body.String()
	b := get(t, s, "/api/records").Body.String()
	assert.Equal(t, a, b)
}

func TestSummary_EmptySelection(t *testing.T) {
	s := newTestServer(t, nil)

	var sum struct {
		Title        string        `json:"title"`
		Rows         int           `json:"rows"`
		ProductionMT float64       `json:"production_mt"`
		TopCrop      string        `json:"top_crop"`
		Production   string        `json:"production_display"`
		View         analysis.View `json:"view"`
	}
	rec := get(t, s, "/api/summary?crop=Coffee")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &sum)

	assert.Equal(t, "USA NATIONAL | COFFEE PERFORMANCE", sum.Title)
	assert.Equal(t, 0, sum.Rows)
	assert.Zero(t, sum.ProductionMT)
	assert.Equal(t, "N/A", sum.TopCrop)
	assert.Equal(t, "0.00M", sum.Production)
	assert.Equal(t, analysis.NationalView, sum.View)
}

func TestSummary_StateView(t *testing.T) {
	s := newTestServer(t, nil)

	var sum struct {
		Title string        `json:"title"`
		View  analysis.View `json:"view"`
	}
	decode(t, get(t, s, "/api/summary?state=Iowa"), &sum)

	assert.Equal(t, "IOWA | AGRI-TOTALS PERFORMANCE", sum.Title)
	assert.Equal(t, 6, sum.View.Zoom)
	assert.Equal(t, 55, sum.View.Pitch)
}

func TestMapAndAnalytics(t *testing.T) {
	s := newTestServer(t, nil)

	var m struct {
		Points []analysis.MapPoint `json:"points"`
	}
	decode(t, get(t, s, "/api/map?crop=Wheat"), &m)
	require.Len(t, m.Points, 50)
	assert.Len(t, m.Points[0].Crops, 1)

	var a struct {
		TopStates   []analysis.StateValue `json:"top_states"`
		YieldByCrop []analysis.CropYield  `json:"yield_by_crop"`
	}
	decode(t, get(t, s, "/api/analytics"), &a)
	assert.Len(t, a.TopStates, analysis.TopStatesLimit)
	assert.Len(t, a.YieldByCrop, len(agri.Crops()))
	for i := 1; i < len(a.TopStates); i++ {
		assert.GreaterOrEqual(t, a.TopStates[i-1].MarketValueUSD, a.TopStates[i].MarketValueUSD)
	}
}

func TestCharts(t *testing.T) {
	s := newTestServer(t, nil)

	rec := get(t, s, "/api/charts/top_states_by_value.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = get(t, s, "/api/charts/nope.png")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTicker(t *testing.T) {
	var items []struct {
		Name    string `json:"name"`
		Up      bool   `json:"up"`
		Display string `json:"display"`
	}
	decode(t, get(t, newTestServer(t, nil), "/api/ticker"), &items)

	require.Len(t, items, 5)
	assert.Equal(t, "Corn", items[0].Name)
	assert.True(t, items[0].Up)
	assert.Equal(t, "Corn: $4.56 ▲ 0.12%", items[0].Display)
	assert.False(t, items[1].Up)
}

func TestOptions(t *testing.T) {
	var opts struct {
		Crops  []string `json:"crops"`
		States []string `json:"states"`
	}
	decode(t, get(t, newTestServer(t, nil), "/api/options"), &opts)

	assert.Equal(t, "All Crops", opts.Crops[0])
	assert.Equal(t, "All States", opts.States[0])
	assert.Len(t, opts.Crops, len(agri.Crops())+1)
	assert.Len(t, opts.States, 51)
}

func TestExport_CSV(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/api/export/csv?state=Idaho")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "usa_agri_filtered_2025.csv")

	rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, agri.Columns(), rows[0])
	assert.Len(t, rows, 1+len(agri.Crops()))
}

func TestExport_PDFAndXLSX(t *testing.T) {
	s := newTestServer(t, nil)

	rec := get(t, s, "/api/export/pdf")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "usa_agri_report_filtered_2025.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	rec = get(t, s, "/api/export/xlsx")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))
}

func TestExport_UnknownFormat(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/api/export/docx")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAsset_Available(t *testing.T) {
	calls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"v":"5.7.4"}`))
	}))
	defer upstream.Close()

	s := newTestServer(t, asset.NewFetcher(upstream.URL, time.Second))

	var body struct {
		Available bool            `json:"available"`
		Animation json.RawMessage `json:"animation"`
	}
	decode(t, get(t, s, "/api/asset"), &body)
	assert.True(t, body.Available)
	assert.JSONEq(t, `{"v":"5.7.4"}`, string(body.Animation))

	get(t, s, "/api/asset")
	assert.Equal(t, 1, calls, "asset should be fetched once per server")
}

func TestAsset_Unavailable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	rec := get(t, newTestServer(t, asset.NewFetcher(upstream.URL, time.Second)), "/api/asset")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"available":false}`, rec.Body.String())

	rec = get(t, newTestServer(t, nil), "/api/asset")
	assert.JSONEq(t, `{"available":false}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
}
