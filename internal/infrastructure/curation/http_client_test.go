package curation_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/ports"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/infrastructure/curation"
)

const validResponse = `{
	"curatedProducts": [
		{"id": "p1", "name": "Hunter Valley Shiraz", "category_level_1": "wine", "loyalty_points": "120"},
		{"id": "p2", "name": "Tasmanian Single Malt", "category_level_1": "spirits", "loyalty_points": "40"}
	],
	"platinumProducts": [
		{"id": "p1", "name": "Hunter Valley Shiraz", "category_level_1": "wine", "loyalty_points": "120"}
	],
	"reasoning": ["matched venue profile"],
	"confidence": 0.85,
	"businessInsights": ["wine-led range"],
	"nextSteps": ["review the shortlist"]
}`

func newDelegate(t *testing.T, url string) *curation.HTTPDelegate {
	t.Helper()
	d, err := curation.NewHTTPDelegate(url, 2*time.Second)
	require.NoError(t, err)
	return d
}

func decimalFromPoints(points int64) decimal.Decimal {
	return decimal.NewFromInt(points).Mul(decimal.NewFromFloat(0.1))
}

func testProfile() entity.BusinessProfile {
	return entity.BusinessProfile{
		VenueType:    "bar",
		CuisineStyle: "pub food",
		Location:     entity.Location{City: "Sydney", State: "NSW"},
	}
}

func TestCurate_MapsValidResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/curate", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, 50, req["maxProducts"])
		profile, ok := req["profile"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "bar", profile["venueType"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(validResponse))
	}))
	defer srv.Close()

	resp, err := newDelegate(t, srv.URL).Curate(context.Background(), testProfile(), 50)
	require.NoError(t, err)

	require.Len(t, resp.CuratedProducts, 2)
	assert.Equal(t, "Hunter Valley Shiraz", resp.CuratedProducts[0].Name)
	assert.Equal(t, entity.CategoryWine, resp.CuratedProducts[0].Category)
	// 120 loyalty points crosses the platinum threshold.
	assert.Equal(t, entity.TierPlatinum, resp.CuratedProducts[0].Supplier.Tier)
	require.Len(t, resp.PlatinumProducts, 1)
	assert.InDelta(t, 0.85, resp.Confidence, 1e-9)
	assert.Equal(t, []string{"matched venue profile"}, resp.Reasoning)
}

func TestCurate_DefaultsAppliedToWireRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(validResponse))
	}))
	defer srv.Close()

	resp, err := newDelegate(t, srv.URL).Curate(context.Background(), testProfile(), 10)
	require.NoError(t, err)

	// Records without volume or shelf life pick up the catalog defaults.
	p := resp.CuratedProducts[1]
	assert.Equal(t, 750, p.Specifications.Volume)
	assert.Equal(t, 365, p.Specifications.ShelfLife)
	assert.True(t, p.Pricing.BasePrice.Equal(decimalFromPoints(40)))
}

func TestCurate_ServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newDelegate(t, srv.URL).Curate(context.Background(), testProfile(), 10)
	assert.ErrorIs(t, err, ports.ErrDelegateUnavailable)
}

func TestCurate_ConnectionRefusedIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newDelegate(t, url).Curate(context.Background(), testProfile(), 10)
	assert.ErrorIs(t, err, ports.ErrDelegateUnavailable)
}

func TestCurate_MalformedJSONIsBadResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"curatedProducts": [`))
	}))
	defer srv.Close()

	_, err := newDelegate(t, srv.URL).Curate(context.Background(), testProfile(), 10)
	assert.ErrorIs(t, err, ports.ErrDelegateBadResponse)
}

func TestCurate_SchemaViolationIsBadResponse(t *testing.T) {
	cases := map[string]string{
		"missing curatedProducts": `{"reasoning": [], "confidence": 0.5}`,
		"confidence out of range": `{"curatedProducts": [], "reasoning": [], "confidence": 1.5}`,
		"product without id":      `{"curatedProducts": [{"name": "x"}], "reasoning": [], "confidence": 0.5}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(payload))
			}))
			defer srv.Close()

			_, err := newDelegate(t, srv.URL).Curate(context.Background(), testProfile(), 10)
			assert.ErrorIs(t, err, ports.ErrDelegateBadResponse)
		})
	}
}

func TestCurate_ContextDeadlineIsUnavailable(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		// Drain the body so the server can detect the client disconnect and
		// cancel the request context; otherwise srv.Close blocks forever.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newDelegate(t, srv.URL).Curate(ctx, testProfile(), 10)
	assert.ErrorIs(t, err, ports.ErrDelegateUnavailable)
	<-started
}
