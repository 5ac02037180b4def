package frankfurter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/adapters/exchangerate/frankfurter"
	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestRates(t *testing.T) {
	var gotPath, gotFrom, gotTo string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFrom = r.URL.Query().Get("from")
		gotTo = r.URL.Query().Get("to")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"amount":1.0,"base":"EUR","date":"2025-06-13","rates":{"USD":1.1512,"JPY":166.31}}`))
	}))
	defer srv.Close()

	client := frankfurter.NewClient(srv.URL+"/", time.Second)
	rates, err := client.LatestRates(context.Background(), "EUR", "USD", "JPY")

	require.NoError(t, err)
	assert.Equal(t, "/latest", gotPath)
	assert.Equal(t, "EUR", gotFrom)
	assert.Equal(t, "USD,JPY", gotTo)
	assert.Equal(t, "EUR", rates.Base)
	assert.Equal(t, "2025-06-13", rates.Date)
	assert.True(t, decimal.RequireFromString("1.1512").Equal(rates.Rates["USD"]))
	assert.True(t, decimal.RequireFromString("166.31").Equal(rates.Rates["JPY"]))
}

func TestHistoricalRates(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"amount":1.0,"base":"USD","date":"2024-01-02","rates":{"EUR":0.91}}`))
	}))
	defer srv.Close()

	client := frankfurter.NewClient(srv.URL, time.Second)
	rates, err := client.HistoricalRates(context.Background(), time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC), "USD")

	require.NoError(t, err)
	assert.Equal(t, "/2024-01-02", gotPath)
	assert.Equal(t, "USD", rates.Base)
	assert.Len(t, rates.Rates, 1)
}

func TestUpstreamFailuresAreConversionErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
		}},
		{"garbage body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}},
		{"too slow", func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{"base":"EUR","rates":{}}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := frankfurter.NewClient(srv.URL, 50*time.Millisecond)
			rates, err := client.LatestRates(context.Background(), "EUR", "USD")

			assert.Nil(t, rates)
			assert.ErrorIs(t, err, apperrors.ErrConversion)
		})
	}
}

func TestUnreachableUpstream(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := frankfurter.NewClient(url, time.Second).LatestRates(context.Background(), "EUR")
	assert.ErrorIs(t, err, apperrors.ErrConversion)
}
