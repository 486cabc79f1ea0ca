package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcity/erbil-dashboard/internal/domain"
	"github.com/smartcity/erbil-dashboard/internal/observability"
)

const lottieDoc = `{"v":"5.7.4","fr":30,"ip":0,"op":60,"layers":[{"ty":4}]}`

func serve(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestFetchAnimation_Success(t *testing.T) {
	srv := serve(http.StatusOK, lottieDoc)
	defer srv.Close()

	doc, err := FetchAnimation(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.JSONEq(t, lottieDoc, string(doc))
}

func TestFetchAnimation_Non200(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusNoContent} {
		srv := serve(status, lottieDoc)

		doc, err := FetchAnimation(context.Background(), srv.Client(), srv.URL)
		srv.Close()

		require.Error(t, err)
		assert.Nil(t, doc)
		var fe *domain.FetchError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, status, fe.Status)
	}
}

func TestFetchAnimation_TruncatedBody(t *testing.T) {
	srv := serve(http.StatusOK, lottieDoc[:20])
	defer srv.Close()

	doc, err := FetchAnimation(context.Background(), srv.Client(), srv.URL)
	require.Error(t, err)
	assert.Nil(t, doc)

	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusOK, fe.Status)
	assert.Contains(t, err.Error(), "decode body")
}

func TestFetchAnimation_TransportError(t *testing.T) {
	srv := serve(http.StatusOK, lottieDoc)
	url := srv.URL
	srv.Close()

	doc, err := FetchAnimation(context.Background(), http.DefaultClient, url)
	require.Error(t, err)
	assert.Nil(t, doc)

	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Zero(t, fe.Status)
}

func TestAnimationLoader_RecordsOutcome(t *testing.T) {
	ok := serve(http.StatusOK, lottieDoc)
	defer ok.Close()
	missing := serve(http.StatusNotFound, "")
	defer missing.Close()
	garbled := serve(http.StatusOK, "not json")
	defer garbled.Close()

	metrics := observability.NewMetricsForTesting()

	_, err := NewAnimationLoader(ok.URL, metrics).Load(context.Background())
	require.NoError(t, err)
	_, err = NewAnimationLoader(missing.URL, metrics).Load(context.Background())
	require.Error(t, err)
	_, err = NewAnimationLoader(garbled.URL, metrics).Load(context.Background())
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.AnimationFetches.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.AnimationFetches.WithLabelValues("http_error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.AnimationFetches.WithLabelValues("decode_error")))
}
