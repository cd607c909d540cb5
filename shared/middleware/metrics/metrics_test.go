package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/threads/{threadId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/threads/{threadId}", "404"))
	for _, id := range []string{"thread-1", "thread-2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/threads/"+id, nil))
	}
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/threads/{threadId}", "404"))

	assert.Equal(t, 2.0, after-before)
	assert.Equal(t, 0.0, testutil.ToFloat64(httpRequestsInFlight))
}

func TestLikeToggled(t *testing.T) {
	liked := testutil.ToFloat64(likeTogglesTotal.WithLabelValues("liked"))
	unliked := testutil.ToFloat64(likeTogglesTotal.WithLabelValues("unliked"))

	LikeToggled(true)
	LikeToggled(false)
	LikeToggled(false)

	assert.Equal(t, liked+1, testutil.ToFloat64(likeTogglesTotal.WithLabelValues("liked")))
	assert.Equal(t, unliked+2, testutil.ToFloat64(likeTogglesTotal.WithLabelValues("unliked")))
}
