package wordpress_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gold9-app/autopress"
	"github.com/gold9-app/autopress/wordpress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_UpdateMeta(t *testing.T) {
	t.Parallel()

	t.Run("pushes all rank math fields", func(t *testing.T) {
		t.Parallel()

		var payload struct {
			ObjectType string            `json:"objectType"`
			ObjectID   int               `json:"objectID"`
			Meta       map[string]string `json:"meta"`
		}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/wp-json/rankmath/v1/updateMeta", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			w.WriteHeader(http.StatusOK)
		}))
		t.Cleanup(srv.Close)

		client := wordpress.NewClient(srv.URL, "u", "p")

		err := client.UpdateMeta(context.Background(), 123, autopress.SEOFields{
			FocusKeyword: "계란",
			SEOTitle:     "계란 상식 - 골드나인",
			Description:  "계란에 대한 설명",
		})
		require.NoError(t, err)

		assert.Equal(t, "post", payload.ObjectType)
		assert.Equal(t, 123, payload.ObjectID)
		assert.Equal(t, "계란 상식 - 골드나인", payload.Meta["rank_math_title"])
		assert.Equal(t, "계란에 대한 설명", payload.Meta["rank_math_description"])
		assert.Equal(t, "계란", payload.Meta["rank_math_focus_keyword"])
		assert.Equal(t, "index,follow", payload.Meta["rank_math_robots"])
	})

	t.Run("any status but 200 is unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(srv.Close)

		client := wordpress.NewClient(srv.URL, "u", "p")

		err := client.UpdateMeta(context.Background(), 1, autopress.SEOFields{})
		require.Error(t, err)
		assert.Equal(t, autopress.EUNAVAILABLE, autopress.ErrorCode(err))
	})
}

func TestClient_UpdateSchema(t *testing.T) {
	t.Parallel()

	t.Run("installs the article schema template", func(t *testing.T) {
		t.Parallel()

		var payload struct {
			ObjectID int                       `json:"objectID"`
			Schemas  map[string]map[string]any `json:"schemas"`
		}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/wp-json/rankmath/v1/updateSchemas", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			w.WriteHeader(http.StatusOK)
		}))
		t.Cleanup(srv.Close)

		client := wordpress.NewClient(srv.URL, "u", "p")

		require.NoError(t, client.UpdateSchema(context.Background(), 123))

		assert.Equal(t, 123, payload.ObjectID)
		schema := payload.Schemas["new-1"]
		require.NotNil(t, schema)
		assert.Equal(t, "Article", schema["@type"])
		assert.Equal(t, "%seo_title%", schema["headline"])
	})

	t.Run("any status but 200 is unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		t.Cleanup(srv.Close)

		client := wordpress.NewClient(srv.URL, "u", "p")

		err := client.UpdateSchema(context.Background(), 1)
		require.Error(t, err)
		assert.Equal(t, autopress.EUNAVAILABLE, autopress.ErrorCode(err))
	})
}
