package cloudinary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	client := NewClient("demo-cloud", "unsigned-preset", "recipes")
	client.apiURL = serverURL
	return client
}

func TestClient_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/demo-cloud/image/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "unsigned-preset", r.FormValue("upload_preset"))
		assert.Equal(t, "recipes", r.FormValue("folder"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() {
			_ = file.Close()
		}()
		assert.Equal(t, "dish.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo-cloud/image/upload/dish.jpg","public_id":"recipes/dish"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	url, err := client.Upload(context.Background(), "dish.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo-cloud/image/upload/dish.jpg", url)
}

func TestClient_Upload_ErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			payload: `{"error":{"message":"unknown upload preset"}}`,
		},
		{
			name:    "missing secure_url",
			status:  http.StatusOK,
			payload: `{"public_id":"recipes/dish"}`,
		},
		{
			name:    "broken json",
			status:  http.StatusOK,
			payload: `{"secure_url":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			url, err := client.Upload(context.Background(), "dish.jpg", strings.NewReader("bytes"))
			assert.Error(t, err)
			assert.Empty(t, url)
		})
	}
}
