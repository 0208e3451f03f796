package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/gateway"
	"learnhub/models"
)

func TestScriptAdapterGetEncodesAction(t *testing.T) {
	var gotAction, gotLab string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAction = r.URL.Query().Get("action")
		gotLab = r.URL.Query().Get("labId")
		_ = json.NewEncoder(w).Encode([]models.Asset{
			{ID: "a9", LabID: "l1", Name: "Vinyl Cutter", Status: models.AssetAvailable},
		})
	}))
	defer server.Close()

	adapter := gateway.NewScriptAdapter(server.URL)
	assets, err := adapter.Assets(context.Background(), "l1")
	require.NoError(t, err)
	assert.Equal(t, "getAssets", gotAction)
	assert.Equal(t, "l1", gotLab)
	require.Len(t, assets, 1)
	assert.Equal(t, "Vinyl Cutter", assets[0].Name)
}

func TestScriptAdapterPostSendsActionInBody(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_ = json.NewEncoder(w).Encode(models.Enrollment{StudentID: "s1", CourseID: "c2", Progress: 75})
	}))
	defer server.Close()

	adapter := gateway.NewScriptAdapter(server.URL)
	e, err := adapter.UpdateProgress(context.Background(), "s1", "c2", 75)
	require.NoError(t, err)
	assert.Equal(t, 75, e.Progress)

	assert.Equal(t, "updateProgress", body["action"])
	assert.Equal(t, "s1", body["studentId"])
	assert.Equal(t, "c2", body["courseId"])
	assert.Equal(t, float64(75), body["progress"])
}

func TestScriptAdapterHTMLBodyIsMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>Script error</body></html>"))
	}))
	defer server.Close()

	adapter := gateway.NewScriptAdapter(server.URL)
	_, err := adapter.Courses(context.Background())
	var merr *gateway.MalformedResponseError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "getCourses", merr.Op)
}

func TestScriptAdapterErrorPayloadIsBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "sheet quota exceeded"})
	}))
	defer server.Close()

	adapter := gateway.NewScriptAdapter(server.URL)
	_, err := adapter.Leaderboard(context.Background())
	var berr *gateway.BackendError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, "sheet quota exceeded", berr.Message)
}

func TestScriptAdapterProfileMissTranslatesToNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "profile not found"})
	}))
	defer server.Close()

	adapter := gateway.NewScriptAdapter(server.URL)
	_, err := adapter.StudentByEmail(context.Background(), "ghost@learnhub.io")
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestScriptAdapterServerErrorIsTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	adapter := gateway.NewScriptAdapter(server.URL)
	_, err := adapter.Courses(context.Background())
	var terr *gateway.TransportError
	assert.ErrorAs(t, err, &terr)
}

func TestGatewayOverDeadScriptEndpointServesMockData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // endpoint is gone

	mock := gateway.NewMockProvider(42)
	gw := gateway.New(gateway.NewScriptAdapter(server.URL), mock, "", "")

	assert.Equal(t, mock.CourseData(), gw.Courses(context.Background()))
	assert.Equal(t, mock.LabData(), gw.Labs(context.Background()))
}
