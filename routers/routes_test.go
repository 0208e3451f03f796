package routers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/config"
	"learnhub/controllers"
	"learnhub/gateway"
	"learnhub/routers"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:        "test-secret",
		AdminEmail:    "admin@learnhub.io",
		AdminPassword: "hunter2",
	}

	mock := gateway.NewMockProvider(42)
	controllers.SetGateway(gateway.New(nil, mock, "admin@learnhub.io", "hunter2"))

	app := fiber.New()
	routers.SetupRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func loginSocial(t *testing.T, app *fiber.App) string {
	t.Helper()

	code, env := doJSON(t, app, http.MethodPost, "/api/auth/social/login", "", fiber.Map{"provider": "google"})
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestPublicCatalogNeedsNoToken(t *testing.T) {
	app := newTestApp(t)

	code, env := doJSON(t, app, http.MethodGet, "/api/courses", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Status)

	var courses []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	require.Len(t, courses, 4)
	assert.Equal(t, "c1", courses[0].ID)
}

func TestCourseDetail(t *testing.T) {
	app := newTestApp(t)

	code, env := doJSON(t, app, http.MethodGet, "/api/courses/c2", "", nil)
	require.Equal(t, http.StatusOK, code)

	var course struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &course))
	assert.Equal(t, "c2", course.ID)
	assert.NotEmpty(t, course.Title)

	code, _ = doJSON(t, app, http.MethodGet, "/api/courses/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestProfileRequiresToken(t *testing.T) {
	app := newTestApp(t)

	code, _ := doJSON(t, app, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestSocialLoginAndProfile(t *testing.T) {
	app := newTestApp(t)
	token := loginSocial(t, app)

	code, env := doJSON(t, app, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Profile struct {
			Email string `json:"email"`
		} `json:"profile"`
		AutoProvisioned bool `json:"autoProvisioned"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, gateway.DemoEmail, data.Profile.Email)
	assert.False(t, data.AutoProvisioned, "the demo identity already exists")
}

func TestAdminLogin(t *testing.T) {
	app := newTestApp(t)

	code, env := doJSON(t, app, http.MethodPost, "/api/auth/admin/login", "", fiber.Map{
		"email": "admin@learnhub.io", "password": "hunter2",
	})
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Status)

	code, env = doJSON(t, app, http.MethodPost, "/api/auth/admin/login", "", fiber.Map{
		"email": "admin@learnhub.io", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Status)
}

func TestAdminRoutesRejectStudentTokens(t *testing.T) {
	app := newTestApp(t)
	token := loginSocial(t, app)

	code, _ := doJSON(t, app, http.MethodGet, "/api/admin/stats", token, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestAdminStatsWithAdminToken(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/auth/admin/login", "", fiber.Map{
		"email": "admin@learnhub.io", "password": "hunter2",
	})
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	code, env := doJSON(t, app, http.MethodGet, "/api/admin/stats", login.Token, nil)
	require.Equal(t, http.StatusOK, code)

	var stats struct {
		TotalCourses  int `json:"totalCourses"`
		TotalStudents int `json:"totalStudents"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 4, stats.TotalCourses)
	assert.Equal(t, 5, stats.TotalStudents)
}

func TestEnrollmentFlow(t *testing.T) {
	app := newTestApp(t)
	token := loginSocial(t, app)

	code, env := doJSON(t, app, http.MethodPost, "/api/enrollments", token, fiber.Map{
		"courseId": "c3", "plannedHoursPerWeek": 4,
	})
	require.Equal(t, http.StatusOK, code, env.Message)

	var enrollment struct {
		CourseID             string `json:"courseId"`
		Progress             int    `json:"progress"`
		TargetCompletionDate string `json:"targetCompletionDate"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))
	assert.Equal(t, "c3", enrollment.CourseID)
	assert.Zero(t, enrollment.Progress)
	assert.NotEmpty(t, enrollment.TargetCompletionDate)

	code, env = doJSON(t, app, http.MethodPut, "/api/enrollments/progress", token, fiber.Map{
		"courseId": "c3", "progress": 30,
	})
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &enrollment))
	assert.Equal(t, 30, enrollment.Progress)
}

func TestValidationFailureShape(t *testing.T) {
	app := newTestApp(t)
	token := loginSocial(t, app)

	code, env := doJSON(t, app, http.MethodPost, "/api/enrollments", token, fiber.Map{
		"courseId": "c3", "plannedHoursPerWeek": 0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.False(t, env.Status)

	var errs map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &errs))
	assert.Contains(t, errs, "plannedHoursPerWeek")
}

func TestBookingRoute(t *testing.T) {
	app := newTestApp(t)
	token := loginSocial(t, app)

	code, env := doJSON(t, app, http.MethodPost, "/api/bookings", token, fiber.Map{
		"assetId": "a1", "date": "2026-04-20", "startTime": "09:00",
		"durationHours": 2, "purpose": "print chassis parts",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)

	var booking struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.NotEmpty(t, booking.ID)
}

func TestLikeProjectRoute(t *testing.T) {
	app := newTestApp(t)
	token := loginSocial(t, app)

	mock := gateway.NewMockProvider(42)
	target := mock.ProjectData()[0]

	code, env := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/projects/%s/like", target.ID), token, nil)
	require.Equal(t, http.StatusOK, code)

	var project struct {
		Likes int `json:"likes"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &project))
	assert.Equal(t, target.Likes+1, project.Likes)
}
