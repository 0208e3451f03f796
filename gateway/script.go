package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"learnhub/models"
)

// ScriptAdapter talks to the single-URL script endpoint. Every operation is
// selected by an "action" parameter: reads are GETs with query-string
// parameters, writes are POSTs with a JSON body {action, ...payload}.
//
// The endpoint serves an HTML error page when misdeployed and a JSON body
// with an "error" field when an action fails; both count as failures.
type ScriptAdapter struct {
	client *resty.Client
	url    string
}

var _ BackendAdapter = (*ScriptAdapter)(nil)

// NewScriptAdapter builds the adapter. No timeout is set on the client; the
// transport default applies.
func NewScriptAdapter(url string) *ScriptAdapter {
	return &ScriptAdapter{
		client: resty.New(),
		url:    url,
	}
}

func (a *ScriptAdapter) Name() string { return "script" }

func (a *ScriptAdapter) Ping(ctx context.Context) error {
	_, err := scriptGet[map[string]interface{}](a, ctx, "ping", nil)
	return err
}

// decodeScriptResponse validates and unmarshals a script endpoint body.
func decodeScriptResponse(action string, body []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] == '<' {
		return &MalformedResponseError{Op: action, Snippet: snippet(trimmed)}
	}
	var probe struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(trimmed, &probe) == nil && probe.Error != "" {
		return &BackendError{Op: action, Message: probe.Error}
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return &MalformedResponseError{Op: action, Snippet: snippet(trimmed)}
	}
	return nil
}

func snippet(body []byte) string {
	if len(body) > 60 {
		body = body[:60]
	}
	return string(body)
}

func scriptGet[T any](a *ScriptAdapter, ctx context.Context, action string, params map[string]string) (T, error) {
	var out T
	req := a.client.R().SetContext(ctx).SetQueryParam("action", action)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}
	resp, err := req.Get(a.url)
	if err != nil {
		return out, &TransportError{Op: action, Err: err}
	}
	if resp.IsError() {
		return out, &TransportError{Op: action, Err: fmt.Errorf("status %d", resp.StatusCode())}
	}
	if err := decodeScriptResponse(action, resp.Body(), &out); err != nil {
		return out, err
	}
	return out, nil
}

func scriptPost[T any](a *ScriptAdapter, ctx context.Context, action string, payload map[string]interface{}) (T, error) {
	var out T
	body := map[string]interface{}{"action": action}
	for k, v := range payload {
		body[k] = v
	}
	resp, err := a.client.R().SetContext(ctx).SetBody(body).Post(a.url)
	if err != nil {
		return out, &TransportError{Op: action, Err: err}
	}
	if resp.IsError() {
		return out, &TransportError{Op: action, Err: fmt.Errorf("status %d", resp.StatusCode())}
	}
	if err := decodeScriptResponse(action, resp.Body(), &out); err != nil {
		return out, err
	}
	return out, nil
}

// asPayload flattens a record into the POST body fields
func asPayload(v interface{}) map[string]interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{}
	}
	out := map[string]interface{}{}
	_ = json.Unmarshal(raw, &out)
	return out
}

func (a *ScriptAdapter) Courses(ctx context.Context) ([]models.Course, error) {
	return scriptGet[[]models.Course](a, ctx, "getCourses", nil)
}

func (a *ScriptAdapter) AddCourse(ctx context.Context, course models.Course) (models.Course, error) {
	return scriptPost[models.Course](a, ctx, "addCourse", asPayload(course))
}

func (a *ScriptAdapter) DeleteCourse(ctx context.Context, id string) error {
	_, err := scriptPost[map[string]interface{}](a, ctx, "deleteCourse", map[string]interface{}{"id": id})
	return err
}

func (a *ScriptAdapter) StudentByEmail(ctx context.Context, email string) (models.Student, error) {
	s, err := scriptGet[models.Student](a, ctx, "getStudentProfile", map[string]string{"email": email})
	var berr *BackendError
	if errors.As(err, &berr) && strings.Contains(strings.ToLower(berr.Message), "not found") {
		return models.Student{}, ErrNotFound
	}
	return s, err
}

func (a *ScriptAdapter) CreateStudent(ctx context.Context, student models.Student) (models.Student, error) {
	return scriptPost[models.Student](a, ctx, "createStudent", asPayload(student))
}

func (a *ScriptAdapter) UpdateAvatar(ctx context.Context, studentID, avatar string) error {
	_, err := scriptPost[map[string]interface{}](a, ctx, "updateStudentAvatar", map[string]interface{}{
		"studentId": studentID,
		"avatar":    avatar,
	})
	return err
}

func (a *ScriptAdapter) Enrollments(ctx context.Context, studentID string) ([]models.Enrollment, error) {
	return scriptGet[[]models.Enrollment](a, ctx, "getStudentEnrollments", map[string]string{"studentId": studentID})
}

func (a *ScriptAdapter) UpsertEnrollment(ctx context.Context, enrollment models.Enrollment) (models.Enrollment, error) {
	return scriptPost[models.Enrollment](a, ctx, "enrollStudent", asPayload(enrollment))
}

func (a *ScriptAdapter) UpdateProgress(ctx context.Context, studentID, courseID string, progress int) (models.Enrollment, error) {
	return scriptPost[models.Enrollment](a, ctx, "updateProgress", map[string]interface{}{
		"studentId": studentID,
		"courseId":  courseID,
		"progress":  progress,
	})
}

func (a *ScriptAdapter) Leaderboard(ctx context.Context) ([]models.Student, error) {
	return scriptGet[[]models.Student](a, ctx, "getLeaderboard", nil)
}

func (a *ScriptAdapter) AdminStats(ctx context.Context) (models.AdminStats, error) {
	return scriptGet[models.AdminStats](a, ctx, "getAdminStats", nil)
}

func (a *ScriptAdapter) SocialPosts(ctx context.Context) ([]models.SocialPost, error) {
	return scriptGet[[]models.SocialPost](a, ctx, "getSocialPosts", nil)
}

func (a *ScriptAdapter) Projects(ctx context.Context) ([]models.Project, error) {
	return scriptGet[[]models.Project](a, ctx, "getProjects", nil)
}

func (a *ScriptAdapter) AddProject(ctx context.Context, project models.Project) (models.Project, error) {
	return scriptPost[models.Project](a, ctx, "addProject", asPayload(project))
}

func (a *ScriptAdapter) LikeProject(ctx context.Context, id string) (models.Project, error) {
	return scriptPost[models.Project](a, ctx, "likeProject", map[string]interface{}{"id": id})
}

func (a *ScriptAdapter) Labs(ctx context.Context) ([]models.Lab, error) {
	return scriptGet[[]models.Lab](a, ctx, "getLabs", nil)
}

func (a *ScriptAdapter) Assets(ctx context.Context, labID string) ([]models.Asset, error) {
	return scriptGet[[]models.Asset](a, ctx, "getAssets", map[string]string{"labId": labID})
}

func (a *ScriptAdapter) DigitalAssets(ctx context.Context, labID string) ([]models.DigitalAsset, error) {
	return scriptGet[[]models.DigitalAsset](a, ctx, "getDigitalAssets", map[string]string{"labId": labID})
}

func (a *ScriptAdapter) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	return scriptPost[models.Booking](a, ctx, "createBooking", asPayload(booking))
}

func (a *ScriptAdapter) ReportAssetIssue(ctx context.Context, assetID, description string) error {
	_, err := scriptPost[map[string]interface{}](a, ctx, "reportAssetIssue", map[string]interface{}{
		"assetId":     assetID,
		"description": description,
	})
	return err
}
