package gateway

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"learnhub/logger"
	"learnhub/models"
	"learnhub/utils"
)

// The social-login placeholder resolves every provider to this demo
// identity. Real OAuth must replace it before production use.
const (
	DemoEmail = "demo@learnhub.io"
	DemoName  = "Alex Demo"
)

// Gateway is the single data-access façade for the application. Each
// operation delegates to the configured BackendAdapter; read failures are
// replaced by the mock dataset and write failures by a locally fabricated
// result, so callers never observe a hard failure. The one exception is
// VerifyAdmin, which always surfaces ErrInvalidCredentials.
//
// Optimistic write results are not persisted anywhere on failure; a restart
// loses them. Availability over durability, acceptable for demo-grade data.
type Gateway struct {
	adapter BackendAdapter
	mock    *MockProvider

	adminEmail    string
	adminPassword string
}

// New builds the gateway. A nil adapter means no backend is configured; the
// mock provider then serves every call directly.
func New(adapter BackendAdapter, mock *MockProvider, adminEmail, adminPassword string) *Gateway {
	if mock == nil {
		mock = NewMockProvider(0)
	}
	if adapter == nil {
		adapter = mock
	}
	return &Gateway{
		adapter:       adapter,
		mock:          mock,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// Backend reports the active adapter name (script, db or mock)
func (g *Gateway) Backend() string { return g.adapter.Name() }

// Ping probes the active adapter
func (g *Gateway) Ping(ctx context.Context) error { return g.adapter.Ping(ctx) }

// orMock is the read-path fallback policy made explicit: an adapter failure
// is logged and the mock dataset substituted, never an error.
func orMock[T any](op string, v T, err error, mock func() T) T {
	if err == nil {
		return v
	}
	logger.Warnf("gateway: %s failed (%v), serving mock data", op, err)
	return mock()
}

func newProfile(email string) models.Student {
	name := strings.SplitN(email, "@", 2)[0]
	return models.Student{
		ID:              uuid.NewString(),
		Name:            name,
		Email:           email,
		Avatar:          "/images/avatars/default.png",
		Role:            models.RoleStudent,
		EnrolledCourses: []string{},
	}
}

// ---- courses ----

func (g *Gateway) Courses(ctx context.Context) []models.Course {
	v, err := g.adapter.Courses(ctx)
	return orMock("getCourses", v, err, g.mock.CourseData)
}

// AddCourse writes through the backend; on failure the course is returned
// with a synthetic id so the caller can proceed, but nothing is persisted.
func (g *Gateway) AddCourse(ctx context.Context, course models.Course) models.Course {
	v, err := g.adapter.AddCourse(ctx, course)
	if err == nil {
		return v
	}
	logger.Warnf("gateway: addCourse failed (%v), returning unpersisted course", err)
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	return course
}

func (g *Gateway) DeleteCourse(ctx context.Context, id string) {
	if err := g.adapter.DeleteCourse(ctx, id); err != nil {
		logger.Warnf("gateway: deleteCourse %s failed (%v), delete not persisted", id, err)
	}
}

// ---- students ----

// StudentProfile resolves a profile by email. A miss is not an error: the
// profile is auto-provisioned (or fabricated when the backend is down) and
// the second return value reports that explicitly.
func (g *Gateway) StudentProfile(ctx context.Context, email string) (models.Student, bool) {
	s, err := g.adapter.StudentByEmail(ctx, email)
	if err == nil {
		return s, false
	}
	if errors.Is(err, ErrNotFound) {
		created, cerr := g.adapter.CreateStudent(ctx, newProfile(email))
		if cerr == nil {
			return created, true
		}
		logger.Warnf("gateway: auto-provisioning %s failed (%v), fabricating profile", email, cerr)
		return newProfile(email), true
	}
	logger.Warnf("gateway: getStudentProfile failed (%v), serving mock data", err)
	return g.mock.ProfileData(email)
}

func (g *Gateway) UpdateStudentAvatar(ctx context.Context, studentID, avatar string) {
	if err := g.adapter.UpdateAvatar(ctx, studentID, avatar); err != nil {
		logger.Warnf("gateway: updateStudentAvatar failed (%v), change not persisted", err)
	}
}

// LoginWithSocial is an external-identity placeholder: whatever the
// provider, it resolves to the fixed demo identity, provisioning the
// profile on first use. Idempotent.
func (g *Gateway) LoginWithSocial(ctx context.Context, provider string) models.Student {
	logger.Infof("gateway: social login via %s resolving to demo identity", provider)
	s, provisioned := g.StudentProfile(ctx, DemoEmail)
	if provisioned {
		s.Name = DemoName
	}
	return s
}

// VerifyAdmin checks the pair against the single configured admin identity.
// Exact match only. Failure is surfaced, never replaced by mock data:
// silently granting admin access would be a security defect.
func (g *Gateway) VerifyAdmin(email, password string) (models.Student, error) {
	if g.adminEmail == "" || email != g.adminEmail || password != g.adminPassword {
		return models.Student{}, ErrInvalidCredentials
	}
	return models.Student{
		ID:     "admin",
		Name:   "Administrator",
		Email:  g.adminEmail,
		Avatar: "/images/avatars/admin.png",
		Role:   models.RoleAdmin,
	}, nil
}

// ---- enrollments ----

func (g *Gateway) StudentEnrollments(ctx context.Context, studentID string) []models.Enrollment {
	v, err := g.adapter.Enrollments(ctx, studentID)
	return orMock("getStudentEnrollments", v, err, func() []models.Enrollment {
		return g.mock.EnrollmentData(studentID)
	})
}

// EnrollStudent upserts the (student, course) enrollment. A missing target
// date is projected from the plan and the course duration.
func (g *Gateway) EnrollStudent(ctx context.Context, studentID, courseID string, plan models.StudyPlan) models.Enrollment {
	if plan.StartDate.IsZero() {
		plan.StartDate = time.Now().UTC()
	}
	if plan.TargetCompletionDate.IsZero() {
		plan.TargetCompletionDate = utils.ProjectTargetDate(
			plan.StartDate, plan.PlannedHoursPerWeek, g.courseDuration(ctx, courseID))
	}
	enrollment := models.Enrollment{
		StudentID:            studentID,
		CourseID:             courseID,
		Progress:             0,
		PlannedHoursPerWeek:  plan.PlannedHoursPerWeek,
		StartDate:            plan.StartDate,
		TargetCompletionDate: plan.TargetCompletionDate,
	}
	v, err := g.adapter.UpsertEnrollment(ctx, enrollment)
	if err == nil {
		return v
	}
	logger.Warnf("gateway: enrollStudent failed (%v), returning unpersisted enrollment", err)
	return enrollment
}

// UpdateProgress clamps to [0,100] before handing the value to the adapter.
func (g *Gateway) UpdateProgress(ctx context.Context, studentID, courseID string, progress int) models.Enrollment {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	v, err := g.adapter.UpdateProgress(ctx, studentID, courseID, progress)
	if err == nil {
		return v
	}
	logger.Warnf("gateway: updateProgress failed (%v), returning unpersisted progress", err)
	return models.Enrollment{StudentID: studentID, CourseID: courseID, Progress: progress}
}

func (g *Gateway) courseDuration(ctx context.Context, courseID string) int {
	for _, c := range g.Courses(ctx) {
		if c.ID == courseID {
			return c.DurationHours
		}
	}
	return 0
}

// ---- aggregates and feeds ----

func (g *Gateway) Leaderboard(ctx context.Context) []models.Student {
	v, err := g.adapter.Leaderboard(ctx)
	return orMock("getLeaderboard", v, err, g.mock.LeaderboardData)
}

func (g *Gateway) AdminStats(ctx context.Context) models.AdminStats {
	v, err := g.adapter.AdminStats(ctx)
	return orMock("getAdminStats", v, err, g.mock.AdminStatsData)
}

func (g *Gateway) SocialPosts(ctx context.Context) []models.SocialPost {
	v, err := g.adapter.SocialPosts(ctx)
	return orMock("getSocialPosts", v, err, g.mock.SocialPostData)
}

// ---- projects ----

func (g *Gateway) Projects(ctx context.Context) []models.Project {
	v, err := g.adapter.Projects(ctx)
	return orMock("getProjects", v, err, g.mock.ProjectData)
}

func (g *Gateway) AddProject(ctx context.Context, project models.Project) models.Project {
	v, err := g.adapter.AddProject(ctx, project)
	if err == nil {
		return v
	}
	logger.Warnf("gateway: addProject failed (%v), returning unpersisted project", err)
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.Status == "" {
		project.Status = models.ProjectIdea
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	return project
}

func (g *Gateway) LikeProject(ctx context.Context, id string) models.Project {
	v, err := g.adapter.LikeProject(ctx, id)
	if err == nil {
		return v
	}
	logger.Warnf("gateway: likeProject failed (%v), like not persisted", err)
	for _, p := range g.mock.ProjectData() {
		if p.ID == id {
			p.Likes++
			return p
		}
	}
	return models.Project{ID: id, Likes: 1}
}

// ---- labs and bookings ----

func (g *Gateway) Labs(ctx context.Context) []models.Lab {
	v, err := g.adapter.Labs(ctx)
	return orMock("getLabs", v, err, g.mock.LabData)
}

func (g *Gateway) Assets(ctx context.Context, labID string) []models.Asset {
	v, err := g.adapter.Assets(ctx, labID)
	return orMock("getAssets", v, err, func() []models.Asset {
		return g.mock.AssetData(labID)
	})
}

func (g *Gateway) DigitalAssets(ctx context.Context, labID string) []models.DigitalAsset {
	v, err := g.adapter.DigitalAssets(ctx, labID)
	return orMock("getDigitalAssets", v, err, func() []models.DigitalAsset {
		return g.mock.DigitalAssetData(labID)
	})
}

func (g *Gateway) CreateBooking(ctx context.Context, booking models.Booking) models.Booking {
	v, err := g.adapter.CreateBooking(ctx, booking)
	if err == nil {
		return v
	}
	logger.Warnf("gateway: createBooking failed (%v), returning unpersisted booking", err)
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	return booking
}

func (g *Gateway) ReportAssetIssue(ctx context.Context, assetID, description string) {
	if err := g.adapter.ReportAssetIssue(ctx, assetID, description); err != nil {
		logger.Warnf("gateway: reportAssetIssue %s failed (%v), report not persisted", assetID, err)
	}
}
