package gateway

import (
	"context"

	"learnhub/models"
)

// BackendAdapter translates gateway operations into calls against one
// concrete remote store. Two live variants exist (ScriptAdapter, DBAdapter)
// plus the MockProvider, which doubles as the zero-config backend.
//
// Adapters surface errors; they never apply fallback policy themselves.
// Lookup misses are reported as ErrNotFound, everything else as
// TransportError, MalformedResponseError or BackendError.
type BackendAdapter interface {
	Name() string
	Ping(ctx context.Context) error

	Courses(ctx context.Context) ([]models.Course, error)
	AddCourse(ctx context.Context, course models.Course) (models.Course, error)
	DeleteCourse(ctx context.Context, id string) error

	StudentByEmail(ctx context.Context, email string) (models.Student, error)
	CreateStudent(ctx context.Context, student models.Student) (models.Student, error)
	UpdateAvatar(ctx context.Context, studentID, avatar string) error

	Enrollments(ctx context.Context, studentID string) ([]models.Enrollment, error)
	UpsertEnrollment(ctx context.Context, enrollment models.Enrollment) (models.Enrollment, error)
	UpdateProgress(ctx context.Context, studentID, courseID string, progress int) (models.Enrollment, error)

	Leaderboard(ctx context.Context) ([]models.Student, error)
	AdminStats(ctx context.Context) (models.AdminStats, error)

	SocialPosts(ctx context.Context) ([]models.SocialPost, error)

	Projects(ctx context.Context) ([]models.Project, error)
	AddProject(ctx context.Context, project models.Project) (models.Project, error)
	LikeProject(ctx context.Context, id string) (models.Project, error)

	Labs(ctx context.Context) ([]models.Lab, error)
	Assets(ctx context.Context, labID string) ([]models.Asset, error)
	DigitalAssets(ctx context.Context, labID string) ([]models.DigitalAsset, error)
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	ReportAssetIssue(ctx context.Context, assetID, description string) error
}
