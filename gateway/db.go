package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub/models"
)

// DBAdapter runs gateway operations against the managed database. Column
// and table naming is snake_case on the wire (profiles, courses,
// enrollments, ...); GORM's naming strategy plus the models' json tags do
// the wire-to-domain mapping.
type DBAdapter struct {
	db *gorm.DB
}

var _ BackendAdapter = (*DBAdapter)(nil)

func NewDBAdapter(db *gorm.DB) *DBAdapter {
	return &DBAdapter{db: db}
}

func (a *DBAdapter) Name() string { return "db" }

func (a *DBAdapter) Ping(ctx context.Context) error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return &TransportError{Op: "ping", Err: err}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return &TransportError{Op: "ping", Err: err}
	}
	return nil
}

// wrap maps a gorm error into the gateway taxonomy. From the gateway's
// point of view any database failure is a transport failure.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return &TransportError{Op: op, Err: err}
}

func (a *DBAdapter) Courses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := a.db.WithContext(ctx).Order("created_at asc").Find(&courses).Error
	return courses, wrap("getCourses", err)
}

func (a *DBAdapter) AddCourse(ctx context.Context, course models.Course) (models.Course, error) {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	err := a.db.WithContext(ctx).Create(&course).Error
	return course, wrap("addCourse", err)
}

func (a *DBAdapter) DeleteCourse(ctx context.Context, id string) error {
	err := a.db.WithContext(ctx).Delete(&models.Course{}, "id = ?", id).Error
	return wrap("deleteCourse", err)
}

func (a *DBAdapter) StudentByEmail(ctx context.Context, email string) (models.Student, error) {
	var student models.Student
	err := a.db.WithContext(ctx).Where("email = ?", email).First(&student).Error
	return student, wrap("getStudentProfile", err)
}

func (a *DBAdapter) CreateStudent(ctx context.Context, student models.Student) (models.Student, error) {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	if student.Role == "" {
		student.Role = models.RoleStudent
	}
	if student.EnrolledCourses == nil {
		student.EnrolledCourses = []string{}
	}
	err := a.db.WithContext(ctx).Create(&student).Error
	return student, wrap("createStudent", err)
}

func (a *DBAdapter) UpdateAvatar(ctx context.Context, studentID, avatar string) error {
	err := a.db.WithContext(ctx).Model(&models.Student{}).
		Where("id = ?", studentID).
		Update("avatar", avatar).Error
	return wrap("updateStudentAvatar", err)
}

func (a *DBAdapter) Enrollments(ctx context.Context, studentID string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := a.db.WithContext(ctx).Where("student_id = ?", studentID).Find(&enrollments).Error
	return enrollments, wrap("getStudentEnrollments", err)
}

// UpsertEnrollment keeps at most one row per (studentId, courseId). A repeat
// enrollment updates the plan fields in place; progress and earned XP
// survive the upsert.
func (a *DBAdapter) UpsertEnrollment(ctx context.Context, enrollment models.Enrollment) (models.Enrollment, error) {
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Enrollment
		err := tx.Where("student_id = ? AND course_id = ?", enrollment.StudentID, enrollment.CourseID).
			First(&existing).Error
		if err == nil {
			enrollment.Progress = existing.Progress
			enrollment.XPEarned = existing.XPEarned
			return tx.Save(&enrollment).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		// keep the profile's course set in sync
		var student models.Student
		if err := tx.Where("id = ?", enrollment.StudentID).First(&student).Error; err != nil {
			return nil
		}
		student.EnrolledCourses = append(student.EnrolledCourses, enrollment.CourseID)
		return tx.Save(&student).Error
	})
	return enrollment, wrap("enrollStudent", err)
}

// UpdateProgress stores the given value and, at 100, awards the course's
// reward points to the student. The award is at-least-once: calling this
// again with 100 awards again. That matches the live backends and is
// documented as a known limitation.
func (a *DBAdapter) UpdateProgress(ctx context.Context, studentID, courseID string, progress int) (models.Enrollment, error) {
	var enrollment models.Enrollment
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("student_id = ? AND course_id = ?", studentID, courseID).
			First(&enrollment).Error
		if err != nil {
			return err
		}
		enrollment.Progress = progress
		if progress >= 100 {
			var course models.Course
			if err := tx.Where("id = ?", courseID).First(&course).Error; err == nil {
				enrollment.XPEarned = course.RewardPoints
				if err := tx.Model(&models.Student{}).Where("id = ?", studentID).
					Update("points", gorm.Expr("points + ?", course.RewardPoints)).Error; err != nil {
					return err
				}
			}
		}
		return tx.Save(&enrollment).Error
	})
	return enrollment, wrap("updateProgress", err)
}

func (a *DBAdapter) Leaderboard(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	err := a.db.WithContext(ctx).Order("points desc").Limit(10).Find(&students).Error
	if err != nil {
		return nil, wrap("getLeaderboard", err)
	}
	for i := range students {
		students[i].Rank = i + 1
	}
	return students, nil
}

func (a *DBAdapter) AdminStats(ctx context.Context) (models.AdminStats, error) {
	db := a.db.WithContext(ctx)
	var stats models.AdminStats

	var courses []models.Course
	if err := db.Order("created_at asc").Find(&courses).Error; err != nil {
		return stats, wrap("getAdminStats", err)
	}
	var totalStudents, totalEnrollments int64
	if err := db.Model(&models.Student{}).Count(&totalStudents).Error; err != nil {
		return stats, wrap("getAdminStats", err)
	}
	if err := db.Model(&models.Enrollment{}).Count(&totalEnrollments).Error; err != nil {
		return stats, wrap("getAdminStats", err)
	}

	stats.TotalCourses = len(courses)
	stats.TotalStudents = int(totalStudents)
	stats.TotalEnrollments = int(totalEnrollments)
	stats.CoursePerformance = make([]models.CoursePerformance, 0, len(courses))
	for _, c := range courses {
		var enrolled, completed int64
		if err := db.Model(&models.Enrollment{}).Where("course_id = ?", c.ID).Count(&enrolled).Error; err != nil {
			return stats, wrap("getAdminStats", err)
		}
		if err := db.Model(&models.Enrollment{}).Where("course_id = ? AND progress >= 100", c.ID).Count(&completed).Error; err != nil {
			return stats, wrap("getAdminStats", err)
		}
		stats.CoursePerformance = append(stats.CoursePerformance, models.CoursePerformance{
			CourseID:       c.ID,
			Title:          c.Title,
			EnrolledCount:  int(enrolled),
			CompletedCount: int(completed),
		})
	}
	return stats, nil
}

func (a *DBAdapter) SocialPosts(ctx context.Context) ([]models.SocialPost, error) {
	var posts []models.SocialPost
	err := a.db.WithContext(ctx).Order("created_at desc").Find(&posts).Error
	return posts, wrap("getSocialPosts", err)
}

func (a *DBAdapter) Projects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := a.db.WithContext(ctx).Order("created_at desc").Find(&projects).Error
	return projects, wrap("getProjects", err)
}

func (a *DBAdapter) AddProject(ctx context.Context, project models.Project) (models.Project, error) {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.Status == "" {
		project.Status = models.ProjectIdea
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	err := a.db.WithContext(ctx).Create(&project).Error
	return project, wrap("addProject", err)
}

func (a *DBAdapter) LikeProject(ctx context.Context, id string) (models.Project, error) {
	var project models.Project
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Project{}).Where("id = ?", id).
			Update("likes", gorm.Expr("likes + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ?", id).First(&project).Error
	})
	return project, wrap("likeProject", err)
}

func (a *DBAdapter) Labs(ctx context.Context) ([]models.Lab, error) {
	var labs []models.Lab
	err := a.db.WithContext(ctx).Find(&labs).Error
	return labs, wrap("getLabs", err)
}

func (a *DBAdapter) Assets(ctx context.Context, labID string) ([]models.Asset, error) {
	var assets []models.Asset
	err := a.db.WithContext(ctx).Where("lab_id = ?", labID).Find(&assets).Error
	return assets, wrap("getAssets", err)
}

func (a *DBAdapter) DigitalAssets(ctx context.Context, labID string) ([]models.DigitalAsset, error) {
	var assets []models.DigitalAsset
	err := a.db.WithContext(ctx).Where("lab_id = ?", labID).Find(&assets).Error
	return assets, wrap("getDigitalAssets", err)
}

func (a *DBAdapter) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&models.Asset{}).Where("id = ?", booking.AssetID).
			Update("status", models.AssetInUse).Error
	})
	return booking, wrap("createBooking", err)
}

func (a *DBAdapter) ReportAssetIssue(ctx context.Context, assetID, _ string) error {
	res := a.db.WithContext(ctx).Model(&models.Asset{}).Where("id = ?", assetID).
		Update("status", models.AssetMaintenance)
	if res.Error != nil {
		return wrap("reportAssetIssue", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
