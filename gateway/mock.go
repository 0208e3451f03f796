package gateway

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"learnhub/models"
)

// MockProvider is the fixed fallback dataset. It satisfies BackendAdapter so
// a process with no backend configured runs entirely against it, and the
// gateway reuses its data getters when a live adapter call fails.
//
// Writes mutate in-memory state only; a process restart loses them. That is
// the intended non-durable optimistic-write policy, not a bug.
type MockProvider struct {
	mu   sync.RWMutex
	seed int64

	courses     []models.Course
	students    []models.Student
	enrollments []models.Enrollment
	projects    []models.Project
	posts       []models.SocialPost
	labs        []models.Lab
	assets      []models.Asset
	digital     []models.DigitalAsset
	bookings    []models.Booking
}

var _ BackendAdapter = (*MockProvider)(nil)

// NewMockProvider builds the provider with its hand-authored snapshot. The
// seed drives the admin-stats performance counters so their values are
// reproducible per configuration.
func NewMockProvider(seed int64) *MockProvider {
	return &MockProvider{
		seed:        seed,
		courses:     mockCourses(),
		students:    mockStudents(),
		enrollments: mockEnrollments(),
		projects:    mockProjects(),
		posts:       mockSocialPosts(),
		labs:        mockLabs(),
		assets:      mockAssets(),
		digital:     mockDigitalAssets(),
		bookings:    []models.Booking{},
	}
}

func (m *MockProvider) Name() string                 { return "mock" }
func (m *MockProvider) Ping(_ context.Context) error { return nil }

// ---- fixture snapshot ----

func mockCourses() []models.Course {
	return []models.Course{
		{
			ID:            "c1",
			Title:         "Python for Young Makers",
			Category:      models.CategoryCoding,
			DurationHours: 24,
			Description:   "Learn Python from scratch by building small games and automation scripts.",
			Instructor:    "Amina Yusuf",
			Level:         models.LevelBeginner,
			Thumbnail:     "/images/courses/python.jpg",
			VideoURL:      "https://videos.learnhub.io/c1/intro",
			Resources:     []string{"Python cheat sheet", "Starter project files"},
			LearningPoints: []string{
				"Variables, loops and functions",
				"Reading and writing files",
				"Building a text adventure game",
			},
			Curriculum: []models.CurriculumModule{
				{Title: "Getting Started", Lessons: []string{"Installing Python", "Your first script"}},
				{Title: "Core Concepts", Lessons: []string{"Variables", "Loops", "Functions"}},
			},
			RewardPoints: 100,
		},
		{
			ID:             "c2",
			Title:          "Arduino Essentials",
			Category:       models.CategoryElectronics,
			DurationHours:  16,
			Description:    "Wire up sensors, blink LEDs and build your first embedded circuits.",
			Instructor:     "Daniel Okoye",
			Level:          models.LevelBeginner,
			Thumbnail:      "/images/courses/arduino.jpg",
			Resources:      []string{"Component shopping list"},
			LearningPoints: []string{"Breadboard basics", "Digital and analog pins", "Reading sensor data"},
			RewardPoints:   80,
		},
		{
			ID:            "c3",
			Title:         "3D Printing Fundamentals",
			Category:      models.Category3DPrinting,
			DurationHours: 12,
			Description:   "From CAD model to finished print: slicing, materials and troubleshooting.",
			Instructor:    "Grace Mwangi",
			Level:         models.LevelIntermediate,
			Thumbnail:     "/images/courses/printing.jpg",
			Prerequisites: []string{"Basic computer skills"},
			RewardPoints:  60,
		},
		{
			ID:            "c4",
			Title:         "Autonomous Robots with ROS",
			Category:      models.CategoryRobotics,
			DurationHours: 40,
			Description:   "Build and program a line-following robot, then add sensors and autonomy.",
			Instructor:    "Samuel Kariuki",
			Level:         models.LevelAdvanced,
			Thumbnail:     "/images/courses/robotics.jpg",
			Prerequisites: []string{"Python for Young Makers", "Arduino Essentials"},
			RewardPoints:  150,
		},
	}
}

// The demo identity used by the social-login placeholder lives at s1.
func mockStudents() []models.Student {
	return []models.Student{
		{
			ID: "s1", Name: "Alex Demo", Email: DemoEmail,
			Avatar: "/images/avatars/alex.png", Role: models.RoleStudent,
			Points: 450, Rank: 3, EnrolledCourses: []string{"c1", "c2"},
			ProjectIDs: []string{"p1"},
		},
		{
			ID: "s2", Name: "Lindiwe Dube", Email: "lindiwe@learnhub.io",
			Avatar: "/images/avatars/lindiwe.png", Role: models.RoleStudent,
			Points: 820, Rank: 1, EnrolledCourses: []string{"c1", "c3", "c4"},
		},
		{
			ID: "s3", Name: "Tendai Moyo", Email: "tendai@learnhub.io",
			Avatar: "/images/avatars/tendai.png", Role: models.RoleStudent,
			Points: 640, Rank: 2, EnrolledCourses: []string{"c2"},
		},
		{
			ID: "s4", Name: "Fatima Bello", Email: "fatima@learnhub.io",
			Avatar: "/images/avatars/fatima.png", Role: models.RoleStudent,
			Points: 310, Rank: 4, EnrolledCourses: []string{"c3"},
		},
		{
			ID: "s5", Name: "Kwame Mensah", Email: "kwame@learnhub.io",
			Avatar: "/images/avatars/kwame.png", Role: models.RoleStudent,
			Points: 120, Rank: 5, EnrolledCourses: []string{},
		},
	}
}

func mockEnrollments() []models.Enrollment {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	return []models.Enrollment{
		{
			StudentID: "s1", CourseID: "c1", Progress: 50,
			PlannedHoursPerWeek: 6, StartDate: start,
			TargetCompletionDate: start.AddDate(0, 0, 28),
		},
		{
			StudentID: "s1", CourseID: "c2", Progress: 25,
			PlannedHoursPerWeek: 4, StartDate: start.AddDate(0, 0, 7),
			TargetCompletionDate: start.AddDate(0, 0, 35),
		},
		{
			StudentID: "s2", CourseID: "c1", Progress: 100,
			PlannedHoursPerWeek: 8, StartDate: start.AddDate(0, 0, -28),
			TargetCompletionDate: start, XPEarned: 100,
		},
	}
}

func mockProjects() []models.Project {
	return []models.Project{
		{
			ID: "p1", Title: "Smart Irrigation Controller",
			Description: "Arduino-based soil moisture monitor that waters the school garden automatically.",
			Category:    models.CategoryElectronics,
			Tags:        []string{"arduino", "sensors", "agriculture"},
			Thumbnail:   "/images/projects/irrigation.jpg",
			AuthorID:    "s1", AuthorName: "Alex Demo", AuthorAvatar: "/images/avatars/alex.png",
			Likes: 12, Status: models.ProjectPrototype,
			RepoURL:   "https://github.com/learnhub-demo/irrigation",
			CreatedAt: time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID: "p2", Title: "Braille Label Printer",
			Description: "3D-printed embosser that turns typed text into braille labels.",
			Category:    models.Category3DPrinting,
			Tags:        []string{"accessibility", "3d-printing"},
			Thumbnail:   "/images/projects/braille.jpg",
			AuthorID:    "s2", AuthorName: "Lindiwe Dube", AuthorAvatar: "/images/avatars/lindiwe.png",
			Likes: 27, Status: models.ProjectLaunched,
			DemoURL:   "https://braille.learnhub.io",
			CreatedAt: time.Date(2026, 1, 22, 14, 30, 0, 0, time.UTC),
		},
		{
			ID: "p3", Title: "Campus Recycling Tracker",
			Description: "Mobile-first dashboard gamifying recycling across campus bins.",
			Category:    models.CategoryCoding,
			Tags:        []string{"web", "sustainability"},
			Thumbnail:   "/images/projects/recycling.jpg",
			AuthorID:    "s3", AuthorName: "Tendai Moyo", AuthorAvatar: "/images/avatars/tendai.png",
			Likes: 5, Status: models.ProjectIdea,
			CreatedAt: time.Date(2026, 3, 2, 11, 15, 0, 0, time.UTC),
		},
	}
}

func mockSocialPosts() []models.SocialPost {
	return []models.SocialPost{
		{
			ID: "sp1", Source: models.SourceTwitter,
			Content: "Our robotics team just qualified for the national finals! 🤖",
			Likes:   214, Shares: 48, Tags: []string{"robotics", "competition"},
			CreatedAt: time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC),
		},
		{
			ID: "sp2", Source: models.SourceLinkedin,
			Content: "LearnHub alumni spotlight: Lindiwe's braille printer is now used in three schools.",
			Likes:   132, Shares: 21, Tags: []string{"alumni", "impact"},
			CreatedAt: time.Date(2026, 3, 10, 8, 45, 0, 0, time.UTC),
		},
		{
			ID: "sp3", Source: models.SourceTwitter,
			Content: "New 3D printing course drops next week. Seats are limited!",
			Likes:   87, Shares: 12, Tags: []string{"3dprinting", "courses"},
			CreatedAt: time.Date(2026, 3, 8, 12, 20, 0, 0, time.UTC),
		},
	}
}

func mockLabs() []models.Lab {
	return []models.Lab{
		{ID: "l1", Name: "Fabrication Lab", Type: "fabrication", Capacity: 12,
			Consumables: []string{"PLA filament", "Acrylic sheets", "Sandpaper"}},
		{ID: "l2", Name: "Electronics Lab", Type: "electronics", Capacity: 16,
			Consumables: []string{"Jumper wires", "Resistor kits", "Solder"}},
	}
}

func mockAssets() []models.Asset {
	return []models.Asset{
		{ID: "a1", LabID: "l1", Name: "Prusa MK4 3D Printer", Status: models.AssetAvailable, CertificationRequired: true},
		{ID: "a2", LabID: "l1", Name: "60W Laser Cutter", Status: models.AssetInUse, CertificationRequired: true},
		{ID: "a3", LabID: "l2", Name: "Oscilloscope", Status: models.AssetAvailable},
		{ID: "a4", LabID: "l2", Name: "Soldering Station", Status: models.AssetMaintenance},
	}
}

func mockDigitalAssets() []models.DigitalAsset {
	return []models.DigitalAsset{
		{ID: "d1", LabID: "l1", Name: "Laser Cutter Safety Guide", Type: "pdf", URL: "/files/laser-safety.pdf"},
		{ID: "d2", LabID: "l1", Name: "Calibration Cube Model", Type: "stl", URL: "/files/calibration-cube.stl"},
		{ID: "d3", LabID: "l2", Name: "Soldering 101 Slides", Type: "pdf", URL: "/files/soldering-101.pdf"},
	}
}

// ---- read data getters (shared with the gateway's fallback path) ----

func (m *MockProvider) CourseData() []models.Course {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Course(nil), m.courses...)
}

func (m *MockProvider) StudentData() []models.Student {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Student(nil), m.students...)
}

// ProfileData looks a profile up by email, fabricating one when no record
// matches. The second return reports the fabrication.
func (m *MockProvider) ProfileData(email string) (models.Student, bool) {
	m.mu.RLock()
	for _, s := range m.students {
		if s.Email == email {
			m.mu.RUnlock()
			return s, false
		}
	}
	m.mu.RUnlock()
	return newProfile(email), true
}

func (m *MockProvider) EnrollmentData(studentID string) []models.Enrollment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Enrollment{}
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out
}

func (m *MockProvider) LeaderboardData() []models.Student {
	students := m.StudentData()
	sort.SliceStable(students, func(i, j int) bool { return students[i].Points > students[j].Points })
	for i := range students {
		students[i].Rank = i + 1
	}
	return students
}

// AdminStatsData derives totals from the snapshot. Performance counters come
// from a generator re-seeded per call, so repeated calls agree exactly.
func (m *MockProvider) AdminStatsData() models.AdminStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rng := rand.New(rand.NewSource(m.seed))
	stats := models.AdminStats{
		TotalCourses:      len(m.courses),
		TotalStudents:     len(m.students),
		TotalEnrollments:  len(m.enrollments),
		CoursePerformance: make([]models.CoursePerformance, 0, len(m.courses)),
	}
	for _, c := range m.courses {
		enrolled := rng.Intn(40) + 10
		stats.CoursePerformance = append(stats.CoursePerformance, models.CoursePerformance{
			CourseID:       c.ID,
			Title:          c.Title,
			EnrolledCount:  enrolled,
			CompletedCount: rng.Intn(enrolled + 1),
		})
	}
	return stats
}

func (m *MockProvider) SocialPostData() []models.SocialPost {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.SocialPost(nil), m.posts...)
}

func (m *MockProvider) ProjectData() []models.Project {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Project(nil), m.projects...)
}

func (m *MockProvider) LabData() []models.Lab {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Lab(nil), m.labs...)
}

func (m *MockProvider) AssetData(labID string) []models.Asset {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Asset{}
	for _, a := range m.assets {
		if a.LabID == labID {
			out = append(out, a)
		}
	}
	return out
}

func (m *MockProvider) DigitalAssetData(labID string) []models.DigitalAsset {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.DigitalAsset{}
	for _, d := range m.digital {
		if d.LabID == labID {
			out = append(out, d)
		}
	}
	return out
}

// ---- BackendAdapter implementation ----

func (m *MockProvider) Courses(_ context.Context) ([]models.Course, error) {
	return m.CourseData(), nil
}

func (m *MockProvider) AddCourse(_ context.Context, course models.Course) (models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	m.courses = append(m.courses, course)
	return course, nil
}

func (m *MockProvider) DeleteCourse(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.courses {
		if c.ID == id {
			m.courses = append(m.courses[:i], m.courses[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MockProvider) StudentByEmail(_ context.Context, email string) (models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.students {
		if s.Email == email {
			return s, nil
		}
	}
	return models.Student{}, ErrNotFound
}

func (m *MockProvider) CreateStudent(_ context.Context, student models.Student) (models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	if student.Role == "" {
		student.Role = models.RoleStudent
	}
	if student.EnrolledCourses == nil {
		student.EnrolledCourses = []string{}
	}
	m.students = append(m.students, student)
	return student, nil
}

func (m *MockProvider) UpdateAvatar(_ context.Context, studentID, avatar string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.students {
		if m.students[i].ID == studentID {
			m.students[i].Avatar = avatar
			return nil
		}
	}
	return ErrNotFound
}

func (m *MockProvider) Enrollments(_ context.Context, studentID string) ([]models.Enrollment, error) {
	return m.EnrollmentData(studentID), nil
}

func (m *MockProvider) UpsertEnrollment(_ context.Context, enrollment models.Enrollment) (models.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.enrollments {
		if e.StudentID == enrollment.StudentID && e.CourseID == enrollment.CourseID {
			// plan fields win, progress survives the upsert
			enrollment.Progress = e.Progress
			enrollment.XPEarned = e.XPEarned
			m.enrollments[i] = enrollment
			return enrollment, nil
		}
	}
	m.enrollments = append(m.enrollments, enrollment)
	for i := range m.students {
		if m.students[i].ID == enrollment.StudentID {
			m.students[i].EnrolledCourses = append(m.students[i].EnrolledCourses, enrollment.CourseID)
		}
	}
	return enrollment, nil
}

func (m *MockProvider) UpdateProgress(_ context.Context, studentID, courseID string, progress int) (models.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.enrollments {
		e := &m.enrollments[i]
		if e.StudentID != studentID || e.CourseID != courseID {
			continue
		}
		e.Progress = progress
		if progress >= 100 {
			// at-least-once award, matching the live backends
			reward := 0
			for _, c := range m.courses {
				if c.ID == courseID {
					reward = c.RewardPoints
					break
				}
			}
			e.XPEarned = reward
			for j := range m.students {
				if m.students[j].ID == studentID {
					m.students[j].Points += reward
				}
			}
		}
		return *e, nil
	}
	return models.Enrollment{}, ErrNotFound
}

func (m *MockProvider) Leaderboard(_ context.Context) ([]models.Student, error) {
	return m.LeaderboardData(), nil
}

func (m *MockProvider) AdminStats(_ context.Context) (models.AdminStats, error) {
	return m.AdminStatsData(), nil
}

func (m *MockProvider) SocialPosts(_ context.Context) ([]models.SocialPost, error) {
	return m.SocialPostData(), nil
}

func (m *MockProvider) Projects(_ context.Context) ([]models.Project, error) {
	return m.ProjectData(), nil
}

func (m *MockProvider) AddProject(_ context.Context, project models.Project) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.Status == "" {
		project.Status = models.ProjectIdea
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	m.projects = append(m.projects, project)
	for i := range m.students {
		if m.students[i].ID == project.AuthorID {
			m.students[i].ProjectIDs = append(m.students[i].ProjectIDs, project.ID)
		}
	}
	return project, nil
}

func (m *MockProvider) LikeProject(_ context.Context, id string) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects[i].Likes++
			return m.projects[i], nil
		}
	}
	return models.Project{}, ErrNotFound
}

func (m *MockProvider) Labs(_ context.Context) ([]models.Lab, error) {
	return m.LabData(), nil
}

func (m *MockProvider) Assets(_ context.Context, labID string) ([]models.Asset, error) {
	return m.AssetData(labID), nil
}

func (m *MockProvider) DigitalAssets(_ context.Context, labID string) ([]models.DigitalAsset, error) {
	return m.DigitalAssetData(labID), nil
}

func (m *MockProvider) CreateBooking(_ context.Context, booking models.Booking) (models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	m.bookings = append(m.bookings, booking)
	for i := range m.assets {
		if m.assets[i].ID == booking.AssetID {
			m.assets[i].Status = models.AssetInUse
		}
	}
	return booking, nil
}

func (m *MockProvider) ReportAssetIssue(_ context.Context, assetID, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.assets {
		if m.assets[i].ID == assetID {
			m.assets[i].Status = models.AssetMaintenance
			return nil
		}
	}
	return ErrNotFound
}
