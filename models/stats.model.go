package models

// CoursePerformance aggregates enrollment figures for one course
type CoursePerformance struct {
	CourseID       string `json:"courseId"`
	Title          string `json:"title"`
	EnrolledCount  int    `json:"enrolledCount"`
	CompletedCount int    `json:"completedCount"`
}

// AdminStats is a derived view, recomputed per request and never stored
type AdminStats struct {
	TotalCourses      int                 `json:"totalCourses"`
	TotalStudents     int                 `json:"totalStudents"`
	TotalEnrollments  int                 `json:"totalEnrollments"`
	CoursePerformance []CoursePerformance `json:"coursePerformance"`
}
