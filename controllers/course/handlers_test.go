package controllers_test

import (
	"bytes"
	"elimunova/config"
	controllers "elimunova/controllers/course"
	"elimunova/database"
	"elimunova/middleware"
	"elimunova/models"
	courseModels "elimunova/models/course"
	authRoutes "elimunova/routers/authRoutes"
	courseRoutes "elimunova/routers/courseRoutes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// One connection keeps the shared in-memory database alive and
	// serializes the dashboard's concurrent reads under sqlite.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&courseModels.Course{},
		&courseModels.Lesson{},
		&courseModels.Enrollment{},
		&courseModels.LessonProgress{},
		&courseModels.Certificate{},
	))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupInstructorRoutes(app)
	return app
}

func createUser(t *testing.T, name, email, role string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, Password: string(hashed)}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	require.NoError(t, database.Database.Db.Create(&models.UserRole{UserID: user.ID, Role: role}).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	require.NoError(t, err)
	return user, token
}

func createCourse(t *testing.T, instructorID uint, title string, lessonCount int) (courseModels.Course, []courseModels.Lesson) {
	t.Helper()

	course := courseModels.Course{
		Title:        title,
		Description:  "A test course",
		Category:     "Technology",
		Level:        "Beginner",
		Duration:     "4 weeks",
		InstructorID: instructorID,
		IsPublished:  true,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	lessons := make([]courseModels.Lesson, lessonCount)
	for i := range lessons {
		lessons[i] = courseModels.Lesson{
			CourseID:   course.ID,
			Title:      fmt.Sprintf("Lesson %d", i+1),
			OrderIndex: i + 1,
		}
		require.NoError(t, database.Database.Db.Create(&lessons[i]).Error)
	}
	return course, lessons
}

func enroll(t *testing.T, userID, courseID uint) {
	t.Helper()
	require.NoError(t, database.Database.Db.Create(&courseModels.Enrollment{UserID: userID, CourseID: courseID}).Error)
}

func completeLesson(t *testing.T, userID uint, lesson courseModels.Lesson) {
	t.Helper()
	now := time.Now()
	require.NoError(t, database.Database.Db.Create(&courseModels.LessonProgress{
		UserID:      userID,
		LessonID:    lesson.ID,
		CourseID:    lesson.CourseID,
		Completed:   true,
		CompletedAt: &now,
	}).Error)
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
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
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func TestSignupLoginAndMe(t *testing.T) {
	app := setupTestApp(t)

	signup := map[string]string{
		"name":     "Amina Hassan",
		"email":    "amina@example.com",
		"password": "password123",
		"role":     "student",
	}
	code, env := doRequest(t, app, http.MethodPost, "/auth/signup", "", signup)
	require.Equal(t, http.StatusCreated, code)

	var created struct {
		Role     string `json:"role"`
		Token    string `json:"token"`
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.RoleStudent, created.Role)
	assert.Equal(t, "/student-dashboard", created.Redirect)
	assert.NotEmpty(t, created.Token)

	// Duplicate email is rejected
	code, _ = doRequest(t, app, http.MethodPost, "/auth/signup", "", signup)
	assert.Equal(t, http.StatusConflict, code)

	// Wrong password is rejected
	code, _ = doRequest(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "amina@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	// Correct login returns the role-dependent redirect
	code, env = doRequest(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "amina@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, code)
	var loggedIn struct {
		Role     string `json:"role"`
		Token    string `json:"token"`
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &loggedIn))
	assert.Equal(t, "/student-dashboard", loggedIn.Redirect)

	// Me merges profile and role
	code, env = doRequest(t, app, http.MethodGet, "/auth/me", loggedIn.Token, nil)
	require.Equal(t, http.StatusOK, code)
	var me struct {
		User models.User `json:"user"`
		Role string      `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "Amina Hassan", me.User.Name)
	assert.Equal(t, models.RoleStudent, me.Role)
}

func TestInstructorSignupRedirect(t *testing.T) {
	app := setupTestApp(t)

	code, env := doRequest(t, app, http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     "Dr. Sarah Johnson",
		"email":    "sarah@example.com",
		"password": "password123",
		"role":     "instructor",
	})
	require.Equal(t, http.StatusCreated, code)

	var created struct {
		Role     string `json:"role"`
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.RoleInstructor, created.Role)
	assert.Equal(t, "/instructor-dashboard", created.Redirect)
}

func TestSignupConflictFromUniqueIndex(t *testing.T) {
	app := setupTestApp(t)

	// A soft-deleted account slips past the lookup but still occupies the
	// unique email index, exercising the same path a concurrent duplicate
	// signup takes: the insert itself must surface as a conflict, not a 500.
	ghost := models.User{Name: "Old Account", Email: "amina@example.com", Password: "x", IsDeleted: true}
	require.NoError(t, database.Database.Db.Create(&ghost).Error)

	code, env := doRequest(t, app, http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     "Amina Hassan",
		"email":    "amina@example.com",
		"password": "password123",
		"role":     "student",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Contains(t, env.Message, "already exists")
}

func TestRejectsNonNumericTokenClaim(t *testing.T) {
	app := setupTestApp(t)

	// A token signed with the shared secret but carrying a bad userId claim
	// must be rejected, not crash the handler.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "not-a-number",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)

	code, env := doRequest(t, app, http.MethodGet, "/auth/me", signed, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid token payload", env.Message)
}

func TestAccessGuard(t *testing.T) {
	app := setupTestApp(t)

	_, studentToken := createUser(t, "Student", "student@example.com", models.RoleStudent)
	_, instructorToken := createUser(t, "Instructor", "instructor@example.com", models.RoleInstructor)

	// Unauthenticated is always denied, whatever the required role
	code, _ := doRequest(t, app, http.MethodGet, "/student/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	code, _ = doRequest(t, app, http.MethodGet, "/instructor/analytics", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	// Wrong role is denied
	code, env := doRequest(t, app, http.MethodGet, "/instructor/analytics", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Contains(t, env.Message, "Access denied")
	code, _ = doRequest(t, app, http.MethodGet, "/student/dashboard", instructorToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	// Matching role is allowed
	code, _ = doRequest(t, app, http.MethodGet, "/instructor/analytics", instructorToken, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, app, http.MethodGet, "/student/dashboard", studentToken, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestGuardDeniesUserWithoutRoleRecord(t *testing.T) {
	app := setupTestApp(t)

	// Authenticated identity whose role record is missing: the role is
	// unknown, and unknown is a deny.
	user := models.User{Name: "No Role", Email: "norole@example.com", Password: "x"}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	require.NoError(t, err)

	code, _ := doRequest(t, app, http.MethodGet, "/student/dashboard", token, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestEnrollmentUniqueness(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "Instructor", "instructor@example.com", models.RoleInstructor)
	student, studentToken := createUser(t, "Student", "student@example.com", models.RoleStudent)
	course, _ := createCourse(t, instructor.ID, "Web Development", 2)

	path := fmt.Sprintf("/course/%d/enroll", course.ID)

	code, _ := doRequest(t, app, http.MethodPost, path, studentToken, nil)
	require.Equal(t, http.StatusOK, code)

	// Second enroll is surfaced as a conflict, not silently absorbed
	code, env := doRequest(t, app, http.MethodPost, path, studentToken, nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Contains(t, env.Message, "already enrolled")

	var count int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count, "exactly one enrollment record must exist")
}

func TestEnrollRejectsInstructor(t *testing.T) {
	app := setupTestApp(t)

	instructor, instructorToken := createUser(t, "Instructor", "instructor@example.com", models.RoleInstructor)
	course, _ := createCourse(t, instructor.ID, "Web Development", 1)

	code, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID), instructorToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestMarkLessonCompleteAndProgress(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "Instructor", "instructor@example.com", models.RoleInstructor)
	student, studentToken := createUser(t, "Student", "student@example.com", models.RoleStudent)
	course, lessons := createCourse(t, instructor.ID, "Intro to Programming", 2)
	otherCourse, otherLessons := createCourse(t, instructor.ID, "Other Course", 1)
	enroll(t, student.ID, course.ID)

	completePath := func(lessonID uint) string {
		return fmt.Sprintf("/course/%d/lesson/%d/complete", course.ID, lessonID)
	}

	code, env := doRequest(t, app, http.MethodPost, completePath(lessons[0].ID), studentToken, nil)
	require.Equal(t, http.StatusOK, code)
	var result struct {
		CourseProgress   int `json:"course_progress"`
		CompletedLessons int `json:"completed_lessons"`
		TotalLessons     int `json:"total_lessons"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 50, result.CourseProgress)
	assert.Equal(t, 1, result.CompletedLessons)
	assert.Equal(t, 2, result.TotalLessons)

	// Duplicate completion is rejected
	code, _ = doRequest(t, app, http.MethodPost, completePath(lessons[0].ID), studentToken, nil)
	assert.Equal(t, http.StatusConflict, code)

	// A lesson from another course is not found under this course
	code, _ = doRequest(t, app, http.MethodPost, completePath(otherLessons[0].ID), studentToken, nil)
	assert.Equal(t, http.StatusNotFound, code)

	// Completing the rest reaches 100
	code, env = doRequest(t, app, http.MethodPost, completePath(lessons[1].ID), studentToken, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 100, result.CourseProgress)

	// Progress endpoint recomputes the same value
	code, env = doRequest(t, app, http.MethodGet, fmt.Sprintf("/course/%d/progress", course.ID), studentToken, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 100, result.CourseProgress)

	// Not enrolled in the other course
	code, _ = doRequest(t, app, http.MethodGet, fmt.Sprintf("/course/%d/progress", otherCourse.ID), studentToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestStudentDashboardAggregation(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "Instructor", "instructor@example.com", models.RoleInstructor)
	student, studentToken := createUser(t, "Student", "student@example.com", models.RoleStudent)

	// Course A: 3 lessons, 2 completed -> 67. Course B: no lessons -> 0.
	// Overall: round((67+0)/2) = 34.
	courseA, lessonsA := createCourse(t, instructor.ID, "Course A", 3)
	courseB, _ := createCourse(t, instructor.ID, "Course B", 0)
	enroll(t, student.ID, courseA.ID)
	enroll(t, student.ID, courseB.ID)
	completeLesson(t, student.ID, lessonsA[0])
	completeLesson(t, student.ID, lessonsA[1])

	code, env := doRequest(t, app, http.MethodGet, "/student/dashboard", studentToken, nil)
	require.Equal(t, http.StatusOK, code)

	var dashboard struct {
		Courses []struct {
			Course           courseModels.Course `json:"course"`
			CourseProgress   int                 `json:"course_progress"`
			CompletedLessons int                 `json:"completed_lessons"`
			TotalLessons     int                 `json:"total_lessons"`
		} `json:"courses"`
		TotalCourses    int `json:"total_courses"`
		OverallProgress int `json:"overall_progress"`
		FailedCourses   int `json:"failed_courses"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &dashboard))

	require.Len(t, dashboard.Courses, 2)
	assert.Equal(t, 2, dashboard.TotalCourses)
	assert.Equal(t, 0, dashboard.FailedCourses)
	assert.Equal(t, 67, dashboard.Courses[0].CourseProgress)
	assert.Equal(t, 0, dashboard.Courses[1].CourseProgress)
	assert.Equal(t, 34, dashboard.OverallProgress)
}

func TestStudentDashboardIsolatesFailedCourse(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "Instructor", "instructor@example.com", models.RoleInstructor)
	student, studentToken := createUser(t, "Student", "student@example.com", models.RoleStudent)

	courseA, lessonsA := createCourse(t, instructor.ID, "Course A", 2)
	courseB, _ := createCourse(t, instructor.ID, "Course B", 1)
	enroll(t, student.ID, courseA.ID)
	enroll(t, student.ID, courseB.ID)
	completeLesson(t, student.ID, lessonsA[0])

	// Course B disappears under a live enrollment; its row must be skipped
	// and counted while course A still computes.
	require.NoError(t, database.Database.Db.Model(&courseModels.Course{}).
		Where("id = ?", courseB.ID).Update("is_deleted", true).Error)

	code, env := doRequest(t, app, http.MethodGet, "/student/dashboard", studentToken, nil)
	require.Equal(t, http.StatusOK, code)

	var dashboard struct {
		Courses []struct {
			Course         courseModels.Course `json:"course"`
			CourseProgress int                 `json:"course_progress"`
		} `json:"courses"`
		TotalCourses    int `json:"total_courses"`
		OverallProgress int `json:"overall_progress"`
		FailedCourses   int `json:"failed_courses"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &dashboard))

	require.Len(t, dashboard.Courses, 1)
	assert.Equal(t, courseA.ID, dashboard.Courses[0].Course.ID)
	assert.Equal(t, 50, dashboard.Courses[0].CourseProgress)
	assert.Equal(t, 1, dashboard.TotalCourses)
	assert.Equal(t, 1, dashboard.FailedCourses)
	assert.Equal(t, 50, dashboard.OverallProgress, "the mean covers only courses that computed")
}

func TestStudentDashboardEmpty(t *testing.T) {
	app := setupTestApp(t)

	_, studentToken := createUser(t, "Student", "student@example.com", models.RoleStudent)

	code, env := doRequest(t, app, http.MethodGet, "/student/dashboard", studentToken, nil)
	require.Equal(t, http.StatusOK, code)

	var dashboard struct {
		TotalCourses    int `json:"total_courses"`
		OverallProgress int `json:"overall_progress"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &dashboard))
	assert.Equal(t, 0, dashboard.TotalCourses)
	assert.Equal(t, 0, dashboard.OverallProgress, "zero enrollments reports 0, never NaN")
}

func TestInstructorAnalytics(t *testing.T) {
	app := setupTestApp(t)

	instructor, instructorToken := createUser(t, "Instructor", "instructor@example.com", models.RoleInstructor)
	studentA, _ := createUser(t, "Student A", "a@example.com", models.RoleStudent)
	studentB, _ := createUser(t, "Student B", "b@example.com", models.RoleStudent)

	// Course 1: no enrollments -> rate 0. Course 2: two students at 50%
	// and 100% -> rate 75.
	createCourse(t, instructor.ID, "Untouched Course", 2)
	course2, lessons2 := createCourse(t, instructor.ID, "Popular Course", 2)
	enroll(t, studentA.ID, course2.ID)
	enroll(t, studentB.ID, course2.ID)
	completeLesson(t, studentA.ID, lessons2[0])
	completeLesson(t, studentB.ID, lessons2[0])
	completeLesson(t, studentB.ID, lessons2[1])

	code, env := doRequest(t, app, http.MethodGet, "/instructor/analytics", instructorToken, nil)
	require.Equal(t, http.StatusOK, code)

	var analytics struct {
		TotalCourses     int                      `json:"total_courses"`
		TotalStudents    int                      `json:"total_students"`
		TotalEnrollments int                      `json:"total_enrollments"`
		AverageProgress  int                      `json:"average_progress"`
		CourseStats      []courseModels.CourseStat `json:"course_stats"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &analytics))

	assert.Equal(t, 2, analytics.TotalCourses)
	assert.Equal(t, 2, analytics.TotalStudents)
	assert.Equal(t, 2, analytics.TotalEnrollments)
	require.Len(t, analytics.CourseStats, 2)
	assert.Equal(t, 0, analytics.CourseStats[0].CompletionRate)
	assert.Equal(t, 75, analytics.CourseStats[1].CompletionRate)
	assert.Equal(t, 38, analytics.AverageProgress)
}

func TestInstructorAnalyticsEmpty(t *testing.T) {
	app := setupTestApp(t)

	_, instructorToken := createUser(t, "Instructor", "instructor@example.com", models.RoleInstructor)

	code, env := doRequest(t, app, http.MethodGet, "/instructor/analytics", instructorToken, nil)
	require.Equal(t, http.StatusOK, code)

	var analytics struct {
		TotalCourses    int `json:"total_courses"`
		AverageProgress int `json:"average_progress"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &analytics))
	assert.Equal(t, 0, analytics.TotalCourses)
	assert.Equal(t, 0, analytics.AverageProgress)
}

func TestCourseCatalog(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "Dr. Sarah Johnson", "sarah@example.com", models.RoleInstructor)
	student, studentToken := createUser(t, "Student", "student@example.com", models.RoleStudent)

	courseA, _ := createCourse(t, instructor.ID, "Intro to Programming", 3)
	createCourse(t, instructor.ID, "Digital Marketing", 2)
	enroll(t, student.ID, courseA.ID)

	code, env := doRequest(t, app, http.MethodGet, "/course/list", studentToken, nil)
	require.Equal(t, http.StatusOK, code)

	var catalog struct {
		Courses []controllers.CourseListItem `json:"courses"`
		Total   int                          `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &catalog))

	require.Equal(t, 2, catalog.Total)
	assert.Equal(t, "Intro to Programming", catalog.Courses[0].Title)
	assert.Equal(t, "Dr. Sarah Johnson", catalog.Courses[0].InstructorName)
	assert.Equal(t, 3, catalog.Courses[0].LessonCount)
	assert.True(t, catalog.Courses[0].IsEnrolled)
	assert.False(t, catalog.Courses[1].IsEnrolled)

	// Search filters in memory
	code, env = doRequest(t, app, http.MethodGet, "/course/list?search=marketing", studentToken, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &catalog))
	require.Equal(t, 1, catalog.Total)
	assert.Equal(t, "Digital Marketing", catalog.Courses[0].Title)
}

func TestCertificateIssuance(t *testing.T) {
	app := setupTestApp(t)

	instructor, _ := createUser(t, "Instructor", "instructor@example.com", models.RoleInstructor)
	student, studentToken := createUser(t, "Student", "student@example.com", models.RoleStudent)
	course, lessons := createCourse(t, instructor.ID, "Short Course", 2)
	enroll(t, student.ID, course.ID)

	path := fmt.Sprintf("/course/%d/certificate", course.ID)

	// Incomplete course cannot mint a certificate
	completeLesson(t, student.ID, lessons[0])
	code, _ := doRequest(t, app, http.MethodPost, path, studentToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	completeLesson(t, student.ID, lessons[1])
	code, env := doRequest(t, app, http.MethodPost, path, studentToken, nil)
	require.Equal(t, http.StatusOK, code)

	var certificate courseModels.Certificate
	require.NoError(t, json.Unmarshal(env.Data, &certificate))
	assert.NotEmpty(t, certificate.SerialNumber)

	// Second request is a conflict
	code, _ = doRequest(t, app, http.MethodPost, path, studentToken, nil)
	assert.Equal(t, http.StatusConflict, code)
}
