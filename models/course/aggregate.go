package course

import "math"

// CourseStat is the per-course rollup shown on the instructor analytics page.
type CourseStat struct {
	CourseID       uint   `json:"course_id"`
	Title          string `json:"title"`
	Enrollments    int    `json:"enrollments"`
	CompletionRate int    `json:"completion_rate"`
}

// CompletionPercent returns round-half-up(100 * completed / total) as an
// integer percentage. A course with no lessons always reports 0, never an
// undefined value.
func CompletionPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// MeanPercent returns the rounded mean of integer percentages. An empty
// input reports 0.
func MeanPercent(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(values))))
}

// CompletedLessonSet partitions progress rows into per-user sets of completed
// lesson ids. Rows with Completed == false are ignored.
func CompletedLessonSet(progress []LessonProgress) map[uint]map[uint]bool {
	set := make(map[uint]map[uint]bool)
	for _, p := range progress {
		if !p.Completed {
			continue
		}
		if set[p.UserID] == nil {
			set[p.UserID] = make(map[uint]bool)
		}
		set[p.UserID][p.LessonID] = true
	}
	return set
}

// BuildCourseStats computes per-course enrollment counts and completion
// rates from already-loaded rows. Pure: callers batch-fetch everything up
// front, so there is no per-row querying in here.
//
// CompletionRate for a course is the rounded mean of each enrolled student's
// completion percentage. A course with zero enrollments or zero lessons
// reports 0.
func BuildCourseStats(courses []Course, enrollments []Enrollment, lessons []Lesson, progress []LessonProgress) []CourseStat {
	lessonsByCourse := make(map[uint][]uint)
	for _, l := range lessons {
		lessonsByCourse[l.CourseID] = append(lessonsByCourse[l.CourseID], l.ID)
	}

	enrollmentsByCourse := make(map[uint][]uint)
	for _, e := range enrollments {
		enrollmentsByCourse[e.CourseID] = append(enrollmentsByCourse[e.CourseID], e.UserID)
	}

	completedByUser := CompletedLessonSet(progress)

	stats := make([]CourseStat, len(courses))
	for i, c := range courses {
		courseLessons := lessonsByCourse[c.ID]
		students := enrollmentsByCourse[c.ID]

		perStudent := make([]int, 0, len(students))
		for _, userID := range students {
			completed := 0
			for _, lessonID := range courseLessons {
				if completedByUser[userID][lessonID] {
					completed++
				}
			}
			perStudent = append(perStudent, CompletionPercent(completed, len(courseLessons)))
		}

		stats[i] = CourseStat{
			CourseID:       c.ID,
			Title:          c.Title,
			Enrollments:    len(students),
			CompletionRate: MeanPercent(perStudent),
		}
	}
	return stats
}
