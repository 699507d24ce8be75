package simulated

import (
	"fmt"

	"github.com/deadtood/appcore/domain"
	"golang.org/x/crypto/bcrypt"
)

// Demo credentials accepted by the simulated login.
const (
	SeedEmail    = "user@example.com"
	SeedPassword = "password123"
	SeedName     = "John Doe"
)

const seedTaskCount = 25

var seedCourses = []domain.Course{
	{ID: "c1", Name: "Calculus II", Code: "MATH201", Color: "#6C5CE7", Icon: domain.IconCalculator},
	{ID: "c2", Name: "Organic Chemistry", Code: "CHEM210", Color: "#00B894", Icon: domain.IconFlask},
	{ID: "c3", Name: "Classical Mechanics", Code: "PHYS150", Color: "#0984E3", Icon: domain.IconAtom},
	{ID: "c4", Name: "World Literature", Code: "LIT110", Color: "#E17055", Icon: domain.IconBook},
	{ID: "c5", Name: "Data Structures", Code: "CS240", Color: "#2D3436", Icon: domain.IconCode},
	{ID: "c6", Name: "Art History", Code: "ART130", Color: "#FD79A8", Icon: domain.IconPalette},
}

var seedTitles = []string{
	"Problem set", "Lab report", "Reading response", "Essay draft",
	"Project milestone", "Quiz preparation", "Group presentation",
}

var seedCategories = map[string]domain.TaskCategory{
	"c1": domain.CategoryMath,
	"c2": domain.CategoryChemistry,
	"c3": domain.CategoryPhysics,
	"c4": domain.CategoryLiterature,
}

func (s *store) seed() {
	now := s.nowTime()

	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on invalid cost, which is a constant here.
		panic(err)
	}
	s.accounts = map[string]*account{
		SeedEmail: {
			user: domain.User{
				ID:        "u1",
				Email:     SeedEmail,
				Name:      SeedName,
				CreatedAt: now,
				UpdatedAt: now,
			},
			passwordHash: string(hash),
		},
	}

	s.courses = make([]domain.Course, len(seedCourses))
	copy(s.courses, seedCourses)
	for i := range s.courses {
		s.courses[i].CreatedAt = now
		s.courses[i].UpdatedAt = now
	}

	priorities := []domain.Priority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow}
	s.tasks = make([]domain.Task, 0, seedTaskCount)
	for i := 0; i < seedTaskCount; i++ {
		course := s.courses[i%len(s.courses)]
		category, ok := seedCategories[course.ID]
		if !ok {
			category = domain.CategoryOther
		}

		// Spread due dates from five days overdue to well ahead, and
		// mark an early slice of them done.
		completed := i%4 == 0
		status := domain.StatusPending
		if completed {
			status = domain.StatusCompleted
		}

		s.tasks = append(s.tasks, domain.Task{
			ID:          fmt.Sprintf("t%d", i+1),
			Title:       fmt.Sprintf("%s %d", seedTitles[i%len(seedTitles)], i/len(seedTitles)+1),
			CourseID:    course.ID,
			CourseName:  course.Name,
			CourseCode:  course.Code,
			CourseColor: course.Color,
			CourseIcon:  course.Icon,
			DueDate:     now.AddDate(0, 0, i-5),
			DueTime:     "23:59",
			Priority:    priorities[i%len(priorities)],
			Status:      status,
			Category:    category,
			Completed:   completed,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	s.recountCourses()

	s.settings = domain.UserSettings{
		Notifications: true,
		Language:      "en",
		ReminderTime:  30,
	}
}
