package repository

import (
	"time"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

// SampleTasks returns the demonstration tasks a fresh
// instance can be seeded with via WithTasks.
func SampleTasks() []models.Task {
	date := func(day int) time.Time {
		return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
	}

	return []models.Task{
		{
			ID:          "1",
			Title:       "Complete Project Proposal",
			Description: "Write and submit the project proposal document",
			Status:      models.StatusCompleted,
			CreatedAt:   date(15),
			UpdatedAt:   date(20),
		},
		{
			ID:          "2",
			Title:       "Review Code Changes",
			Description: "Review pull requests and provide feedback",
			Status:      models.StatusInProgress,
			CreatedAt:   date(18),
			UpdatedAt:   date(22),
		},
		{
			ID:          "3",
			Title:       "Plan Team Meeting",
			Description: "Schedule and prepare agenda for weekly team meeting",
			Status:      models.StatusPending,
			CreatedAt:   date(20),
			UpdatedAt:   date(20),
		},
	}
}
