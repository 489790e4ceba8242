package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/granaflow/granaflow/aggregation"
	"github.com/granaflow/granaflow/controllers/entities"
)

// GetGoals serves every goal with its progress computed from the current
// snapshot.
func GetGoals(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	snapshot := session.Store.Snapshot()
	loc := session.Store.Location()

	result := make([]entities.GoalEntity, 0, len(snapshot.Goals))
	for _, goal := range snapshot.Goals {
		progress := aggregation.ComputeGoalProgress(goal, snapshot.Transactions, snapshot.Categories, loc)
		result = append(result, entities.GoalToEntity(goal, progress, snapshot.HideValues))
	}

	return c.Status(200).JSON(result)
}
