package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/granaflow/granaflow/controllers/entities"
	"github.com/granaflow/granaflow/controllers/helpers"
	"github.com/granaflow/granaflow/gateway"
	"github.com/granaflow/granaflow/types"
)

func GetScheduledTransactions(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	snapshot := session.Store.Snapshot()

	return c.Status(200).JSON(entities.ScheduledListToEntity(snapshot.ScheduledTransactions, snapshot.HideValues))
}

func CreateScheduledTransaction(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	var params gateway.ScheduledParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"scheduled_transaction.invalid_payload"},
		})
	}

	scheduled, err := session.Gateway.AddScheduledTransaction(params)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(201).JSON(entities.ScheduledToEntity(*scheduled, false))
}

func UpdateScheduledTransaction(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"scheduled_transaction.invalid_id"},
		})
	}

	var params gateway.ScheduledParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"scheduled_transaction.invalid_payload"},
		})
	}

	scope := c.Query("scope", types.ScopeCurrent)
	if scope != types.ScopeCurrent && scope != types.ScopeFuture && scope != types.ScopeAll {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"scheduled_transaction.invalid_scope"},
		})
	}

	scheduled, err := session.Gateway.UpdateScheduledTransaction(id, params, scope)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(200).JSON(entities.ScheduledToEntity(*scheduled, false))
}

func DeleteScheduledTransaction(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"scheduled_transaction.invalid_id"},
		})
	}

	scope := c.Query("scope", types.DeleteSingle)
	if scope != types.DeleteSingle && scope != types.DeleteAll {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"scheduled_transaction.invalid_scope"},
		})
	}

	if err := session.Gateway.DeleteScheduledTransaction(id, scope); err != nil {
		return renderError(c, err)
	}

	return c.SendStatus(204)
}

// NotifyReminder marks a reminder "avisado" and queues its notification
// event.
func NotifyReminder(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"scheduled_transaction.invalid_id"},
		})
	}

	if err := session.Gateway.MarkReminderNotified(id); err != nil {
		return renderError(c, err)
	}

	return c.SendStatus(204)
}
