package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/granaflow/granaflow/controllers/entities"
	"github.com/granaflow/granaflow/controllers/helpers"
	"github.com/granaflow/granaflow/controllers/queries"
	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/store"
)

// SetTimeRange switches the named filter window.
func SetTimeRange(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	var params queries.TimeRangeParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"view.invalid_time_range"},
		})
	}

	err_src := &helpers.Errors{}
	helpers.Validate(params, err_src)
	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	snapshot := session.Store.Apply(store.Action{
		Type:      store.ActionSetTimeRange,
		TimeRange: params.TimeRange,
	})

	return c.Status(200).JSON(entities.SnapshotToEntity(snapshot))
}

// SetCustomRange switches to a custom inclusive [start, end] window.
func SetCustomRange(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	var params queries.CustomRangeParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"view.invalid_range"},
		})
	}

	err_src := &helpers.Errors{}
	helpers.Validate(params, err_src)
	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	start, end := params.Bounds()

	snapshot := session.Store.Apply(store.Action{
		Type:        store.ActionSetCustomRange,
		CustomStart: &start,
		CustomEnd:   &end,
	})

	return c.Status(200).JSON(entities.SnapshotToEntity(snapshot))
}

func ToggleHideValues(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	snapshot := session.Store.Apply(store.Action{Type: store.ActionToggleHideValues})

	return c.Status(200).JSON(fiber.Map{"hide_values": snapshot.HideValues})
}

// Logout tears the engine session down; the realtime subscription dies
// with it.
func Logout(c *fiber.Ctx) error {
	CurrentUser, ok := c.Locals("CurrentUser").(*models.Member)
	if !ok || CurrentUser == nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_session"},
		})
	}

	Registry.Detach(CurrentUser.UID)

	return c.SendStatus(204)
}
