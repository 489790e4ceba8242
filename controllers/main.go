package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/granaflow/granaflow/controllers/helpers"
	"github.com/granaflow/granaflow/models"
	engine "github.com/granaflow/granaflow/server"
	"github.com/granaflow/granaflow/types"
)

var Registry *engine.SessionRegistry

func InitializeRegistry(registry *engine.SessionRegistry) {
	Registry = registry
}

// CurrentSession resolves the caller's engine session, attaching one on
// first use. Writes the error response itself and returns nil when the
// session cannot be established.
func CurrentSession(c *fiber.Ctx) *engine.Session {
	CurrentUser, ok := c.Locals("CurrentUser").(*models.Member)
	if !ok || CurrentUser == nil {
		c.Status(401).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_session"},
		})
		return nil
	}

	session, err := Registry.Ensure(CurrentUser)
	if err != nil {
		c.Status(errorStatus(err)).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
		return nil
	}

	return session
}

func errorStatus(err error) int {
	var validation *types.ValidationError
	var auth *types.AuthError
	var consistency *types.ConsistencyError

	switch {
	case errors.As(err, &validation):
		return 422
	case errors.As(err, &auth):
		return 401
	case errors.As(err, &consistency):
		return 409
	default:
		return 500
	}
}

func nowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

func renderError(c *fiber.Ctx, err error) error {
	var validation *types.ValidationError
	if errors.As(err, &validation) {
		return c.Status(422).JSON(helpers.Errors{Errors: validation.Fields})
	}

	return c.Status(errorStatus(err)).JSON(helpers.Errors{
		Errors: []string{err.Error()},
	})
}
