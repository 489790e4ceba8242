package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/granaflow/granaflow/aggregation"
	"github.com/granaflow/granaflow/controllers/entities"
	"github.com/granaflow/granaflow/controllers/helpers"
	"github.com/granaflow/granaflow/controllers/queries"
	"github.com/granaflow/granaflow/gateway"
	"github.com/granaflow/granaflow/types"
)

// GetSnapshot serves the session's current state, filtered list included.
func GetSnapshot(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	return c.Status(200).JSON(entities.SnapshotToEntity(session.Store.Snapshot()))
}

func GetTransactions(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	snapshot := session.Store.Snapshot()

	return c.Status(200).JSON(entities.TransactionsToEntity(snapshot.FilteredTransactions, snapshot.HideValues))
}

func CreateTransaction(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	var params gateway.TransactionParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"transaction.invalid_payload"},
		})
	}

	transaction, err := session.Gateway.AddTransaction(params)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(201).JSON(entities.TransactionToEntity(*transaction, false))
}

func UpdateTransaction(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"transaction.invalid_id"},
		})
	}

	var params gateway.TransactionParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"transaction.invalid_payload"},
		})
	}

	scope := c.Query("scope", types.ScopeCurrent)
	if scope != types.ScopeCurrent && scope != types.ScopeFuture && scope != types.ScopeAll {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"transaction.invalid_scope"},
		})
	}

	transaction, err := session.Gateway.UpdateTransaction(id, params, scope)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(200).JSON(entities.TransactionToEntity(*transaction, false))
}

func DeleteTransaction(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"transaction.invalid_id"},
		})
	}

	scope := c.Query("scope", types.DeleteSingle)
	if scope != types.DeleteSingle && scope != types.DeleteAll {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"transaction.invalid_scope"},
		})
	}

	if err := session.Gateway.DeleteTransaction(id, scope); err != nil {
		return renderError(c, err)
	}

	return c.SendStatus(204)
}

// GetFinancials serves the month rollup, current month by default.
func GetFinancials(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	var params queries.MonthParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"financials.invalid_month"},
		})
	}

	err_src := &helpers.Errors{}
	helpers.Validate(params, err_src)
	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	loc := session.Store.Location()
	snapshot := session.Store.Snapshot()
	month := params.Resolve(nowIn(loc), loc)

	financials := aggregation.ComputeMonthlyFinancials(snapshot.Transactions, month, loc)

	return c.Status(200).JSON(fiber.Map{
		"income":              financials.Income,
		"expenses":            financials.Expenses,
		"accumulated_balance": financials.AccumulatedBalance,
		"month_transactions":  entities.TransactionsToEntity(financials.MonthTransactions, snapshot.HideValues),
	})
}

// RefreshSnapshot forces a full refetch of every collection.
func RefreshSnapshot(c *fiber.Ctx) error {
	session := CurrentSession(c)
	if session == nil {
		return nil
	}

	if err := session.Adapter.Refresh(); err != nil {
		return renderError(c, err)
	}

	return c.Status(200).JSON(entities.SnapshotToEntity(session.Store.Snapshot()))
}
