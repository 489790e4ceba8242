package gateway

import (
	"github.com/granaflow/granaflow/config"
	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/recurrence"
	"github.com/granaflow/granaflow/store"
	"github.com/granaflow/granaflow/syncer"
	"github.com/granaflow/granaflow/types"
)

// AddTransaction validates, writes, re-reads the row with its category
// snapshot, dispatches the add and notifies the realtime channel. A goal
// link triggers a full goal recompute afterwards.
func (g *Gateway) AddTransaction(params TransactionParams) (*models.Transaction, error) {
	if err := g.requireSession(); err != nil {
		return nil, err
	}

	if fields := Validate(params); len(fields) > 0 {
		return nil, &types.ValidationError{Fields: fields}
	}

	transaction := params.BuildTransaction(g.Member)

	if transaction.Phone == "" && transaction.CreatorName != "" {
		transaction.Phone = g.ResolvePhone(transaction.CreatorName)
	}

	code, err := recurrence.AllocateReferenceCode(g.DB)
	if err != nil {
		return nil, err
	}
	transaction.ReferenceCode = &code

	if err := g.DB.Create(transaction).Error; err != nil {
		return nil, &types.RemoteError{Op: "insert transaction", Err: err}
	}

	fresh, err := models.FindTransaction(g.DB, g.Member.ID, transaction.ID)
	if err != nil {
		return nil, err
	}

	g.Store.Apply(store.Action{Type: store.ActionAddTransaction, Transaction: fresh})
	syncer.PublishChange(g.Member.ID, types.TableTransactions, types.EventInsert)

	if fresh.GoalID != nil {
		g.RecomputeGoals()
	}

	return fresh, nil
}

// UpdateTransaction applies the patch to the record, or to the resolved
// scope of its series. Series members are written one request per
// record; a partial failure is reported as a ConsistencyError and the
// members already written stay written.
func (g *Gateway) UpdateTransaction(id uint64, params TransactionParams, scope types.EditScope) (*models.Transaction, error) {
	if err := g.requireSession(); err != nil {
		return nil, err
	}

	if fields := Validate(params); len(fields) > 0 {
		return nil, &types.ValidationError{Fields: fields}
	}

	current, err := models.FindTransaction(g.DB, g.Member.ID, id)
	if err != nil {
		return nil, err
	}

	patch := map[string]interface{}{
		"type":        params.Type,
		"amount":      params.Amount,
		"category_id": params.CategoryID,
		"description": params.Description,
		"goal_id":     params.GoalID,
		"account_id":  params.AccountID,
	}

	affected := []recurrence.Record{*current}
	if scope != types.ScopeCurrent && current.ReferenceCode != nil {
		series, err := recurrence.FindTransactionSeries(g.DB, g.Member.ID, *current.ReferenceCode)
		if err != nil {
			return nil, err
		}

		affected = recurrence.ResolveScope(scope, *current, recurrence.TransactionRecords(series))
	}

	applied, failed, lastErr := g.applyTransactionPatch(affected, current.ID, patch, params)

	for _, recordID := range applied {
		fresh, err := models.FindTransaction(g.DB, g.Member.ID, recordID)
		if err != nil {
			config.Logger.Errorf("gateway: reread transaction %d: %v", recordID, err)
			continue
		}
		g.Store.Apply(store.Action{Type: store.ActionUpdateTransaction, Transaction: fresh})
	}

	syncer.PublishChange(g.Member.ID, types.TableTransactions, types.EventUpdate)

	if current.GoalID != nil || params.GoalID != nil {
		g.RecomputeGoals()
	}

	if len(failed) > 0 {
		consistency := &types.ConsistencyError{
			ReferenceCode: refCode(current.ReferenceCode),
			Applied:       applied,
			Failed:        failed,
			Err:           lastErr,
		}
		config.Logger.Errorf("gateway: %v", consistency)
		return nil, consistency
	}

	return models.FindTransaction(g.DB, g.Member.ID, id)
}

// applyTransactionPatch writes each affected record individually. The
// edited record also takes the new date; its siblings keep their own.
func (g *Gateway) applyTransactionPatch(affected []recurrence.Record, currentID uint64, patch map[string]interface{}, params TransactionParams) (applied, failed []uint64, lastErr error) {
	for _, record := range affected {
		fields := patch
		if record.RecordID() == currentID {
			fields = map[string]interface{}{}
			for key, value := range patch {
				fields[key] = value
			}
			fields["date"] = params.Date
		}

		err := g.DB.Model(&models.Transaction{}).
			Where("id = ? AND user_id = ?", record.RecordID(), g.Member.ID).
			Updates(fields).Error
		if err != nil {
			failed = append(failed, record.RecordID())
			lastErr = err
			continue
		}

		applied = append(applied, record.RecordID())
	}

	return applied, failed, lastErr
}

// DeleteTransaction reads the row first to capture its goal link, then
// deletes it (or the whole series for scope "all"), one request per
// record.
func (g *Gateway) DeleteTransaction(id uint64, scope types.DeleteScope) error {
	if err := g.requireSession(); err != nil {
		return err
	}

	current, err := models.FindTransaction(g.DB, g.Member.ID, id)
	if err != nil {
		return err
	}

	goalID := current.GoalID

	affected := []recurrence.Record{*current}
	if scope == types.DeleteAll && current.ReferenceCode != nil {
		series, err := recurrence.FindTransactionSeries(g.DB, g.Member.ID, *current.ReferenceCode)
		if err != nil {
			return err
		}

		affected = recurrence.ResolveScope(scope, *current, recurrence.TransactionRecords(series))
	}

	var applied, failed []uint64
	var lastErr error
	for _, record := range affected {
		err := g.DB.Where("user_id = ?", g.Member.ID).
			Delete(&models.Transaction{}, record.RecordID()).Error
		if err != nil {
			failed = append(failed, record.RecordID())
			lastErr = err
			continue
		}

		applied = append(applied, record.RecordID())
		g.Store.Apply(store.Action{Type: store.ActionDeleteTransaction, ID: record.RecordID()})
	}

	syncer.PublishChange(g.Member.ID, types.TableTransactions, types.EventDelete)

	if goalID != nil {
		g.RecomputeGoals()
	}

	if len(failed) > 0 {
		consistency := &types.ConsistencyError{
			ReferenceCode: refCode(current.ReferenceCode),
			Applied:       applied,
			Failed:        failed,
			Err:           lastErr,
		}
		config.Logger.Errorf("gateway: %v", consistency)
		return consistency
	}

	return nil
}

func refCode(code *int64) int64 {
	if code == nil {
		return 0
	}

	return *code
}
