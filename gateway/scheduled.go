package gateway

import (
	"encoding/json"

	"github.com/granaflow/granaflow/config"
	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/mq_client"
	"github.com/granaflow/granaflow/recurrence"
	"github.com/granaflow/granaflow/store"
	"github.com/granaflow/granaflow/syncer"
	"github.com/granaflow/granaflow/types"
)

// occurrenceHorizon is how many future occurrences a recurring entry
// materializes at creation, all sharing one reference code.
var occurrenceHorizon = map[types.Recurrence]int{
	types.RecurrenceDaily:   30,
	types.RecurrenceWeekly:  26,
	types.RecurrenceMonthly: 12,
	types.RecurrenceYearly:  3,
}

// AddScheduledTransaction creates the entry and, for a recurring one,
// its future occurrences. Occurrences are inserted one request per row;
// a failure partway through reports a ConsistencyError and keeps what
// was already written.
func (g *Gateway) AddScheduledTransaction(params ScheduledParams) (*models.ScheduledTransaction, error) {
	if err := g.requireSession(); err != nil {
		return nil, err
	}

	if fields := Validate(params); len(fields) > 0 {
		return nil, &types.ValidationError{Fields: fields}
	}

	scheduled := params.BuildScheduledTransaction(g.Member)

	if scheduled.Phone == "" && params.CreatorName != "" {
		scheduled.Phone = g.ResolvePhone(params.CreatorName)
	}

	code, err := recurrence.AllocateReferenceCode(g.DB)
	if err != nil {
		return nil, err
	}
	scheduled.ReferenceCode = &code

	if err := g.DB.Create(scheduled).Error; err != nil {
		return nil, &types.RemoteError{Op: "insert scheduled_transaction", Err: err}
	}

	applied := []uint64{scheduled.ID}
	var failed []uint64
	var lastErr error

	date := scheduled.ScheduledDate
	for i := 0; i < occurrenceHorizon[scheduled.Recurrence]; i++ {
		date = scheduled.NextDate(date)

		occurrence := *scheduled
		occurrence.ID = 0
		occurrence.ScheduledDate = date
		occurrence.Status = types.StatusUpcoming

		if err := g.DB.Create(&occurrence).Error; err != nil {
			failed = append(failed, 0)
			lastErr = err
			continue
		}

		applied = append(applied, occurrence.ID)
	}

	fresh, err := models.FindScheduledTransaction(g.DB, g.Member.ID, scheduled.ID)
	if err != nil {
		return nil, err
	}

	g.Store.Apply(store.Action{Type: store.ActionAddScheduled, ScheduledItem: fresh})
	for _, id := range applied[1:] {
		occurrence, err := models.FindScheduledTransaction(g.DB, g.Member.ID, id)
		if err != nil {
			config.Logger.Errorf("gateway: reread scheduled %d: %v", id, err)
			continue
		}
		g.Store.Apply(store.Action{Type: store.ActionAddScheduled, ScheduledItem: occurrence})
	}

	syncer.PublishChange(g.Member.ID, types.TableScheduledTransactions, types.EventInsert)

	if len(failed) > 0 {
		consistency := &types.ConsistencyError{
			ReferenceCode: code,
			Applied:       applied,
			Failed:        failed,
			Err:           lastErr,
		}
		config.Logger.Errorf("gateway: %v", consistency)
		return fresh, consistency
	}

	return fresh, nil
}

// UpdateScheduledTransaction patches the record or its resolved series
// scope, one request per record.
func (g *Gateway) UpdateScheduledTransaction(id uint64, params ScheduledParams, scope types.EditScope) (*models.ScheduledTransaction, error) {
	if err := g.requireSession(); err != nil {
		return nil, err
	}

	if fields := Validate(params); len(fields) > 0 {
		return nil, &types.ValidationError{Fields: fields}
	}

	current, err := models.FindScheduledTransaction(g.DB, g.Member.ID, id)
	if err != nil {
		return nil, err
	}

	built := params.BuildScheduledTransaction(g.Member)

	patch := map[string]interface{}{
		"type":        built.Type,
		"amount":      built.Amount,
		"category_id": built.CategoryID,
		"description": built.Description,
		"recurrence":  built.Recurrence,
		"status":      built.Status,
		"goal_id":     built.GoalID,
	}

	affected := []recurrence.Record{*current}
	if scope != types.ScopeCurrent && current.ReferenceCode != nil {
		series, err := recurrence.FindScheduledSeries(g.DB, g.Member.ID, *current.ReferenceCode)
		if err != nil {
			return nil, err
		}

		affected = recurrence.ResolveScope(scope, *current, recurrence.ScheduledRecords(series))
	}

	var applied, failed []uint64
	var lastErr error
	for _, record := range affected {
		fields := patch
		if record.RecordID() == current.ID {
			fields = map[string]interface{}{}
			for key, value := range patch {
				fields[key] = value
			}
			fields["scheduled_date"] = built.ScheduledDate
		}

		err := g.DB.Model(&models.ScheduledTransaction{}).
			Where("id = ? AND user_id = ?", record.RecordID(), g.Member.ID).
			Updates(fields).Error
		if err != nil {
			failed = append(failed, record.RecordID())
			lastErr = err
			continue
		}

		applied = append(applied, record.RecordID())
	}

	for _, recordID := range applied {
		fresh, err := models.FindScheduledTransaction(g.DB, g.Member.ID, recordID)
		if err != nil {
			config.Logger.Errorf("gateway: reread scheduled %d: %v", recordID, err)
			continue
		}
		g.Store.Apply(store.Action{Type: store.ActionUpdateScheduled, ScheduledItem: fresh})
	}

	syncer.PublishChange(g.Member.ID, types.TableScheduledTransactions, types.EventUpdate)

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

	return models.FindScheduledTransaction(g.DB, g.Member.ID, id)
}

// DeleteScheduledTransaction removes the record, or the whole series for
// scope "all", one request per record.
func (g *Gateway) DeleteScheduledTransaction(id uint64, scope types.DeleteScope) error {
	if err := g.requireSession(); err != nil {
		return err
	}

	current, err := models.FindScheduledTransaction(g.DB, g.Member.ID, id)
	if err != nil {
		return err
	}

	goalID := current.GoalID

	affected := []recurrence.Record{*current}
	if scope == types.DeleteAll && current.ReferenceCode != nil {
		series, err := recurrence.FindScheduledSeries(g.DB, g.Member.ID, *current.ReferenceCode)
		if err != nil {
			return err
		}

		affected = recurrence.ResolveScope(scope, *current, recurrence.ScheduledRecords(series))
	}

	var applied, failed []uint64
	var lastErr error
	for _, record := range affected {
		err := g.DB.Where("user_id = ?", g.Member.ID).
			Delete(&models.ScheduledTransaction{}, record.RecordID()).Error
		if err != nil {
			failed = append(failed, record.RecordID())
			lastErr = err
			continue
		}

		applied = append(applied, record.RecordID())
		g.Store.Apply(store.Action{Type: store.ActionDeleteScheduled, ID: record.RecordID()})
	}

	syncer.PublishChange(g.Member.ID, types.TableScheduledTransactions, types.EventDelete)

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

type reminderEvent struct {
	ID          uint64 `json:"id"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Phone       string `json:"phone"`
}

// MarkReminderNotified flips a reminder to "avisado" and hands the
// phone-tagged event to the downstream notification deliverer.
func (g *Gateway) MarkReminderNotified(id uint64) error {
	if err := g.requireSession(); err != nil {
		return err
	}

	current, err := models.FindScheduledTransaction(g.DB, g.Member.ID, id)
	if err != nil {
		return err
	}

	err = g.DB.Model(&models.ScheduledTransaction{}).
		Where("id = ? AND user_id = ?", id, g.Member.ID).
		Update("situacao", types.SituacaoAvisado).Error
	if err != nil {
		return &types.RemoteError{Op: "update scheduled_transaction", Err: err}
	}

	current.Situacao = types.SituacaoAvisado
	g.Store.Apply(store.Action{Type: store.ActionUpdateScheduled, ScheduledItem: current})
	syncer.PublishChange(g.Member.ID, types.TableScheduledTransactions, types.EventUpdate)

	payload, _ := json.Marshal(reminderEvent{
		ID:          current.ID,
		Description: current.Description,
		Date:        current.ScheduledDate.Format("2006-01-02"),
		Phone:       current.Phone,
	})

	if err := mq_client.EnqueueEvent("private", g.Member.UID, "reminder", payload); err != nil {
		config.Logger.Errorf("gateway: enqueue reminder event: %v", err)
	}

	return nil
}
