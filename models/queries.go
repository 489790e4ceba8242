package models

import (
	"gorm.io/gorm"

	"github.com/granaflow/granaflow/types"
)

// Every query in this file is scoped by user_id; rows belong to exactly
// one member and the remote store enforces the same ownership.

func LoadCategories(db *gorm.DB, userID uint64) ([]Category, error) {
	var categories []Category

	err := db.Where("user_id = ? OR is_default = ?", userID, true).
		Order("name asc").
		Find(&categories).Error
	if err != nil {
		return nil, &types.RemoteError{Op: "select categories", Err: err}
	}

	return categories, nil
}

func CategoryMap(db *gorm.DB, userID uint64) (map[uint64]Category, error) {
	categories, err := LoadCategories(db, userID)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	return byID, nil
}

// LoadTransactions is the authoritative full read of the collection,
// joined with the category snapshot.
func LoadTransactions(db *gorm.DB, userID uint64) ([]Transaction, error) {
	var transactions []Transaction

	err := db.Where("user_id = ?", userID).
		Order("date asc, id asc").
		Find(&transactions).Error
	if err != nil {
		return nil, &types.RemoteError{Op: "select transactions", Err: err}
	}

	categories, err := CategoryMap(db, userID)
	if err != nil {
		return nil, err
	}

	for i := range transactions {
		transactions[i].AttachCategory(categories)
	}

	return transactions, nil
}

func LoadGoals(db *gorm.DB, userID uint64) ([]Goal, error) {
	var goals []Goal

	err := db.Where("user_id = ?", userID).
		Order("end_date asc, id asc").
		Find(&goals).Error
	if err != nil {
		return nil, &types.RemoteError{Op: "select goals", Err: err}
	}

	return goals, nil
}

func LoadScheduledTransactions(db *gorm.DB, userID uint64) ([]ScheduledTransaction, error) {
	var scheduled []ScheduledTransaction

	err := db.Where("user_id = ?", userID).
		Order("scheduled_date asc, id asc").
		Find(&scheduled).Error
	if err != nil {
		return nil, &types.RemoteError{Op: "select scheduled_transactions", Err: err}
	}

	categories, err := CategoryMap(db, userID)
	if err != nil {
		return nil, err
	}

	for i := range scheduled {
		scheduled[i].AttachCategory(categories)
	}

	return scheduled, nil
}

func FindTransaction(db *gorm.DB, userID, id uint64) (*Transaction, error) {
	var transaction Transaction

	err := db.Where("user_id = ?", userID).First(&transaction, id).Error
	if err != nil {
		return nil, &types.RemoteError{Op: "select transaction", Err: err}
	}

	categories, err := CategoryMap(db, userID)
	if err != nil {
		return nil, err
	}

	transaction.AttachCategory(categories)

	return &transaction, nil
}

func FindScheduledTransaction(db *gorm.DB, userID, id uint64) (*ScheduledTransaction, error) {
	var scheduled ScheduledTransaction

	err := db.Where("user_id = ?", userID).First(&scheduled, id).Error
	if err != nil {
		return nil, &types.RemoteError{Op: "select scheduled_transaction", Err: err}
	}

	categories, err := CategoryMap(db, userID)
	if err != nil {
		return nil, err
	}

	scheduled.AttachCategory(categories)

	return &scheduled, nil
}
