package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// StorageKey is the name of the slot holding the debt collection. It
// matches the key the data was stored under in earlier releases so
// existing documents keep working.
const StorageKey = "debtflow_data_v1"

// Slot is one named storage slot. The whole debt collection is kept as
// a single JSON document in one row, and every mutation rewrites the
// document as a whole.
type Slot struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

// storeMu serializes read-modify-write cycles on the slot. The source
// of truth is the rewritten document, so two interleaved mutations
// must never both start from the same read.
var storeMu sync.Mutex

// GetDebts returns the full debt collection. A missing slot is an
// empty collection, not an error.
func GetDebts() ([]Debt, error) {
	storeMu.Lock()
	defer storeMu.Unlock()

	return readSlot()
}

// SaveDebt writes a debt into the collection. A debt with a known ID
// replaces the existing record in place, keeping the collection order;
// an unknown ID is appended.
func SaveDebt(debt Debt) error {
	storeMu.Lock()
	defer storeMu.Unlock()

	debts, err := readSlot()
	if err != nil {
		return err
	}

	replaced := false
	for i := range debts {
		if debts[i].ID == debt.ID {
			debts[i] = debt
			replaced = true
			break
		}
	}

	if !replaced {
		debts = append(debts, debt)
	}

	return writeSlot(debts)
}

// DeleteDebt removes the debt with the given ID. Deleting an unknown
// ID leaves the collection unchanged.
func DeleteDebt(id uuid.UUID) error {
	storeMu.Lock()
	defer storeMu.Unlock()

	debts, err := readSlot()
	if err != nil {
		return err
	}

	remainder := make([]Debt, 0, len(debts))
	for _, debt := range debts {
		if debt.ID != id {
			remainder = append(remainder, debt)
		}
	}

	return writeSlot(remainder)
}

// TogglePayment sets the payment state of one installment. The
// paidDate is set to now when the installment becomes paid and cleared
// when it becomes unpaid. Calling it twice with the same target state
// is idempotent apart from the timestamp.
//
// Returns the updated debt, or ErrDebtNotFound/ErrInstallmentNotFound
// when either ID does not match.
func TogglePayment(debtID, installmentID uuid.UUID, isPaid bool, now time.Time) (*Debt, error) {
	return mutateInstallment(debtID, installmentID, func(installment *Installment) {
		installment.IsPaid = isPaid

		if isPaid {
			paidDate := now
			installment.PaidDate = &paidDate
		} else {
			installment.PaidDate = nil
		}
	})
}

// SetReminder sets the reminder timestamp of one installment, leaving
// the payment state untouched.
func SetReminder(debtID, installmentID uuid.UUID, reminder time.Time) (*Debt, error) {
	return mutateInstallment(debtID, installmentID, func(installment *Installment) {
		installment.Reminder = &reminder
	})
}

// ClearData erases the storage slot. This is irreversible.
func ClearData() error {
	storeMu.Lock()
	defer storeMu.Unlock()

	return DB.Delete(&Slot{}, "key = ?", StorageKey).Error
}

// mutateInstallment runs one locate-mutate-rewrite cycle on a single
// installment.
func mutateInstallment(debtID, installmentID uuid.UUID, mutate func(*Installment)) (*Debt, error) {
	storeMu.Lock()
	defer storeMu.Unlock()

	debts, err := readSlot()
	if err != nil {
		return nil, err
	}

	debtIndex := -1
	for i := range debts {
		if debts[i].ID == debtID {
			debtIndex = i
			break
		}
	}

	if debtIndex < 0 {
		return nil, ErrDebtNotFound
	}

	debt := &debts[debtIndex]

	installmentIndex := -1
	for i := range debt.Installments {
		if debt.Installments[i].ID == installmentID {
			installmentIndex = i
			break
		}
	}

	if installmentIndex < 0 {
		return nil, ErrInstallmentNotFound
	}

	mutate(&debt.Installments[installmentIndex])

	if err := writeSlot(debts); err != nil {
		return nil, err
	}

	return debt, nil
}

func readSlot() ([]Debt, error) {
	var slot Slot

	err := DB.First(&slot, "key = ?", StorageKey).Error
	if errors.Is(err, ErrResourceNotFound) {
		return []Debt{}, nil
	}
	if err != nil {
		return nil, err
	}

	var debts []Debt
	if err := json.Unmarshal(slot.Data, &debts); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGeneral, err)
	}

	return debts, nil
}

func writeSlot(debts []Debt) error {
	data, err := json.Marshal(debts)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrGeneral, err)
	}

	slot := Slot{
		Key:  StorageKey,
		Data: data,
	}

	return DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&slot).Error
}
