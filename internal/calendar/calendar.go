// Package calendar builds Google Calendar deep links for payment
// reminders. The links are handed to the client to open; no response
// is ever consumed.
package calendar

import (
	"fmt"
	"net/url"
	"time"

	"github.com/debtflow-control/backend/internal/format"
	"github.com/debtflow-control/backend/internal/models"
)

const renderURL = "https://calendar.google.com/calendar/render"

// The compact timestamp layout the Calendar template endpoint expects.
const dateLayout = "20060102T150405"

// EventURL returns a Calendar event creation link for an event with
// the given title, time span and description.
func EventURL(title string, start, end time.Time, details string) string {
	query := url.Values{}
	query.Set("action", "TEMPLATE")
	query.Set("text", title)
	query.Set("dates", fmt.Sprintf("%s/%s", start.Format(dateLayout), end.Format(dateLayout)))
	query.Set("details", details)

	return renderURL + "?" + query.Encode()
}

// PaymentReminderURL returns the event link for an installment payment
// reminder. The event has zero duration; Calendar applies its default
// duration when creating it.
func PaymentReminderURL(debt models.Debt, installment models.Installment, at time.Time) string {
	title := fmt.Sprintf("Pagar Parcela %d - %s", installment.Number, debt.Description)
	details := fmt.Sprintf(
		"Lembrete de pagamento gerado pelo DebtFlow.\nValor: %s\nVencimento: %s",
		format.Currency(installment.Value),
		format.Date(installment.DueDate),
	)

	return EventURL(title, at, at, details)
}
