package alert

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kakaon/fraud-service/internal/models"
)

// Mailer delivers a single message to one recipient.
type Mailer interface {
	Send(to, subject, body string) error
}

// Notifier mails a persisted alert to the store owner and the store's
// active recipients. It never returns an error to the caller: notification
// failures are logged and the alert stays persisted, unmarked.
type Notifier struct {
	Mailer Mailer
	Alerts AlertRepo
}

func NewNotifier(mailer Mailer, alerts AlertRepo) *Notifier {
	return &Notifier{Mailer: mailer, Alerts: alerts}
}

// Notify sends owner first, then active recipients in order, stopping at
// the first delivery failure. The alert is marked emailed only when every
// send succeeded, so a partial delivery stays visible as unsent.
func (n *Notifier) Notify(ctx context.Context, alert *models.Alert, store *models.Store) {
	subject := "[Fraud Alert] " + alert.AlertType.Description()
	body := mailBody(alert, store)

	if err := n.Mailer.Send(store.OwnerEmail, subject, body); err != nil {
		logrus.WithFields(logrus.Fields{
			"alertUuid": alert.AlertUuid,
			"to":        store.OwnerEmail,
		}).Errorf("Failed to mail store owner: %s", err.Error())
		return
	}

	for _, recipient := range store.AlertRecipients {
		if !recipient.Active {
			continue
		}
		if err := n.Mailer.Send(recipient.Email, subject, body); err != nil {
			logrus.WithFields(logrus.Fields{
				"alertUuid": alert.AlertUuid,
				"to":        recipient.Email,
			}).Errorf("Failed to mail alert recipient: %s", err.Error())
			return
		}
	}

	if err := n.Alerts.MarkEmailSent(ctx, alert.ID); err != nil {
		logrus.Errorf("Failed to mark alert %s emailed: %s", alert.AlertUuid, err.Error())
	}
}

func mailBody(alert *models.Alert, store *models.Store) string {
	return fmt.Sprintf(
		"Store: %s\nAlert: %s\nType: %s\nDetected at: %s\n\n%s\n",
		store.Name,
		alert.AlertUuid,
		alert.AlertType.Description(),
		alert.DetectedAt.Format("2006-01-02 15:04:05"),
		alert.Description,
	)
}
