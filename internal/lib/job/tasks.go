package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskWelcome is the job type for the welcome email sent on user creation.
	TaskWelcome = "email:welcome"

	// TaskOrderConfirmation is the job type for the confirmation email sent
	// when an order is created.
	TaskOrderConfirmation = "email:order_confirmation"
)

// WelcomeEmailPayload is the JSON payload for the welcome email task.
type WelcomeEmailPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// OrderConfirmationPayload is the JSON payload for the order confirmation task.
type OrderConfirmationPayload struct {
	To      string `json:"to"`
	Name    string `json:"name"`
	OrderID int64  `json:"order_id"`
}

// NewWelcomeEmailTask constructs an Asynq task for sending a welcome email.
//
// Options: retry up to 3 times, default queue, 30s handler timeout.
func NewWelcomeEmailTask(to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:   to,
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewOrderConfirmationTask constructs an Asynq task for sending an order
// confirmation email. Confirmations go to the critical queue: users expect
// them promptly after checkout.
func NewOrderConfirmationTask(to, name string, orderID int64) (*asynq.Task, error) {
	payload, err := json.Marshal(OrderConfirmationPayload{
		To:      to,
		Name:    name,
		OrderID: orderID,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskOrderConfirmation,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
	), nil
}
