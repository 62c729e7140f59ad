package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// EnqueueWelcomeEmail enqueues a welcome email task. Safe to call on a nil
// JobService (background jobs disabled); it becomes a no-op.
func (j *JobService) EnqueueWelcomeEmail(to, name string) error {
	if j == nil {
		return nil
	}

	task, err := NewWelcomeEmailTask(to, name)
	if err != nil {
		return err
	}

	_, err = j.Client.Enqueue(task)
	return err
}

// EnqueueOrderConfirmation enqueues an order confirmation email task.
// Safe to call on a nil JobService.
func (j *JobService) EnqueueOrderConfirmation(to, name string, orderID int64) error {
	if j == nil {
		return nil
	}

	task, err := NewOrderConfirmationTask(to, name, orderID)
	if err != nil {
		return err
	}

	_, err = j.Client.Enqueue(task)
	return err
}

// handleWelcomeEmailTask processes the welcome email task.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("processing welcome email task")

	if err := j.email.SendWelcomeEmail(p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("failed to send welcome email")
		// Returning the error makes Asynq mark the task failed and retry.
		return err
	}

	return nil
}

// handleOrderConfirmationTask processes the order confirmation email task.
func (j *JobService) handleOrderConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var p OrderConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal order confirmation payload: %w", err)
	}

	j.logger.Info().
		Str("type", "order_confirmation").
		Str("to", p.To).
		Int64("order_id", p.OrderID).
		Msg("processing order confirmation task")

	if err := j.email.SendOrderConfirmation(p.To, p.Name, p.OrderID); err != nil {
		j.logger.Error().
			Str("type", "order_confirmation").
			Str("to", p.To).
			Int64("order_id", p.OrderID).
			Err(err).
			Msg("failed to send order confirmation email")
		return err
	}

	return nil
}
