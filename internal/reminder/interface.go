package reminder

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// SendDue emails every open reminder and stamps the task. One failed
	// email never stops the rest of the batch.
	SendDue(ctx context.Context) (SendDueOutput, error)
}
