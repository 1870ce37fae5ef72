package ledger

import "context"

// Query narrows History/statement lookups. Zero values mean "no filter".
type Query struct {
	ProjectID  uint64
	InvestorID string
	Year       int
	Limit      int
}

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByTransactionID(ctx context.Context, transactionID string) (*Transaction, error)
	GetByTransactionIDForUpdate(ctx context.Context, transactionID string) (*Transaction, error)
	// GetPeriod fetches the accrual row for one participant-month, if any.
	GetPeriod(ctx context.Context, projectID uint64, participantID, month string) (*Transaction, error)
	List(ctx context.Context, q Query) ([]Transaction, error)
	Save(ctx context.Context, t *Transaction) error
}
