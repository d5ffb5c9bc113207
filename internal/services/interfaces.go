package services

import (
	"time"

	"fintrack/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(name, email, password string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

// TransactionUpdateFields holds the optional fields of a transaction
// update. A nil pointer means "leave unchanged"; owner and ID are never
// updatable.
type TransactionUpdateFields struct {
	Title    *string
	Amount   *int64
	Category *string
	Date     *time.Time
}

// TransactionServicer defines the contract for transaction-related
// business logic. Every operation is scoped to the owning user: a
// transaction that exists but belongs to someone else behaves exactly
// like one that does not exist.
type TransactionServicer interface {
	CreateTransaction(userID uint, title string, amount int64, category string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID uint) ([]models.Transaction, error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
