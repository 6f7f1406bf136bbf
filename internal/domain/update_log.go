package domain

import "time"

type UpdateStatus string

const (
	UpdateStatusSuccess UpdateStatus = "success"
	UpdateStatusError   UpdateStatus = "error"
)

// UpdateLogEntry registra o resultado de cada tentativa de sincronização (append-only)
type UpdateLogEntry struct {
	ID        int64        `json:"id"`
	Status    UpdateStatus `json:"status"`
	Message   string       `json:"message"`
	CreatedAt time.Time    `json:"timestamp"`
}
