package store

import (
	"context"
	"time"
)

type Notification struct {
	ID        string
	Wallet    string
	Type      string
	Title     string
	Body      string
	Data      []byte
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}

type Device struct {
	ID        string
	Wallet    string
	PushToken string
	Platform  string
	CreatedAt time.Time
}

type NotifyStore interface {
	InsertNotification(ctx context.Context, notification *Notification) (string, error)
	ListForWallet(ctx context.Context, wallet string, limit int64) ([]*Notification, error)
	MarkRead(ctx context.Context, id string) error

	UpsertDevice(ctx context.Context, device *Device) error
	DevicesForWallet(ctx context.Context, wallet string) ([]*Device, error)
}
