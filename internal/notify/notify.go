// Package notify persists user notifications and forwards them to
// registered devices through a push gateway. Delivery failures are
// logged and never propagated to the caller: the transaction record is
// the source of truth, the notification is best effort.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ricepay/tracker/internal/notify/store"
)

const listLimitDefault = 50

type Notification struct {
	Wallet string
	Type   string
	Title  string
	Body   string
	Data   map[string]string
}

type Service struct {
	store  store.NotifyStore
	sender PushSender
	logger *slog.Logger
}

func NewService(s store.NotifyStore, sender PushSender, logger *slog.Logger) *Service {
	return &Service{
		store:  s,
		sender: sender,
		logger: logger.With(slog.String("module", "notify")),
	}
}

// CreateAndSend persists the notification and pushes it to every
// device registered for the wallet.
func (s *Service) CreateAndSend(ctx context.Context, notification Notification) error {
	data, err := json.Marshal(notification.Data)
	if err != nil {
		return err
	}

	id, err := s.store.InsertNotification(ctx, &store.Notification{
		Wallet: notification.Wallet,
		Type:   notification.Type,
		Title:  notification.Title,
		Body:   notification.Body,
		Data:   data,
	})
	if err != nil {
		return err
	}

	devices, err := s.store.DevicesForWallet(ctx, notification.Wallet)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, len(devices))
	for i, d := range devices {
		tokens[i] = d.PushToken
	}

	pushData := make(map[string]string, len(notification.Data)+1)
	for k, v := range notification.Data {
		pushData[k] = v
	}
	pushData["notificationId"] = id

	err = s.sender.Send(ctx, tokens, notification.Title, notification.Body, pushData)
	if err != nil {
		s.logger.Error("push delivery failed",
			slog.String("wallet", notification.Wallet),
			slog.String("type", notification.Type),
			slog.String("err", err.Error()),
		)
	}

	return nil
}

// HasDevices reports whether the wallet has any registered device.
func (s *Service) HasDevices(ctx context.Context, wallet string) (bool, error) {
	devices, err := s.store.DevicesForWallet(ctx, wallet)
	if err != nil {
		return false, err
	}
	return len(devices) > 0, nil
}

func (s *Service) RegisterDevice(ctx context.Context, wallet, pushToken, platform string) error {
	return s.store.UpsertDevice(ctx, &store.Device{
		Wallet:    wallet,
		PushToken: pushToken,
		Platform:  platform,
	})
}

func (s *Service) ListForWallet(ctx context.Context, wallet string) ([]*store.Notification, error) {
	return s.store.ListForWallet(ctx, wallet, listLimitDefault)
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	return s.store.MarkRead(ctx, id)
}
