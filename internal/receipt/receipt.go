// Package receipt manages the immutable receipt snapshot created on
// first confirmation of a transfer, and the mutable share token that
// hangs off it.
package receipt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	receiptstore "github.com/ricepay/tracker/internal/receipt/store"
	txstore "github.com/ricepay/tracker/internal/tracker/store"
)

var (
	ErrNotFound = errors.New("receipt not found")
	ErrNotOwner = errors.New("caller is not a party to the transaction")
)

// Audit actions recorded for every share-token mutation attempt.
const (
	AuditIssue       = "ISSUE"
	AuditReuse       = "REUSE"
	AuditRotate      = "ROTATE"
	AuditRevoke      = "REVOKE"
	AuditRevokeNoop  = "REVOKE_NOOP"
	AuditRevokeStale = "REVOKE_STALE"
)

type RevokeReason string

const (
	RevokeReasonRevoked RevokeReason = "revoked"
	RevokeReasonNoop    RevokeReason = "noop"
	RevokeReasonStale   RevokeReason = "stale"
)

type RevokeResult struct {
	Revoked      bool
	Reason       RevokeReason
	CurrentToken *string
}

// Actor is the authorization principal for share-token operations: a
// set of verified addresses plus request metadata for the audit trail.
type Actor struct {
	Addresses []string
	IP        string
	UserAgent string
}

func (a Actor) primaryAddress() string {
	if len(a.Addresses) == 0 {
		return ""
	}
	return a.Addresses[0]
}

// Snapshot carries the caller-supplied fiat and fee figures frozen
// into the receipt; quoting itself happens outside this service.
type Snapshot struct {
	FiatRate      *string
	GasPaid       *string
	GasFiatAmount *string
	AppFee        *string
	AppFeeFiat    *string
	Source        string
}

type Manager struct {
	store         receiptstore.ReceiptStore
	logger        *slog.Logger
	now           func() time.Time
	newToken      func() string
	policyVersion string
	fiatCurrency  string
	quoteCurrency string
}

type Option func(*Manager)

func WithNow(nowFunc func() time.Time) Option {
	return func(m *Manager) {
		m.now = nowFunc
	}
}

func WithTokenGenerator(gen func() string) Option {
	return func(m *Manager) {
		m.newToken = gen
	}
}

func WithPolicy(policyVersion, fiatCurrency, quoteCurrency string) Option {
	return func(m *Manager) {
		m.policyVersion = policyVersion
		m.fiatCurrency = fiatCurrency
		m.quoteCurrency = quoteCurrency
	}
}

func NewManager(s receiptstore.ReceiptStore, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:         s,
		logger:        logger.With(slog.String("module", "receipt")),
		now:           time.Now,
		newToken:      func() string { return strings.ReplaceAll(uuid.NewString(), "-", "") },
		policyVersion: "v1",
		fiatCurrency:  "USD",
		quoteCurrency: "MXN",
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// CreateForTransaction creates the snapshot exactly once per
// transaction. It is a silent no-op when the transaction is not yet
// eligible (missing essentials, not confirmed) or when a receipt
// already exists; the returned bool is true only for the one call that
// actually created it, which gates the confirmed side effects.
func (m *Manager) CreateForTransaction(ctx context.Context, tx *txstore.Data, snap *Snapshot) (bool, error) {
	if tx.Status != txstore.StatusConfirmed || !tx.HasEssentials() {
		return false, nil
	}

	if snap == nil {
		snap = &Snapshot{}
	}

	meta, err := json.Marshal(map[string]any{
		"source":        snap.Source,
		"confirmations": tx.Confirmations,
		"blockNumber":   tx.BlockNumber,
	})
	if err != nil {
		return false, err
	}

	receipt := &receiptstore.Receipt{
		TransactionID: tx.ID,
		ChainID:       tx.ChainID,
		Chain:         tx.Chain,
		TxHash:        tx.TxHash,
		Token:         *tx.Token,
		Amount:        *tx.Amount,
		FiatCurrency:  m.fiatCurrency,
		QuoteCurrency: m.quoteCurrency,
		FiatRate:      snap.FiatRate,
		FiatAmount:    fiatAmount(*tx.Amount, snap.FiatRate),
		GasPaid:       snap.GasPaid,
		GasFiatAmount: snap.GasFiatAmount,
		AppFee:        snap.AppFee,
		AppFeeFiat:    snap.AppFeeFiat,
		PolicyVersion: m.policyVersion,
		FromAddress:   tx.FromAddress,
		ToAddress:     tx.ToAddress,
		SubmittedAt:   tx.CreatedAt,
		ConfirmedAt:   tx.UpdatedAt,
		Snapshot:      meta,
	}

	created, err := m.store.Create(ctx, receipt)
	if err != nil {
		return false, fmt.Errorf("failed to create receipt snapshot: %w", err)
	}

	if created {
		m.logger.Info("receipt created",
			slog.String("transactionID", tx.ID),
			slog.String("hash", tx.TxHash),
		)
	}

	return created, nil
}

func (m *Manager) Get(ctx context.Context, id string) (*receiptstore.Receipt, error) {
	receipt, err := m.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, receiptstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return receipt, nil
}

func (m *Manager) GetByShareToken(ctx context.Context, token string) (*receiptstore.Receipt, error) {
	receipt, err := m.store.GetByShareToken(ctx, token)
	if err != nil {
		if errors.Is(err, receiptstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return receipt, nil
}

func (m *Manager) ListActivity(ctx context.Context, filter *receiptstore.ActivityFilter) ([]*receiptstore.Receipt, error) {
	return m.store.ListActivity(ctx, filter)
}

// EnsureShareToken returns the receipt's share token, issuing one if
// absent. With forceRotate the token is unconditionally replaced.
// Under concurrent issuance exactly one caller wins the conditional
// write; the losers re-read and return the winner's token.
func (m *Manager) EnsureShareToken(ctx context.Context, id string, actor Actor, forceRotate bool) (string, error) {
	receipt, err := m.Get(ctx, id)
	if err != nil {
		return "", err
	}

	if err = assertOwner(receipt, actor); err != nil {
		return "", err
	}

	if !forceRotate && receipt.ShareToken != nil {
		m.audit(ctx, AuditReuse, receipt.ID, actor, map[string]any{"shareToken": *receipt.ShareToken})
		return *receipt.ShareToken, nil
	}

	token := m.newToken()

	if forceRotate {
		if err = m.store.SetShareToken(ctx, receipt.ID, token); err != nil {
			return "", fmt.Errorf("failed to rotate share token: %w", err)
		}
		m.audit(ctx, AuditRotate, receipt.ID, actor, map[string]any{"shareToken": token})
		return token, nil
	}

	won, err := m.store.SetShareTokenIfEmpty(ctx, receipt.ID, token)
	if err != nil {
		return "", fmt.Errorf("failed to issue share token: %w", err)
	}

	if !won {
		// A concurrent issuer filled the token first.
		again, err := m.Get(ctx, id)
		if err != nil {
			return "", err
		}
		if again.ShareToken == nil {
			return "", errors.New("failed to ensure share token")
		}
		m.audit(ctx, AuditReuse, receipt.ID, actor, map[string]any{"shareToken": *again.ShareToken, "race": true})
		return *again.ShareToken, nil
	}

	m.audit(ctx, AuditIssue, receipt.ID, actor, map[string]any{"shareToken": token})
	return token, nil
}

// RevokeShareToken nulls the share token. A nil result is never
// returned without an error. When expectedToken is supplied and does
// not match the live token the call reports stale without mutating,
// protecting a client acting on an out-of-date view. A zero-row
// conditional write is re-read and classified, never claimed as
// success.
func (m *Manager) RevokeShareToken(ctx context.Context, id string, actor Actor, expectedToken *string) (*RevokeResult, error) {
	receipt, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = assertOwner(receipt, actor); err != nil {
		return nil, err
	}

	if receipt.ShareToken == nil {
		m.audit(ctx, AuditRevokeNoop, receipt.ID, actor, map[string]any{"reason": "already_null"})
		return &RevokeResult{Revoked: false, Reason: RevokeReasonNoop}, nil
	}

	if expectedToken != nil && *expectedToken != *receipt.ShareToken {
		m.audit(ctx, AuditRevokeStale, receipt.ID, actor, map[string]any{
			"expectedToken": *expectedToken,
			"currentToken":  *receipt.ShareToken,
		})
		return &RevokeResult{Revoked: false, Reason: RevokeReasonStale, CurrentToken: receipt.ShareToken}, nil
	}

	cleared, err := m.store.ClearShareToken(ctx, receipt.ID, expectedToken)
	if err != nil {
		return nil, fmt.Errorf("failed to revoke share token: %w", err)
	}

	if !cleared {
		// A concurrent actor revoked or rotated first; classify from
		// the current state.
		again, err := m.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		if again.ShareToken == nil {
			m.audit(ctx, AuditRevokeNoop, receipt.ID, actor, map[string]any{"race": true})
			return &RevokeResult{Revoked: false, Reason: RevokeReasonNoop}, nil
		}

		m.audit(ctx, AuditRevokeStale, receipt.ID, actor, map[string]any{
			"currentToken": *again.ShareToken,
			"race":         true,
		})
		return &RevokeResult{Revoked: false, Reason: RevokeReasonStale, CurrentToken: again.ShareToken}, nil
	}

	meta := map[string]any{"prevToken": *receipt.ShareToken}
	if expectedToken != nil {
		meta["expectedToken"] = *expectedToken
	}
	m.audit(ctx, AuditRevoke, receipt.ID, actor, meta)

	return &RevokeResult{Revoked: true, Reason: RevokeReasonRevoked}, nil
}

func assertOwner(receipt *receiptstore.Receipt, actor Actor) error {
	for _, addr := range actor.Addresses {
		lowered := strings.ToLower(addr)
		if lowered == strings.ToLower(receipt.FromAddress) || lowered == strings.ToLower(receipt.ToAddress) {
			return nil
		}
	}
	return ErrNotOwner
}

// audit failures never fail the operation they describe.
func (m *Manager) audit(ctx context.Context, action, receiptID string, actor Actor, meta map[string]any) {
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		metaJSON = nil
	}

	err = m.store.InsertAudit(ctx, &receiptstore.Audit{
		ReceiptID:    receiptID,
		Action:       action,
		ActorAddress: actor.primaryAddress(),
		IP:           actor.IP,
		UserAgent:    actor.UserAgent,
		Meta:         metaJSON,
	})
	if err != nil {
		m.logger.Warn("failed to write receipt audit",
			slog.String("action", action),
			slog.String("receiptID", receiptID),
			slog.String("err", err.Error()),
		)
	}
}

func fiatAmount(amount string, rate *string) *string {
	if rate == nil {
		return nil
	}

	var a, r float64
	if _, err := fmt.Sscanf(amount, "%g", &a); err != nil {
		return nil
	}
	if _, err := fmt.Sscanf(*rate, "%g", &r); err != nil {
		return nil
	}

	v := fmt.Sprintf("%g", a*r)
	return &v
}
