// Package handler exposes the tracker over HTTP: transaction intents
// and lookups, the live update stream, webhook ingestion, receipt and
// share-token operations, and the admin reconciliation triggers.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ricepay/tracker/config"
	"github.com/ricepay/tracker/internal/auth"
	"github.com/ricepay/tracker/internal/notify"
	"github.com/ricepay/tracker/internal/receipt"
	receiptstore "github.com/ricepay/tracker/internal/receipt/store"
	"github.com/ricepay/tracker/internal/stream"
	"github.com/ricepay/tracker/internal/tracker"
	"github.com/ricepay/tracker/internal/tracker/store"
	"github.com/ricepay/tracker/internal/webhook"
)

const (
	headerSignature = "X-Auth-Signature"
	headerNonce     = "X-Auth-Nonce"
	headerExpires   = "X-Auth-Expires"
	headerChainID   = "X-Auth-Chain-Id"

	webhookSignatureHeader = "X-Webhook-Signature"
)

// Pinger is the readiness probe dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	processor *tracker.Processor
	workers   *tracker.BackgroundWorkers
	ingestor  *webhook.Ingestor
	auth      *auth.Service
	receipts  *receipt.Manager
	notifier  *notify.Service
	updates   *stream.Stream
	db        Pinger
	rcfg      *config.ReconcilerConfig
	logger    *slog.Logger
}

func New(processor *tracker.Processor, workers *tracker.BackgroundWorkers, ingestor *webhook.Ingestor, authSvc *auth.Service, receipts *receipt.Manager, notifier *notify.Service, updates *stream.Stream, db Pinger, rcfg *config.ReconcilerConfig, logger *slog.Logger) *Handler {
	return &Handler{
		processor: processor,
		workers:   workers,
		ingestor:  ingestor,
		auth:      authSvc,
		receipts:  receipts,
		notifier:  notifier,
		updates:   updates,
		db:        db,
		rcfg:      rcfg,
		logger:    logger.With(slog.String("module", "api")),
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1")

	v1.POST("/tx", h.SubmitIntent)
	v1.GET("/tx", h.GetTransaction)
	v1.GET("/tx/stream", h.StreamUpdates)
	v1.POST("/tx/backfill", h.TriggerBackfill)
	v1.POST("/tx/cleanup-pending", h.TriggerStalePendingCleanup)

	v1.POST("/webhooks/:provider", h.IngestWebhook)

	v1.POST("/auth/nonce", h.IssueNonce)

	v1.GET("/activity", h.ListActivity)
	v1.GET("/receipts/:id", h.GetReceipt)
	v1.GET("/receipts/share/:token", h.GetSharedReceipt)
	v1.POST("/receipts/:id/share", h.ShareReceipt)
	v1.DELETE("/receipts/:id/share", h.RevokeShare)

	v1.POST("/devices", h.RegisterDevice)
	v1.GET("/notifications", h.ListNotifications)
	v1.POST("/notifications/:id/read", h.MarkNotificationRead)

	e.GET("/v1/health", h.Health)
}

func (h *Handler) SubmitIntent(c echo.Context) error {
	var req intentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if req.From == "" || req.To == "" {
		return badRequest(c, "from and to are required")
	}

	data, err := h.processor.UpsertIntent(c.Request().Context(), &store.Intent{
		ChainID:     req.ChainID,
		TxHash:      req.TxHash,
		FromAddress: req.From,
		ToAddress:   req.To,
		Token:       req.Token,
		Amount:      req.Amount,
	})
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, toTxResponse(data))
}

func (h *Handler) GetTransaction(c echo.Context) error {
	chainID, err := strconv.ParseInt(c.QueryParam("chainId"), 10, 64)
	if err != nil {
		return badRequest(c, "chainId must be an integer")
	}

	data, err := h.processor.GetTransaction(c.Request().Context(), chainID, c.QueryParam("hash"))
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, toTxResponse(data))
}

func (h *Handler) TriggerBackfill(c echo.Context) error {
	res, err := h.workers.RunBackfill(c.Request().Context(), h.rcfg.Backfill.TargetDepth, h.rcfg.Backfill.BatchSize)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *Handler) TriggerStalePendingCleanup(c echo.Context) error {
	res, err := h.workers.RunStalePendingCleanup(c.Request().Context(), h.rcfg.StalePending.MaxAge, h.rcfg.StalePending.BatchSize)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *Handler) IngestWebhook(c echo.Context) error {
	body, err := readBody(c.Request())
	if err != nil {
		return badRequest(c, "unreadable request body")
	}

	res, err := h.ingestor.Ingest(c.Request().Context(), c.Param("provider"), body, c.Request().Header.Get(webhookSignatureHeader))
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *Handler) IssueNonce(c echo.Context) error {
	nonce, err := h.auth.IssueNonce(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, nonce)
}

func (h *Handler) ListActivity(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return badRequest(c, "address is required")
	}

	direction := receiptstore.Direction(c.QueryParam("direction"))
	if direction != "" && direction != receiptstore.DirectionSent && direction != receiptstore.DirectionReceived {
		return badRequest(c, "direction must be SENT or RECEIVED")
	}

	filter := &receiptstore.ActivityFilter{
		Address:   address,
		Direction: direction,
		Cursor:    c.QueryParam("cursor"),
	}
	if raw := c.QueryParam("chainId"); raw != "" {
		chainID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest(c, "chainId must be an integer")
		}
		filter.ChainID = chainID
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest(c, "limit must be an integer")
		}
		filter.Limit = limit
	}

	receipts, err := h.receipts.ListActivity(c.Request().Context(), filter)
	if err != nil {
		return h.mapError(c, err)
	}

	items := make([]*receiptResponse, 0, len(receipts))
	for _, r := range receipts {
		items = append(items, toReceiptResponse(r))
	}

	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) GetReceipt(c echo.Context) error {
	r, err := h.receipts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, toReceiptResponse(r))
}

func (h *Handler) GetSharedReceipt(c echo.Context) error {
	r, err := h.receipts.GetByShareToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, toReceiptResponse(r))
}

func (h *Handler) ShareReceipt(c echo.Context) error {
	actor, err := h.verifyActor(c)
	if err != nil {
		return h.mapError(c, err)
	}

	rotate, _ := strconv.ParseBool(c.QueryParam("rotate"))

	token, err := h.receipts.EnsureShareToken(c.Request().Context(), c.Param("id"), actor, rotate)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, &shareResponse{
		ShareToken: token,
		URLPath:    "/v1/receipts/share/" + token,
	})
}

func (h *Handler) RevokeShare(c echo.Context) error {
	actor, err := h.verifyActor(c)
	if err != nil {
		return h.mapError(c, err)
	}

	var expected *string
	if raw := c.QueryParam("expectedToken"); raw != "" {
		expected = &raw
	}

	res, err := h.receipts.RevokeShareToken(c.Request().Context(), c.Param("id"), actor, expected)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, &revokeResponse{
		Revoked: res.Revoked,
		Reason:  string(res.Reason),
	})
}

func (h *Handler) RegisterDevice(c echo.Context) error {
	var req deviceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if req.Wallet == "" || req.PushToken == "" {
		return badRequest(c, "wallet and pushToken are required")
	}

	err := h.notifier.RegisterDevice(c.Request().Context(), req.Wallet, req.PushToken, req.Platform)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListNotifications(c echo.Context) error {
	wallet := c.QueryParam("wallet")
	if wallet == "" {
		return badRequest(c, "wallet is required")
	}

	notifications, err := h.notifier.ListForWallet(c.Request().Context(), wallet)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"items": notifications})
}

func (h *Handler) MarkNotificationRead(c echo.Context) error {
	err := h.notifier.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	err := h.db.Ping(ctx)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// verifyActor reconstructs the signed request from headers, verifies
// the wallet signature and returns the audit actor.
func (h *Handler) verifyActor(c echo.Context) (receipt.Actor, error) {
	req := c.Request()

	expiresAt, err := strconv.ParseInt(req.Header.Get(headerExpires), 10, 64)
	if err != nil {
		return receipt.Actor{}, auth.ErrInvalidSignature
	}
	chainID, err := strconv.ParseInt(req.Header.Get(headerChainID), 10, 64)
	if err != nil {
		return receipt.Actor{}, auth.ErrInvalidSignature
	}

	address, err := h.auth.Verify(req.Context(), &auth.SignedRequest{
		Method:    req.Method,
		Path:      req.URL.Path,
		Origin:    req.Header.Get("Origin"),
		ChainID:   chainID,
		Nonce:     req.Header.Get(headerNonce),
		ExpiresAt: expiresAt,
		Signature: req.Header.Get(headerSignature),
	})
	if err != nil {
		return receipt.Actor{}, err
	}

	return receipt.Actor{
		Addresses: []string{address},
		IP:        c.RealIP(),
		UserAgent: req.UserAgent(),
	}, nil
}

func (h *Handler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrInvalidHash),
		errors.Is(err, tracker.ErrUnsupportedChain),
		errors.Is(err, webhook.ErrUnknownNetwork):
		return badRequest(c, err.Error())

	case errors.Is(err, auth.ErrNonceUnknown),
		errors.Is(err, auth.ErrRequestExpired),
		errors.Is(err, auth.ErrInvalidSignature),
		errors.Is(err, webhook.ErrBadSignature):
		return c.JSON(http.StatusUnauthorized, &errorResponse{Error: err.Error()})

	case errors.Is(err, receipt.ErrNotOwner):
		return c.JSON(http.StatusForbidden, &errorResponse{Error: err.Error()})

	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, receipt.ErrNotFound),
		errors.Is(err, webhook.ErrUnknownProvider):
		return c.JSON(http.StatusNotFound, &errorResponse{Error: err.Error()})

	case errors.Is(err, tracker.ErrSweepInProgress):
		return c.JSON(http.StatusConflict, &errorResponse{Error: err.Error()})

	default:
		h.logger.Error("request failed",
			slog.String("path", c.Path()),
			slog.String("err", err.Error()),
		)
		return c.JSON(http.StatusInternalServerError, &errorResponse{Error: "internal error"})
	}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, &errorResponse{Error: msg})
}
