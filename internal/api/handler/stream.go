package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ricepay/tracker/internal/tracker/store"
)

const streamKeepAliveInterval = 25 * time.Second

// maxWebhookBody bounds webhook reads; providers send kilobytes, not
// megabytes.
const maxWebhookBody = 1 << 20

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
}

// StreamUpdates serves transaction updates as server-sent events.
// Optional chainId and hash query params narrow the feed to one
// transaction; without them the client sees every update.
func (h *Handler) StreamUpdates(c echo.Context) error {
	var (
		filterChain int64
		filterHash  string
	)
	if raw := c.QueryParam("chainId"); raw != "" {
		chainID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest(c, "chainId must be an integer")
		}
		filterChain = chainID
	}
	if raw := c.QueryParam("hash"); raw != "" {
		hash, err := store.NormalizeHash(raw)
		if err != nil {
			return badRequest(c, err.Error())
		}
		filterHash = hash
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	updates, unsubscribe := h.updates.Subscribe()
	defer unsubscribe()

	keepAlive := time.NewTicker(streamKeepAliveInterval)
	defer keepAlive.Stop()

	ctx := c.Request().Context()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-keepAlive.C:
			fmt.Fprint(res, ": keep-alive\n\n")
			res.Flush()

		case data, ok := <-updates:
			if !ok {
				return nil
			}
			if filterChain != 0 && data.ChainID != filterChain {
				continue
			}
			if filterHash != "" && data.TxHash != filterHash {
				continue
			}

			payload, err := json.Marshal(toTxResponse(data))
			if err != nil {
				continue
			}

			fmt.Fprintf(res, "event: tx\ndata: %s\n\n", payload)
			res.Flush()
		}
	}
}
