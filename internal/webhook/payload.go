package webhook

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ricepay/tracker/internal/tracker/store"
)

// Payload is the provider-agnostic view of one webhook delivery.
type Payload struct {
	EventID       string
	Network       string
	Status        store.Status
	BlockNumber   *uint64
	Confirmations *uint64
	Hashes        []string
}

// Extract reads the fields the tracker cares about out of a webhook
// body. Providers disagree on shape, so hash extraction tries a fixed
// list of known locations in order and collects every valid hash it
// finds. An unparseable or hash-free body yields an empty Hashes slice,
// not an error; deliveries we cannot use are acknowledged and dropped.
func Extract(raw []byte) *Payload {
	p := &Payload{
		EventID: fallbackEventID(raw),
		Status:  store.StatusConfirmed,
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return p
	}

	if id := digString(body, "id"); id != "" {
		p.EventID = id
	} else if id := digString(body, "webhookId"); id != "" {
		p.EventID = id
	}

	if network := digString(body, "event", "network"); network != "" {
		p.Network = network
	} else {
		p.Network = digString(body, "network")
	}

	p.Status = extractStatus(body)
	p.BlockNumber = extractUint(body, "event", "data", "block", "number")
	if p.BlockNumber == nil {
		p.BlockNumber = extractUint(body, "blockNumber")
	}
	p.Confirmations = extractUint(body, "confirmations")

	p.Hashes = extractHashes(body)

	return p
}

// fallbackEventID derives a deterministic id from the body itself, so
// an exact redelivery of an id-less payload still deduplicates.
func fallbackEventID(raw []byte) string {
	sum := sha256.Sum256(raw)
	return "sha256:" + hex.EncodeToString(sum[:16])
}

func extractStatus(body map[string]any) store.Status {
	raw := digString(body, "event", "status")
	if raw == "" {
		raw = digString(body, "status")
	}
	if raw == "" {
		raw = digString(body, "event", "type")
	}

	switch strings.ToUpper(raw) {
	case "FAILED", "REVERTED":
		return store.StatusFailed
	case "DROPPED", "REPLACED", "DROPPED_REPLACED":
		return store.StatusDroppedReplaced
	default:
		// Providers emit mined-transaction events; absent an explicit
		// failure marker the transaction landed.
		return store.StatusConfirmed
	}
}

// extractHashes walks the known payload shapes in order:
// event.activity[].{hash,log.transactionHash}, then the nested
// transaction objects, then a top-level hash field.
func extractHashes(body map[string]any) []string {
	var found []string

	if activity, ok := dig(body, "event", "activity").([]any); ok {
		for _, entry := range activity {
			item, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			found = append(found, digString(item, "hash"))
			found = append(found, digString(item, "log", "transactionHash"))
		}
	}

	found = append(found,
		digString(body, "event", "transaction", "hash"),
		digString(body, "event", "data", "transaction", "hash"),
		digString(body, "data", "transaction", "hash"),
		digString(body, "transactionHash"),
		digString(body, "hash"),
	)

	var hashes []string
	seen := map[string]struct{}{}
	for _, candidate := range found {
		hash, err := store.NormalizeHash(candidate)
		if err != nil {
			continue
		}
		if _, dup := seen[hash]; dup {
			continue
		}
		seen[hash] = struct{}{}
		hashes = append(hashes, hash)
	}

	return hashes
}

func dig(body map[string]any, path ...string) any {
	var current any = body
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[key]
	}
	return current
}

func digString(body map[string]any, path ...string) string {
	s, _ := dig(body, path...).(string)
	return s
}

func extractUint(body map[string]any, path ...string) *uint64 {
	switch v := dig(body, path...).(type) {
	case float64:
		if v < 0 {
			return nil
		}
		u := uint64(v)
		return &u
	case string:
		s := strings.TrimPrefix(v, "0x")
		base := 10
		if s != v {
			base = 16
		}
		u, err := strconv.ParseUint(s, base, 64)
		if err != nil {
			return nil
		}
		return &u
	default:
		return nil
	}
}
