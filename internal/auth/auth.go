// Package auth implements wallet-signature authentication for the
// mutating receipt endpoints. A client proves address ownership by
// personal-signing a canonical description of the request over a
// single-use server nonce.
package auth

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"

	"github.com/ricepay/tracker/internal/cache"
)

var (
	ErrNonceUnknown     = errors.New("nonce unknown or already used")
	ErrRequestExpired   = errors.New("signed request expired")
	ErrInvalidSignature = errors.New("invalid signature")
)

const nonceKeyPrefix = "auth:nonce:"

// SignedRequest is the canonical content a client signs. Every field is
// bound into the message so a captured signature cannot be replayed
// against another route or after expiry.
type SignedRequest struct {
	Method    string
	Path      string
	Origin    string
	ChainID   int64
	Nonce     string
	ExpiresAt int64
	Signature string
}

// Nonce is a freshly issued challenge.
type Nonce struct {
	Value     string    `json:"nonce"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Service struct {
	cache    cache.Store
	nonceTTL time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

type Option func(*Service)

func WithNow(nowFunc func() time.Time) Option {
	return func(s *Service) {
		s.now = nowFunc
	}
}

func NewService(cacheStore cache.Store, nonceTTL time.Duration, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		cache:    cacheStore,
		nonceTTL: nonceTTL,
		logger:   logger.With(slog.String("module", "auth")),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) IssueNonce(_ context.Context) (*Nonce, error) {
	value := uuid.NewString()

	err := s.cache.Set(nonceKeyPrefix+value, []byte("1"), s.nonceTTL)
	if err != nil {
		return nil, err
	}

	return &Nonce{Value: value, ExpiresAt: s.now().Add(s.nonceTTL)}, nil
}

// Verify consumes the request's nonce and recovers the signer address.
// The nonce delete is the single atomic step: two requests carrying the
// same nonce race on it, exactly one wins.
func (s *Service) Verify(_ context.Context, req *SignedRequest) (string, error) {
	if req.ExpiresAt < s.now().Unix() {
		return "", ErrRequestExpired
	}

	err := s.cache.Del(nonceKeyPrefix + req.Nonce)
	if errors.Is(err, cache.ErrCacheNotFound) {
		return "", ErrNonceUnknown
	}
	if err != nil {
		return "", err
	}

	address, err := recoverAddress(canonicalMessage(req), req.Signature)
	if err != nil {
		return "", err
	}

	return address, nil
}

// canonicalMessage is the exact string clients sign. Field order and
// separators are part of the protocol.
func canonicalMessage(req *SignedRequest) string {
	return fmt.Sprintf("%s\n%s\n%s\n%d\n%s\n%d",
		strings.ToUpper(req.Method), req.Path, req.Origin, req.ChainID, req.Nonce, req.ExpiresAt)
}

// recoverAddress recovers the EIP-191 personal-sign signer of message.
func recoverAddress(message, signature string) (string, error) {
	sig, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil || len(sig) != 65 {
		return "", ErrInvalidSignature
	}

	// Wallets return V as 27/28, crypto.SigToPub wants 0/1.
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	if sig[64] > 1 {
		return "", ErrInvalidSignature
	}

	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	digest := crypto.Keccak256([]byte(prefixed))

	pubKey, err := crypto.SigToPub(digest, sig)
	if err != nil {
		return "", errors.Join(ErrInvalidSignature, err)
	}

	return strings.ToLower(crypto.PubkeyToAddress(*pubKey).Hex()), nil
}
