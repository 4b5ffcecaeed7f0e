package handler

import (
	"time"

	receiptstore "github.com/ricepay/tracker/internal/receipt/store"
	"github.com/ricepay/tracker/internal/tracker/store"
)

type intentRequest struct {
	ChainID int64   `json:"chainId"`
	TxHash  string  `json:"txHash"`
	From    string  `json:"from"`
	To      string  `json:"to"`
	Token   *string `json:"token,omitempty"`
	Amount  *string `json:"amount,omitempty"`
}

type txResponse struct {
	ID            string    `json:"id"`
	ChainID       int64     `json:"chainId"`
	Chain         string    `json:"chain"`
	TxHash        string    `json:"txHash"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Token         *string   `json:"token,omitempty"`
	Amount        *string   `json:"amount,omitempty"`
	Status        string    `json:"status"`
	BlockNumber   *uint64   `json:"blockNumber,omitempty"`
	Confirmations *uint64   `json:"confirmations,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toTxResponse(d *store.Data) *txResponse {
	return &txResponse{
		ID:            d.ID,
		ChainID:       d.ChainID,
		Chain:         d.Chain,
		TxHash:        d.TxHash,
		From:          d.FromAddress,
		To:            d.ToAddress,
		Token:         d.Token,
		Amount:        d.Amount,
		Status:        string(d.Status),
		BlockNumber:   d.BlockNumber,
		Confirmations: d.Confirmations,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

type receiptResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transactionId"`
	ChainID       int64     `json:"chainId"`
	Chain         string    `json:"chain"`
	TxHash        string    `json:"txHash"`
	Direction     string    `json:"direction,omitempty"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Token         string    `json:"token"`
	Amount        string    `json:"amount"`
	FiatCurrency  string    `json:"fiatCurrency"`
	FiatRate      *string   `json:"fiatRate,omitempty"`
	FiatAmount    *string   `json:"fiatAmount,omitempty"`
	PolicyVersion string    `json:"policyVersion"`
	SubmittedAt   time.Time `json:"submittedAt"`
	ConfirmedAt   time.Time `json:"confirmedAt"`
	Shared        bool      `json:"shared"`
}

func toReceiptResponse(r *receiptstore.Receipt) *receiptResponse {
	return &receiptResponse{
		ID:            r.ID,
		TransactionID: r.TransactionID,
		ChainID:       r.ChainID,
		Chain:         r.Chain,
		TxHash:        r.TxHash,
		Direction:     string(r.Direction),
		From:          r.FromAddress,
		To:            r.ToAddress,
		Token:         r.Token,
		Amount:        r.Amount,
		FiatCurrency:  r.FiatCurrency,
		FiatRate:      r.FiatRate,
		FiatAmount:    r.FiatAmount,
		PolicyVersion: r.PolicyVersion,
		SubmittedAt:   r.SubmittedAt,
		ConfirmedAt:   r.ConfirmedAt,
		Shared:        r.ShareToken != nil,
	}
}

type shareResponse struct {
	ShareToken string `json:"shareToken"`
	URLPath    string `json:"urlPath"`
}

type revokeResponse struct {
	Revoked bool   `json:"revoked"`
	Reason  string `json:"reason"`
}

type deviceRequest struct {
	Wallet    string `json:"wallet"`
	PushToken string `json:"pushToken"`
	Platform  string `json:"platform"`
}

type errorResponse struct {
	Error string `json:"error"`
}
