package postgresql

import (
	"database/sql"

	"github.com/ricepay/tracker/internal/receipt/store"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReceipt(row rowScanner) (*store.Receipt, error) {
	receipt := &store.Receipt{}

	var fiatRate, fiatAmount, gasPaid, gasFiatAmount, appFee, appFeeFiat, shareToken sql.NullString
	var snapshot []byte

	err := row.Scan(
		&receipt.ID,
		&receipt.TransactionID,
		&receipt.ChainID,
		&receipt.Chain,
		&receipt.TxHash,
		&receipt.Token,
		&receipt.Amount,
		&receipt.FiatCurrency,
		&receipt.QuoteCurrency,
		&fiatRate,
		&fiatAmount,
		&gasPaid,
		&gasFiatAmount,
		&appFee,
		&appFeeFiat,
		&receipt.PolicyVersion,
		&receipt.FromAddress,
		&receipt.ToAddress,
		&receipt.SubmittedAt,
		&receipt.ConfirmedAt,
		&shareToken,
		&snapshot,
		&receipt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	receipt.FiatRate = stringPtr(fiatRate)
	receipt.FiatAmount = stringPtr(fiatAmount)
	receipt.GasPaid = stringPtr(gasPaid)
	receipt.GasFiatAmount = stringPtr(gasFiatAmount)
	receipt.AppFee = stringPtr(appFee)
	receipt.AppFeeFiat = stringPtr(appFeeFiat)
	receipt.ShareToken = stringPtr(shareToken)
	receipt.Snapshot = snapshot

	return receipt, nil
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return b
}
