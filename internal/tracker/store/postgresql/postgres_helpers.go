package postgresql

import (
	"database/sql"

	"github.com/ricepay/tracker/internal/tracker/store"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanData(row rowScanner) (*store.Data, error) {
	data := &store.Data{}

	var token sql.NullString
	var amount sql.NullString
	var blockNumber sql.NullInt64
	var confirmations sql.NullInt64
	var lastEventID sql.NullString

	err := row.Scan(
		&data.ID,
		&data.ChainID,
		&data.Chain,
		&data.TxHash,
		&data.FromAddress,
		&data.ToAddress,
		&token,
		&amount,
		&data.Status,
		&blockNumber,
		&confirmations,
		&lastEventID,
		&data.CreatedAt,
		&data.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if token.Valid {
		data.Token = &token.String
	}
	if amount.Valid {
		data.Amount = &amount.String
	}
	if blockNumber.Valid {
		bn := uint64(blockNumber.Int64)
		data.BlockNumber = &bn
	}
	if confirmations.Valid {
		c := uint64(confirmations.Int64)
		data.Confirmations = &c
	}
	if lastEventID.Valid {
		data.LastEventID = &lastEventID.String
	}

	return data, nil
}

func scanDataRows(rows *sql.Rows) ([]*store.Data, error) {
	var result []*store.Data

	for rows.Next() {
		data, err := scanData(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, data)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullUint64(v *uint64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return b
}
