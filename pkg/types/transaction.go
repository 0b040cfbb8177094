package types

import (
	"time"
)

type TransactionAddress struct {
	Address string `json:"address"`
	// OptionalAddress is the secondary routing field, a tag or memo, where
	// the chain needs one.
	OptionalAddress string       `json:"optionalAddress,omitempty"`
	Currency        string       `json:"currency,omitempty"`
	Exchange        ExchangeName `json:"exchange,omitempty"`
}

// TransactionResult is one confirmed deposit or withdrawal record.
type TransactionResult struct {
	Currency    string             `json:"currency"`
	FromAddress TransactionAddress `json:"fromAddress"`
	ToAddress   TransactionAddress `json:"toAddress"`
	Amount      float64            `json:"amount"`
	Fee         float64            `json:"fee,omitempty"`
	TxID        string             `json:"txid,omitempty"`
	Time        time.Time          `json:"timestamp"`
}

type WithdrawParams struct {
	Currency  string             `json:"currency"`
	ToAddress TransactionAddress `json:"toAddress"`
	Amount    float64            `json:"amount"`
}
