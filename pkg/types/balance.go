package types

// Balance carries one currency's account balance. Available is the part not
// locked in open orders; not every exchange reports it.
type Balance struct {
	Currency  string  `json:"currency"`
	Total     float64 `json:"balance"`
	Available float64 `json:"available,omitempty"`
}

// BalanceMap maps a lowercase currency code to its balance.
type BalanceMap map[string]Balance
