package sdk

// Env is the execution environment the host hands to every invocation.
type Env struct {
	ContractID  string
	TxID        string
	BlockHeight uint64
	Timestamp   string
	Sender      Address
	Funds       []Coin
}

// NewEnv builds an env for a sender with optional attached coins.
// Example payload: sdk.NewEnv("user1", sdk.NewCoin("inj", 100))
func NewEnv(sender Address, funds ...Coin) Env {
	return Env{
		Sender: sender,
		Funds:  funds,
	}
}
