package sdk

// Intent mirrors the intent entries a user attached to the transaction.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

// Sender identifies who signed the current transaction.
type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Env is the per-call execution environment handed over by the host.
type Env struct {
	ContractId  string   `json:"contract.id"`
	TxId        string   `json:"tx.id"`
	Index       int64    `json:"tx.index"`
	OpIndex     int64    `json:"tx.op_index"`
	BlockId     string   `json:"block.id"`
	BlockHeight uint64   `json:"block.height"`
	Timestamp   string   `json:"block.timestamp"`
	Sender      Sender   `json:"-"`
	Intents     []Intent `json:"intents"`
}

// ContractCallOptions carries optional intents forwarded to a callee contract.
type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}
