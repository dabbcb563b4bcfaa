package v2

import (
	"bytes"
	"fmt"

	"toncenter-client/internal/utils"

	"github.com/shopspring/decimal"
)

// Result structs use the camelCase keys produced by the normalizer; the
// gateway's "@type" and "@extra" fields never reach them.

const tonDecimals = 9

// Nanotons is an amount in nanotons. The gateway sends amounts either as
// strings or as bare numbers; both decode here.
type Nanotons string

func (n *Nanotons) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	b = bytes.Trim(b, `"`)
	if _, err := decimal.NewFromString(string(b)); err != nil && len(b) > 0 {
		return fmt.Errorf("invalid nanoton amount %q", string(b))
	}
	*n = Nanotons(b)
	return nil
}

// Decimal parses the amount. An empty amount is zero.
func (n Nanotons) Decimal() (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(string(n))
}

// TON converts the amount to whole coins.
func (n Nanotons) TON() (decimal.Decimal, error) {
	d, err := n.Decimal()
	if err != nil {
		return decimal.Zero, err
	}
	return d.Shift(-tonDecimals), nil
}

// Format renders the amount in TON without trailing zeros, e.g. "1.5".
func (n Nanotons) Format() string {
	if n == "" {
		return "0"
	}
	return utils.StringDecimals(string(n), tonDecimals)
}

type InternalTransactionID struct {
	LT   string `json:"lt"`
	Hash string `json:"hash"`
}

type BlockIDExt struct {
	Workchain int    `json:"workchain"`
	Shard     string `json:"shard"`
	Seqno     uint64 `json:"seqno"`
	RootHash  string `json:"rootHash"`
	FileHash  string `json:"fileHash"`
}

type AccountAddress struct {
	AccountAddress string `json:"accountAddress"`
}

type RawFullAccountState struct {
	Balance           Nanotons              `json:"balance"`
	Code              string                `json:"code"`
	Data              string                `json:"data"`
	LastTransactionID InternalTransactionID `json:"lastTransactionId"`
	BlockID           BlockIDExt            `json:"blockId"`
	FrozenHash        string                `json:"frozenHash"`
	SyncUtime         int64                 `json:"syncUtime"`
	State             string                `json:"state"`
}

type FullAccountState struct {
	Address           AccountAddress        `json:"address"`
	Balance           Nanotons              `json:"balance"`
	LastTransactionID InternalTransactionID `json:"lastTransactionId"`
	BlockID           BlockIDExt            `json:"blockId"`
	SyncUtime         int64                 `json:"syncUtime"`
	AccountState      map[string]any        `json:"accountState"`
	Revision          int                   `json:"revision"`
}

type WalletInformation struct {
	Wallet            bool                  `json:"wallet"`
	Balance           Nanotons              `json:"balance"`
	AccountState      string                `json:"accountState"`
	WalletType        string                `json:"walletType"`
	Seqno             int64                 `json:"seqno"`
	LastTransactionID InternalTransactionID `json:"lastTransactionId"`
	WalletID          int64                 `json:"walletId"`
}

type RawMessage struct {
	Hash        string         `json:"hash"`
	Source      string         `json:"source"`
	Destination string         `json:"destination"`
	Value       Nanotons       `json:"value"`
	FwdFee      Nanotons       `json:"fwdFee"`
	IhrFee      Nanotons       `json:"ihrFee"`
	CreatedLT   string         `json:"createdLt"`
	BodyHash    string         `json:"bodyHash"`
	MsgData     map[string]any `json:"msgData"`
	Message     string         `json:"message"`
}

type RawTransaction struct {
	Address       AccountAddress        `json:"address"`
	Utime         int64                 `json:"utime"`
	Data          string                `json:"data"`
	TransactionID InternalTransactionID `json:"transactionId"`
	Fee           Nanotons              `json:"fee"`
	StorageFee    Nanotons              `json:"storageFee"`
	OtherFee      Nanotons              `json:"otherFee"`
	InMsg         *RawMessage           `json:"inMsg"`
	OutMsgs       []RawMessage          `json:"outMsgs"`
}

type AddressForms struct {
	B64    string `json:"b64"`
	B64URL string `json:"b64url"`
}

type DetectAddressResult struct {
	RawForm       string       `json:"rawForm"`
	Bounceable    AddressForms `json:"bounceable"`
	NonBounceable AddressForms `json:"nonBounceable"`
	GivenType     string       `json:"givenType"`
	TestOnly      bool         `json:"testOnly"`
}

// TokenData differs between jettons and NFTs, so it is kept as a tree.
type TokenData map[string]any

// ContractType is e.g. "jetton_master", "jetton_wallet", "nft_item".
func (t TokenData) ContractType() string {
	s, _ := t["contractType"].(string)
	return s
}

type MasterchainInfo struct {
	Last          BlockIDExt `json:"last"`
	StateRootHash string     `json:"stateRootHash"`
	Init          BlockIDExt `json:"init"`
}

type BlockSignature struct {
	NodeIDShort string `json:"nodeIdShort"`
	Signature   string `json:"signature"`
}

type MasterchainBlockSignatures struct {
	ID         BlockIDExt       `json:"id"`
	Signatures []BlockSignature `json:"signatures"`
}

type ShardBlockLink struct {
	ID    BlockIDExt `json:"id"`
	Proof string     `json:"proof"`
}

type BlockLinkBack struct {
	ToKeyBlock bool       `json:"toKeyBlock"`
	From       BlockIDExt `json:"from"`
	To         BlockIDExt `json:"to"`
	DestProof  string     `json:"destProof"`
	Proof      string     `json:"proof"`
	StateProof string     `json:"stateProof"`
}

type ShardBlockProof struct {
	From    BlockIDExt       `json:"from"`
	McID    BlockIDExt       `json:"mcId"`
	Links   []ShardBlockLink `json:"links"`
	McProof []BlockLinkBack  `json:"mcProof"`
}

type ConsensusBlock struct {
	ConsensusBlock uint64  `json:"consensusBlock"`
	Timestamp      float64 `json:"timestamp"`
}

type Shards struct {
	Shards []BlockIDExt `json:"shards"`
}

type ShortTxID struct {
	Mode    int    `json:"mode"`
	Account string `json:"account"`
	LT      string `json:"lt"`
	Hash    string `json:"hash"`
}

type BlockTransactions struct {
	ID           BlockIDExt  `json:"id"`
	ReqCount     int         `json:"reqCount"`
	Incomplete   bool        `json:"incomplete"`
	Transactions []ShortTxID `json:"transactions"`
}

type BlockTransactionsExt struct {
	ID           BlockIDExt       `json:"id"`
	ReqCount     int              `json:"reqCount"`
	Incomplete   bool             `json:"incomplete"`
	Transactions []RawTransaction `json:"transactions"`
}

type BlockHeader struct {
	ID                     BlockIDExt   `json:"id"`
	GlobalID               int32        `json:"globalId"`
	Version                uint32       `json:"version"`
	Flags                  uint32       `json:"flags"`
	AfterMerge             bool         `json:"afterMerge"`
	AfterSplit             bool         `json:"afterSplit"`
	BeforeSplit            bool         `json:"beforeSplit"`
	WantMerge              bool         `json:"wantMerge"`
	WantSplit              bool         `json:"wantSplit"`
	ValidatorListHashShort int64        `json:"validatorListHashShort"`
	CatchainSeqno          uint64       `json:"catchainSeqno"`
	MinRefMcSeqno          uint64       `json:"minRefMcSeqno"`
	IsKeyBlock             bool         `json:"isKeyBlock"`
	PrevKeyBlockSeqno      uint64       `json:"prevKeyBlockSeqno"`
	StartLT                string       `json:"startLt"`
	EndLT                  string       `json:"endLt"`
	GenUtime               int64        `json:"genUtime"`
	VertSeqno              uint64       `json:"vertSeqno"`
	PrevBlocks             []BlockIDExt `json:"prevBlocks"`
}

type ConfigInfo struct {
	Config struct {
		Bytes string `json:"bytes"`
	} `json:"config"`
}

type OutMsgQueueSize struct {
	ID   BlockIDExt `json:"id"`
	Size int64      `json:"size"`
}

type OutMsgQueueSizes struct {
	Shards               []OutMsgQueueSize `json:"shards"`
	ExtMsgQueueSizeLimit int64             `json:"extMsgQueueSizeLimit"`
}

// SmcRunResult is the outcome of a get-method. Stack entries are
// [type, value] pairs such as ["num", "0x2a"].
type SmcRunResult struct {
	GasUsed           int64                 `json:"gasUsed"`
	Stack             [][]any               `json:"stack"`
	ExitCode          int                   `json:"exitCode"`
	BlockID           BlockIDExt            `json:"blockId"`
	LastTransactionID InternalTransactionID `json:"lastTransactionId"`
}

type ExtMessageInfo struct {
	Hash     string `json:"hash"`
	HashNorm string `json:"hashNorm"`
}

type Fees struct {
	InFwdFee   int64 `json:"inFwdFee"`
	StorageFee int64 `json:"storageFee"`
	GasFee     int64 `json:"gasFee"`
	FwdFee     int64 `json:"fwdFee"`
}

type QueryFees struct {
	SourceFees      Fees   `json:"sourceFees"`
	DestinationFees []Fees `json:"destinationFees"`
}
