package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"toncenter-client/internal/log"
	"toncenter-client/internal/utils"
	v2 "toncenter-client/toncenter/v2"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrUsage = errors.New("usage")

// Result is what a command prints. BalanceTON is set for commands that
// return a balance.
type Result struct {
	Command    string `json:"command"`
	Data       any    `json:"data"`
	BalanceTON string `json:"balanceTon,omitempty"`
}

type command struct {
	args  string
	nargs int
	run   func(ctx context.Context, api v2.API, args []string) (*Result, error)
}

var commands = map[string]command{
	"info": {"<address>", 1, func(ctx context.Context, api v2.API, args []string) (*Result, error) {
		info, err := api.GetAddressInformation(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return &Result{Data: info, BalanceTON: info.Balance.Format()}, nil
	}},
	"wallet": {"<address>", 1, func(ctx context.Context, api v2.API, args []string) (*Result, error) {
		w, err := api.GetWalletInformation(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return &Result{Data: w, BalanceTON: w.Balance.Format()}, nil
	}},
	"balance": {"<address>", 1, func(ctx context.Context, api v2.API, args []string) (*Result, error) {
		b, err := api.GetAddressBalance(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return &Result{Data: b, BalanceTON: b.Format()}, nil
	}},
	"state": {"<address>", 1, func(ctx context.Context, api v2.API, args []string) (*Result, error) {
		s, err := api.GetAddressState(ctx, args[0])
		return &Result{Data: s}, err
	}},
	"detect": {"<address>", 1, func(ctx context.Context, api v2.API, args []string) (*Result, error) {
		d, err := api.DetectAddress(ctx, args[0])
		return &Result{Data: d}, err
	}},
	"txs": {"<address> [limit]", 1, func(ctx context.Context, api v2.API, args []string) (*Result, error) {
		var opts *v2.GetTransactionsOptions
		if len(args) > 1 {
			limit, err := strconv.Atoi(args[1])
			if err != nil {
				return nil, errors.Wrapf(ErrUsage, "invalid limit %q", args[1])
			}
			opts = &v2.GetTransactionsOptions{Limit: &limit}
		}
		txs, err := api.GetTransactions(ctx, args[0], opts)
		return &Result{Data: txs}, err
	}},
	"masterchain": {"", 0, func(ctx context.Context, api v2.API, args []string) (*Result, error) {
		mi, err := api.GetMasterchainInfo(ctx)
		return &Result{Data: mi}, err
	}},
	"consensus": {"", 0, func(ctx context.Context, api v2.API, args []string) (*Result, error) {
		cb, err := api.GetConsensusBlock(ctx)
		return &Result{Data: cb}, err
	}},
	"shards": {"<seqno>", 1, func(ctx context.Context, api v2.API, args []string) (*Result, error) {
		seqno, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrUsage, "invalid seqno %q", args[0])
		}
		shards, err := api.GetShards(ctx, seqno)
		return &Result{Data: shards}, err
	}},
	"rpc": {"<method> [json-params]", 1, func(ctx context.Context, api v2.API, args []string) (*Result, error) {
		params := map[string]any{}
		if len(args) > 1 {
			if err := json.Unmarshal([]byte(args[1]), &params); err != nil {
				return nil, errors.Wrapf(ErrUsage, "invalid params: %s", err)
			}
		}
		res, err := api.JSONRPC(ctx, args[0], params, 1)
		return &Result{Data: res}, err
	}},
}

// QueryService runs CLI commands against the gateway.
type QueryService struct {
	api v2.API
}

func NewQueryService(api v2.API) *QueryService {
	return &QueryService{api: api}
}

func (s *QueryService) Run(ctx context.Context, name string, args []string) (*Result, error) {
	cmd, ok := commands[name]
	if !ok {
		return nil, errors.Wrapf(ErrUsage, "unknown command %q", name)
	}
	if len(args) < cmd.nargs {
		return nil, errors.Wrapf(ErrUsage, "%s %s", name, cmd.args)
	}
	log.Debug("run command", zap.String("command", name), zap.Strings("args", args))
	res, err := cmd.run(ctx, s.api, args)
	if err != nil {
		log.Warne("command failed: "+name, err)
		return nil, errors.WithMessage(err, name)
	}
	res.Command = name
	return res, nil
}

// CommandNames lists the commands Run accepts in a stable order.
func CommandNames() []string {
	return utils.SortedKeys(commands)
}

// CommandArgs describes the positional arguments of a command.
func CommandArgs(name string) string {
	return commands[name].args
}

func Usage() string {
	var b strings.Builder
	for _, name := range CommandNames() {
		fmt.Fprintf(&b, "  %s %s\n", name, CommandArgs(name))
	}
	return b.String()
}
