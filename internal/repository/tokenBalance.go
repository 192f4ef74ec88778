package repository

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const erc20ABI = `[
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"type":"function"},
	{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"type":"function"}
]`

// TokenBalance ERC-20 balance reader of the settlement token
type TokenBalance struct {
	caller ContractCaller
	token  common.Address
	abi    abi.ABI
}

// NewTokenBalance constructor
func NewTokenBalance(caller ContractCaller, tokenAddress string) (*TokenBalance, error) {
	if !common.IsHexAddress(tokenAddress) {
		return nil, fmt.Errorf("tokenBalance - NewTokenBalance: invalid token address %q", tokenAddress)
	}
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("tokenBalance - NewTokenBalance - JSON: %w", err)
	}
	return &TokenBalance{caller: caller, token: common.HexToAddress(tokenAddress), abi: parsed}, nil
}

// BalanceOf token balance of a wallet address in whole tokens
func (t *TokenBalance) BalanceOf(ctx context.Context, account string) (float64, error) {
	if !common.IsHexAddress(account) {
		return 0, fmt.Errorf("tokenBalance - BalanceOf: %q is not a wallet address", account)
	}
	out, err := callContract(ctx, t.caller, &t.abi, t.token, "balanceOf", common.HexToAddress(account))
	if err != nil {
		return 0, fmt.Errorf("tokenBalance - BalanceOf: %w", err)
	}
	balance, ok := out[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("tokenBalance - BalanceOf: unexpected type %T", out[0])
	}

	decimals := int64(18)
	if out, err = callContract(ctx, t.caller, &t.abi, t.token, "decimals"); err == nil {
		if d, ok := out[0].(uint8); ok {
			decimals = int64(d)
		}
	}
	return fromUnits(balance, decimals), nil
}
