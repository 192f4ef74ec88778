package repository

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/require"
)

const (
	testOracleAddress = "0x00000000000000000000000000000000000000f1"
	testTokenAddress  = "0xD896aA25da8e3832d68d1C05fEE9C851d42F1dC1"
	testWallet        = "0x00000000000000000000000000000000000000aa"
)

// fakeCaller answers eth_call with packed outputs, first failures calls return an error
type fakeCaller struct {
	abi      abi.ABI
	results  map[string][]interface{}
	failures int
	calls    int
}

func newFakeCaller(t *testing.T, abiJSON string, results map[string][]interface{}) *fakeCaller {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	require.NoError(t, err)
	return &fakeCaller{abi: parsed, results: results}
}

func (f *fakeCaller) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("rpc unavailable")
	}
	method, err := f.abi.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}
	out, ok := f.results[method.Name]
	if !ok {
		return nil, errors.New("execution reverted")
	}
	return method.Outputs.Pack(out...)
}

func units(whole int64, decimals int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(whole), new(big.Int).Exp(big.NewInt(10), big.NewInt(decimals), nil))
}

func TestFromUnits(t *testing.T) {
	require.InDelta(t, 0.3, fromUnits(units(3, 29), 30), 1e-12)
	require.Equal(t, 1500.0, fromUnits(units(1500, 18), 18))
	require.Zero(t, fromUnits(big.NewInt(0), 18))
}

func TestOracle_CurrentPrice(t *testing.T) {
	ctx := context.Background()
	caller := newFakeCaller(t, oracleABI, map[string][]interface{}{"getPrice": {units(3, 29)}})
	caller.failures = 2

	oracle, err := NewOracle(caller, testOracleAddress, time.Millisecond)
	require.NoError(t, err)

	result, err := oracle.CurrentPrice(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, caller.calls)
	require.InDelta(t, 0.3, result.Price, 1e-12)
	require.True(t, result.IsReal)
	require.Equal(t, sourceOracle, result.Source)
	require.Zero(t, result.Change)

	caller.results["getPrice"] = []interface{}{units(33, 28)}
	result, err = oracle.CurrentPrice(ctx)
	require.NoError(t, err)
	require.InDelta(t, 0.03, result.Change, 1e-9)
	require.InDelta(t, 10, result.ChangePercent, 1e-6)
}

func TestOracle_AttemptsExhausted(t *testing.T) {
	caller := newFakeCaller(t, oracleABI, map[string][]interface{}{"getPrice": {units(3, 29)}})
	caller.failures = oracleAttempts

	oracle, err := NewOracle(caller, testOracleAddress, time.Millisecond)
	require.NoError(t, err)

	_, err = oracle.CurrentPrice(context.Background())
	require.Error(t, err)
	require.Equal(t, oracleAttempts, caller.calls)

	_, err = NewOracle(caller, "not-an-address", time.Millisecond)
	require.Error(t, err)
}

func TestTokenBalance_BalanceOf(t *testing.T) {
	ctx := context.Background()
	caller := newFakeCaller(t, erc20ABI, map[string][]interface{}{
		"balanceOf": {units(1500, 18)},
		"decimals":  {uint8(18)},
	})
	balances, err := NewTokenBalance(caller, testTokenAddress)
	require.NoError(t, err)

	balance, err := balances.BalanceOf(ctx, testWallet)
	require.NoError(t, err)
	require.Equal(t, 1500.0, balance)

	_, err = balances.BalanceOf(ctx, "user-1")
	require.Error(t, err)
}

func TestTokenBalance_DefaultDecimals(t *testing.T) {
	caller := newFakeCaller(t, erc20ABI, map[string][]interface{}{"balanceOf": {units(7, 18)}})
	balances, err := NewTokenBalance(caller, testTokenAddress)
	require.NoError(t, err)

	balance, err := balances.BalanceOf(context.Background(), testWallet)
	require.NoError(t, err)
	require.Equal(t, 7.0, balance)
}
