package repository

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/model"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
)

const (
	sourceOracle = "On-chain Oracle"

	oracleDecimals = 30
	oracleAttempts = 3
)

const oracleABI = `[
	{"inputs":[],"name":"getPrice","outputs":[{"name":"","type":"uint256"}],"type":"function"}
]`

// Oracle on-chain price oracle contract
type Oracle struct {
	caller  ContractCaller
	address common.Address
	abi     abi.ABI
	delay   time.Duration

	mu   sync.Mutex
	last float64
}

// NewOracle constructor, delay is the pause between attempts
func NewOracle(caller ContractCaller, address string, delay time.Duration) (*Oracle, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("oracle - NewOracle: invalid oracle address %q", address)
	}
	parsed, err := abi.JSON(strings.NewReader(oracleABI))
	if err != nil {
		return nil, fmt.Errorf("oracle - NewOracle - JSON: %w", err)
	}
	return &Oracle{caller: caller, address: common.HexToAddress(address), abi: parsed, delay: delay}, nil
}

// Name source name
func (o *Oracle) Name() string {
	return sourceOracle
}

// CurrentPrice getPrice() of the oracle, change is relative to the previous oracle read
func (o *Oracle) CurrentPrice(ctx context.Context) (*model.PriceResult, error) {
	var lastErr error
	for attempt := 1; attempt <= oracleAttempts; attempt++ {
		price, err := o.read(ctx)
		if err == nil {
			return o.result(price), nil
		}
		lastErr = err
		logrus.WithField("attempt", attempt).Debugf("oracle - CurrentPrice - read: %v", err)
		if attempt == oracleAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("oracle - CurrentPrice: %w", ctx.Err())
		case <-time.After(o.delay):
		}
	}
	return nil, fmt.Errorf("oracle - CurrentPrice: %d attempts failed: %w", oracleAttempts, lastErr)
}

func (o *Oracle) read(ctx context.Context) (float64, error) {
	out, err := callContract(ctx, o.caller, &o.abi, o.address, "getPrice")
	if err != nil {
		return 0, err
	}
	raw, ok := out[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("unexpected type %T", out[0])
	}
	return fromUnits(raw, oracleDecimals), nil
}

func (o *Oracle) result(price float64) *model.PriceResult {
	o.mu.Lock()
	defer o.mu.Unlock()
	result := &model.PriceResult{Price: price, IsReal: true, Source: sourceOracle, Time: time.Now().UTC()}
	if o.last > 0 {
		result.Change = price - o.last
		result.ChangePercent = result.Change / o.last * 100
	}
	o.last = price
	return result
}
