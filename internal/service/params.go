package service

import (
	"fmt"
	"math/big"
	"time"

	"eth-hot-wallet/config"
)

// ChainParams is the parsed fixed fee policy and chain identity shared by the
// services. Gas values are wei; there is no dynamic fee estimation.
type ChainParams struct {
	Symbol           string
	TransferGasPrice *big.Int
	TransferGasLimit *big.Int
	ContractGasPrice *big.Int
	ContractGasLimit *big.Int
	SweepInterval    time.Duration
}

// ChainParamsFromConfig parses the decimal gas strings from configuration.
func ChainParamsFromConfig(cfg config.ChainConfig) (*ChainParams, error) {
	p := &ChainParams{
		Symbol:        cfg.Symbol,
		SweepInterval: cfg.SweepInterval,
	}
	for _, f := range []struct {
		name  string
		raw   string
		field **big.Int
	}{
		{"chain.transfer_gas_price", cfg.TransferGasPrice, &p.TransferGasPrice},
		{"chain.transfer_gas_limit", cfg.TransferGasLimit, &p.TransferGasLimit},
		{"chain.contract_gas_price", cfg.ContractGasPrice, &p.ContractGasPrice},
		{"chain.contract_gas_limit", cfg.ContractGasLimit, &p.ContractGasLimit},
	} {
		v, ok := new(big.Int).SetString(f.raw, 10)
		if !ok || v.Sign() <= 0 {
			return nil, fmt.Errorf("%s: %q is not a positive decimal integer", f.name, f.raw)
		}
		*f.field = v
	}
	return p, nil
}

// ValidSymbol reports whether symbol names the one supported coin.
func (p *ChainParams) ValidSymbol(symbol string) bool {
	return symbol == p.Symbol
}
