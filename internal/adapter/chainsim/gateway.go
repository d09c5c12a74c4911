// Package chainsim is an in-process chain endpoint for development and
// testing. It honors the full gateway contract, including rejection by empty
// hash and receipts that appear after broadcast, without any network.
package chainsim

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"sync"

	"eth-hot-wallet/internal/core/domain"
	"eth-hot-wallet/internal/core/ports"

	"github.com/rs/zerolog"
)

const defaultGasUsed = 21_000

// Gateway implements ports.ChainGateway against in-memory state.
type Gateway struct {
	log zerolog.Logger

	mu           sync.Mutex
	balances     map[string]map[string]*big.Int
	txns         map[string]*ports.ChainTransaction
	receipts     map[string]*ports.ChainReceipt
	subs         map[string][]chan ports.DepositEvent
	pending      map[string]*ports.ChainTransaction // signed payload -> body
	holdReceipts bool
	rejectNext   bool
}

// New creates an empty simulated chain.
func New(log zerolog.Logger) *Gateway {
	return &Gateway{
		log:      log,
		balances: make(map[string]map[string]*big.Int),
		txns:     make(map[string]*ports.ChainTransaction),
		receipts: make(map[string]*ports.ChainReceipt),
		subs:     make(map[string][]chan ports.DepositEvent),
		pending:  make(map[string]*ports.ChainTransaction),
	}
}

// GetBalance returns the simulated balance per requested token, zero for
// anything unfunded.
func (g *Gateway) GetBalance(_ context.Context, address string, tokens []string) (map[string]*big.Int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make(map[string]*big.Int, len(tokens))
	for _, token := range tokens {
		if b, ok := g.balances[address][token]; ok {
			out[token] = new(big.Int).Set(b)
		} else {
			out[token] = big.NewInt(0)
		}
	}
	return out, nil
}

// SubscribeDeposits returns a live event channel for one address. The channel
// closes when ctx is cancelled.
func (g *Gateway) SubscribeDeposits(ctx context.Context, address string) (<-chan ports.DepositEvent, error) {
	ch := make(chan ports.DepositEvent, 16)

	g.mu.Lock()
	g.subs[address] = append(g.subs[address], ch)
	g.mu.Unlock()

	go func() {
		<-ctx.Done()
		g.mu.Lock()
		defer g.mu.Unlock()
		for i, sub := range g.subs[address] {
			if sub == ch {
				g.subs[address] = append(g.subs[address][:i], g.subs[address][i+1:]...)
				close(ch)
				return
			}
		}
	}()
	return ch, nil
}

// GetTransaction returns nil for a hash the simulated chain never saw.
func (g *Gateway) GetTransaction(_ context.Context, hash string) (*ports.ChainTransaction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.txns[hash], nil
}

// GetReceipt returns nil while a transaction is still unsettled.
func (g *Gateway) GetReceipt(_ context.Context, hash string) (*ports.ChainReceipt, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.receipts[hash], nil
}

// RegisterAddress simulates a sub-account contract deployment and returns its
// address.
func (g *Gateway) RegisterAddress(_ context.Context, cred *domain.SigningCredential, gasPrice, gasLimit *big.Int) (string, error) {
	if cred == nil || len(cred.PrivateKey) == 0 {
		return "", fmt.Errorf("signing credential required")
	}
	address, err := randomAddress()
	if err != nil {
		return "", err
	}
	g.log.Debug().Str("address", address).Str("gas_price", gasPrice.String()).Msg("simulated contract deployed")
	return address, nil
}

// BuildAndSign produces an opaque signed payload for Broadcast.
func (g *Gateway) BuildAndSign(_ context.Context, cred *domain.SigningCredential, destination string, amount, gasPrice, gasLimit *big.Int) (string, error) {
	if cred == nil || len(cred.PrivateKey) == 0 {
		return "", fmt.Errorf("signing credential required")
	}
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("building payload: %w", err)
	}
	payload := "0x" + hex.EncodeToString(raw)

	g.mu.Lock()
	g.pending[payload] = &ports.ChainTransaction{
		Amount:   new(big.Int).Set(amount),
		Gas:      new(big.Int).Set(gasLimit),
		GasPrice: new(big.Int).Set(gasPrice),
	}
	g.mu.Unlock()
	return payload, nil
}

// Broadcast accepts a signed payload and assigns it a hash. A rejection
// scheduled with RejectNextBroadcast comes back as an empty hash with no
// error, matching how the network reports refusals.
func (g *Gateway) Broadcast(_ context.Context, signedHex string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.rejectNext {
		g.rejectNext = false
		return "", nil
	}
	body, ok := g.pending[signedHex]
	if !ok {
		return "", fmt.Errorf("unknown signed payload")
	}
	delete(g.pending, signedHex)

	hash, err := randomHash()
	if err != nil {
		return "", err
	}
	g.txns[hash] = body
	if !g.holdReceipts {
		g.receipts[hash] = &ports.ChainReceipt{Success: true, GasUsed: big.NewInt(defaultGasUsed)}
	}
	return hash, nil
}

// ---- test and development hooks ----

// Fund sets an address balance directly.
func (g *Gateway) Fund(address, token string, amount *big.Int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.balances[address] == nil {
		g.balances[address] = make(map[string]*big.Int)
	}
	g.balances[address][token] = new(big.Int).Set(amount)
}

// InjectDeposit records an inbound transaction and notifies every subscriber
// of the address. receipt may be nil to simulate an unsettled deposit.
func (g *Gateway) InjectDeposit(address, hash string, amount *big.Int, receipt *ports.ChainReceipt) {
	g.mu.Lock()
	g.txns[hash] = &ports.ChainTransaction{Amount: new(big.Int).Set(amount)}
	if receipt != nil {
		g.receipts[hash] = receipt
	}
	subs := append([]chan ports.DepositEvent(nil), g.subs[address]...)
	g.mu.Unlock()

	for _, ch := range subs {
		ch <- ports.DepositEvent{Hash: hash}
	}
}

// SetReceipt settles a hash after the fact.
func (g *Gateway) SetReceipt(hash string, receipt *ports.ChainReceipt) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.receipts[hash] = receipt
}

// HoldReceipts stops Broadcast from settling transactions immediately, so
// submitted withdrawals stay receipt-less until SetReceipt.
func (g *Gateway) HoldReceipts(hold bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.holdReceipts = hold
}

// RejectNextBroadcast makes the next Broadcast report a network refusal.
func (g *Gateway) RejectNextBroadcast() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rejectNext = true
}

// Subscribers reports how many live subscriptions an address has.
func (g *Gateway) Subscribers(address string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.subs[address])
}

func randomAddress() (string, error) {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generating address: %w", err)
	}
	return "0x" + hex.EncodeToString(raw), nil
}

func randomHash() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generating hash: %w", err)
	}
	return "0x" + hex.EncodeToString(raw), nil
}
