package chainsim

import (
	"context"
	"math/big"
	"testing"
	"time"

	"eth-hot-wallet/internal/core/domain"
	"eth-hot-wallet/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway() *Gateway {
	return New(zerolog.Nop())
}

func testCred() *domain.SigningCredential {
	return &domain.SigningCredential{Address: "0xacct", PrivateKey: []byte{1, 2, 3}}
}

func TestGateway_GetBalance(t *testing.T) {
	g := testGateway()
	ctx := context.Background()

	g.Fund("0xaddr", "ETH", big.NewInt(5000))

	balances, err := g.GetBalance(ctx, "0xaddr", []string{"ETH"})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(5000), balances["ETH"])

	balances, err = g.GetBalance(ctx, "0xother", []string{"ETH"})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0), balances["ETH"], "unfunded address reads zero")
}

func TestGateway_SignAndBroadcast(t *testing.T) {
	g := testGateway()
	ctx := context.Background()

	signed, err := g.BuildAndSign(ctx, testCred(), "0xdest", big.NewInt(100), big.NewInt(2), big.NewInt(21_000))
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	hash, err := g.Broadcast(ctx, signed)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	txn, err := g.GetTransaction(ctx, hash)
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, big.NewInt(100), txn.Amount)
	assert.Equal(t, big.NewInt(2), txn.GasPrice)

	receipt, err := g.GetReceipt(ctx, hash)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.True(t, receipt.Success)
}

func TestGateway_Broadcast_UnknownPayload(t *testing.T) {
	g := testGateway()

	_, err := g.Broadcast(context.Background(), "0xnothing")
	assert.Error(t, err)
}

func TestGateway_RejectNextBroadcast(t *testing.T) {
	g := testGateway()
	ctx := context.Background()

	signed, err := g.BuildAndSign(ctx, testCred(), "0xdest", big.NewInt(100), big.NewInt(2), big.NewInt(21_000))
	require.NoError(t, err)

	g.RejectNextBroadcast()
	hash, err := g.Broadcast(ctx, signed)
	require.NoError(t, err, "a network refusal is not a transport error")
	assert.Empty(t, hash)
}

func TestGateway_HoldReceipts(t *testing.T) {
	g := testGateway()
	ctx := context.Background()
	g.HoldReceipts(true)

	signed, err := g.BuildAndSign(ctx, testCred(), "0xdest", big.NewInt(100), big.NewInt(2), big.NewInt(21_000))
	require.NoError(t, err)
	hash, err := g.Broadcast(ctx, signed)
	require.NoError(t, err)

	receipt, err := g.GetReceipt(ctx, hash)
	require.NoError(t, err)
	assert.Nil(t, receipt, "held transaction has no receipt yet")

	g.SetReceipt(hash, &ports.ChainReceipt{Success: true, GasUsed: big.NewInt(21_000)})
	receipt, err = g.GetReceipt(ctx, hash)
	require.NoError(t, err)
	require.NotNil(t, receipt)
}

func TestGateway_SubscribeAndInjectDeposit(t *testing.T) {
	g := testGateway()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := g.SubscribeDeposits(ctx, "0xaddr")
	require.NoError(t, err)
	assert.Equal(t, 1, g.Subscribers("0xaddr"))

	g.InjectDeposit("0xaddr", "0xdep", big.NewInt(900), &ports.ChainReceipt{Success: true})

	select {
	case ev := <-events:
		assert.Equal(t, "0xdep", ev.Hash)
	case <-time.After(time.Second):
		t.Fatal("deposit event was not delivered")
	}

	txn, err := g.GetTransaction(ctx, "0xdep")
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, big.NewInt(900), txn.Amount)
}

func TestGateway_SubscriptionClosesOnCancel(t *testing.T) {
	g := testGateway()
	ctx, cancel := context.WithCancel(context.Background())

	events, err := g.SubscribeDeposits(ctx, "0xaddr")
	require.NoError(t, err)

	cancel()
	select {
	case _, open := <-events:
		assert.False(t, open, "channel must close on cancel")
	case <-time.After(time.Second):
		t.Fatal("channel did not close")
	}
	assert.Equal(t, 0, g.Subscribers("0xaddr"))
}

func TestGateway_RegisterAddress(t *testing.T) {
	g := testGateway()

	addr, err := g.RegisterAddress(context.Background(), testCred(), big.NewInt(2), big.NewInt(2_300_000))
	require.NoError(t, err)
	assert.Len(t, addr, 42)
	assert.Equal(t, "0x", addr[:2])

	_, err = g.RegisterAddress(context.Background(), nil, big.NewInt(2), big.NewInt(2_300_000))
	assert.Error(t, err)
}
