package tracker

import (
	"context"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fbtracker/v1/client/core/wallet"
	badgerconfig "github.com/fbtracker/v1/internal/config/storage/badger"
	"github.com/fbtracker/v1/internal/core/infrastructure/event"
	corelog "github.com/fbtracker/v1/internal/core/infrastructure/log"
	"github.com/fbtracker/v1/internal/core/infrastructure/metrics"
	badgerstore "github.com/fbtracker/v1/internal/core/infrastructure/storage/badger"
	"github.com/fbtracker/v1/internal/core/runtime"
	"github.com/fbtracker/v1/internal/core/tracker/pda"
	"github.com/fbtracker/v1/internal/core/tracker/processor"
	"github.com/fbtracker/v1/internal/core/tracker/state"
	"github.com/fbtracker/v1/pkg/constants"
	"github.com/fbtracker/v1/pkg/types"
)

// newTestClient 在内存宿主上构造客户端与已注资的付款密钥
func newTestClient(t *testing.T) (*Client, *wallet.Keypair, *runtime.Host) {
	t.Helper()

	logger := corelog.NewNop()
	store, err := badgerstore.New(badgerconfig.NewFromOptions(&badgerconfig.BadgerOptions{
		InMemory:     true,
		MemTableSize: 8 << 20,
	}), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	var programID types.Address
	sum := sha256.Sum256([]byte("client-test-deploy"))
	copy(programID[:], sum[:])

	deriver := pda.NewDeriver()
	host := runtime.New(programID, processor.New(deriver, logger), deriver, store,
		event.New(logger), metrics.NewRegistry(), logger)

	payer, err := wallet.Generate()
	require.NoError(t, err)
	require.NoError(t, host.FundAccount(context.Background(), payer.Address(), 10_000_000))

	return NewClient(host, deriver, programID, logger), payer, host
}

func TestClientInitializeAndRead(t *testing.T) {
	client, payer, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Initialize(ctx, payer))

	record, err := client.ReadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, constants.InitialChampionships, record.TotalChampionships)
	assert.Equal(t, constants.StartSeason, record.CurrentSeasonKey)
}

func TestClientReadBeforeInitialize(t *testing.T) {
	client, _, _ := newTestClient(t)

	_, err := client.ReadState(context.Background())
	assert.ErrorIs(t, err, types.ErrAccountNotFound)
}

func TestClientAdvanceToCompletion(t *testing.T) {
	client, payer, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Initialize(ctx, payer))
	for i := 0; i < constants.SeasonCount; i++ {
		require.NoError(t, client.Advance(ctx))
	}

	record, err := client.ReadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(19), record.TotalChampionships)
	assert.True(t, state.IsComplete(record))
}

func TestClientTrackerAddressStable(t *testing.T) {
	client, _, _ := newTestClient(t)

	addr1, err := client.TrackerAddress()
	require.NoError(t, err)
	addr2, err := client.TrackerAddress()
	require.NoError(t, err)
	assert.True(t, addr1.Equal(addr2))
}
