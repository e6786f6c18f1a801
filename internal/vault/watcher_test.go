package vault

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basepos/vaultctl/internal/chain"
)

// scriptedSource is a logSource whose head and pending logs can be moved
// between polls.
type scriptedSource struct {
	mu      sync.Mutex
	head    uint64
	pending []chain.LogEntry
	logsErr error
	ranges  [][2]string
}

func (s *scriptedSource) GetBlockNumber() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.head, nil
}

func (s *scriptedSource) GetLogs(addr string, topics []string, from, to string) ([]chain.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ranges = append(s.ranges, [2]string{from, to})
	if s.logsErr != nil {
		return nil, s.logsErr
	}
	logs := s.pending
	s.pending = nil
	return logs, nil
}

func (s *scriptedSource) advance(head uint64, logs ...chain.LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.head = head
	s.pending = append(s.pending, logs...)
}

func (s *scriptedSource) setLogsErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logsErr = err
}

func depositLog(t *testing.T, block uint64, amountETH string) chain.LogEntry {
	t.Helper()
	return chain.LogEntry{
		Topics:      []string{eventTopic(t, EvDeposit), addrTopic(userAddr)},
		Data:        "0x" + word(eth(t, amountETH)) + word(big.NewInt(0)),
		BlockNumber: "0x" + big.NewInt(int64(block)).Text(16),
		TxHash:      "0xfeed",
	}
}

func collectEvents(t *testing.T, src *scriptedSource, run time.Duration) (func() []Event, context.CancelFunc, chan error) {
	t.Helper()
	w := NewWatcher(src, ContractAddress, WithInterval(5*time.Millisecond))

	var mu sync.Mutex
	var events []Event
	ctx, cancel := context.WithTimeout(context.Background(), run)

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(ev Event) {
			mu.Lock()
			events = append(events, ev)
			mu.Unlock()
		})
	}()

	snapshot := func() []Event {
		mu.Lock()
		defer mu.Unlock()
		return append([]Event(nil), events...)
	}
	return snapshot, cancel, done
}

func TestWatcher_NoHistoricalReplay(t *testing.T) {
	// The head never advances: nothing may be delivered, no matter what
	// logs exist at or before the starting block.
	src := &scriptedSource{head: 100, pending: []chain.LogEntry{depositLog(t, 99, "1")}}

	snapshot, cancel, done := collectEvents(t, src, 60*time.Millisecond)
	defer cancel()
	<-done

	assert.Empty(t, snapshot())
	assert.Empty(t, src.ranges, "no log query without new blocks")
}

func TestWatcher_DeliversNewEventsOnce(t *testing.T) {
	src := &scriptedSource{head: 100}

	snapshot, cancel, done := collectEvents(t, src, 150*time.Millisecond)
	defer cancel()

	time.Sleep(20 * time.Millisecond)
	src.advance(101, depositLog(t, 101, "1"))
	<-done

	events := snapshot()
	require.Len(t, events, 1, "one event, delivered exactly once")
	assert.Equal(t, EvDeposit, events[0].Name)

	// The first queried range starts just past the starting head.
	require.NotEmpty(t, src.ranges)
	assert.Equal(t, "0x65", src.ranges[0][0]) // block 101
}

func TestWatcher_PreservesOrder(t *testing.T) {
	src := &scriptedSource{head: 100}

	snapshot, cancel, done := collectEvents(t, src, 150*time.Millisecond)
	defer cancel()

	time.Sleep(20 * time.Millisecond)
	src.advance(103,
		depositLog(t, 101, "1"),
		depositLog(t, 102, "2"),
		depositLog(t, 103, "3"),
	)
	<-done

	events := snapshot()
	require.Len(t, events, 3)
	assert.Equal(t, "1000000000000000000", events[0].Fields["amount"])
	assert.Equal(t, "2000000000000000000", events[1].Fields["amount"])
	assert.Equal(t, "3000000000000000000", events[2].Fields["amount"])
}

func TestWatcher_FailedPollRetriesSameRange(t *testing.T) {
	src := &scriptedSource{head: 100}
	src.setLogsErr(errors.New("rpc down"))

	snapshot, cancel, done := collectEvents(t, src, 200*time.Millisecond)
	defer cancel()

	time.Sleep(20 * time.Millisecond)
	src.advance(101, depositLog(t, 101, "1"))

	// Let a few failing polls happen, then recover.
	time.Sleep(40 * time.Millisecond)
	src.setLogsErr(nil)
	<-done

	events := snapshot()
	require.Len(t, events, 1, "delivered exactly once after recovery")

	// Every queried range starts at the same cursor until delivery succeeds.
	src.mu.Lock()
	defer src.mu.Unlock()
	require.GreaterOrEqual(t, len(src.ranges), 2)
	for _, r := range src.ranges {
		assert.Equal(t, "0x65", r[0])
	}
}
