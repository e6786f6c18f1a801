package vault

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/basepos/vaultctl/internal/chain"
)

// logSource is the slice of chain.EVMClient the watcher needs.
type logSource interface {
	GetBlockNumber() (uint64, error)
	GetLogs(address string, topics []string, fromBlock, toBlock string) ([]chain.LogEntry, error)
}

// Watcher polls for new POSVault logs and delivers them as decoded events.
// The cursor starts at the current head, so only events emitted after the
// watcher starts are delivered — never historical ones, and never the same
// block range twice.
type Watcher struct {
	client   logSource
	addr     string
	interval time.Duration
	log      *zap.Logger
	lastSeen uint64
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithInterval sets the poll interval.
func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.interval = d }
}

// WithWatcherLogger sets the structured logger.
func WithWatcherLogger(log *zap.Logger) WatcherOption {
	return func(w *Watcher) { w.log = log }
}

// NewWatcher creates a watcher over the contract at addr.
func NewWatcher(client logSource, addr string, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		client:   client,
		addr:     addr,
		interval: 5 * time.Second,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run polls until ctx is cancelled, invoking deliver for each decoded event
// in chain order. Poll failures are logged and retried on the next tick; the
// cursor only advances after a range has been delivered, so a failed poll is
// never skipped over.
func (w *Watcher) Run(ctx context.Context, deliver func(Event)) error {
	head, err := w.client.GetBlockNumber()
	if err != nil {
		return fmt.Errorf("reading chain head: %w", err)
	}
	w.lastSeen = head
	w.log.Info("watching for events",
		zap.String("contract", w.addr),
		zap.Uint64("from_block", head+1))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.poll(deliver)
		}
	}
}

func (w *Watcher) poll(deliver func(Event)) {
	head, err := w.client.GetBlockNumber()
	if err != nil {
		w.log.Warn("block number poll failed", zap.Error(err))
		return
	}
	if head <= w.lastSeen {
		return
	}

	from, to := w.lastSeen+1, head
	logs, err := w.client.GetLogs(w.addr, nil, hexBlock(from), hexBlock(to))
	if err != nil {
		// Cursor stays put; the same range is retried next tick.
		w.log.Warn("log poll failed",
			zap.Uint64("from", from), zap.Uint64("to", to), zap.Error(err))
		return
	}

	for _, entry := range logs {
		ev, err := DecodeEvent(entry)
		if err != nil {
			w.log.Debug("skipping undecodable log",
				zap.String("tx", entry.TxHash), zap.Error(err))
			continue
		}
		deliver(ev)
	}

	w.lastSeen = to
}

func hexBlock(n uint64) string {
	return fmt.Sprintf("0x%x", n)
}
