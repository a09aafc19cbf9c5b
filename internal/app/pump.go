package app

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/serialframe/internal/domain"
	"github.com/bft-labs/serialframe/internal/framing"
	"github.com/bft-labs/serialframe/internal/ports"
	"github.com/bft-labs/serialframe/pkg/log"
)

// DefaultReadBufferSize is the read chunk size used when none is configured.
const DefaultReadBufferSize = 4096

// PumpConfig holds the tunables for a pump.
type PumpConfig struct {
	// ReadBufferSize is the size of the transport read buffer. A chunk is
	// at most this large; the framing layer does not care either way.
	ReadBufferSize int
}

// Pump moves bytes from the transport through the framing loop and delivers
// the resulting messages to the receiver. It runs two goroutines: a read
// loop (transport -> framer -> queue) and a dispatch loop (queue ->
// receiver). The queue between them is the only synchronization point, so a
// slow receiver can never stall or reorder the read path.
type Pump struct {
	cfg       PumpConfig
	transport ports.ByteTransport
	receiver  ports.Receiver
	framer    *framing.Framer
	queue     *framing.Queue
	stats     *framing.Stats
	logger    log.Logger
	tracer    ports.ByteTracer
}

// NewPump wires a pump. tracer may be nil.
func NewPump(
	cfg PumpConfig,
	transport ports.ByteTransport,
	receiver ports.Receiver,
	framer *framing.Framer,
	queue *framing.Queue,
	stats *framing.Stats,
	logger log.Logger,
	tracer ports.ByteTracer,
) *Pump {
	if cfg.ReadBufferSize <= 0 {
		cfg.ReadBufferSize = DefaultReadBufferSize
	}
	return &Pump{
		cfg:       cfg,
		transport: transport,
		receiver:  receiver,
		framer:    framer,
		queue:     queue,
		stats:     stats,
		logger:    logger,
		tracer:    tracer,
	}
}

// Run blocks until the stream ends, the context is canceled, or the
// transport fails. Returns nil on clean end of input, the context error on
// cancellation, and the transport error on failure.
func (p *Pump) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return p.readLoop(gctx) })
	g.Go(func() error { return p.dispatchLoop(gctx) })
	return g.Wait()
}

// readLoop reads chunks and feeds them through the framing loop.
func (p *Pump) readLoop(ctx context.Context) error {
	buf := make([]byte, p.cfg.ReadBufferSize)

	for {
		n, err := p.transport.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if p.tracer != nil {
				p.tracer.RxBytes(chunk)
			}
			if ferr := p.framer.Push(chunk, p.enqueue); ferr != nil {
				// The framing pass was aborted and the buffered bytes kept.
				// Report and keep reading; the stream itself is fine.
				p.logger.Error("framing fault", log.Err(ferr))
				p.receiver.OnError(ferr)
			}
		}

		if err != nil {
			if ctx.Err() != nil {
				// Shutdown closed the transport under us.
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				p.logger.Info("transport stream ended",
					log.Int("pending_bytes", p.framer.Pending()))
				p.queue.Finish()
				return nil
			}
			p.logger.Error("transport read failed", log.Err(err))
			p.receiver.OnError(err)
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

// dispatchLoop hands queued messages to the receiver, in order, exactly
// once each. Panics from the receiver are not recovered.
func (p *Pump) dispatchLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, ok := p.queue.Dequeue(ctx)
		if !ok {
			return ctx.Err()
		}

		p.receiver.OnMessage(msg)
		p.stats.IncMessagesDispatched()
	}
}

// enqueue is the framer's emit target. A message refused by a finished or
// closed queue counts as discarded.
func (p *Pump) enqueue(msg domain.Message) {
	if !p.queue.Enqueue(msg) {
		p.stats.AddMessagesDiscarded(1)
	}
}
