package core

import (
	"context"
	"time"

	errorsmod "cosmossdk.io/errors"
	retry "github.com/avast/retry-go"
	"go.opentelemetry.io/otel/codes"

	"github.com/hyperledger-labs/yui-path-relayer/internal/telemetry"
	"github.com/hyperledger-labs/yui-path-relayer/log"
)

// RelayService runs the polling loop of a single linked path
type RelayService struct {
	path   Path
	link   Link
	config ConfigI
	opts   Options

	consecutiveFailures int
}

// NewRelayService returns a new service
func NewRelayService(path Path, link Link, config ConfigI, opts Options) *RelayService {
	return &RelayService{
		path:   path,
		link:   link,
		config: config,
		opts:   opts,
	}
}

// Start runs relay ticks every poll interval until ctx is done.
// A failed tick never stops the loop.
func (srv *RelayService) Start(ctx context.Context) error {
	logger := srv.logger()
	logger.InfoContext(ctx, "relay loop started", "interval", srv.opts.PollInterval)

	ticker := time.NewTicker(srv.opts.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.InfoContext(context.WithoutCancel(ctx), "relay loop stopped")
			return ctx.Err()
		case <-ticker.C:
		}

		err := retry.Do(func() error {
			return srv.Serve(ctx)
		},
			retry.Attempts(srv.opts.TickAttempts),
			retry.Delay(srv.opts.TickRetryDelay),
			retry.DelayType(retry.FixedDelay),
			retry.LastErrorOnly(true),
			retry.Context(ctx),
			retry.OnRetry(func(n uint, err error) {
				logger.InfoContext(ctx,
					"retrying to serve relays",
					"try", n+1,
					"try_limit", srv.opts.TickAttempts,
					"error", err.Error(),
				)
			}),
		)
		if ctx.Err() != nil {
			logger.InfoContext(context.WithoutCancel(ctx), "relay loop stopped")
			return ctx.Err()
		}
		srv.handleTickResult(ctx, err)
	}
}

func (srv *RelayService) handleTickResult(ctx context.Context, err error) {
	telemetry.AddRelayTick(ctx, srv.path.ID, err == nil)
	if err == nil {
		srv.consecutiveFailures = 0
		return
	}

	srv.consecutiveFailures++
	logger := srv.logger()
	if srv.opts.FailureThreshold > 0 && srv.consecutiveFailures%srv.opts.FailureThreshold == 0 {
		logger.ErrorContext(ctx, "relay keeps failing", err, "consecutive_failures", srv.consecutiveFailures)
		telemetry.AddRelayFailureEscalation(ctx, srv.path.ID)
		return
	}
	logger.WarnErr("relay tick failed", err, "consecutive_failures", srv.consecutiveFailures)
}

// Serve performs a single relay tick: relay pending packets and acks from
// the stored checkpoint, persist the new checkpoint, then refresh stale
// clients on both sides.
func (srv *RelayService) Serve(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "RelayService.Serve", WithPathAttributes(srv.path))
	defer span.End()
	defer srv.logger().TimeTrackContext(ctx, time.Now(), "Serve")

	if srv.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.opts.RequestTimeout)
		defer cancel()
	}

	cfg, err := srv.config.Load()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	pc, err := cfg.PathByID(srv.path.ID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	next, relayErr := srv.link.RelayPendingPacketsAndAcks(ctx, pc.Checkpoint(), DefaultSrcRelayRetries, DefaultDstRelayRetries)
	// progress made before a failure is kept
	if next != nil {
		if err := srv.saveCheckpoint(*next); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	if relayErr != nil {
		span.SetStatus(codes.Error, relayErr.Error())
		return errorsmod.Wrap(ErrRelay, relayErr.Error())
	}

	for _, side := range []Side{SideA, SideB} {
		if err := srv.link.UpdateClientIfStale(ctx, side, srv.opts.MaxAge); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return errorsmod.Wrapf(ErrRelay, "failed to update client on side %s: %v", side, err)
		}
	}
	return nil
}

// saveCheckpoint merges heights into the persisted checkpoint so that no
// height ever decreases
func (srv *RelayService) saveCheckpoint(heights PacketHeights) error {
	var saved PacketHeights
	if err := srv.config.Mutate(func(c *RelayerConfig) error {
		pc, err := c.PathByID(srv.path.ID)
		if err != nil {
			return err
		}
		if !pc.Linked() {
			return errorsmod.Wrapf(ErrPathNotLinked, "path %s", srv.path.ID)
		}
		saved = pc.Checkpoint().Merge(heights)
		pc.RelayerData = &saved
		return nil
	}); err != nil {
		return err
	}

	telemetry.SetCheckpointHeight(srv.path.ID, "packetHeightA", saved.PacketHeightA)
	telemetry.SetCheckpointHeight(srv.path.ID, "packetHeightB", saved.PacketHeightB)
	telemetry.SetCheckpointHeight(srv.path.ID, "ackHeightA", saved.AckHeightA)
	telemetry.SetCheckpointHeight(srv.path.ID, "ackHeightB", saved.AckHeightB)
	return nil
}

func (srv *RelayService) logger() *log.RelayLogger {
	return GetPathLogger(srv.path).WithModule("core.service")
}
