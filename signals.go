package folio

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for middleware events.
var (
	SignalMiddlewareCreated = capitan.NewSignal("folio.middleware.created", "Middleware instantiated")
	SignalFieldSkipped      = capitan.NewSignal("folio.field.skipped", "Value type cannot be transformed")
	SignalStringKept        = capitan.NewSignal("folio.string.kept", "Malformed markup left unchanged")
	SignalApplyStart        = capitan.NewSignal("folio.apply.start", "Library pass beginning")
	SignalApplyComplete     = capitan.NewSignal("folio.apply.complete", "Library pass finished")
	SignalBlockFailed       = capitan.NewSignal("folio.block.failed", "Block replaced by a failed block")
)

// Keys for typed event data.
var (
	KeyMiddleware  = capitan.NewStringKey("middleware")
	KeyOwnership   = capitan.NewStringKey("ownership")
	KeyBlock       = capitan.NewStringKey("block")
	KeyField       = capitan.NewStringKey("field")
	KeyValueType   = capitan.NewStringKey("value_type")
	KeyBlockCount  = capitan.NewIntKey("block_count")
	KeyFailedCount = capitan.NewIntKey("failed_count")
	KeyWorkers     = capitan.NewIntKey("workers")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitMiddlewareCreated emits an event when a middleware is built.
func emitMiddlewareCreated(ctx context.Context, middleware string, own Ownership) {
	capitan.Emit(ctx, SignalMiddlewareCreated,
		KeyMiddleware.Field(middleware),
		KeyOwnership.Field(string(own)),
	)
}

// emitFieldSkipped emits an event when a value type is not transformable.
func emitFieldSkipped(ctx context.Context, middleware, block, field, valueType string) {
	capitan.Emit(ctx, SignalFieldSkipped,
		KeyMiddleware.Field(middleware),
		KeyBlock.Field(block),
		KeyField.Field(field),
		KeyValueType.Field(valueType),
	)
}

// emitStringKept emits an event when malformed markup is passed through.
func emitStringKept(ctx context.Context, middleware, block, field string, err error) {
	capitan.Emit(ctx, SignalStringKept,
		KeyMiddleware.Field(middleware),
		KeyBlock.Field(block),
		KeyField.Field(field),
		KeyError.Field(err),
	)
}

// emitApplyStart emits an event when a library pass begins.
func emitApplyStart(ctx context.Context, middleware string, blocks, workers int) {
	capitan.Emit(ctx, SignalApplyStart,
		KeyMiddleware.Field(middleware),
		KeyBlockCount.Field(blocks),
		KeyWorkers.Field(workers),
	)
}

// emitApplyComplete emits an event when a library pass finishes.
func emitApplyComplete(ctx context.Context, middleware string, blocks, failed int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyMiddleware.Field(middleware),
		KeyBlockCount.Field(blocks),
		KeyFailedCount.Field(failed),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalApplyComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalApplyComplete, fields...)
	}
}

// emitBlockFailed emits an event when a failing block is isolated.
func emitBlockFailed(ctx context.Context, middleware, block string, err error) {
	capitan.Error(ctx, SignalBlockFailed,
		KeyMiddleware.Field(middleware),
		KeyBlock.Field(block),
		KeyError.Field(err),
	)
}
