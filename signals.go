package unravel

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for decode events.
var (
	SignalDecodeStart      = capitan.NewSignal("unravel.decode.start", "Single transform beginning")
	SignalDecodeComplete   = capitan.NewSignal("unravel.decode.complete", "Single transform finished")
	SignalSmartRound       = capitan.NewSignal("unravel.smart.round", "Resolver accepted a step")
	SignalSmartComplete    = capitan.NewSignal("unravel.smart.complete", "Resolver finished")
	SignalProcessorCreated = capitan.NewSignal("unravel.processor.created", "Processor instantiated")
	SignalProcessStart     = capitan.NewSignal("unravel.process.start", "Record decode beginning")
	SignalProcessComplete  = capitan.NewSignal("unravel.process.complete", "Record decode finished")
)

// Keys for typed event data.
var (
	KeyTransform    = capitan.NewStringKey("transform")
	KeySteps        = capitan.NewStringKey("steps")
	KeyContentType  = capitan.NewStringKey("content_type")
	KeyTypeName     = capitan.NewStringKey("type_name")
	KeySize         = capitan.NewIntKey("size")
	KeyRound        = capitan.NewIntKey("round")
	KeyRounds       = capitan.NewIntKey("rounds")
	KeyDecodedCount = capitan.NewIntKey("decoded_count")
	KeyDuration     = capitan.NewDurationKey("duration")
	KeyError        = capitan.NewErrorKey("error")
)

// emitDecodeStart emits an event when a single transform begins.
func emitDecodeStart(ctx context.Context, t Transform, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyTransform.Field(string(t)),
		KeySize.Field(size),
	)
}

// emitDecodeComplete emits an event when a single transform finishes.
func emitDecodeComplete(ctx context.Context, t Transform, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTransform.Field(string(t)),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitSmartRound emits an event when the resolver accepts a step.
func emitSmartRound(ctx context.Context, round int, t Transform, size int) {
	capitan.Emit(ctx, SignalSmartRound,
		KeyRound.Field(round),
		KeyTransform.Field(string(t)),
		KeySize.Field(size),
	)
}

// emitSmartComplete emits an event when the resolver finishes.
func emitSmartComplete(ctx context.Context, steps string, rounds int, duration time.Duration) {
	capitan.Emit(ctx, SignalSmartComplete,
		KeySteps.Field(steps),
		KeyRounds.Field(rounds),
		KeyDuration.Field(duration),
	)
}

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitProcessStart emits an event when record decoding begins.
func emitProcessStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitProcessComplete emits an event when record decoding finishes.
func emitProcessComplete(ctx context.Context, contentType, typeName string, duration time.Duration, decoded int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyDecodedCount.Field(decoded),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalProcessComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalProcessComplete, fields...)
	}
}
