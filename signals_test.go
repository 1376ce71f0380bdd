package unravel

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitDecodeStart(_ *testing.T) {
	// Should not panic
	emitDecodeStart(context.Background(), TransformHex, 10)
}

func TestEmitDecodeComplete_Success(_ *testing.T) {
	emitDecodeComplete(context.Background(), TransformHex, 5, 10*time.Microsecond, nil)
}

func TestEmitDecodeComplete_Error(_ *testing.T) {
	emitDecodeComplete(context.Background(), TransformHex, 0, 10*time.Microsecond, errors.New("test error"))
}

func TestEmitSmartRound(_ *testing.T) {
	emitSmartRound(context.Background(), 1, TransformURL, 12)
}

func TestEmitSmartComplete(_ *testing.T) {
	emitSmartComplete(context.Background(), "URL → Unicode", 2, time.Millisecond)
}

func TestEmitProcessorCreated(_ *testing.T) {
	emitProcessorCreated(context.Background(), "application/json", "TestType")
}

func TestEmitProcessStart(_ *testing.T) {
	emitProcessStart(context.Background(), "application/json", "TestType")
}

func TestEmitProcessComplete_Success(_ *testing.T) {
	emitProcessComplete(context.Background(), "application/json", "TestType", 100*time.Millisecond, 3, nil)
}

func TestEmitProcessComplete_Error(_ *testing.T) {
	emitProcessComplete(context.Background(), "application/json", "TestType", 100*time.Millisecond, 0, errors.New("test error"))
}

