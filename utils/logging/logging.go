// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package logging builds the zap.Logger the wallet's signing pipeline logs
// through. Only wallet/signer logs (a no-op logger unless an embedding
// application installs one); the codec and parsing packages never log. It
// lets an application observe what the pipeline did without threading a
// logger through every call.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap.Logger that writes to stderr, encoded as
// human-readable console lines under Colors or Plain (Plain is the zero
// value) and as JSON under any other Highlight value, matching the
// highlight mode a terminal-facing CLI would pick via ToHighlight.
func NewLogger(h Highlight, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch h {
	case Colors:
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	case Plain:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

// NoLog is a logger that discards everything, the default for callers that
// never opt into observing the signing pipeline.
func NoLog() *zap.Logger { return zap.NewNop() }
