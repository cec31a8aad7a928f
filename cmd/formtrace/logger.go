package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// newLogger returns the console logger: warnings and errors go to stderr,
// debug and info go to stdout when verbose is set.
func newLogger(verbose bool) *zap.Logger {
	encoder := func(stream *os.File) zapcore.Encoder {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeCaller = nil
		if term.IsTerminal(int(stream.Fd())) {
			ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
			ec.TimeKey = zapcore.OmitKey
		} else {
			ec.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		return zapcore.NewConsoleEncoder(ec)
	}

	high := zapcore.NewCore(encoder(os.Stderr), zapcore.Lock(os.Stderr),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.WarnLevel
		}))
	if !verbose {
		return zap.New(high)
	}
	low := zapcore.NewCore(encoder(os.Stdout), zapcore.Lock(os.Stdout),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return zapcore.DebugLevel <= lvl && lvl < zapcore.WarnLevel
		}))
	return zap.New(zapcore.NewTee(low, high))
}
