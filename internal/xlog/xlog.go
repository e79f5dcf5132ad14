// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

// Package xlog is a thin key-value logging facade over zap, matching the
// calling convention of erigon-lib/log/v3 (log.Debug("msg", "k", v, ...))
// without pulling that package's full dependency graph into this module.
package xlog

import (
	"go.uber.org/zap"
)

// Logger is a leveled, structured logger using alternating key/value pairs,
// the same calling shape as erigon-lib/log/v3.
type Logger struct {
	z *zap.SugaredLogger
}

// New wraps a zap logger. Passing nil gives a production JSON logger.
func New(z *zap.Logger) *Logger {
	if z == nil {
		z, _ = zap.NewProduction()
	}
	return &Logger{z: z.Sugar()}
}

// Nop returns a Logger that discards everything, for tests and defaults.
func Nop() *Logger {
	return &Logger{z: zap.NewNop().Sugar()}
}

func (l *Logger) Debug(msg string, kv ...any) { l.z.Debugw(msg, kv...) }
func (l *Logger) Info(msg string, kv ...any)  { l.z.Infow(msg, kv...) }
func (l *Logger) Warn(msg string, kv ...any)  { l.z.Warnw(msg, kv...) }
func (l *Logger) Error(msg string, kv ...any) { l.z.Errorw(msg, kv...) }

// Sync flushes buffered log entries, best-effort.
func (l *Logger) Sync() {
	_ = l.z.Sync()
}
