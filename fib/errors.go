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

package fib

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for the API-boundary precondition checks spec.md §7
// classifies as fatal ("Address-type mismatch: fatal precondition check at
// API entry", and nil-table access as the same class of API misuse as the
// invariant violations on §7's line above it). These are never returned
// directly — checkAddrType wraps them into fatalf's panic via %w, so a
// caller that recovers the panic can still identify the cause with
// errors.Is instead of matching the message text.
var (
	ErrNilTable         = errors.New("fib: nil table")
	ErrAddrTypeMismatch = errors.New("fib: address type does not match table")
)

// fatalf reports an invariant violation or unrecoverable allocation
// failure. spec.md §7 classifies these as fatal: the daemon cannot proceed
// with a partially-resized table or a list whose invariants it cannot
// trust, so this panics with a stack-carrying error rather than returning
// one, matching the teacher's use of github.com/pkg/errors to attach a
// stack trace to conditions that are about to crash the process.
func fatalf(format string, args ...any) {
	err := pkgerrors.WithStack(fmt.Errorf(format, args...))
	panic(err)
}
