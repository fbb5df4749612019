// Copyright 2026 The pagesmith Authors
// SPDX-License-Identifier: MIT

// Package event provides typed, synchronous publish/subscribe streams.
//
// A Stream carries exactly one payload type and delivers every published
// value to all subscribers, in subscription order, before Publish returns.
// There is no queueing and no goroutine hand-off: the canvas state model is
// single-threaded and must appear atomically consistent to any observer
// reacting to a notification, so delivery happens inline in the publisher's
// call frame.
//
// Streams are not safe for concurrent use. A multi-threaded host must
// serialize all publishes and subscriptions together with the rest of its
// canvas mutations.
package event

// Stream is a typed broadcast channel with synchronous delivery.
//
// The zero value is ready to use. Payloads should be small fixed-shape
// structs so every subscriber sees the same immutable notification.
type Stream[T any] struct {
	subs []*subscriber[T]
}

type subscriber[T any] struct {
	fn     func(T)
	closed bool
}

// Subscribe registers fn to be called for every subsequent publish.
// It returns a cancel function; after cancel returns, fn is never
// called again. Cancel is idempotent.
func (s *Stream[T]) Subscribe(fn func(T)) (cancel func()) {
	sub := &subscriber[T]{fn: fn}
	s.subs = append(s.subs, sub)
	return func() {
		if sub.closed {
			return
		}
		sub.closed = true
		for i, cur := range s.subs {
			if cur == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers v to every active subscriber in subscription order.
// Subscribers added during delivery do not receive v; subscribers
// cancelled during delivery receive no further calls.
func (s *Stream[T]) Publish(v T) {
	// Snapshot so a subscriber may cancel (or subscribe) from its callback
	// without corrupting the iteration.
	snapshot := make([]*subscriber[T], len(s.subs))
	copy(snapshot, s.subs)
	for _, sub := range snapshot {
		if !sub.closed {
			sub.fn(v)
		}
	}
}

// Len returns the number of active subscribers.
func (s *Stream[T]) Len() int { return len(s.subs) }
