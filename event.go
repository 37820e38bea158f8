/*
Copyright 2026 The sweetsourcod-go Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sweetsourcod

import (
	"fmt"
	"time"
)

const (
	EVT_PSV_SCAN_START = 0 // PSV/NSV engine scan starts
	EVT_PSV_SCAN_END   = 1 // PSV/NSV engine scan ends
	EVT_FACTORIZE_START = 2 // a driver (KKP2/KKP3/KKP1s/cross-parse) starts
	EVT_FACTORIZE_END   = 3 // a driver ends
	EVT_STACK_OVERFLOW  = 4 // the bounded PSV stack entered the overflow regime
)

// Event reports progress during a factorization call. Events are informational
// only: nothing about the factorization result depends on whether a Listener
// is attached.
type Event struct {
	eventType int
	size      int64
	count     int
	eventTime time.Time
	msg       string
}

// NewEvent creates an Event carrying a text size and a running factor count.
func NewEvent(evtType int, size int64, count int) *Event {
	return &Event{eventType: evtType, size: size, count: count, eventTime: time.Now()}
}

// NewEventFromString creates an Event that wraps a free-form message.
func NewEventFromString(evtType int, msg string) *Event {
	return &Event{eventType: evtType, msg: msg, eventTime: time.Now()}
}

// Type returns the event type (one of the EVT_* constants).
func (e *Event) Type() int { return e.eventType }

// Size returns the size of the text being factorized, if known.
func (e *Event) Size() int64 { return e.size }

// Count returns the number of factors emitted so far, if applicable.
func (e *Event) Count() int { return e.count }

// Time returns when the event was created.
func (e *Event) Time() time.Time { return e.eventTime }

// String returns a human-readable representation of the event.
func (e *Event) String() string {
	if len(e.msg) > 0 {
		return e.msg
	}

	t := ""
	switch e.eventType {
	case EVT_PSV_SCAN_START:
		t = "PSV_SCAN_START"
	case EVT_PSV_SCAN_END:
		t = "PSV_SCAN_END"
	case EVT_FACTORIZE_START:
		t = "FACTORIZE_START"
	case EVT_FACTORIZE_END:
		t = "FACTORIZE_END"
	case EVT_STACK_OVERFLOW:
		t = "STACK_OVERFLOW"
	}

	return fmt.Sprintf("{ \"type\":\"%s\", \"size\":%d, \"count\":%d, \"time\":%d }",
		t, e.size, e.count, e.eventTime.UnixNano()/1000000)
}

// Listener is implemented by event processors.
type Listener interface {
	// ProcessEvent is called whenever a Listener receives an event.
	ProcessEvent(evt *Event)
}

// ListenerFunc adapts a plain function to a Listener, the way
// http.HandlerFunc adapts a function to http.Handler.
type ListenerFunc func(evt *Event)

// ProcessEvent calls f(evt).
func (f ListenerFunc) ProcessEvent(evt *Event) { f(evt) }
