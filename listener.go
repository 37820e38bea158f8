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

import "reflect"

// Listeners is a small helper embeddable by any driver that wants to emit
// progress Events without taking a hard dependency on a logging package.
type Listeners struct {
	listeners []Listener
}

// AddListener registers an event listener. Returns true if it was added.
func (l *Listeners) AddListener(el Listener) bool {
	if el == nil {
		return false
	}

	l.listeners = append(l.listeners, el)
	return true
}

// RemoveListener unregisters an event listener. Returns true if it was found.
// Function listeners such as ListenerFunc are matched by their code pointer,
// so two closures made from the same function literal count as one listener.
func (l *Listeners) RemoveListener(el Listener) bool {
	if el == nil {
		return false
	}

	target := reflect.ValueOf(el)

	for i, e := range l.listeners {
		v := reflect.ValueOf(e)

		if v.Type() != target.Type() {
			continue
		}

		if (v.Kind() == reflect.Func && v.Pointer() == target.Pointer()) ||
			(v.Kind() != reflect.Func && v.Comparable() && e == el) {
			l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
			return true
		}
	}

	return false
}

// Notify delivers evt to every registered listener, ignoring panics raised by
// an individual listener so a misbehaving observer cannot abort a factorization.
func (l *Listeners) Notify(evt *Event) {
	if len(l.listeners) == 0 {
		return
	}

	defer func() {
		//nolint
		if r := recover(); r != nil {
			// Ignore panics raised by listeners.
		}
	}()

	for _, el := range l.listeners {
		el.ProcessEvent(evt)
	}
}
