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

package kkp

import ssc "github.com/martiniani-lab/sweetsourcod-go"

// newListeners collects a driver's variadic listener arguments into a
// single fan-out so the rest of the package only has one thing to Notify.
func newListeners(listeners []ssc.Listener) *ssc.Listeners {
	ls := &ssc.Listeners{}

	for _, el := range listeners {
		ls.AddListener(el)
	}

	return ls
}
