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

// Package entropy estimates the complexity, and therefore the compressed
// size, of symbolic trajectories over a finite alphabet without needing a
// real compressor. It offers block-frequency and block-sorting (BWT-based)
// estimators of order-k entropy, classical LZ76/LZ78 incremental-parsing
// complexity, and LZ77 (via the kkp package) and cross-parsing complexity
// with a sumlog cost proxy for the compressed size up to loglog terms.
package entropy
