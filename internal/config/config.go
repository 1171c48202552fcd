// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

// SiteFlags represents kinds of implicit conversion sites.
type SiteFlags uint8

const (
	// CallSite checks function call arguments.
	CallSite SiteFlags = 1 << iota

	// AssignSite checks assignments and typed variable declarations.
	AssignSite

	// ReturnSite checks returned values.
	ReturnSite

	// CompositeSite checks composite literal elements, keys and fields.
	CompositeSite

	// SendSite checks channel sends.
	SendSite

	// CompareSite checks comparisons with interface values, switch cases and map index keys.
	CompareSite

	// AllSites enables every site.
	AllSites = CallSite | AssignSite | ReturnSite | CompositeSite | SendSite | CompareSite
)

// Sites is the set of enabled conversion sites.
type Sites = BitMask[SiteFlags]

// DefaultSites returns the default set of sites to check.
func DefaultSites() Sites {
	return NewBitMask(AllSites)
}

// Config represents configuration options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// SuggestFixes specifies whether diagnostics carry suggested fixes.
	SuggestFixes

	// StandardIgnores exempts the standard out-parameter functions, like encoding/json.Unmarshal.
	StandardIgnores
)

// Behavior holds behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask(SuggestFixes, StandardIgnores)
}
