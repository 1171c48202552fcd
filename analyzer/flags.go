// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"flag"

	"fillmore-labs.com/anyref/internal/config"
	"fillmore-labs.com/anyref/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(r *run.Options, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(NewBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(NewBehaviorValue(&r.Behavior, config.SuggestFixes), "fix-suggestions", "suggest fixes")
	flags.Var(NewBehaviorValue(&r.Behavior, config.StandardIgnores), "standard-ignores",
		"ignore arguments of standard out-parameter functions like encoding/json.Unmarshal")

	flags.Var(NewSiteValue(&r.Sites, config.CallSite), "call", "check function call arguments")
	flags.Var(NewSiteValue(&r.Sites, config.AssignSite), "assign", "check assignments")
	flags.Var(NewSiteValue(&r.Sites, config.ReturnSite), "return", "check returned values")
	flags.Var(NewSiteValue(&r.Sites, config.CompositeSite), "composite", "check composite literal elements")
	flags.Var(NewSiteValue(&r.Sites, config.SendSite), "send", "check channel sends")
	flags.Var(NewSiteValue(&r.Sites, config.CompareSite), "compare", "check comparisons with interface values")

	flags.Var(NewPatternsValue(&r.IgnoreFuncs), "ignore-funcs",
		"comma-separated glob patterns of functions whose arguments are not checked")
	flags.Var(NewConfigValue(r), "config", "read settings from a TOML configuration file")
}
