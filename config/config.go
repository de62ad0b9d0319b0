/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds the global, file-overridable settings for the
// engine: search tuning, evaluation weights and logging levels.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LogLevel is the general log level, set by default or overridden by the
// config file / command line.
var (
	LogLevel       = 4
	SearchLogLevel = 4

	// Settings is the global configuration, read in from file by Setup.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the optional TOML config file at path, falling back to the
// compiled-in defaults for anything it doesn't set. A missing or invalid
// file is logged and otherwise ignored - configuration is never fatal.
func Setup(path string) {
	if initialized {
		return
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			fmt.Println("config:", err)
		}
	}
	setupLogLvl()
	setupSearch()
	setupEval()
	initialized = true
}

// DifficultyPreset maps a difficulty level to its search limits.
type DifficultyPreset struct {
	MaxDepth      int
	TimeLimitSecs float64
}

// Difficulty resolves a {1,2,3} difficulty level to (max_depth,
// time_limit_seconds); unknown levels default to the "normal" preset.
func Difficulty(level int) DifficultyPreset {
	switch level {
	case 1:
		return DifficultyPreset{MaxDepth: 4, TimeLimitSecs: 2.0}
	case 3:
		return DifficultyPreset{MaxDepth: 8, TimeLimitSecs: 10.0}
	default:
		return DifficultyPreset{MaxDepth: 6, TimeLimitSecs: 5.0}
	}
}

// LogLevels maps the string representation of a log level (as used in the
// TOML config file) to go-logging's numerical level.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}
