// Copyright 2025 The rocPRIM Go Authors
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

package rocprim

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
	"golang.org/x/sys/cpu"
)

// Config selects launch parameters for the device engines. The engines read
// DefaultConfig; a tuning file is the way to change it. The zero value means
// "use tuned defaults": a field that is zero or negative is replaced by the
// built-in value, so a tuning file only needs the fields it changes.
type Config struct {
	// BlockSize is the number of logical threads per block.
	BlockSize int `json:"block_size"`
	// ItemsPerThread is the number of elements each logical thread owns.
	// BlockSize*ItemsPerThread is the tile size, the unit of work a block
	// consumes per iteration.
	ItemsPerThread int `json:"items_per_thread"`
	// Workers bounds the number of blocks executing concurrently. Zero
	// means GOMAXPROCS.
	Workers int `json:"workers"`
	// RadixBits is the digit width of one radix sort pass.
	RadixBits int `json:"radix_bits"`
}

// TileSize returns BlockSize*ItemsPerThread after defaults are applied.
func (c Config) TileSize() int {
	c.fill()
	return c.BlockSize * c.ItemsPerThread
}

func (c *Config) fill() {
	c.fillFrom(defaultConfig())
}

func (c *Config) fillFrom(d Config) {
	if c.BlockSize <= 0 {
		c.BlockSize = d.BlockSize
	}
	if c.ItemsPerThread <= 0 {
		c.ItemsPerThread = d.ItemsPerThread
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.RadixBits <= 0 {
		c.RadixBits = d.RadixBits
	}
}

// DefaultConfig returns the process-wide tuned defaults with every field
// populated.
func DefaultConfig() Config {
	return defaultConfig()
}

var (
	defaultConfigOnce sync.Once
	defaultConfigVal  Config
)

// defaultConfig returns the process-wide tuned defaults. A tuning file named
// by ROCPRIM_TUNING overrides the built-ins; otherwise the defaults lean on
// what the host CPU advertises.
func defaultConfig() Config {
	defaultConfigOnce.Do(func() {
		defaultConfigVal = builtinConfig()
		if path := os.Getenv("ROCPRIM_TUNING"); path != "" {
			if c, err := LoadConfig(path); err == nil {
				// fill would re-enter this Once; fill from the built-ins.
				c.fillFrom(defaultConfigVal)
				defaultConfigVal = c
			}
		}
	})
	return defaultConfigVal
}

func builtinConfig() Config {
	c := Config{
		BlockSize:      256,
		ItemsPerThread: 4,
		Workers:        runtime.GOMAXPROCS(0),
		RadixBits:      8,
	}
	// Wider vector units favor larger per-thread batches for the
	// load/store inner loops.
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		c.ItemsPerThread = 8
	}
	return c
}

// LoadConfig reads a tuning file. The format is JWCC (JSON with comments and
// trailing commas), so tuning files can document their measurements inline.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read tuning file: %w", err)
	}
	std, err := hujson.Standardize(raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	var c Config
	if err := json.Unmarshal(std, &c); err != nil {
		return Config{}, fmt.Errorf("decode tuning file %s: %w", path, err)
	}
	return c, nil
}

// SaveConfig writes c to path atomically, so a tuning run interrupted
// mid-write never leaves a truncated file behind.
func SaveConfig(path string, c Config) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tuning: %w", err)
	}
	data = append(data, '\n')
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write tuning file %s: %w", path, err)
	}
	return nil
}
