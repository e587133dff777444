// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] as it appears in a JSON
// config file. Durations are accepted as strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Namespace string `json:"namespace"`
		StableIDs bool   `json:"stable_ids"`
	} `json:"app,omitempty"`

	Storage struct {
		InMemory bool   `json:"in_memory"`
		Driver   string `json:"driver"`
		IndexDSN string `json:"index_dsn"`
	} `json:"storage,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`

	UI struct {
		GeneratedLength     int      `json:"generated_length"`
		ClipboardClearAfter Duration `json:"clipboard_clear_after"`
	} `json:"ui,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Namespace: jsonCfg.App.Namespace,
			StableIDs: jsonCfg.App.StableIDs,
		},
		Storage: Storage{
			InMemory: jsonCfg.Storage.InMemory,
			Driver:   jsonCfg.Storage.Driver,
			IndexDSN: jsonCfg.Storage.IndexDSN,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
		UI: UI{
			GeneratedLength:     jsonCfg.UI.GeneratedLength,
			ClipboardClearAfter: time.Duration(jsonCfg.UI.ClipboardClearAfter),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
