// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SUBCOMP.
//
//  SUBCOMP is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SUBCOMP is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SUBCOMP.  If not, see <https://www.gnu.org/licenses/>.

package cnf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{
		"listenAddress": "127.0.0.1",
		"listenPort": 8080,
		"lingSrv": {"url": "http://localhost:8090"},
		"logLevel": "debug"
	}`), 0644)
	assert.NoError(t, err)

	conf := LoadConfig(path)
	assert.Equal(t, "127.0.0.1", conf.ListenAddress)
	assert.Equal(t, 8080, conf.ListenPort)
	assert.Equal(t, "http://localhost:8090", conf.LingSrv.URL)
	assert.True(t, conf.IsDebugMode())
}

func TestGetSourcePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{"lingSrv": {"url": "http://localhost:8090"}}`), 0644)
	assert.NoError(t, err)

	conf := LoadConfig(path)
	assert.True(t, filepath.IsAbs(conf.GetSourcePath()))
	assert.Equal(t, path, conf.GetSourcePath())
}
