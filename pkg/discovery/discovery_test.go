/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package discovery

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/airradar/pkg/logger"
)

var errScanFailed = errors.New("exit status 1")

func newTestEngine(t *testing.T) (*Engine, *MockScanner, *MockVerifier, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	scanner := NewMockScanner(ctrl)
	verifier := NewMockVerifier(ctrl)

	var progress bytes.Buffer

	return NewEngine(scanner, verifier, &progress, logger.NewTestLogger()), scanner, verifier, &progress
}

func TestDiscoverSingleRecord(t *testing.T) {
	t.Parallel()

	engine, scanner, verifier, progress := newTestEngine(t)

	scanner.EXPECT().Scan(gomock.Any()).Return([]byte("127.0.0.1\tAA:BB:CC:00:11:22\n"), nil)
	verifier.EXPECT().Probe(gomock.Any(), "127.0.0.1").Return(true)

	found, err := engine.Discover(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"127.0.0.1"}, found)
	assert.Equal(t, "Discovering Awair devices....+\n", progress.String())
}

func TestDiscoverKeepsDuplicates(t *testing.T) {
	t.Parallel()

	engine, scanner, verifier, _ := newTestEngine(t)

	out := "127.0.0.1\tAA:BB:CC:00:11:22\n127.0.0.1\tAA:BB:CC:00:11:22\n"
	scanner.EXPECT().Scan(gomock.Any()).Return([]byte(out), nil)
	verifier.EXPECT().Probe(gomock.Any(), "127.0.0.1").Return(true).Times(2)

	found, err := engine.Discover(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"127.0.0.1", "127.0.0.1"}, found)
}

func TestDiscoverScanOrderAndUnverified(t *testing.T) {
	t.Parallel()

	engine, scanner, verifier, progress := newTestEngine(t)

	out := "Interface: eth0, type: EN10MB\n" +
		"Starting arp-scan 1.10.0 with 256 hosts\n" +
		"192.168.1.20\t70:88:6b:10:00:01\n" +
		"\n" +
		"192.168.1.5\t00:11:22:33:44:55\n" +
		"192.168.1.9\t70:88:6b:10:00:02\n" +
		"\n" +
		"3 packets received by filter, 0 packets dropped by kernel\n"

	scanner.EXPECT().Scan(gomock.Any()).Return([]byte(out), nil)
	gomock.InOrder(
		verifier.EXPECT().Probe(gomock.Any(), "192.168.1.20").Return(true),
		verifier.EXPECT().Probe(gomock.Any(), "192.168.1.5").Return(false),
		verifier.EXPECT().Probe(gomock.Any(), "192.168.1.9").Return(true),
	)

	found, err := engine.Discover(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"192.168.1.20", "192.168.1.9"}, found)
	assert.Equal(t, "Discovering Awair devices....+..+\n", progress.String())
}

func TestDiscoverEmptyScan(t *testing.T) {
	t.Parallel()

	engine, scanner, _, _ := newTestEngine(t)

	scanner.EXPECT().Scan(gomock.Any()).Return([]byte(""), nil)

	found, err := engine.Discover(context.Background(), Options{})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestDiscoverScanToolMissing(t *testing.T) {
	t.Parallel()

	engine, scanner, _, _ := newTestEngine(t)

	scanner.EXPECT().Scan(gomock.Any()).Return(nil, errors.Join(ErrScanToolMissing, errScanFailed))

	found, err := engine.Discover(context.Background(), Options{})
	require.ErrorIs(t, err, ErrScanToolMissing)
	assert.Empty(t, found)
}

func TestDiscoverMACFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mac  string
	}{
		{name: "dash separated upper case", mac: "AA-bb-CC-00-11-22"},
		{name: "colon separated lower case", mac: "aa:bb:cc:00:11:22"},
		{name: "bare", mac: "AABBCC001122"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine, scanner, verifier, _ := newTestEngine(t)

			out := "10.0.0.7\taa:bb:cc:00:11:22\n10.0.0.8\tde:ad:be:ef:00:01\n"
			scanner.EXPECT().Scan(gomock.Any()).Return([]byte(out), nil)
			verifier.EXPECT().Probe(gomock.Any(), "10.0.0.7").Return(true)

			found, err := engine.Discover(context.Background(), Options{MAC: tt.mac})
			require.NoError(t, err)
			assert.Equal(t, []string{"10.0.0.7"}, found)
		})
	}
}

func TestDiscoverMACNotFound(t *testing.T) {
	t.Parallel()

	engine, scanner, _, _ := newTestEngine(t)

	scanner.EXPECT().Scan(gomock.Any()).Return([]byte("10.0.0.8\tde:ad:be:ef:00:01\n"), nil)

	found, err := engine.Discover(context.Background(), Options{MAC: "aa:bb:cc:00:11:22"})
	require.ErrorIs(t, err, ErrMACNotFound)
	assert.Contains(t, err.Error(), "aa:bb:cc:00:11:22")
	assert.Empty(t, found)
}

func TestDiscoverMACMatchedButUnverified(t *testing.T) {
	t.Parallel()

	engine, scanner, verifier, progress := newTestEngine(t)

	scanner.EXPECT().Scan(gomock.Any()).Return([]byte("10.0.0.8\taa:bb:cc:00:11:22\n"), nil)
	verifier.EXPECT().Probe(gomock.Any(), "10.0.0.8").Return(false)

	found, err := engine.Discover(context.Background(), Options{MAC: "AA-BB-CC-00-11-22"})
	require.ErrorIs(t, err, ErrMACNotFound)
	assert.Contains(t, err.Error(), "AA-BB-CC-00-11-22")
	assert.Empty(t, found)
	assert.Equal(t, "Discovering Awair devices....\n", progress.String())
}

func TestDiscoverIPFilter(t *testing.T) {
	t.Parallel()

	t.Run("verified", func(t *testing.T) {
		t.Parallel()

		engine, _, verifier, _ := newTestEngine(t)

		verifier.EXPECT().Probe(gomock.Any(), "10.0.0.7").Return(true)

		found, err := engine.Discover(context.Background(), Options{IP: "10.0.0.7"})
		require.NoError(t, err)
		assert.Equal(t, []string{"10.0.0.7"}, found)
	})

	t.Run("not an awair device", func(t *testing.T) {
		t.Parallel()

		engine, _, verifier, _ := newTestEngine(t)

		verifier.EXPECT().Probe(gomock.Any(), "10.0.0.7").Return(false)

		found, err := engine.Discover(context.Background(), Options{IP: "10.0.0.7"})
		require.ErrorIs(t, err, ErrIPNotFound)
		assert.Contains(t, err.Error(), "10.0.0.7")
		assert.Empty(t, found)
	})
}

func TestDiscoverNilProgress(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	scanner := NewMockScanner(ctrl)
	verifier := NewMockVerifier(ctrl)

	scanner.EXPECT().Scan(gomock.Any()).Return([]byte("127.0.0.1\tAA:BB:CC:00:11:22\n"), nil)
	verifier.EXPECT().Probe(gomock.Any(), "127.0.0.1").Return(true)

	engine := NewEngine(scanner, verifier, nil, logger.NewTestLogger())

	found, err := engine.Discover(context.Background(), Options{})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
