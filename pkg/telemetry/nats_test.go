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

package telemetry

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/airradar/pkg/logger"
)

func runJetStreamServer(t *testing.T) *server.Server {
	t.Helper()

	opts := &server.Options{
		Host:      "127.0.0.1",
		Port:      -1,
		JetStream: true,
		StoreDir:  t.TempDir(),
	}

	srv, err := server.NewServer(opts)
	require.NoError(t, err)

	go srv.Start()

	if !srv.ReadyForConnections(10 * time.Second) {
		srv.Shutdown()
		t.Fatalf("embedded NATS server not ready for connections")
	}

	require.Eventually(t, func() bool {
		return srv.JetStreamEnabled()
	}, 5*time.Second, 50*time.Millisecond, "embedded NATS server not ready for JetStream")

	t.Cleanup(srv.Shutdown)

	return srv
}

func jetStreamClient(t *testing.T, url string) jetstream.JetStream {
	t.Helper()

	nc, err := nats.Connect(url)
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	js, err := jetstream.New(nc)
	require.NoError(t, err)

	return js
}

func TestNATSSinkPublishesCloudEvent(t *testing.T) {
	t.Parallel()

	srv := runJetStreamServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sink, err := ConnectNATSSink(ctx, NATSConfig{
		Enabled: true,
		URL:     srv.ClientURL(),
	}, logger.NewTestLogger())
	require.NoError(t, err)

	rec := testRecord(t)
	assert.Equal(t, "airradar.readings.r2_1234", sink.Subject(rec))

	require.NoError(t, sink.Publish(ctx, rec))
	require.NoError(t, sink.Close(ctx))

	stream, err := jetStreamClient(t, srv.ClientURL()).Stream(ctx, DefaultNATSStream)
	require.NoError(t, err)

	msg, err := stream.GetLastMsgForSubject(ctx, "airradar.readings.r2_1234")
	require.NoError(t, err)

	var event struct {
		SpecVersion string         `json:"specversion"`
		ID          string         `json:"id"`
		Type        string         `json:"type"`
		Subject     string         `json:"subject"`
		Data        map[string]any `json:"data"`
	}

	require.NoError(t, json.Unmarshal(msg.Data, &event))

	assert.Equal(t, "1.0", event.SpecVersion)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "com.carverauto.airradar.reading", event.Type)
	assert.Equal(t, "airradar.readings.r2_1234", event.Subject)
	assert.Equal(t, "awair-r2_1234", event.Data["device_uuid"])
	assert.InDelta(t, 45, event.Data["aqi"], 0)
	assert.Equal(t, "45, Good", event.Data["aqi_formatted"])
	assert.Equal(t, "85, Good", event.Data["score_formatted"])
}

func TestNATSSinkExtendsExistingStream(t *testing.T) {
	t.Parallel()

	srv := runJetStreamServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	js := jetStreamClient(t, srv.ClientURL())

	_, err := js.CreateStream(ctx, jetstream.StreamConfig{
		Name:     "SENSORS",
		Subjects: []string{"other.>"},
	})
	require.NoError(t, err)

	sink, err := ConnectNATSSink(ctx, NATSConfig{
		URL:           srv.ClientURL(),
		Stream:        "SENSORS",
		SubjectPrefix: "lab.air",
	}, logger.NewTestLogger())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = sink.Close(context.Background())
	})

	stream, err := js.Stream(ctx, "SENSORS")
	require.NoError(t, err)

	info, err := stream.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"other.>", "lab.air.>"}, info.Config.Subjects)
}

func TestConnectNATSSinkRequiresURL(t *testing.T) {
	t.Parallel()

	_, err := ConnectNATSSink(context.Background(), NATSConfig{Enabled: true}, logger.NewTestLogger())
	require.ErrorIs(t, err, errNATSURLRequired)
}

func TestConnectNATSSinkBadCA(t *testing.T) {
	t.Parallel()

	_, err := ConnectNATSSink(context.Background(), NATSConfig{
		URL: "nats://127.0.0.1:4222",
		TLS: &logger.TLSConfig{CAFile: filepath.Join(t.TempDir(), "missing-ca.pem")},
	}, logger.NewTestLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NATS TLS")
}

func TestEnsureSubjectList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		subjects []string
		subject  string
		want     []string
	}{
		{
			name:    "adds subject when list empty",
			subject: "airradar.readings.>",
			want:    []string{"airradar.readings.>"},
		},
		{
			name:     "keeps list when greater wildcard covers it",
			subjects: []string{"airradar.>"},
			subject:  "airradar.readings.>",
			want:     []string{"airradar.>"},
		},
		{
			name:     "appends when unmatched",
			subjects: []string{"events.*"},
			subject:  "airradar.readings.>",
			want:     []string{"events.*", "airradar.readings.>"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ensureSubjectList(append([]string(nil), tc.subjects...), tc.subject))
		})
	}
}

func TestMatchesSubject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pattern  string
		subject  string
		expected bool
	}{
		{"exact match", "airradar.readings.r2", "airradar.readings.r2", true},
		{"single wildcard", "airradar.*.r2", "airradar.readings.r2", true},
		{"greater wildcard", "airradar.>", "airradar.readings.r2", true},
		{"no match length", "airradar.*", "airradar.readings.r2", false},
		{"no match tokens", "events.*", "airradar.readings", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, matchesSubject(tc.pattern, tc.subject))
		})
	}
}
