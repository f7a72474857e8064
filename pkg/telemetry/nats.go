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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/carverauto/airradar/pkg/augment"
	"github.com/carverauto/airradar/pkg/logger"
)

const (
	DefaultNATSURL       = nats.DefaultURL
	DefaultNATSStream    = "AIRRADAR"
	DefaultSubjectPrefix = "airradar.readings"

	readingEventType   = "com.carverauto.airradar.reading"
	readingEventSource = "airradar"
	unknownDevice      = "unknown"
)

var errNATSURLRequired = errors.New("nats url is required")

// NATSConfig configures the JetStream event backend.
type NATSConfig struct {
	Enabled       bool   `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	URL           string `json:"url" yaml:"url" mapstructure:"url"`
	Stream        string `json:"stream" yaml:"stream" mapstructure:"stream"`
	SubjectPrefix string `json:"subject_prefix" yaml:"subject_prefix" mapstructure:"subject_prefix"`
	// TLS enables a secured connection; cert and key add client authentication.
	TLS *logger.TLSConfig `json:"tls,omitempty" yaml:"tls,omitempty" mapstructure:"tls"`
}

// CloudEvent is the CloudEvents 1.0 JSON envelope published for every record.
type CloudEvent struct {
	SpecVersion     string      `json:"specversion"`
	ID              string      `json:"id"`
	Source          string      `json:"source"`
	Type            string      `json:"type"`
	DataContentType string      `json:"datacontenttype"`
	Subject         string      `json:"subject,omitempty"`
	Time            *time.Time  `json:"time,omitempty"`
	Data            interface{} `json:"data,omitempty"`
}

// NATSSink publishes one CloudEvent per record to JetStream.
type NATSSink struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	prefix string
	logger logger.Logger
}

// ConnectNATSSink connects to cfg.URL and makes sure cfg.Stream captures
// every subject under cfg.SubjectPrefix.
func ConnectNATSSink(ctx context.Context, cfg NATSConfig, log logger.Logger, opts ...nats.Option) (*NATSSink, error) {
	if cfg.URL == "" {
		return nil, errNATSURLRequired
	}

	if cfg.Stream == "" {
		cfg.Stream = DefaultNATSStream
	}

	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = DefaultSubjectPrefix
	}

	if cfg.TLS != nil {
		tlsConf, err := logger.TLSClientConfig(cfg.TLS)
		if err != nil {
			return nil, fmt.Errorf("failed to build NATS TLS config: %w", err)
		}

		opts = append(opts, nats.Secure(tlsConf))
	}

	opts = append([]nats.Option{
		nats.Name("airradar"),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Warn().Err(err).Msg("NATS error")
		}),
	}, opts...)

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()

		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	if err := ensureStream(ctx, js, cfg.Stream, cfg.SubjectPrefix+".>"); err != nil {
		nc.Close()

		return nil, err
	}

	log.Debug().Str("url", nc.ConnectedUrl()).Str("stream", cfg.Stream).Msg("Connected to NATS")

	return &NATSSink{
		nc:     nc,
		js:     js,
		prefix: cfg.SubjectPrefix,
		logger: log,
	}, nil
}

func ensureStream(ctx context.Context, js jetstream.JetStream, name, subject string) error {
	stream, err := js.Stream(ctx, name)
	if err != nil {
		if !isStreamMissingErr(err) {
			return fmt.Errorf("failed to look up stream %s: %w", name, err)
		}

		_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
			Name:     name,
			Subjects: []string{subject},
		})
		if err != nil {
			return fmt.Errorf("failed to create stream %s: %w", name, err)
		}

		return nil
	}

	cfg := stream.CachedInfo().Config

	subjects := ensureSubjectList(cfg.Subjects, subject)
	if len(subjects) == len(cfg.Subjects) {
		return nil
	}

	cfg.Subjects = subjects

	if _, err := js.UpdateStream(ctx, cfg); err != nil {
		return fmt.Errorf("failed to add subject %s to stream %s: %w", subject, name, err)
	}

	return nil
}

// ensureSubjectList appends subject unless an existing pattern already covers it.
func ensureSubjectList(subjects []string, subject string) []string {
	for _, s := range subjects {
		if matchesSubject(s, subject) {
			return subjects
		}
	}

	return append(subjects, subject)
}

// matchesSubject reports whether pattern covers subject using NATS token
// wildcards. A literal ">" in subject only matches a ">" pattern token.
func matchesSubject(pattern, subject string) bool {
	pt := strings.Split(pattern, ".")
	st := strings.Split(subject, ".")

	for i, tok := range pt {
		if tok == ">" {
			return len(st) > i
		}

		if i >= len(st) {
			return false
		}

		if tok != "*" && tok != st[i] {
			return false
		}
	}

	return len(pt) == len(st)
}

func isStreamMissingErr(err error) bool {
	return errors.Is(err, jetstream.ErrStreamNotFound) ||
		errors.Is(err, jetstream.ErrNoStreamResponse) ||
		errors.Is(err, nats.ErrStreamNotFound) ||
		errors.Is(err, nats.ErrNoStreamResponse) ||
		errors.Is(err, nats.ErrNoResponders)
}

//nolint:gochecknoglobals // shared replacer
var subjectTokenReplacer = strings.NewReplacer(".", "_", " ", "_", "*", "_", ">", "_")

// Subject returns the subject a record is published on.
func (s *NATSSink) Subject(rec *augment.Record) string {
	device := subjectTokenReplacer.Replace(DeviceName(rec))
	if device == "" {
		device = unknownDevice
	}

	return s.prefix + "." + device
}

func (s *NATSSink) Publish(ctx context.Context, rec *augment.Record) error {
	now := time.Now()

	event := CloudEvent{
		SpecVersion:     "1.0",
		ID:              uuid.New().String(),
		Source:          readingEventSource,
		Type:            readingEventType,
		DataContentType: "application/json",
		Subject:         s.Subject(rec),
		Time:            &now,
		Data:            rec,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal reading event: %w", err)
	}

	ack, err := s.js.Publish(ctx, event.Subject, payload)
	if err != nil {
		return fmt.Errorf("failed to publish reading event: %w", err)
	}

	s.logger.Debug().
		Str("event_id", event.ID).
		Str("subject", event.Subject).
		Uint64("seq", ack.Sequence).
		Msg("Published reading event")

	return nil
}

func (s *NATSSink) Close(_ context.Context) error {
	s.nc.Close()

	return nil
}
