package helper

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/library-backend/store"
)

// SpySpanContext is the span handed out by TracingCollectorSpy.
type SpySpanContext struct {
	mu         sync.Mutex
	status     string
	attributes map[string]string
}

// SetStatus implements store.SpanContext.
func (c *SpySpanContext) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = status
}

// AddAttribute implements store.SpanContext.
func (c *SpySpanContext) AddAttribute(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attributes == nil {
		c.attributes = make(map[string]string)
	}
	c.attributes[key] = value
}

// SpySpanRecord is one captured span.
type SpySpanRecord struct {
	Name            string
	StartAttributes map[string]string
	Status          string
	EndAttributes   map[string]string
	span            *SpySpanContext
}

// TracingCollectorSpy captures calls of store.TracingCollector.
type TracingCollectorSpy struct {
	mu          sync.Mutex
	spanRecords []SpySpanRecord
}

// NewTracingCollectorSpy creates an empty TracingCollectorSpy.
func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

// StartSpan implements store.TracingCollector.
func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, store.SpanContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := &SpySpanContext{}
	s.spanRecords = append(s.spanRecords, SpySpanRecord{
		Name:            name,
		StartAttributes: maps.Clone(attrs),
		span:            span,
	})

	return ctx, span
}

// FinishSpan implements store.TracingCollector.
func (s *TracingCollectorSpy) FinishSpan(spanCtx store.SpanContext, status string, attrs map[string]string) {
	span, ok := spanCtx.(*SpySpanContext)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.spanRecords {
		if s.spanRecords[i].span == span {
			s.spanRecords[i].Status = status
			s.spanRecords[i].EndAttributes = maps.Clone(attrs)
			return
		}
	}
}

// SpanRecords returns a copy of all captured spans.
func (s *TracingCollectorSpy) SpanRecords() []SpySpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]SpySpanRecord, len(s.spanRecords))
	copy(records, s.spanRecords)

	return records
}

// HasSpanRecordForName starts a fluent chain to check for a span.
func (s *TracingCollectorSpy) HasSpanRecordForName(name string) *SpanRecordMatcher {
	candidates := make([]SpySpanRecord, 0)
	for _, record := range s.SpanRecords() {
		if record.Name == name {
			candidates = append(candidates, record)
		}
	}

	return &SpanRecordMatcher{candidates: candidates}
}

// SpanRecordMatcher narrows the captured spans of one name.
type SpanRecordMatcher struct {
	candidates []SpySpanRecord
}

// WithStatus keeps the spans finished with the given status.
func (m *SpanRecordMatcher) WithStatus(status string) *SpanRecordMatcher {
	return m.keep(func(record SpySpanRecord) bool { return record.Status == status })
}

// WithStartAttribute keeps the spans started with the given attribute.
func (m *SpanRecordMatcher) WithStartAttribute(key, value string) *SpanRecordMatcher {
	return m.keep(func(record SpySpanRecord) bool { return record.StartAttributes[key] == value })
}

// WithEndAttribute keeps the spans finished with the given attribute.
func (m *SpanRecordMatcher) WithEndAttribute(key, value string) *SpanRecordMatcher {
	return m.keep(func(record SpySpanRecord) bool { return record.EndAttributes[key] == value })
}

// Assert reports whether a span satisfied the whole chain.
func (m *SpanRecordMatcher) Assert() bool {
	return len(m.candidates) > 0
}

func (m *SpanRecordMatcher) keep(predicate func(SpySpanRecord) bool) *SpanRecordMatcher {
	kept := make([]SpySpanRecord, 0, len(m.candidates))
	for _, record := range m.candidates {
		if predicate(record) {
			kept = append(kept, record)
		}
	}
	m.candidates = kept

	return m
}
