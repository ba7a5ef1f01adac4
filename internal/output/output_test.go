package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/NicolasCard/RAPZ/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput keeps written messages in memory for assertions.
type captureOutput struct {
	messages map[string][][]byte
}

func newCaptureOutput() *captureOutput {
	return &captureOutput{messages: make(map[string][][]byte)}
}

func (c *captureOutput) WriteMessage(topic string, msg []byte) error {
	c.messages[topic] = append(c.messages[topic], msg)
	return nil
}

func (c *captureOutput) Close() error { return nil }

func TestFileOutput_AppendsJSONLines(t *testing.T) {
	dir := t.TempDir()
	out := NewFileOutput(dir)

	require.NoError(t, out.WriteMessage("order_created_events", []byte(`{"orderId":"1"}`)))
	require.NoError(t, out.WriteMessage("order_created_events", []byte(`{"orderId":"2"}`)))
	require.NoError(t, out.Close())

	raw, err := os.ReadFile(filepath.Join(dir, "order_created_events.jsonl"))
	require.NoError(t, err)
	assert.Equal(t, "{\"orderId\":\"1\"}\n{\"orderId\":\"2\"}\n", string(raw))
}

func TestRecorder_EmitsLifecycleEvents(t *testing.T) {
	capture := newCaptureOutput()
	recorder := NewRecorder(capture)

	order := &models.Order{
		ID:            "1",
		StoreID:       "s1",
		RiderID:       "r1",
		Status:        models.OrderStatusAccepted,
		DistanceKm:    4.5,
		Price:         12.5,
		EstimatedTime: 25,
		CreatedAt:     1700000000000,
	}

	recorder.OrderCreated(order)
	recorder.OrderAccepted(order)
	recorder.OrderDelivered(order)

	require.Len(t, capture.messages[TopicOrderCreated], 1)
	require.Len(t, capture.messages[TopicOrderAccepted], 1)
	require.Len(t, capture.messages[TopicOrderDelivered], 1)

	var accepted OrderAcceptedEvent
	require.NoError(t, json.Unmarshal(capture.messages[TopicOrderAccepted][0], &accepted))
	assert.Equal(t, "OrderAccepted", accepted.EventType)
	assert.Equal(t, "1", accepted.OrderID)
	assert.Equal(t, "r1", accepted.RiderID)
	assert.NotZero(t, accepted.Timestamp)
}

func TestRecorder_PricingEvent(t *testing.T) {
	capture := newCaptureOutput()
	recorder := NewRecorder(capture)

	analysis := models.PricingAnalysis{FairPrice: 14, Justification: "fallback", EstimatedTime: 24}
	recorder.PricingEstimated(4.5, false, "bom", analysis, true, "request failed")

	require.Len(t, capture.messages[TopicPricingEstimate], 1)

	var event PricingEstimateEvent
	require.NoError(t, json.Unmarshal(capture.messages[TopicPricingEstimate][0], &event))
	assert.True(t, event.Fallback)
	assert.Equal(t, "request failed", event.FailureReason)
	assert.Equal(t, 14.0, event.FairPrice)
}

func TestRecorder_NilIsSafe(t *testing.T) {
	var recorder *Recorder

	// Must not panic: stores run without a sink in tests.
	recorder.OrderCreated(&models.Order{ID: "1"})
	recorder.PricingEstimated(1, false, "bom", models.PricingAnalysis{}, false, "")
}

func TestForConfig_SelectsSink(t *testing.T) {
	dir := t.TempDir()

	sink, err := ForConfig(&models.Config{OutputFile: dir})
	require.NoError(t, err)
	_, ok := sink.(*FileOutput)
	assert.True(t, ok)

	sink, err = ForConfig(&models.Config{})
	require.NoError(t, err)
	_, ok = sink.(*ConsoleOutput)
	assert.True(t, ok)
}
