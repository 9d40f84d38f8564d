package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRemoteRequest(t *testing.T) {
	before := testutil.ToFloat64(RemoteRequestsTotal.WithLabelValues("search", "timeout"))
	RecordRemoteRequest("search", "timeout", 0.2)
	assert.Equal(t, before+1, testutil.ToFloat64(RemoteRequestsTotal.WithLabelValues("search", "timeout")))

	before = testutil.ToFloat64(RemoteRequestsTotal.WithLabelValues("judgment", "success"))
	RecordRemoteRequest("judgment", "", 0.1)
	assert.Equal(t, before+1, testutil.ToFloat64(RemoteRequestsTotal.WithLabelValues("judgment", "success")))
}

func TestRecordToolCall(t *testing.T) {
	before := testutil.ToFloat64(ToolCallsTotal.WithLabelValues("get_judgment", "unknown"))
	RecordToolCall("get_judgment", "", 1)
	assert.Equal(t, before+1, testutil.ToFloat64(ToolCallsTotal.WithLabelValues("get_judgment", "unknown")))
}

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("POST", "200"))
	RecordRequest("POST", "200")
	assert.Equal(t, before+1, testutil.ToFloat64(RequestsTotal.WithLabelValues("POST", "200")))
}
