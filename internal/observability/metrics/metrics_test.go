package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAgentMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAgentMetrics(reg)

	m.ObserveSession("support")
	m.ObserveSession("support")
	m.ObserveSession("sales")
	m.ObserveTicket()
	m.ObserveLead()
	m.ObserveLLMCall("ok")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.sessionsTotal.WithLabelValues("support")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.sessionsTotal.WithLabelValues("sales")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ticketsTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.leadsTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.llmCallsTotal.WithLabelValues("ok")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *AgentMetrics
	assert.NotPanics(t, func() {
		m.ObserveSession("support")
		m.ObserveTurn("sales")
		m.ObserveTicket()
		m.ObserveLead()
		m.ObserveLLMCall("fallback")
	})
}
