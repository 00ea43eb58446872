package metrics

import "github.com/prometheus/client_golang/prometheus"

// AgentMetrics exposes counters for chat sessions and gateway calls.
type AgentMetrics struct {
	sessionsTotal *prometheus.CounterVec
	turnsTotal    *prometheus.CounterVec
	ticketsTotal  prometheus.Counter
	leadsTotal    prometheus.Counter
	llmCallsTotal *prometheus.CounterVec
}

func NewAgentMetrics(reg prometheus.Registerer) *AgentMetrics {
	m := &AgentMetrics{
		sessionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "turiniq",
			Subsystem: "agent",
			Name:      "sessions_total",
			Help:      "Chat sessions by branch",
		}, []string{"branch"}),
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "turiniq",
			Subsystem: "agent",
			Name:      "turns_total",
			Help:      "Processed conversation turns by branch",
		}, []string{"branch"}),
		ticketsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "turiniq",
			Subsystem: "agent",
			Name:      "tickets_total",
			Help:      "Support tickets created",
		}),
		leadsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "turiniq",
			Subsystem: "agent",
			Name:      "leads_total",
			Help:      "Sales leads persisted",
		}),
		llmCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "turiniq",
			Subsystem: "llm",
			Name:      "calls_total",
			Help:      "Gateway calls by outcome",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.sessionsTotal, m.turnsTotal, m.ticketsTotal, m.leadsTotal, m.llmCallsTotal)
	return m
}

func (m *AgentMetrics) ObserveSession(branch string) {
	if m == nil {
		return
	}
	m.sessionsTotal.WithLabelValues(branch).Inc()
}

func (m *AgentMetrics) ObserveTurn(branch string) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(branch).Inc()
}

func (m *AgentMetrics) ObserveTicket() {
	if m == nil {
		return
	}
	m.ticketsTotal.Inc()
}

func (m *AgentMetrics) ObserveLead() {
	if m == nil {
		return
	}
	m.leadsTotal.Inc()
}

func (m *AgentMetrics) ObserveLLMCall(status string) {
	if m == nil {
		return
	}
	m.llmCallsTotal.WithLabelValues(status).Inc()
}
