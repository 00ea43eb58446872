package onboarding

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/turiniq/agent-platform/internal/business"
	"github.com/turiniq/agent-platform/pkg/logging"
)

// 32 MiB cap on the multipart form, matching typical document uploads.
const maxUploadBytes = 32 << 20

// Handler handles HTTP requests for agent onboarding
type Handler struct {
	builder *ContextBuilder
	logger  *logging.Logger
}

// NewHandler creates a new onboarding handler
func NewHandler(builder *ContextBuilder, logger *logging.Logger) *Handler {
	return &Handler{builder: builder, logger: logger}
}

// ConfigureResponse is the response for a successful configuration.
type ConfigureResponse struct {
	Status        string `json:"status"`
	BusinessID    string `json:"business_id"`
	ContextPrompt string `json:"context_prompt"`
}

// ConfigureAgent handles POST /configure-agent requests
func (h *Handler) ConfigureAgent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.logger.Error("failed to parse multipart form", "error", err)
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	in := inputFromForm(r)
	if err := in.Validate(); err != nil {
		h.logger.Error("invalid onboarding input", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	files, err := readUploads(r)
	if err != nil {
		h.logger.Error("failed to read uploads", "error", err)
		http.Error(w, "Failed to read uploaded files", http.StatusBadRequest)
		return
	}

	result, err := h.builder.Build(r.Context(), in, files)
	if err != nil {
		h.logger.Error("failed to configure agent", "error", err, "domain", in.Domain)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.logger.Info("agent configured", "business_id", result.BusinessID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ConfigureResponse{
		Status:        "success",
		BusinessID:    result.BusinessID,
		ContextPrompt: result.ContextPrompt,
	})
}

func inputFromForm(r *http.Request) business.Input {
	return business.Input{
		BusinessType:             business.Type(r.FormValue("business_type")),
		Domain:                   r.FormValue("domain"),
		AgentGoal:                business.AgentGoal(r.FormValue("agent_goal")),
		AgentGoalOther:           r.FormValue("agent_goal_other"),
		Tonality:                 business.Tonality(r.FormValue("tonality")),
		CommunicationStyle:       splitList[business.CommunicationStyle](r.FormValue("communication_style")),
		CommunicationStyleCustom: r.FormValue("communication_style_custom"),
		ContextClarity:           splitList[business.ContextClarity](r.FormValue("context_clarity")),
		ContextClarityCustom:     r.FormValue("context_clarity_custom"),
		HandoverEscalation:       splitList[business.HandoverEscalation](r.FormValue("handover_escalation")),
		HandoverEscalationCustom: r.FormValue("handover_escalation_custom"),
		DataToCapture:            splitList[business.DataToCapture](r.FormValue("data_to_capture")),
		DataToCaptureOther:       r.FormValue("data_to_capture_other"),
		CustomOpeningMessage:     r.FormValue("custom_opening_message"),
		CustomInstructions:       r.FormValue("custom_instructions"),
	}
}

func readUploads(r *http.Request) ([]UploadedFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	var files []UploadedFile
	for _, header := range r.MultipartForm.File["files"] {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, UploadedFile{Name: header.Filename, Content: content})
	}
	return files, nil
}

// The list fields arrive as one comma-joined form value.
func splitList[T ~string](raw string) []T {
	var out []T
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, T(part))
	}
	return out
}
