package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dealscout/dealscout/internal/metrics"
	"github.com/dealscout/dealscout/internal/notify"
)

// NotifyHandler records notification requests.
type NotifyHandler struct {
	recorder *notify.Recorder
}

// NewNotifyHandler creates a new NotifyHandler.
func NewNotifyHandler(r *notify.Recorder) *NotifyHandler {
	return &NotifyHandler{recorder: r}
}

// --- Input/Output types ---

// NotifyItem is one notification request.
type NotifyItem struct {
	VIN     string `json:"vin"`
	Channel string `json:"channel,omitempty" doc:"Delivery channel (default: email)"`
	Message string `json:"message,omitempty"`
}

// NotifyResult reports the recorded notification. Notifications always
// succeed — this is a demo log, not a delivery pipeline.
type NotifyResult struct {
	VIN      string `json:"vin"`
	Notified bool   `json:"notified"`
	Channel  string `json:"channel"`
}

// NotifyInput is a batch of notification requests.
type NotifyInput struct {
	Body []NotifyItem
}

// NotifyOutput carries one result per input item, in input order.
type NotifyOutput struct {
	Body []NotifyResult
}

// --- Handlers ---

// Notify appends each request to the in-memory notification log. It never
// touches listings or scores.
func (h *NotifyHandler) Notify(
	_ context.Context,
	input *NotifyInput,
) (*NotifyOutput, error) {
	results := make([]NotifyResult, 0, len(input.Body))
	for _, item := range input.Body {
		n := h.recorder.Record(item.VIN, item.Channel, item.Message)
		metrics.NotificationsRecordedTotal.Inc()
		results = append(results, NotifyResult{
			VIN:      n.VIN,
			Notified: true,
			Channel:  n.Channel,
		})
	}

	return &NotifyOutput{Body: results}, nil
}

// RegisterNotifyRoutes registers notification endpoints with the Huma API.
func RegisterNotifyRoutes(api huma.API, h *NotifyHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "notify",
		Method:      http.MethodPost,
		Path:        "/api/v1/notify",
		Summary:     "Record notifications",
		Description: "Records notification requests in an in-memory log and reports success for each.",
		Tags:        []string{"notifications"},
	}, h.Notify)
}
