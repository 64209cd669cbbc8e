package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/oldmonad/cloudsweep/internal/app"
	"github.com/oldmonad/cloudsweep/internal/lister"
	"github.com/oldmonad/cloudsweep/internal/reaper"
	cerrors "github.com/oldmonad/cloudsweep/pkg/errors"
	"github.com/oldmonad/cloudsweep/pkg/logger"
	"github.com/oldmonad/cloudsweep/pkg/utils/validator"
	"go.uber.org/zap"
)

// InventoryHandler serves the list and reap operations over HTTP.
type InventoryHandler struct {
	app       app.AppRunner
	validator validator.Validator
}

func NewInventoryHandler(app app.AppRunner, validator validator.Validator) *InventoryHandler {
	return &InventoryHandler{app: app, validator: validator}
}

type reapRequest struct {
	Status string `json:"status"`
	DryRun bool   `json:"dry_run"`
}

type reapErrorResponse struct {
	Error  string        `json:"error"`
	Result reaper.Result `json:"result"`
}

// ListInstances handles GET /instances.
func (h *InventoryHandler) ListInstances(w http.ResponseWriter, r *http.Request) {
	records, err := h.app.ListInstances(r.Context())
	if err != nil {
		h.sendAppError(w, "list instances", err)
		return
	}

	logger.GetLogger().Debug("Instances listed", zap.Int("count", len(records)))
	sendResponse(w, http.StatusOK, map[string][]lister.InstanceRecord{"instances": records})
}

// ListBuckets handles GET /buckets.
func (h *InventoryHandler) ListBuckets(w http.ResponseWriter, r *http.Request) {
	records, err := h.app.ListBuckets(r.Context())
	if err != nil {
		h.sendAppError(w, "list buckets", err)
		return
	}

	logger.GetLogger().Debug("Buckets listed", zap.Int("count", len(records)))
	sendResponse(w, http.StatusOK, map[string][]lister.BucketRecord{"buckets": records})
}

// ReapVolumes handles POST /volumes/reap. An empty body reaps available
// volumes with deletion enabled.
func (h *InventoryHandler) ReapVolumes(w http.ResponseWriter, r *http.Request) {
	var req reapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.GetLogger().Error("Failed to decode request body",
			zap.Error(err),
			zap.String("path", r.URL.Path),
		)
		sendError(w, http.StatusBadRequest, cerrors.NewErrInvalidJSON(err).Error())
		return
	}

	status, err := h.validator.ValidateVolumeStatus(req.Status)
	if err != nil {
		logger.GetLogger().Warn("Volume status validation failed",
			zap.Error(err),
			zap.String("requested_status", req.Status),
		)
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := reaper.Options{Status: status, DryRun: req.DryRun}
	result, err := h.app.ReapVolumes(r.Context(), opts, nil)
	if err != nil {
		logger.GetLogger().Error("Volume reap failed",
			zap.Error(err),
			zap.String("run_id", result.RunID),
			zap.Strings("deleted", result.Deleted),
		)
		sendResponse(w, statusFor(err), reapErrorResponse{
			Error:  cerrors.NewErrAppRun("reap volumes", err).Error(),
			Result: result,
		})
		return
	}

	sendResponse(w, http.StatusOK, result)
}

func (h *InventoryHandler) sendAppError(w http.ResponseWriter, operation string, err error) {
	logger.GetLogger().Error("Application error",
		zap.String("operation", operation),
		zap.Error(err),
	)
	sendError(w, statusFor(err), cerrors.NewErrAppRun(operation, err).Error())
}

// statusFor maps provider faults to 502 and everything else to 500.
func statusFor(err error) int {
	if errors.Is(err, cerrors.ErrCollaboratorFault) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func sendError(w http.ResponseWriter, statusCode int, message string) {
	logger.GetLogger().Debug("Sending error response",
		zap.Int("status_code", statusCode),
		zap.String("message", message),
	)
	sendResponse(w, statusCode, map[string]interface{}{
		"error": message,
	})
}

func sendResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.GetLogger().Error("Failed to encode response",
			zap.Error(err),
			zap.Int("status_code", statusCode),
		)
	}
}
