package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-insights/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-insights/internal/usecase/audio"
)

// Audio handles audio enhancement endpoints
type Audio struct {
	enhancer *audio.Enhancer
	logger   *zap.Logger
}

// NewAudioHandler creates a new audio handler
func NewAudioHandler(enhancer *audio.Enhancer, logger *zap.Logger) *Audio {
	return &Audio{enhancer: enhancer, logger: logger}
}

// Enhance runs the sample-domain cleanup pipeline over posted PCM samples
// POST /v1/audio/enhance
func (h *Audio) Enhance(c echo.Context) error {
	var req meeting.EnhanceAudioRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("samples are required"))
	}

	res := h.enhancer.Enhance(req.Samples, req.SampleRate, req.Methods)

	return HandleSuccess(h.logger, c, presenter.ToEnhanceAudioResponse(res))
}
