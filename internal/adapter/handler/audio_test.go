package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/johnquangdev/meeting-insights/internal/usecase/audio"
)

func TestEnhance_Success(t *testing.T) {
	h := NewAudioHandler(audio.NewEnhancer(nil), nil)

	body := `{"samples":[0.1,0.5,-0.5,0.2],"sample_rate":16000,"methods":["normalization"]}`
	c, rec := newTestContext(http.MethodPost, "/v1/audio/enhance", body)

	if err := h.Enhance(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			Samples        []float64 `json:"samples"`
			AppliedMethods []string  `json:"applied_methods"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(resp.Data.AppliedMethods) != 1 || resp.Data.AppliedMethods[0] != "normalization" {
		t.Fatalf("unexpected methods %v", resp.Data.AppliedMethods)
	}
	if resp.Data.Samples[1] != 1.0 {
		t.Fatalf("expected normalized peak 1.0 got %f", resp.Data.Samples[1])
	}
}

func TestEnhance_MissingSamples(t *testing.T) {
	h := NewAudioHandler(audio.NewEnhancer(nil), nil)

	c, rec := newTestContext(http.MethodPost, "/v1/audio/enhance", `{"sample_rate":16000}`)

	if err := h.Enhance(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
