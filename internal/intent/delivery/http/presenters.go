package http

import (
	"order-support-service/internal/intent"
)

// --- Request DTOs ---

type detectReq struct {
	Question string `json:"question" binding:"required"`
}

func (r detectReq) toInput() intent.DetectInput {
	return intent.DetectInput{
		Question: r.Question,
	}
}

// --- Response DTOs ---

// detectResp is the fixed wire contract for intent detection.
type detectResp struct {
	Intent      string  `json:"intent"`
	Confidence  float64 `json:"confidence"`
	RawTopLabel string  `json:"raw_top_label,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

func (h *handler) newDetectResp(out intent.DetectOutput) detectResp {
	return detectResp{
		Intent:      string(out.Intent),
		Confidence:  out.Confidence,
		RawTopLabel: out.RawTopLabel,
		Reason:      out.Reason,
	}
}
