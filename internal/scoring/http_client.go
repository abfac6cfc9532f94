package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gymops/memberpulse/internal/types"
)

// HTTPScorer calls a remote scoring service over HTTP. The service receives
// the signal snapshot as JSON and answers with probability, confidence and
// a loose factor list; the factor fields pass through the typed parse
// boundary here so an invalid payload surfaces as a scoring Error rather
// than propagating as opaque strings.
type HTTPScorer struct {
	baseURL string
	client  *http.Client
}

// NewHTTPScorer creates a scorer client for the given base URL.
func NewHTTPScorer(baseURL string) *HTTPScorer {
	return &HTTPScorer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

var _ Scorer = (*HTTPScorer)(nil)

// scoreResponse is the wire shape of the scorer's answer. Enum-like fields
// arrive as strings and are validated before use.
type scoreResponse struct {
	ChurnProbability float64 `json:"churn_probability"`
	Confidence       float64 `json:"confidence"`
	RiskTier         string  `json:"risk_tier"`
	Factors          []struct {
		Type        string `json:"type"`
		Description string `json:"description"`
		Impact      string `json:"impact"`
	} `json:"factors"`
}

// ScoreMember posts the snapshot to the scoring service.
func (s *HTTPScorer) ScoreMember(ctx context.Context, snap Snapshot) (Result, error) {
	if s.baseURL == "" {
		return Result{}, &Error{Op: "score member", Err: fmt.Errorf("no scoring service configured")}
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return Result{}, &Error{Op: "encode snapshot", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/score", bytes.NewReader(body))
	if err != nil {
		return Result{}, &Error{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Result{}, &Error{Op: "call scorer", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{}, &Error{
			Op:  "call scorer",
			Err: fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(raw)),
		}
	}

	var wire scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return Result{}, &Error{Op: "decode response", Err: err}
	}

	return parseResult(wire)
}

func parseResult(wire scoreResponse) (Result, error) {
	if wire.ChurnProbability < 0 || wire.ChurnProbability > 1 {
		return Result{}, &Error{
			Op:  "validate response",
			Err: fmt.Errorf("churn_probability %v outside [0,1]", wire.ChurnProbability),
		}
	}
	if wire.Confidence < 0 || wire.Confidence > 1 {
		return Result{}, &Error{
			Op:  "validate response",
			Err: fmt.Errorf("confidence %v outside [0,1]", wire.Confidence),
		}
	}

	res := Result{
		Probability: wire.ChurnProbability,
		Confidence:  wire.Confidence,
	}

	if wire.RiskTier != "" {
		tier, err := types.ParseRiskTier(wire.RiskTier)
		if err != nil {
			return Result{}, &Error{Op: "validate response", Err: err}
		}
		res.Tier = tier
	}

	for _, f := range wire.Factors {
		ft, err := types.ParseFactorType(f.Type)
		if err != nil {
			return Result{}, &Error{Op: "validate response", Err: err}
		}
		impact, err := types.ParseImpact(f.Impact)
		if err != nil {
			return Result{}, &Error{Op: "validate response", Err: err}
		}
		res.Factors = append(res.Factors, types.RiskFactor{
			Type:        ft,
			Description: f.Description,
			Impact:      impact,
		})
	}
	return res, nil
}
