// Package scoring is the boundary to the external risk-scoring service.
// The engine never computes churn probabilities itself; it ships a signal
// snapshot to the scorer and consumes the result. A scoring failure is a
// distinct error kind so callers can report "prediction unavailable" instead
// of a generic server error or a spurious not-found.
package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gymops/memberpulse/internal/types"
)

// Snapshot is the raw signal bundle sent to the scorer for one member.
type Snapshot struct {
	MemberID   uuid.UUID               `json:"member_id"`
	Status     types.MemberStatus      `json:"status"`
	EnrolledAt time.Time               `json:"enrolled_at"`
	AsOf       time.Time               `json:"as_of"`
	Attendance []types.AttendanceEvent `json:"attendance"`
	Payments   []types.PaymentRecord   `json:"payments"`
	Feedback   []types.FeedbackRecord  `json:"feedback"`
}

// Result is what the scorer returns. Factors may be empty; the engine
// derives its own factors from the raw signals regardless.
type Result struct {
	Probability float64            `json:"churn_probability"`
	Confidence  float64            `json:"confidence"`
	Factors     []types.RiskFactor `json:"factors"`
	// Tier is the scorer's own labeling, if it sends one. The engine
	// re-derives the canonical tier from configured thresholds and only
	// logs a disagreement.
	Tier types.RiskTier `json:"risk_tier,omitempty"`
}

// Scorer scores a single member. Batch re-scoring is the engine iterating
// this operation, not a separate contract.
type Scorer interface {
	ScoreMember(ctx context.Context, snap Snapshot) (Result, error)
}

// Error reports that the upstream scorer failed or returned malformed
// output. The engine does not fabricate a fallback score.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("scoring: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsUnavailable reports whether err is a scoring failure.
func IsUnavailable(err error) bool {
	var se *Error
	return errors.As(err, &se)
}

// Unconfigured stands in when no scoring service URL is set. Every score
// request reports the prediction as unavailable.
type Unconfigured struct{}

func (Unconfigured) ScoreMember(context.Context, Snapshot) (Result, error) {
	return Result{}, &Error{Op: "score", Err: errors.New("no scoring service configured")}
}
