// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/gymops/memberpulse/ent/alert"
	"github.com/gymops/memberpulse/ent/attendanceevent"
	"github.com/gymops/memberpulse/ent/feedbackrecord"
	"github.com/gymops/memberpulse/ent/member"
	"github.com/gymops/memberpulse/ent/metricssnapshot"
	"github.com/gymops/memberpulse/ent/paymentrecord"
	"github.com/gymops/memberpulse/ent/retentionaction"
	"github.com/gymops/memberpulse/ent/riskassessment"
	"github.com/gymops/memberpulse/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	alertMixin := schema.Alert{}.Mixin()
	alertMixinFields0 := alertMixin[0].Fields()
	_ = alertMixinFields0
	alertFields := schema.Alert{}.Fields()
	_ = alertFields
	// alertDescCreatedAt is the schema descriptor for created_at field.
	alertDescCreatedAt := alertMixinFields0[0].Descriptor()
	// alert.DefaultCreatedAt holds the default value on creation for the created_at field.
	alert.DefaultCreatedAt = alertDescCreatedAt.Default.(func() time.Time)
	// alertDescUpdatedAt is the schema descriptor for updated_at field.
	alertDescUpdatedAt := alertMixinFields0[1].Descriptor()
	// alert.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	alert.DefaultUpdatedAt = alertDescUpdatedAt.Default.(func() time.Time)
	// alert.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	alert.UpdateDefaultUpdatedAt = alertDescUpdatedAt.UpdateDefault.(func() time.Time)
	// alertDescMessage is the schema descriptor for message field.
	alertDescMessage := alertFields[4].Descriptor()
	// alert.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	alert.MessageValidator = alertDescMessage.Validators[0].(func(string) error)
	// alertDescID is the schema descriptor for id field.
	alertDescID := alertFields[0].Descriptor()
	// alert.DefaultID holds the default value on creation for the id field.
	alert.DefaultID = alertDescID.Default.(func() uuid.UUID)
	attendanceeventMixin := schema.AttendanceEvent{}.Mixin()
	attendanceeventMixinFields0 := attendanceeventMixin[0].Fields()
	_ = attendanceeventMixinFields0
	attendanceeventFields := schema.AttendanceEvent{}.Fields()
	_ = attendanceeventFields
	// attendanceeventDescCreatedAt is the schema descriptor for created_at field.
	attendanceeventDescCreatedAt := attendanceeventMixinFields0[0].Descriptor()
	// attendanceevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	attendanceevent.DefaultCreatedAt = attendanceeventDescCreatedAt.Default.(func() time.Time)
	// attendanceeventDescUpdatedAt is the schema descriptor for updated_at field.
	attendanceeventDescUpdatedAt := attendanceeventMixinFields0[1].Descriptor()
	// attendanceevent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	attendanceevent.DefaultUpdatedAt = attendanceeventDescUpdatedAt.Default.(func() time.Time)
	// attendanceevent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	attendanceevent.UpdateDefaultUpdatedAt = attendanceeventDescUpdatedAt.UpdateDefault.(func() time.Time)
	// attendanceeventDescSessionType is the schema descriptor for session_type field.
	attendanceeventDescSessionType := attendanceeventFields[3].Descriptor()
	// attendanceevent.SessionTypeValidator is a validator for the "session_type" field. It is called by the builders before save.
	attendanceevent.SessionTypeValidator = attendanceeventDescSessionType.Validators[0].(func(string) error)
	// attendanceeventDescDurationMinutes is the schema descriptor for duration_minutes field.
	attendanceeventDescDurationMinutes := attendanceeventFields[4].Descriptor()
	// attendanceevent.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	attendanceevent.DurationMinutesValidator = attendanceeventDescDurationMinutes.Validators[0].(func(int) error)
	// attendanceeventDescID is the schema descriptor for id field.
	attendanceeventDescID := attendanceeventFields[0].Descriptor()
	// attendanceevent.DefaultID holds the default value on creation for the id field.
	attendanceevent.DefaultID = attendanceeventDescID.Default.(func() uuid.UUID)
	feedbackrecordMixin := schema.FeedbackRecord{}.Mixin()
	feedbackrecordMixinFields0 := feedbackrecordMixin[0].Fields()
	_ = feedbackrecordMixinFields0
	feedbackrecordFields := schema.FeedbackRecord{}.Fields()
	_ = feedbackrecordFields
	// feedbackrecordDescCreatedAt is the schema descriptor for created_at field.
	feedbackrecordDescCreatedAt := feedbackrecordMixinFields0[0].Descriptor()
	// feedbackrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedbackrecord.DefaultCreatedAt = feedbackrecordDescCreatedAt.Default.(func() time.Time)
	// feedbackrecordDescUpdatedAt is the schema descriptor for updated_at field.
	feedbackrecordDescUpdatedAt := feedbackrecordMixinFields0[1].Descriptor()
	// feedbackrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	feedbackrecord.DefaultUpdatedAt = feedbackrecordDescUpdatedAt.Default.(func() time.Time)
	// feedbackrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	feedbackrecord.UpdateDefaultUpdatedAt = feedbackrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// feedbackrecordDescRating is the schema descriptor for rating field.
	feedbackrecordDescRating := feedbackrecordFields[2].Descriptor()
	// feedbackrecord.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	feedbackrecord.RatingValidator = feedbackrecordDescRating.Validators[0].(func(int) error)
	// feedbackrecordDescID is the schema descriptor for id field.
	feedbackrecordDescID := feedbackrecordFields[0].Descriptor()
	// feedbackrecord.DefaultID holds the default value on creation for the id field.
	feedbackrecord.DefaultID = feedbackrecordDescID.Default.(func() uuid.UUID)
	memberMixin := schema.Member{}.Mixin()
	memberMixinFields0 := memberMixin[0].Fields()
	_ = memberMixinFields0
	memberFields := schema.Member{}.Fields()
	_ = memberFields
	// memberDescCreatedAt is the schema descriptor for created_at field.
	memberDescCreatedAt := memberMixinFields0[0].Descriptor()
	// member.DefaultCreatedAt holds the default value on creation for the created_at field.
	member.DefaultCreatedAt = memberDescCreatedAt.Default.(func() time.Time)
	// memberDescUpdatedAt is the schema descriptor for updated_at field.
	memberDescUpdatedAt := memberMixinFields0[1].Descriptor()
	// member.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	member.DefaultUpdatedAt = memberDescUpdatedAt.Default.(func() time.Time)
	// member.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	member.UpdateDefaultUpdatedAt = memberDescUpdatedAt.UpdateDefault.(func() time.Time)
	// memberDescName is the schema descriptor for name field.
	memberDescName := memberFields[1].Descriptor()
	// member.NameValidator is a validator for the "name" field. It is called by the builders before save.
	member.NameValidator = memberDescName.Validators[0].(func(string) error)
	// memberDescID is the schema descriptor for id field.
	memberDescID := memberFields[0].Descriptor()
	// member.DefaultID holds the default value on creation for the id field.
	member.DefaultID = memberDescID.Default.(func() uuid.UUID)
	metricssnapshotMixin := schema.MetricsSnapshot{}.Mixin()
	metricssnapshotMixinFields0 := metricssnapshotMixin[0].Fields()
	_ = metricssnapshotMixinFields0
	metricssnapshotFields := schema.MetricsSnapshot{}.Fields()
	_ = metricssnapshotFields
	// metricssnapshotDescCreatedAt is the schema descriptor for created_at field.
	metricssnapshotDescCreatedAt := metricssnapshotMixinFields0[0].Descriptor()
	// metricssnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	metricssnapshot.DefaultCreatedAt = metricssnapshotDescCreatedAt.Default.(func() time.Time)
	// metricssnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	metricssnapshotDescUpdatedAt := metricssnapshotMixinFields0[1].Descriptor()
	// metricssnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	metricssnapshot.DefaultUpdatedAt = metricssnapshotDescUpdatedAt.Default.(func() time.Time)
	// metricssnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	metricssnapshot.UpdateDefaultUpdatedAt = metricssnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
	// metricssnapshotDescAccuracy is the schema descriptor for accuracy field.
	metricssnapshotDescAccuracy := metricssnapshotFields[2].Descriptor()
	// metricssnapshot.AccuracyValidator is a validator for the "accuracy" field. It is called by the builders before save.
	metricssnapshot.AccuracyValidator = func() func(float64) error {
		validators := metricssnapshotDescAccuracy.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(accuracy float64) error {
			for _, fn := range fns {
				if err := fn(accuracy); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// metricssnapshotDescPrecision is the schema descriptor for precision field.
	metricssnapshotDescPrecision := metricssnapshotFields[3].Descriptor()
	// metricssnapshot.PrecisionValidator is a validator for the "precision" field. It is called by the builders before save.
	metricssnapshot.PrecisionValidator = func() func(float64) error {
		validators := metricssnapshotDescPrecision.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(precision float64) error {
			for _, fn := range fns {
				if err := fn(precision); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// metricssnapshotDescRecall is the schema descriptor for recall field.
	metricssnapshotDescRecall := metricssnapshotFields[4].Descriptor()
	// metricssnapshot.RecallValidator is a validator for the "recall" field. It is called by the builders before save.
	metricssnapshot.RecallValidator = func() func(float64) error {
		validators := metricssnapshotDescRecall.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(recall float64) error {
			for _, fn := range fns {
				if err := fn(recall); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// metricssnapshotDescF1 is the schema descriptor for f1 field.
	metricssnapshotDescF1 := metricssnapshotFields[5].Descriptor()
	// metricssnapshot.F1Validator is a validator for the "f1" field. It is called by the builders before save.
	metricssnapshot.F1Validator = func() func(float64) error {
		validators := metricssnapshotDescF1.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(f1 float64) error {
			for _, fn := range fns {
				if err := fn(f1); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// metricssnapshotDescTotalEvaluated is the schema descriptor for total_evaluated field.
	metricssnapshotDescTotalEvaluated := metricssnapshotFields[7].Descriptor()
	// metricssnapshot.TotalEvaluatedValidator is a validator for the "total_evaluated" field. It is called by the builders before save.
	metricssnapshot.TotalEvaluatedValidator = metricssnapshotDescTotalEvaluated.Validators[0].(func(int) error)
	// metricssnapshotDescID is the schema descriptor for id field.
	metricssnapshotDescID := metricssnapshotFields[0].Descriptor()
	// metricssnapshot.DefaultID holds the default value on creation for the id field.
	metricssnapshot.DefaultID = metricssnapshotDescID.Default.(func() uuid.UUID)
	paymentrecordMixin := schema.PaymentRecord{}.Mixin()
	paymentrecordMixinFields0 := paymentrecordMixin[0].Fields()
	_ = paymentrecordMixinFields0
	paymentrecordFields := schema.PaymentRecord{}.Fields()
	_ = paymentrecordFields
	// paymentrecordDescCreatedAt is the schema descriptor for created_at field.
	paymentrecordDescCreatedAt := paymentrecordMixinFields0[0].Descriptor()
	// paymentrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	paymentrecord.DefaultCreatedAt = paymentrecordDescCreatedAt.Default.(func() time.Time)
	// paymentrecordDescUpdatedAt is the schema descriptor for updated_at field.
	paymentrecordDescUpdatedAt := paymentrecordMixinFields0[1].Descriptor()
	// paymentrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	paymentrecord.DefaultUpdatedAt = paymentrecordDescUpdatedAt.Default.(func() time.Time)
	// paymentrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	paymentrecord.UpdateDefaultUpdatedAt = paymentrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// paymentrecordDescAmountCents is the schema descriptor for amount_cents field.
	paymentrecordDescAmountCents := paymentrecordFields[2].Descriptor()
	// paymentrecord.AmountCentsValidator is a validator for the "amount_cents" field. It is called by the builders before save.
	paymentrecord.AmountCentsValidator = paymentrecordDescAmountCents.Validators[0].(func(int64) error)
	// paymentrecordDescCurrency is the schema descriptor for currency field.
	paymentrecordDescCurrency := paymentrecordFields[3].Descriptor()
	// paymentrecord.DefaultCurrency holds the default value on creation for the currency field.
	paymentrecord.DefaultCurrency = paymentrecordDescCurrency.Default.(string)
	// paymentrecordDescID is the schema descriptor for id field.
	paymentrecordDescID := paymentrecordFields[0].Descriptor()
	// paymentrecord.DefaultID holds the default value on creation for the id field.
	paymentrecord.DefaultID = paymentrecordDescID.Default.(func() uuid.UUID)
	retentionactionMixin := schema.RetentionAction{}.Mixin()
	retentionactionMixinFields0 := retentionactionMixin[0].Fields()
	_ = retentionactionMixinFields0
	retentionactionFields := schema.RetentionAction{}.Fields()
	_ = retentionactionFields
	// retentionactionDescCreatedAt is the schema descriptor for created_at field.
	retentionactionDescCreatedAt := retentionactionMixinFields0[0].Descriptor()
	// retentionaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	retentionaction.DefaultCreatedAt = retentionactionDescCreatedAt.Default.(func() time.Time)
	// retentionactionDescUpdatedAt is the schema descriptor for updated_at field.
	retentionactionDescUpdatedAt := retentionactionMixinFields0[1].Descriptor()
	// retentionaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	retentionaction.DefaultUpdatedAt = retentionactionDescUpdatedAt.Default.(func() time.Time)
	// retentionaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	retentionaction.UpdateDefaultUpdatedAt = retentionactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// retentionactionDescDescription is the schema descriptor for description field.
	retentionactionDescDescription := retentionactionFields[4].Descriptor()
	// retentionaction.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	retentionaction.DescriptionValidator = retentionactionDescDescription.Validators[0].(func(string) error)
	// retentionactionDescCreatedBy is the schema descriptor for created_by field.
	retentionactionDescCreatedBy := retentionactionFields[7].Descriptor()
	// retentionaction.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	retentionaction.CreatedByValidator = retentionactionDescCreatedBy.Validators[0].(func(string) error)
	// retentionactionDescID is the schema descriptor for id field.
	retentionactionDescID := retentionactionFields[0].Descriptor()
	// retentionaction.DefaultID holds the default value on creation for the id field.
	retentionaction.DefaultID = retentionactionDescID.Default.(func() uuid.UUID)
	riskassessmentMixin := schema.RiskAssessment{}.Mixin()
	riskassessmentMixinFields0 := riskassessmentMixin[0].Fields()
	_ = riskassessmentMixinFields0
	riskassessmentFields := schema.RiskAssessment{}.Fields()
	_ = riskassessmentFields
	// riskassessmentDescCreatedAt is the schema descriptor for created_at field.
	riskassessmentDescCreatedAt := riskassessmentMixinFields0[0].Descriptor()
	// riskassessment.DefaultCreatedAt holds the default value on creation for the created_at field.
	riskassessment.DefaultCreatedAt = riskassessmentDescCreatedAt.Default.(func() time.Time)
	// riskassessmentDescUpdatedAt is the schema descriptor for updated_at field.
	riskassessmentDescUpdatedAt := riskassessmentMixinFields0[1].Descriptor()
	// riskassessment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	riskassessment.DefaultUpdatedAt = riskassessmentDescUpdatedAt.Default.(func() time.Time)
	// riskassessment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	riskassessment.UpdateDefaultUpdatedAt = riskassessmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// riskassessmentDescChurnProbability is the schema descriptor for churn_probability field.
	riskassessmentDescChurnProbability := riskassessmentFields[3].Descriptor()
	// riskassessment.ChurnProbabilityValidator is a validator for the "churn_probability" field. It is called by the builders before save.
	riskassessment.ChurnProbabilityValidator = func() func(float64) error {
		validators := riskassessmentDescChurnProbability.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(churn_probability float64) error {
			for _, fn := range fns {
				if err := fn(churn_probability); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// riskassessmentDescConfidence is the schema descriptor for confidence field.
	riskassessmentDescConfidence := riskassessmentFields[4].Descriptor()
	// riskassessment.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	riskassessment.ConfidenceValidator = func() func(float64) error {
		validators := riskassessmentDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// riskassessmentDescID is the schema descriptor for id field.
	riskassessmentDescID := riskassessmentFields[0].Descriptor()
	// riskassessment.DefaultID holds the default value on creation for the id field.
	riskassessment.DefaultID = riskassessmentDescID.Default.(func() uuid.UUID)
}
