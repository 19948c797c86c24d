// Code generated by ent, DO NOT EDIT.

package review

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/roundtable-ai/roundtable/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldSessionID, v))
}

// Iteration applies equality check predicate on the "iteration" field. It's identical to IterationEQ.
func Iteration(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldIteration, v))
}

// DocumentVersion applies equality check predicate on the "document_version" field. It's identical to DocumentVersionEQ.
func DocumentVersion(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldDocumentVersion, v))
}

// ReviewerName applies equality check predicate on the "reviewer_name" field. It's identical to ReviewerNameEQ.
func ReviewerName(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldReviewerName, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldModel, v))
}

// OverallAssessment applies equality check predicate on the "overall_assessment" field. It's identical to OverallAssessmentEQ.
func OverallAssessment(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldOverallAssessment, v))
}

// HighCount applies equality check predicate on the "high_count" field. It's identical to HighCountEQ.
func HighCount(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldHighCount, v))
}

// MediumCount applies equality check predicate on the "medium_count" field. It's identical to MediumCountEQ.
func MediumCount(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldMediumCount, v))
}

// LowCount applies equality check predicate on the "low_count" field. It's identical to LowCountEQ.
func LowCount(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldLowCount, v))
}

// Salvaged applies equality check predicate on the "salvaged" field. It's identical to SalvagedEQ.
func Salvaged(v bool) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldSalvaged, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldSessionID, v))
}

// IterationEQ applies the EQ predicate on the "iteration" field.
func IterationEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldIteration, v))
}

// IterationNEQ applies the NEQ predicate on the "iteration" field.
func IterationNEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldIteration, v))
}

// IterationIn applies the In predicate on the "iteration" field.
func IterationIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldIteration, vs...))
}

// IterationNotIn applies the NotIn predicate on the "iteration" field.
func IterationNotIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldIteration, vs...))
}

// IterationGT applies the GT predicate on the "iteration" field.
func IterationGT(v int) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldIteration, v))
}

// IterationGTE applies the GTE predicate on the "iteration" field.
func IterationGTE(v int) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldIteration, v))
}

// IterationLT applies the LT predicate on the "iteration" field.
func IterationLT(v int) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldIteration, v))
}

// IterationLTE applies the LTE predicate on the "iteration" field.
func IterationLTE(v int) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldIteration, v))
}

// DocumentVersionEQ applies the EQ predicate on the "document_version" field.
func DocumentVersionEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldDocumentVersion, v))
}

// DocumentVersionNEQ applies the NEQ predicate on the "document_version" field.
func DocumentVersionNEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldDocumentVersion, v))
}

// DocumentVersionIn applies the In predicate on the "document_version" field.
func DocumentVersionIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldDocumentVersion, vs...))
}

// DocumentVersionNotIn applies the NotIn predicate on the "document_version" field.
func DocumentVersionNotIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldDocumentVersion, vs...))
}

// DocumentVersionGT applies the GT predicate on the "document_version" field.
func DocumentVersionGT(v int) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldDocumentVersion, v))
}

// DocumentVersionGTE applies the GTE predicate on the "document_version" field.
func DocumentVersionGTE(v int) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldDocumentVersion, v))
}

// DocumentVersionLT applies the LT predicate on the "document_version" field.
func DocumentVersionLT(v int) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldDocumentVersion, v))
}

// DocumentVersionLTE applies the LTE predicate on the "document_version" field.
func DocumentVersionLTE(v int) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldDocumentVersion, v))
}

// ReviewerNameEQ applies the EQ predicate on the "reviewer_name" field.
func ReviewerNameEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldReviewerName, v))
}

// ReviewerNameNEQ applies the NEQ predicate on the "reviewer_name" field.
func ReviewerNameNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldReviewerName, v))
}

// ReviewerNameIn applies the In predicate on the "reviewer_name" field.
func ReviewerNameIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldReviewerName, vs...))
}

// ReviewerNameNotIn applies the NotIn predicate on the "reviewer_name" field.
func ReviewerNameNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldReviewerName, vs...))
}

// ReviewerNameGT applies the GT predicate on the "reviewer_name" field.
func ReviewerNameGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldReviewerName, v))
}

// ReviewerNameGTE applies the GTE predicate on the "reviewer_name" field.
func ReviewerNameGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldReviewerName, v))
}

// ReviewerNameLT applies the LT predicate on the "reviewer_name" field.
func ReviewerNameLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldReviewerName, v))
}

// ReviewerNameLTE applies the LTE predicate on the "reviewer_name" field.
func ReviewerNameLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldReviewerName, v))
}

// ReviewerNameContains applies the Contains predicate on the "reviewer_name" field.
func ReviewerNameContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldReviewerName, v))
}

// ReviewerNameHasPrefix applies the HasPrefix predicate on the "reviewer_name" field.
func ReviewerNameHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldReviewerName, v))
}

// ReviewerNameHasSuffix applies the HasSuffix predicate on the "reviewer_name" field.
func ReviewerNameHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldReviewerName, v))
}

// ReviewerNameEqualFold applies the EqualFold predicate on the "reviewer_name" field.
func ReviewerNameEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldReviewerName, v))
}

// ReviewerNameContainsFold applies the ContainsFold predicate on the "reviewer_name" field.
func ReviewerNameContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldReviewerName, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.Review {
	return predicate.Review(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.Review {
	return predicate.Review(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldModel, v))
}

// OverallAssessmentEQ applies the EQ predicate on the "overall_assessment" field.
func OverallAssessmentEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldOverallAssessment, v))
}

// OverallAssessmentNEQ applies the NEQ predicate on the "overall_assessment" field.
func OverallAssessmentNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldOverallAssessment, v))
}

// OverallAssessmentIn applies the In predicate on the "overall_assessment" field.
func OverallAssessmentIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldOverallAssessment, vs...))
}

// OverallAssessmentNotIn applies the NotIn predicate on the "overall_assessment" field.
func OverallAssessmentNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldOverallAssessment, vs...))
}

// OverallAssessmentGT applies the GT predicate on the "overall_assessment" field.
func OverallAssessmentGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldOverallAssessment, v))
}

// OverallAssessmentGTE applies the GTE predicate on the "overall_assessment" field.
func OverallAssessmentGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldOverallAssessment, v))
}

// OverallAssessmentLT applies the LT predicate on the "overall_assessment" field.
func OverallAssessmentLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldOverallAssessment, v))
}

// OverallAssessmentLTE applies the LTE predicate on the "overall_assessment" field.
func OverallAssessmentLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldOverallAssessment, v))
}

// OverallAssessmentContains applies the Contains predicate on the "overall_assessment" field.
func OverallAssessmentContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldOverallAssessment, v))
}

// OverallAssessmentHasPrefix applies the HasPrefix predicate on the "overall_assessment" field.
func OverallAssessmentHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldOverallAssessment, v))
}

// OverallAssessmentHasSuffix applies the HasSuffix predicate on the "overall_assessment" field.
func OverallAssessmentHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldOverallAssessment, v))
}

// OverallAssessmentIsNil applies the IsNil predicate on the "overall_assessment" field.
func OverallAssessmentIsNil() predicate.Review {
	return predicate.Review(sql.FieldIsNull(FieldOverallAssessment))
}

// OverallAssessmentNotNil applies the NotNil predicate on the "overall_assessment" field.
func OverallAssessmentNotNil() predicate.Review {
	return predicate.Review(sql.FieldNotNull(FieldOverallAssessment))
}

// OverallAssessmentEqualFold applies the EqualFold predicate on the "overall_assessment" field.
func OverallAssessmentEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldOverallAssessment, v))
}

// OverallAssessmentContainsFold applies the ContainsFold predicate on the "overall_assessment" field.
func OverallAssessmentContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldOverallAssessment, v))
}

// HighCountEQ applies the EQ predicate on the "high_count" field.
func HighCountEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldHighCount, v))
}

// HighCountNEQ applies the NEQ predicate on the "high_count" field.
func HighCountNEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldHighCount, v))
}

// HighCountIn applies the In predicate on the "high_count" field.
func HighCountIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldHighCount, vs...))
}

// HighCountNotIn applies the NotIn predicate on the "high_count" field.
func HighCountNotIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldHighCount, vs...))
}

// HighCountGT applies the GT predicate on the "high_count" field.
func HighCountGT(v int) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldHighCount, v))
}

// HighCountGTE applies the GTE predicate on the "high_count" field.
func HighCountGTE(v int) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldHighCount, v))
}

// HighCountLT applies the LT predicate on the "high_count" field.
func HighCountLT(v int) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldHighCount, v))
}

// HighCountLTE applies the LTE predicate on the "high_count" field.
func HighCountLTE(v int) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldHighCount, v))
}

// MediumCountEQ applies the EQ predicate on the "medium_count" field.
func MediumCountEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldMediumCount, v))
}

// MediumCountNEQ applies the NEQ predicate on the "medium_count" field.
func MediumCountNEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldMediumCount, v))
}

// MediumCountIn applies the In predicate on the "medium_count" field.
func MediumCountIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldMediumCount, vs...))
}

// MediumCountNotIn applies the NotIn predicate on the "medium_count" field.
func MediumCountNotIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldMediumCount, vs...))
}

// MediumCountGT applies the GT predicate on the "medium_count" field.
func MediumCountGT(v int) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldMediumCount, v))
}

// MediumCountGTE applies the GTE predicate on the "medium_count" field.
func MediumCountGTE(v int) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldMediumCount, v))
}

// MediumCountLT applies the LT predicate on the "medium_count" field.
func MediumCountLT(v int) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldMediumCount, v))
}

// MediumCountLTE applies the LTE predicate on the "medium_count" field.
func MediumCountLTE(v int) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldMediumCount, v))
}

// LowCountEQ applies the EQ predicate on the "low_count" field.
func LowCountEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldLowCount, v))
}

// LowCountNEQ applies the NEQ predicate on the "low_count" field.
func LowCountNEQ(v int) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldLowCount, v))
}

// LowCountIn applies the In predicate on the "low_count" field.
func LowCountIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldLowCount, vs...))
}

// LowCountNotIn applies the NotIn predicate on the "low_count" field.
func LowCountNotIn(vs ...int) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldLowCount, vs...))
}

// LowCountGT applies the GT predicate on the "low_count" field.
func LowCountGT(v int) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldLowCount, v))
}

// LowCountGTE applies the GTE predicate on the "low_count" field.
func LowCountGTE(v int) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldLowCount, v))
}

// LowCountLT applies the LT predicate on the "low_count" field.
func LowCountLT(v int) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldLowCount, v))
}

// LowCountLTE applies the LTE predicate on the "low_count" field.
func LowCountLTE(v int) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldLowCount, v))
}

// SalvagedEQ applies the EQ predicate on the "salvaged" field.
func SalvagedEQ(v bool) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldSalvaged, v))
}

// SalvagedNEQ applies the NEQ predicate on the "salvaged" field.
func SalvagedNEQ(v bool) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldSalvaged, v))
}

// TokensIsNil applies the IsNil predicate on the "tokens" field.
func TokensIsNil() predicate.Review {
	return predicate.Review(sql.FieldIsNull(FieldTokens))
}

// TokensNotNil applies the NotNil predicate on the "tokens" field.
func TokensNotNil() predicate.Review {
	return predicate.Review(sql.FieldNotNull(FieldTokens))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.RefinementSession) predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Review) predicate.Review {
	return predicate.Review(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Review) predicate.Review {
	return predicate.Review(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Review) predicate.Review {
	return predicate.Review(sql.NotPredicates(p))
}
