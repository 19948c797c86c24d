// Code generated by ent, DO NOT EDIT.

package documentversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/roundtable-ai/roundtable/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldSessionID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldVersion, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldTitle, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldDocumentType, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldContent, v))
}

// ProducedFromVersion applies equality check predicate on the "produced_from_version" field. It's identical to ProducedFromVersionEQ.
func ProducedFromVersion(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldProducedFromVersion, v))
}

// LengthChars applies equality check predicate on the "length_chars" field. It's identical to LengthCharsEQ.
func LengthChars(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldLengthChars, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContainsFold(FieldSessionID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldVersion, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContainsFold(FieldTitle, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContainsFold(FieldDocumentType, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldContainsFold(FieldContent, v))
}

// ProducedFromVersionEQ applies the EQ predicate on the "produced_from_version" field.
func ProducedFromVersionEQ(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldProducedFromVersion, v))
}

// ProducedFromVersionNEQ applies the NEQ predicate on the "produced_from_version" field.
func ProducedFromVersionNEQ(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldProducedFromVersion, v))
}

// ProducedFromVersionIn applies the In predicate on the "produced_from_version" field.
func ProducedFromVersionIn(vs ...int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldProducedFromVersion, vs...))
}

// ProducedFromVersionNotIn applies the NotIn predicate on the "produced_from_version" field.
func ProducedFromVersionNotIn(vs ...int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldProducedFromVersion, vs...))
}

// ProducedFromVersionGT applies the GT predicate on the "produced_from_version" field.
func ProducedFromVersionGT(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldProducedFromVersion, v))
}

// ProducedFromVersionGTE applies the GTE predicate on the "produced_from_version" field.
func ProducedFromVersionGTE(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldProducedFromVersion, v))
}

// ProducedFromVersionLT applies the LT predicate on the "produced_from_version" field.
func ProducedFromVersionLT(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldProducedFromVersion, v))
}

// ProducedFromVersionLTE applies the LTE predicate on the "produced_from_version" field.
func ProducedFromVersionLTE(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldProducedFromVersion, v))
}

// LengthCharsEQ applies the EQ predicate on the "length_chars" field.
func LengthCharsEQ(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldLengthChars, v))
}

// LengthCharsNEQ applies the NEQ predicate on the "length_chars" field.
func LengthCharsNEQ(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldLengthChars, v))
}

// LengthCharsIn applies the In predicate on the "length_chars" field.
func LengthCharsIn(vs ...int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldLengthChars, vs...))
}

// LengthCharsNotIn applies the NotIn predicate on the "length_chars" field.
func LengthCharsNotIn(vs ...int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldLengthChars, vs...))
}

// LengthCharsGT applies the GT predicate on the "length_chars" field.
func LengthCharsGT(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldLengthChars, v))
}

// LengthCharsGTE applies the GTE predicate on the "length_chars" field.
func LengthCharsGTE(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldLengthChars, v))
}

// LengthCharsLT applies the LT predicate on the "length_chars" field.
func LengthCharsLT(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldLengthChars, v))
}

// LengthCharsLTE applies the LTE predicate on the "length_chars" field.
func LengthCharsLTE(v int) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldLengthChars, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.DocumentVersion {
	return predicate.DocumentVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.RefinementSession) predicate.DocumentVersion {
	return predicate.DocumentVersion(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentVersion) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentVersion) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentVersion) predicate.DocumentVersion {
	return predicate.DocumentVersion(sql.NotPredicates(p))
}
