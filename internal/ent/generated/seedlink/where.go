// Code generated by ent, DO NOT EDIT.

package seedlink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mediareap/mediareap/internal/ent/generated/predicate"
	ulid "github.com/oklog/ulid/v2"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ULID) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ULID) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ULID) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ULID) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ULID) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ULID) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ULID) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ULID) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ULID) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldEQ(FieldUpdatedAt, v))
}

// Collaborator applies equality check predicate on the "collaborator" field. It's identical to CollaboratorEQ.
func Collaborator(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldEQ(FieldCollaborator, v))
}

// RootHash applies equality check predicate on the "root_hash" field. It's identical to RootHashEQ.
func RootHash(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldEQ(FieldRootHash, v))
}

// Links applies equality check predicate on the "links" field. It's identical to LinksEQ.
func Links(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldEQ(FieldLinks, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldLTE(FieldUpdatedAt, v))
}

// CollaboratorEQ applies the EQ predicate on the "collaborator" field.
func CollaboratorEQ(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldEQ(FieldCollaborator, v))
}

// CollaboratorNEQ applies the NEQ predicate on the "collaborator" field.
func CollaboratorNEQ(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldNEQ(FieldCollaborator, v))
}

// CollaboratorIn applies the In predicate on the "collaborator" field.
func CollaboratorIn(vs ...string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldIn(FieldCollaborator, vs...))
}

// CollaboratorNotIn applies the NotIn predicate on the "collaborator" field.
func CollaboratorNotIn(vs ...string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldNotIn(FieldCollaborator, vs...))
}

// CollaboratorGT applies the GT predicate on the "collaborator" field.
func CollaboratorGT(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldGT(FieldCollaborator, v))
}

// CollaboratorGTE applies the GTE predicate on the "collaborator" field.
func CollaboratorGTE(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldGTE(FieldCollaborator, v))
}

// CollaboratorLT applies the LT predicate on the "collaborator" field.
func CollaboratorLT(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldLT(FieldCollaborator, v))
}

// CollaboratorLTE applies the LTE predicate on the "collaborator" field.
func CollaboratorLTE(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldLTE(FieldCollaborator, v))
}

// CollaboratorContains applies the Contains predicate on the "collaborator" field.
func CollaboratorContains(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldContains(FieldCollaborator, v))
}

// CollaboratorHasPrefix applies the HasPrefix predicate on the "collaborator" field.
func CollaboratorHasPrefix(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldHasPrefix(FieldCollaborator, v))
}

// CollaboratorHasSuffix applies the HasSuffix predicate on the "collaborator" field.
func CollaboratorHasSuffix(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldHasSuffix(FieldCollaborator, v))
}

// CollaboratorEqualFold applies the EqualFold predicate on the "collaborator" field.
func CollaboratorEqualFold(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldEqualFold(FieldCollaborator, v))
}

// CollaboratorContainsFold applies the ContainsFold predicate on the "collaborator" field.
func CollaboratorContainsFold(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldContainsFold(FieldCollaborator, v))
}

// RootHashEQ applies the EQ predicate on the "root_hash" field.
func RootHashEQ(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldEQ(FieldRootHash, v))
}

// RootHashNEQ applies the NEQ predicate on the "root_hash" field.
func RootHashNEQ(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldNEQ(FieldRootHash, v))
}

// RootHashIn applies the In predicate on the "root_hash" field.
func RootHashIn(vs ...string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldIn(FieldRootHash, vs...))
}

// RootHashNotIn applies the NotIn predicate on the "root_hash" field.
func RootHashNotIn(vs ...string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldNotIn(FieldRootHash, vs...))
}

// RootHashGT applies the GT predicate on the "root_hash" field.
func RootHashGT(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldGT(FieldRootHash, v))
}

// RootHashGTE applies the GTE predicate on the "root_hash" field.
func RootHashGTE(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldGTE(FieldRootHash, v))
}

// RootHashLT applies the LT predicate on the "root_hash" field.
func RootHashLT(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldLT(FieldRootHash, v))
}

// RootHashLTE applies the LTE predicate on the "root_hash" field.
func RootHashLTE(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldLTE(FieldRootHash, v))
}

// RootHashContains applies the Contains predicate on the "root_hash" field.
func RootHashContains(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldContains(FieldRootHash, v))
}

// RootHashHasPrefix applies the HasPrefix predicate on the "root_hash" field.
func RootHashHasPrefix(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldHasPrefix(FieldRootHash, v))
}

// RootHashHasSuffix applies the HasSuffix predicate on the "root_hash" field.
func RootHashHasSuffix(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldHasSuffix(FieldRootHash, v))
}

// RootHashEqualFold applies the EqualFold predicate on the "root_hash" field.
func RootHashEqualFold(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldEqualFold(FieldRootHash, v))
}

// RootHashContainsFold applies the ContainsFold predicate on the "root_hash" field.
func RootHashContainsFold(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldContainsFold(FieldRootHash, v))
}

// LinksEQ applies the EQ predicate on the "links" field.
func LinksEQ(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldEQ(FieldLinks, v))
}

// LinksNEQ applies the NEQ predicate on the "links" field.
func LinksNEQ(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldNEQ(FieldLinks, v))
}

// LinksIn applies the In predicate on the "links" field.
func LinksIn(vs ...string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldIn(FieldLinks, vs...))
}

// LinksNotIn applies the NotIn predicate on the "links" field.
func LinksNotIn(vs ...string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldNotIn(FieldLinks, vs...))
}

// LinksGT applies the GT predicate on the "links" field.
func LinksGT(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldGT(FieldLinks, v))
}

// LinksGTE applies the GTE predicate on the "links" field.
func LinksGTE(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldGTE(FieldLinks, v))
}

// LinksLT applies the LT predicate on the "links" field.
func LinksLT(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldLT(FieldLinks, v))
}

// LinksLTE applies the LTE predicate on the "links" field.
func LinksLTE(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldLTE(FieldLinks, v))
}

// LinksContains applies the Contains predicate on the "links" field.
func LinksContains(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldContains(FieldLinks, v))
}

// LinksHasPrefix applies the HasPrefix predicate on the "links" field.
func LinksHasPrefix(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldHasPrefix(FieldLinks, v))
}

// LinksHasSuffix applies the HasSuffix predicate on the "links" field.
func LinksHasSuffix(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldHasSuffix(FieldLinks, v))
}

// LinksEqualFold applies the EqualFold predicate on the "links" field.
func LinksEqualFold(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldEqualFold(FieldLinks, v))
}

// LinksContainsFold applies the ContainsFold predicate on the "links" field.
func LinksContainsFold(v string) predicate.SeedLink {
	return predicate.SeedLink(sql.FieldContainsFold(FieldLinks, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SeedLink) predicate.SeedLink {
	return predicate.SeedLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SeedLink) predicate.SeedLink {
	return predicate.SeedLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SeedLink) predicate.SeedLink {
	return predicate.SeedLink(sql.NotPredicates(p))
}
