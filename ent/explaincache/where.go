// Code generated by ent, DO NOT EDIT.

package explaincache

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/verba-app/verba/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldLTE(FieldID, id))
}

// CacheKey applies equality check predicate on the "cache_key" field. It's identical to CacheKeyEQ.
func CacheKey(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldEQ(FieldCacheKey, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldEQ(FieldExplanation, v))
}

// VerdictFlip applies equality check predicate on the "verdict_flip" field. It's identical to VerdictFlipEQ.
func VerdictFlip(v bool) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldEQ(FieldVerdictFlip, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldEQ(FieldCreatedAt, v))
}

// CacheKeyEQ applies the EQ predicate on the "cache_key" field.
func CacheKeyEQ(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldEQ(FieldCacheKey, v))
}

// CacheKeyNEQ applies the NEQ predicate on the "cache_key" field.
func CacheKeyNEQ(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldNEQ(FieldCacheKey, v))
}

// CacheKeyIn applies the In predicate on the "cache_key" field.
func CacheKeyIn(vs ...string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldIn(FieldCacheKey, vs...))
}

// CacheKeyNotIn applies the NotIn predicate on the "cache_key" field.
func CacheKeyNotIn(vs ...string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldNotIn(FieldCacheKey, vs...))
}

// CacheKeyGT applies the GT predicate on the "cache_key" field.
func CacheKeyGT(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldGT(FieldCacheKey, v))
}

// CacheKeyGTE applies the GTE predicate on the "cache_key" field.
func CacheKeyGTE(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldGTE(FieldCacheKey, v))
}

// CacheKeyLT applies the LT predicate on the "cache_key" field.
func CacheKeyLT(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldLT(FieldCacheKey, v))
}

// CacheKeyLTE applies the LTE predicate on the "cache_key" field.
func CacheKeyLTE(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldLTE(FieldCacheKey, v))
}

// CacheKeyContains applies the Contains predicate on the "cache_key" field.
func CacheKeyContains(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldContains(FieldCacheKey, v))
}

// CacheKeyHasPrefix applies the HasPrefix predicate on the "cache_key" field.
func CacheKeyHasPrefix(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldHasPrefix(FieldCacheKey, v))
}

// CacheKeyHasSuffix applies the HasSuffix predicate on the "cache_key" field.
func CacheKeyHasSuffix(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldHasSuffix(FieldCacheKey, v))
}

// CacheKeyEqualFold applies the EqualFold predicate on the "cache_key" field.
func CacheKeyEqualFold(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldEqualFold(FieldCacheKey, v))
}

// CacheKeyContainsFold applies the ContainsFold predicate on the "cache_key" field.
func CacheKeyContainsFold(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldContainsFold(FieldCacheKey, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldContainsFold(FieldExplanation, v))
}

// VerdictFlipEQ applies the EQ predicate on the "verdict_flip" field.
func VerdictFlipEQ(v bool) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldEQ(FieldVerdictFlip, v))
}

// VerdictFlipNEQ applies the NEQ predicate on the "verdict_flip" field.
func VerdictFlipNEQ(v bool) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldNEQ(FieldVerdictFlip, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExplainCache {
	return predicate.ExplainCache(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExplainCache) predicate.ExplainCache {
	return predicate.ExplainCache(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExplainCache) predicate.ExplainCache {
	return predicate.ExplainCache(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExplainCache) predicate.ExplainCache {
	return predicate.ExplainCache(sql.NotPredicates(p))
}
