// Code generated by ent, DO NOT EDIT.

package rule

import (
	"entgo.io/ent/dialect/sql"
	"github.com/verba-app/verba/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldID, id))
}

// RuleKey applies equality check predicate on the "rule_key" field. It's identical to RuleKeyEQ.
func RuleKey(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldRuleKey, v))
}

// UnitKey applies equality check predicate on the "unit_key" field. It's identical to UnitKeyEQ.
func UnitKey(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldUnitKey, v))
}

// SectionPath applies equality check predicate on the "section_path" field. It's identical to SectionPathEQ.
func SectionPath(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldSectionPath, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldTitle, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldText, v))
}

// ShortText applies equality check predicate on the "short_text" field. It's identical to ShortTextEQ.
func ShortText(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldShortText, v))
}

// RuleKeyEQ applies the EQ predicate on the "rule_key" field.
func RuleKeyEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldRuleKey, v))
}

// RuleKeyNEQ applies the NEQ predicate on the "rule_key" field.
func RuleKeyNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldRuleKey, v))
}

// RuleKeyIn applies the In predicate on the "rule_key" field.
func RuleKeyIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldRuleKey, vs...))
}

// RuleKeyNotIn applies the NotIn predicate on the "rule_key" field.
func RuleKeyNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldRuleKey, vs...))
}

// RuleKeyGT applies the GT predicate on the "rule_key" field.
func RuleKeyGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldRuleKey, v))
}

// RuleKeyGTE applies the GTE predicate on the "rule_key" field.
func RuleKeyGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldRuleKey, v))
}

// RuleKeyLT applies the LT predicate on the "rule_key" field.
func RuleKeyLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldRuleKey, v))
}

// RuleKeyLTE applies the LTE predicate on the "rule_key" field.
func RuleKeyLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldRuleKey, v))
}

// RuleKeyContains applies the Contains predicate on the "rule_key" field.
func RuleKeyContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldRuleKey, v))
}

// RuleKeyHasPrefix applies the HasPrefix predicate on the "rule_key" field.
func RuleKeyHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldRuleKey, v))
}

// RuleKeyHasSuffix applies the HasSuffix predicate on the "rule_key" field.
func RuleKeyHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldRuleKey, v))
}

// RuleKeyEqualFold applies the EqualFold predicate on the "rule_key" field.
func RuleKeyEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldRuleKey, v))
}

// RuleKeyContainsFold applies the ContainsFold predicate on the "rule_key" field.
func RuleKeyContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldRuleKey, v))
}

// UnitKeyEQ applies the EQ predicate on the "unit_key" field.
func UnitKeyEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldUnitKey, v))
}

// UnitKeyNEQ applies the NEQ predicate on the "unit_key" field.
func UnitKeyNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldUnitKey, v))
}

// UnitKeyIn applies the In predicate on the "unit_key" field.
func UnitKeyIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldUnitKey, vs...))
}

// UnitKeyNotIn applies the NotIn predicate on the "unit_key" field.
func UnitKeyNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldUnitKey, vs...))
}

// UnitKeyGT applies the GT predicate on the "unit_key" field.
func UnitKeyGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldUnitKey, v))
}

// UnitKeyGTE applies the GTE predicate on the "unit_key" field.
func UnitKeyGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldUnitKey, v))
}

// UnitKeyLT applies the LT predicate on the "unit_key" field.
func UnitKeyLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldUnitKey, v))
}

// UnitKeyLTE applies the LTE predicate on the "unit_key" field.
func UnitKeyLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldUnitKey, v))
}

// UnitKeyContains applies the Contains predicate on the "unit_key" field.
func UnitKeyContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldUnitKey, v))
}

// UnitKeyHasPrefix applies the HasPrefix predicate on the "unit_key" field.
func UnitKeyHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldUnitKey, v))
}

// UnitKeyHasSuffix applies the HasSuffix predicate on the "unit_key" field.
func UnitKeyHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldUnitKey, v))
}

// UnitKeyEqualFold applies the EqualFold predicate on the "unit_key" field.
func UnitKeyEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldUnitKey, v))
}

// UnitKeyContainsFold applies the ContainsFold predicate on the "unit_key" field.
func UnitKeyContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldUnitKey, v))
}

// SectionPathEQ applies the EQ predicate on the "section_path" field.
func SectionPathEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldSectionPath, v))
}

// SectionPathNEQ applies the NEQ predicate on the "section_path" field.
func SectionPathNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldSectionPath, v))
}

// SectionPathIn applies the In predicate on the "section_path" field.
func SectionPathIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldSectionPath, vs...))
}

// SectionPathNotIn applies the NotIn predicate on the "section_path" field.
func SectionPathNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldSectionPath, vs...))
}

// SectionPathGT applies the GT predicate on the "section_path" field.
func SectionPathGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldSectionPath, v))
}

// SectionPathGTE applies the GTE predicate on the "section_path" field.
func SectionPathGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldSectionPath, v))
}

// SectionPathLT applies the LT predicate on the "section_path" field.
func SectionPathLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldSectionPath, v))
}

// SectionPathLTE applies the LTE predicate on the "section_path" field.
func SectionPathLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldSectionPath, v))
}

// SectionPathContains applies the Contains predicate on the "section_path" field.
func SectionPathContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldSectionPath, v))
}

// SectionPathHasPrefix applies the HasPrefix predicate on the "section_path" field.
func SectionPathHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldSectionPath, v))
}

// SectionPathHasSuffix applies the HasSuffix predicate on the "section_path" field.
func SectionPathHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldSectionPath, v))
}

// SectionPathEqualFold applies the EqualFold predicate on the "section_path" field.
func SectionPathEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldSectionPath, v))
}

// SectionPathContainsFold applies the ContainsFold predicate on the "section_path" field.
func SectionPathContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldSectionPath, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldTitle, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldText, v))
}

// ShortTextEQ applies the EQ predicate on the "short_text" field.
func ShortTextEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEQ(FieldShortText, v))
}

// ShortTextNEQ applies the NEQ predicate on the "short_text" field.
func ShortTextNEQ(v string) predicate.Rule {
	return predicate.Rule(sql.FieldNEQ(FieldShortText, v))
}

// ShortTextIn applies the In predicate on the "short_text" field.
func ShortTextIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldIn(FieldShortText, vs...))
}

// ShortTextNotIn applies the NotIn predicate on the "short_text" field.
func ShortTextNotIn(vs ...string) predicate.Rule {
	return predicate.Rule(sql.FieldNotIn(FieldShortText, vs...))
}

// ShortTextGT applies the GT predicate on the "short_text" field.
func ShortTextGT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGT(FieldShortText, v))
}

// ShortTextGTE applies the GTE predicate on the "short_text" field.
func ShortTextGTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldGTE(FieldShortText, v))
}

// ShortTextLT applies the LT predicate on the "short_text" field.
func ShortTextLT(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLT(FieldShortText, v))
}

// ShortTextLTE applies the LTE predicate on the "short_text" field.
func ShortTextLTE(v string) predicate.Rule {
	return predicate.Rule(sql.FieldLTE(FieldShortText, v))
}

// ShortTextContains applies the Contains predicate on the "short_text" field.
func ShortTextContains(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContains(FieldShortText, v))
}

// ShortTextHasPrefix applies the HasPrefix predicate on the "short_text" field.
func ShortTextHasPrefix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasPrefix(FieldShortText, v))
}

// ShortTextHasSuffix applies the HasSuffix predicate on the "short_text" field.
func ShortTextHasSuffix(v string) predicate.Rule {
	return predicate.Rule(sql.FieldHasSuffix(FieldShortText, v))
}

// ShortTextEqualFold applies the EqualFold predicate on the "short_text" field.
func ShortTextEqualFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldEqualFold(FieldShortText, v))
}

// ShortTextContainsFold applies the ContainsFold predicate on the "short_text" field.
func ShortTextContainsFold(v string) predicate.Rule {
	return predicate.Rule(sql.FieldContainsFold(FieldShortText, v))
}

// ExamplesIsNil applies the IsNil predicate on the "examples" field.
func ExamplesIsNil() predicate.Rule {
	return predicate.Rule(sql.FieldIsNull(FieldExamples))
}

// ExamplesNotNil applies the NotNil predicate on the "examples" field.
func ExamplesNotNil() predicate.Rule {
	return predicate.Rule(sql.FieldNotNull(FieldExamples))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Rule) predicate.Rule {
	return predicate.Rule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Rule) predicate.Rule {
	return predicate.Rule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Rule) predicate.Rule {
	return predicate.Rule(sql.NotPredicates(p))
}
