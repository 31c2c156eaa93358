// Code generated by ent, DO NOT EDIT.

package learner

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/shapewise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldID, id))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldUsername, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldFullName, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldStudentID, v))
}

// PreferredLevel applies equality check predicate on the "preferred_level" field. It's identical to PreferredLevelEQ.
func PreferredLevel(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldPreferredLevel, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldUsername, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldFullName, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldStudentID, v))
}

// PreferredLevelEQ applies the EQ predicate on the "preferred_level" field.
func PreferredLevelEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldPreferredLevel, v))
}

// PreferredLevelNEQ applies the NEQ predicate on the "preferred_level" field.
func PreferredLevelNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldPreferredLevel, v))
}

// PreferredLevelIn applies the In predicate on the "preferred_level" field.
func PreferredLevelIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldPreferredLevel, vs...))
}

// PreferredLevelNotIn applies the NotIn predicate on the "preferred_level" field.
func PreferredLevelNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldPreferredLevel, vs...))
}

// PreferredLevelGT applies the GT predicate on the "preferred_level" field.
func PreferredLevelGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldPreferredLevel, v))
}

// PreferredLevelGTE applies the GTE predicate on the "preferred_level" field.
func PreferredLevelGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldPreferredLevel, v))
}

// PreferredLevelLT applies the LT predicate on the "preferred_level" field.
func PreferredLevelLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldPreferredLevel, v))
}

// PreferredLevelLTE applies the LTE predicate on the "preferred_level" field.
func PreferredLevelLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldPreferredLevel, v))
}

// PreferredLevelContains applies the Contains predicate on the "preferred_level" field.
func PreferredLevelContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldPreferredLevel, v))
}

// PreferredLevelHasPrefix applies the HasPrefix predicate on the "preferred_level" field.
func PreferredLevelHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldPreferredLevel, v))
}

// PreferredLevelHasSuffix applies the HasSuffix predicate on the "preferred_level" field.
func PreferredLevelHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldPreferredLevel, v))
}

// PreferredLevelEqualFold applies the EqualFold predicate on the "preferred_level" field.
func PreferredLevelEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldPreferredLevel, v))
}

// PreferredLevelContainsFold applies the ContainsFold predicate on the "preferred_level" field.
func PreferredLevelContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldPreferredLevel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Learner) predicate.Learner {
	return predicate.Learner(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Learner) predicate.Learner {
	return predicate.Learner(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Learner) predicate.Learner {
	return predicate.Learner(sql.NotPredicates(p))
}
