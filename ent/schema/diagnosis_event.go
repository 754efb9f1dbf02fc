package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagnosisEvent records one single-shot diagnose run and whether the
// user accepted the candidate.
type DiagnosisEvent struct {
	ent.Schema
}

func (DiagnosisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DiagnosisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("axis_id").NotEmpty(),
		field.String("area_id").NotEmpty(),
		field.Text("evidence").NotEmpty(),
		field.Int("level"),
		field.Text("justification").Default(""),
		field.String("outcome").NotEmpty().
			Comment("accepted, discarded"),
	}
}

func (DiagnosisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("area_id"),
	}
}
