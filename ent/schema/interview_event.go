package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterviewEvent records the terminal outcome of one interview session.
type InterviewEvent struct {
	ent.Schema
}

func (InterviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InterviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("axis_id").NotEmpty(),
		field.String("area_id").NotEmpty(),
		field.String("language").Default("en"),
		field.Int("turns").
			Comment("Transcript length at close, greeting included"),
		field.Int("score").Default(0),
		field.Text("reasoning").Default(""),
		field.String("outcome").NotEmpty().
			Comment("confirmed, cancelled, discarded"),
	}
}

func (InterviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("area_id"),
	}
}
