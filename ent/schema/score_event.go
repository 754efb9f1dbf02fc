package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScoreEvent records one ledger mutation: a level selected (or toggled
// off) for an area, and where the selection came from.
type ScoreEvent struct {
	ent.Schema
}

func (ScoreEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ScoreEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("axis_id").NotEmpty(),
		field.String("area_id").NotEmpty(),
		field.Int("rank"),
		field.Bool("selected").
			Comment("False when a multi-select toggle removed the rank"),
		field.String("source").NotEmpty().
			Comment("manual, diagnose, interview"),
		field.Int("axis_percent").
			Default(0).
			Comment("Axis completion percent after this write"),
	}
}

func (ScoreEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("area_id"),
	}
}
