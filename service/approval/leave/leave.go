// Package leave provides the four-tier leave approval workflow: a director
// approves under 8 days, a project manager under 16, a division manager
// under 32 and the president under 50. Longer requests are never approved.
package leave

import (
	approval "github.com/viant/cmdchain/service/approval"
)

// Handler names.
const (
	Director        = "director"
	ProjectManager  = "projectManager"
	DivisionManager = "divisionManager"
	President       = "president"
)

type tier struct {
	name      string
	approver  string
	threshold int
}

var tiers = []tier{
	{Director, "Tom", 8},
	{ProjectManager, "Bob", 16},
	{DivisionManager, "Mark", 32},
	{President, "Alice", 50},
}

// Handlers returns fresh handlers for every tier.
func Handlers() []*approval.Handler {
	ret := make([]*approval.Handler, 0, len(tiers))
	for _, t := range tiers {
		ret = append(ret, approval.NewHandler(t.name, t.approver, approval.Below(t.threshold)))
	}
	return ret
}

// Builder returns a builder holding every tier but no links yet.
func Builder() *approval.Builder {
	return approval.NewBuilder().Add(Handlers()...)
}

// Standard links every tier from director to president.
func Standard(options ...approval.ChainOption) (*approval.Chain, error) {
	return Builder().Sequence(Director, ProjectManager, DivisionManager, President).Build(options...)
}

// Escalation skips the project manager: director, division manager, president.
func Escalation(options ...approval.ChainOption) (*approval.Chain, error) {
	return Builder().
		Head(Director).
		Link(Director, DivisionManager).
		Link(DivisionManager, President).
		Build(options...)
}

// Config returns the standard workflow as a serialisable config.
func Config() *approval.Config {
	ret := &approval.Config{Name: "leave"}
	for _, t := range tiers {
		threshold := t.threshold
		ret.Handlers = append(ret.Handlers, approval.HandlerConfig{Name: t.name, Approver: t.approver, Below: &threshold})
		ret.Order = append(ret.Order, t.name)
	}
	return ret
}
