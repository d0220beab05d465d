// Package cmdchain provides two independent building blocks and a small
// façade wiring them together:
//
//   - command - reversible commands driven through an undo/redo stack
//   - approval - a chain of responsibility with externally configured order
//
// The stack and the chain never depend on each other. The Service façade
// builds both from a Config:
//
//	srv, _ := cmdchain.New()
//	handler := srv.Input(func() *unit.Unit { return scout })
//	_ = handler.Handle(ctx, input.MoveUp)
//	outcome, _ := srv.Approvals().Submit(ctx, &approval.Request{Magnitude: 10})
//
// See the sub-packages for details.
package cmdchain
