// Package ui renders the run-once terminal output of the tipsplit CLI.
//
// Unlike the interactive form in package tui, these components print once
// and return: a Header listing the inputs, and a Result box (success,
// warning or failure) with ordered details. They are used by the calc and
// config commands.
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Tip Split",
//	    ui.Param{Key: "Bill", Value: "$100.00"},
//	    ui.Param{Key: "Tip", Value: "15%"},
//	)
//	p.PrintResult(ui.NewSuccessResult("Split calculated",
//	    ui.Param{Key: "Tip / person", Value: "$3.75"},
//	))
//
// Widths are clamped to [MinTerminalWidth, MaxContentWidth]. When stdout is
// not a terminal the minimum width is used.
package ui
