// Package tui implements the interactive terminal tip calculator.
//
// The form is a Bubble Tea model wrapping a form.State. Keystrokes go to the
// focused text input first; the resulting text is then offered to the form,
// and the input is reset to whatever the form kept. Invalid characters
// therefore never appear on screen.
//
// Layout:
//
//	Bill             [$ 142.55        ]
//	Select Tip %     [5%] [10%] [15%] [25%] [50%] [Custom]
//	Number of People [👤 5            ]   Can't be zero
//	Tip Amount / person   $4.28
//	Total / person        $32.79
//	                        [RESET]
package tui
