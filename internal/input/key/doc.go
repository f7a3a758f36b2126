// Package key provides the key event model for the input engine.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Code: Identifies a key as a Unicode scalar or a synthetic named code
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift)
//   - Event: A single key press with modifiers
//   - Chord: Two key presses correlated within a timeout window
//
// # Code Space
//
// Code values follow a fixed numbering contract that consumers rely on:
//
//   - 0-31: raw control bytes as read from the terminal
//   - 32-126: printable ASCII
//   - 127: Delete/Backspace control byte
//   - >= 1000: synthetic named keys (arrows, navigation, function keys)
//
// Code.IsSpecial reports the >= 1000 boundary and is part of the public
// contract.
//
// # Key Specifications
//
// Binding tables describe keys as strings in several formats:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>"
package key
