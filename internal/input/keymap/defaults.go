package keymap

// Vi returns the vi-style navigation and editing profile. Ctrl bindings use
// lowercase letters; the control byte normalizes to the same form at match
// time.
func Vi() *Profile {
	p := NewProfile("vi")
	p.Add("h", "cursor.left").
		Add("j", "cursor.down").
		Add("k", "cursor.up").
		Add("l", "cursor.right").
		Add("0", "cursor.line_start").
		Add("$", "cursor.line_end").
		Add("w", "cursor.word_next").
		Add("b", "cursor.word_prev").
		Add("G", "cursor.buffer_end").
		Add("x", "edit.delete_char").
		Add("u", "edit.undo").
		Add("Ctrl+r", "edit.redo").
		Add("y", "edit.copy").
		Add("p", "edit.paste").
		Add("d", "edit.cut").
		Add("i", "mode.insert").
		Add("Ctrl+f", "cursor.page_down").
		Add("Ctrl+b", "cursor.page_up")
	return p
}

// Emacs returns the emacs-style profile.
func Emacs() *Profile {
	p := NewProfile("emacs")
	p.Add("Ctrl+b", "cursor.left").
		Add("Ctrl+n", "cursor.down").
		Add("Ctrl+p", "cursor.up").
		Add("Ctrl+f", "cursor.right").
		Add("Ctrl+a", "cursor.line_start").
		Add("Ctrl+e", "cursor.line_end").
		Add("Alt+f", "cursor.word_next").
		Add("Alt+b", "cursor.word_prev").
		Add("Ctrl+d", "edit.delete_char").
		Add("Ctrl+k", "edit.kill_line").
		Add("Ctrl+y", "edit.paste").
		Add("Ctrl+w", "edit.cut").
		Add("Alt+w", "edit.copy").
		Add("Ctrl+_", "edit.undo").
		Add("Ctrl+v", "cursor.page_down").
		Add("Alt+v", "cursor.page_up")
	return p
}

// CommonEditing returns the CUA-style profile most terminal users expect.
func CommonEditing() *Profile {
	p := NewProfile("common-editing")
	p.Add("Ctrl+c", "edit.copy").
		Add("Ctrl+x", "edit.cut").
		Add("Ctrl+v", "edit.paste").
		Add("Ctrl+z", "edit.undo").
		Add("Ctrl+y", "edit.redo").
		Add("Ctrl+a", "edit.select_all").
		Add("Ctrl+s", "editor.save").
		Add("Ctrl+o", "editor.open").
		Add("Ctrl+q", "editor.quit").
		Add("Delete", "edit.delete_char").
		Add("Backspace", "edit.delete_back").
		Add("Ctrl+Home", "cursor.buffer_start").
		Add("Ctrl+End", "cursor.buffer_end")
	return p
}
