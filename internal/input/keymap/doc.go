// Package keymap maps key events to semantic editor actions.
//
// A Profile is an ordered list of bindings; a Resolver scans an ordered list
// of profiles and returns the first structural match. When no profile binds a
// key, a baseline table maps the named navigation keys (arrows, Home/End,
// PageUp/PageDown) to cursor actions, so movement works even with an empty
// resolver. No match is not an error; the resolver simply reports no action.
//
// Profiles come from three places:
//
//   - Built-in: Vi(), Emacs(), and CommonEditing(), composed in whatever
//     priority order the caller chooses.
//   - Files: TOML or JSON profile files via the Loader.
//   - Scripts: Lua files returning a table of {keys, action} entries via
//     LoadLuaFile.
//
// A Watcher reloads file-based profiles in place when the file changes.
package keymap
