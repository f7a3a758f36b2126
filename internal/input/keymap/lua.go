package keymap

import (
	"fmt"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
)

// LoadLuaFile executes a Lua script that returns a profile table:
//
//	return {
//	  name = "my-profile",
//	  bindings = {
//	    { keys = "Ctrl+s", action = "editor.save" },
//	    { keys = "<C-g>", action = "editor.goto_line" },
//	  },
//	}
//
// The script runs in a fresh state with the standard library loaded and is
// discarded after the table is read.
func LoadLuaFile(path string) (*Profile, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}

	ret := L.Get(-1)
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("profile %s: script must return a table, got %s", path, ret.Type())
	}

	p, err := profileFromLua(L, tbl)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	p.Source = "lua:" + filepath.Base(path)
	return p, nil
}

func profileFromLua(L *lua.LState, tbl *lua.LTable) (*Profile, error) {
	name := lua.LVAsString(L.GetField(tbl, "name"))
	if name == "" {
		return nil, fmt.Errorf("profile table has no name")
	}

	p := NewProfile(name)

	bindings, ok := L.GetField(tbl, "bindings").(*lua.LTable)
	if !ok {
		return p, nil
	}

	var loopErr error
	bindings.ForEach(func(idx, val lua.LValue) {
		if loopErr != nil {
			return
		}
		entry, ok := val.(*lua.LTable)
		if !ok {
			loopErr = fmt.Errorf("binding %s: expected a table, got %s", idx.String(), val.Type())
			return
		}
		keys := lua.LVAsString(L.GetField(entry, "keys"))
		action := lua.LVAsString(L.GetField(entry, "action"))
		if keys == "" || action == "" {
			loopErr = fmt.Errorf("binding %s: keys and action are required", idx.String())
			return
		}
		b := Binding{
			Keys:        keys,
			Action:      Action(action),
			Description: lua.LVAsString(L.GetField(entry, "description")),
		}
		if err := p.AddBinding(b); err != nil {
			loopErr = err
		}
	})
	if loopErr != nil {
		return nil, loopErr
	}
	return p, nil
}
