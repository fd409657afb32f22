package dispatch

import (
	"github.com/dshills/clipstack/internal/engine/register"
	"github.com/dshills/clipstack/internal/manager"
)

// Command identifiers bound by NewManagerRegistry.
const (
	CmdCopy              = "copy"
	CmdCut               = "cut"
	CmdPaste             = "paste"
	CmdNext              = "next"
	CmdPrevious          = "previous"
	CmdNextAndPaste      = "next_and_paste"
	CmdPreviousAndPaste  = "previous_and_paste"
	CmdPasteAndNext      = "paste_and_next"
	CmdPasteAndPrevious  = "paste_and_previous"
	CmdChooseAndPaste    = "choose_and_paste"
	CmdYank              = "yank"
	CmdShow              = "show"
	CmdShowYank          = "show_yank"
	CmdShowRegisters     = "show_registers"
	CmdCopyToRegister    = "copy_to_register"
	CmdPasteFromRegister = "paste_from_register"
	CmdSetFromRegister   = "set_from_register"
	CmdClearHistory      = "clear_history"
	CmdClearYank         = "clear_yank"
)

// NewManagerRegistry creates a registry with the standard command set
// bound to m.
func NewManagerRegistry(m *manager.Manager) *Registry {
	r := NewRegistry()

	r.Register(CmdCopy, func(req Request) (Response, error) {
		return Response{}, m.Copy(req.Text)
	})
	r.Register(CmdCut, func(req Request) (Response, error) {
		if err := m.Cut(req.Text); err != nil {
			return Response{}, err
		}
		return Response{Cut: true}, nil
	})

	r.Register(CmdPaste, pasteCommand(func(opts manager.PasteOptions) (manager.Paste, bool, error) {
		return m.PasteCurrent(opts)
	}, true))
	r.Register(CmdNext, pasteCommand(func(opts manager.PasteOptions) (manager.Paste, bool, error) {
		return m.Next(opts)
	}, false))
	r.Register(CmdPrevious, pasteCommand(func(opts manager.PasteOptions) (manager.Paste, bool, error) {
		return m.Previous(opts)
	}, false))
	r.Register(CmdNextAndPaste, pasteCommand(func(opts manager.PasteOptions) (manager.Paste, bool, error) {
		return m.Next(opts)
	}, true))
	r.Register(CmdPreviousAndPaste, pasteCommand(func(opts manager.PasteOptions) (manager.Paste, bool, error) {
		return m.Previous(opts)
	}, true))
	r.Register(CmdYank, pasteCommand(func(opts manager.PasteOptions) (manager.Paste, bool, error) {
		return m.YankPaste(opts)
	}, true))

	r.Register(CmdPasteAndNext, pasteThenMove(m.PasteCurrent, m.Next))
	r.Register(CmdPasteAndPrevious, pasteThenMove(m.PasteCurrent, m.Previous))

	r.Register(CmdChooseAndPaste, func(req Request) (Response, error) {
		p, ok, err := m.PasteAt(req.Index, req2opts(req))
		return pasteResponse(p, ok, true), err
	})

	r.Register(CmdShow, func(req Request) (Response, error) {
		return Response{Display: m.DescribeHistory()}, nil
	})
	r.Register(CmdShowYank, func(req Request) (Response, error) {
		return Response{Display: m.DescribeYank()}, nil
	})
	r.Register(CmdShowRegisters, func(req Request) (Response, error) {
		return Response{Display: m.DescribeRegisters()}, nil
	})

	r.Register(CmdCopyToRegister, func(req Request) (Response, error) {
		key, err := register.ParseKey(req.Key)
		if err != nil {
			return Response{}, err
		}
		return Response{}, m.CopyToRegister(key, req.Text)
	})
	r.Register(CmdPasteFromRegister, func(req Request) (Response, error) {
		key, err := register.ParseKey(req.Key)
		if err != nil {
			return Response{}, err
		}
		p, ok, err := m.PasteFromRegister(key, req2opts(req))
		return pasteResponse(p, ok, true), err
	})
	r.Register(CmdSetFromRegister, func(req Request) (Response, error) {
		key, err := register.ParseKey(req.Key)
		if err != nil {
			return Response{}, err
		}
		ok, err := m.SetClipboardFromRegister(key)
		return Response{NoEntry: !ok}, err
	})

	r.Register(CmdClearHistory, func(req Request) (Response, error) {
		m.ClearHistory()
		return Response{Text: "Clipboard history cleared"}, nil
	})
	r.Register(CmdClearYank, func(req Request) (Response, error) {
		m.ClearYank()
		return Response{Text: "Yank history cleared"}, nil
	})

	return r
}

func req2opts(req Request) manager.PasteOptions {
	return manager.PasteOptions{Indent: req.Indent, Pop: req.Pop}
}

// pasteCommand adapts a manager paste-type operation into a Handler.
// paste marks whether the host should insert the result or only
// display it.
func pasteCommand(op func(manager.PasteOptions) (manager.Paste, bool, error), paste bool) Handler {
	return func(req Request) (Response, error) {
		p, ok, err := op(req2opts(req))
		return pasteResponse(p, ok, paste), err
	}
}

// pasteThenMove pastes the current entry, then advances the cursor so
// the following paste yields the adjacent entry.
func pasteThenMove(paste, move func(manager.PasteOptions) (manager.Paste, bool, error)) Handler {
	return func(req Request) (Response, error) {
		p, ok, err := paste(req2opts(req))
		if err != nil || !ok {
			return pasteResponse(p, ok, true), err
		}
		// Reaching the end of the history is not an error; the pasted
		// entry simply stays current.
		if _, _, err := move(manager.PasteOptions{}); err != nil {
			return Response{}, err
		}
		return pasteResponse(p, true, true), nil
	}
}

func pasteResponse(p manager.Paste, ok bool, paste bool) Response {
	if !ok {
		return Response{NoEntry: true}
	}
	return Response{
		Text:   p.Text,
		Indent: p.Indent,
		Paste:  paste,
	}
}
