package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyCodeMap = map[string]ebiten.Key{
	"F1": ebiten.KeyF1, "F2": ebiten.KeyF2, "F3": ebiten.KeyF3, "F4": ebiten.KeyF4,
	"F5": ebiten.KeyF5, "F6": ebiten.KeyF6, "F7": ebiten.KeyF7, "F8": ebiten.KeyF8,
	"F9": ebiten.KeyF9, "F10": ebiten.KeyF10, "F11": ebiten.KeyF11, "F12": ebiten.KeyF12,
	"1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2, "3": ebiten.KeyDigit3, "4": ebiten.KeyDigit4,
	"5": ebiten.KeyDigit5, "6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7, "8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9, "0": ebiten.KeyDigit0,
	"Q": ebiten.KeyQ, "W": ebiten.KeyW, "E": ebiten.KeyE, "R": ebiten.KeyR, "T": ebiten.KeyT,
	"Y": ebiten.KeyY, "U": ebiten.KeyU, "I": ebiten.KeyI, "O": ebiten.KeyO, "P": ebiten.KeyP,
	"A": ebiten.KeyA, "S": ebiten.KeyS, "D": ebiten.KeyD, "F": ebiten.KeyF, "G": ebiten.KeyG,
	"H": ebiten.KeyH, "J": ebiten.KeyJ, "K": ebiten.KeyK, "L": ebiten.KeyL,
	"Z": ebiten.KeyZ, "X": ebiten.KeyX, "C": ebiten.KeyC, "V": ebiten.KeyV,
	"B": ebiten.KeyB, "N": ebiten.KeyN, "M": ebiten.KeyM,
	"SPACE": ebiten.KeySpace, "ENTER": ebiten.KeyEnter, "TAB": ebiten.KeyTab,
	"ESC": ebiten.KeyEscape, "ESCAPE": ebiten.KeyEscape,
	"BACKSPACE": ebiten.KeyBackspace, "DELETE": ebiten.KeyDelete, "INSERT": ebiten.KeyInsert,
	"HOME": ebiten.KeyHome, "END": ebiten.KeyEnd, "PAGEUP": ebiten.KeyPageUp, "PAGEDOWN": ebiten.KeyPageDown,
	"UP": ebiten.KeyArrowUp, "DOWN": ebiten.KeyArrowDown, "LEFT": ebiten.KeyArrowLeft, "RIGHT": ebiten.KeyArrowRight,
	"NUMPAD0": ebiten.KeyNumpad0, "NUMPAD1": ebiten.KeyNumpad1, "NUMPAD2": ebiten.KeyNumpad2,
	"NUMPAD3": ebiten.KeyNumpad3, "NUMPAD4": ebiten.KeyNumpad4, "NUMPAD5": ebiten.KeyNumpad5,
	"NUMPAD6": ebiten.KeyNumpad6, "NUMPAD7": ebiten.KeyNumpad7, "NUMPAD8": ebiten.KeyNumpad8,
	"NUMPAD9": ebiten.KeyNumpad9,
	"NUM0": ebiten.KeyNumpad0, "NUM1": ebiten.KeyNumpad1, "NUM2": ebiten.KeyNumpad2,
	"NUM3": ebiten.KeyNumpad3, "NUM4": ebiten.KeyNumpad4, "NUM5": ebiten.KeyNumpad5,
	"NUM6": ebiten.KeyNumpad6, "NUM7": ebiten.KeyNumpad7, "NUM8": ebiten.KeyNumpad8,
	"NUM9": ebiten.KeyNumpad9,
	"`": ebiten.KeyBackquote, "TILDE": ebiten.KeyBackquote, "~": ebiten.KeyBackquote,
	"-": ebiten.KeyMinus, "=": ebiten.KeyEqual,
	"[": ebiten.KeyBracketLeft, "]": ebiten.KeyBracketRight, "\\": ebiten.KeyBackslash,
	";": ebiten.KeySemicolon, "'": ebiten.KeyQuote,
	",": ebiten.KeyComma, ".": ebiten.KeyPeriod, "/": ebiten.KeySlash,
}

var modifierMap = map[string]ebiten.Key{
	"SHIFT":    ebiten.KeyShift,
	"CTRL":     ebiten.KeyControl,
	"CONTROL":  ebiten.KeyControl,
	"ALT":      ebiten.KeyAlt,
	"META":     ebiten.KeyMeta,
	"LSHIFT":   ebiten.KeyShiftLeft,
	"RSHIFT":   ebiten.KeyShiftRight,
	"LCTRL":    ebiten.KeyControlLeft,
	"LCONTROL": ebiten.KeyControlLeft,
	"RCTRL":    ebiten.KeyControlRight,
	"RCONTROL": ebiten.KeyControlRight,
	"LALT":     ebiten.KeyAltLeft,
	"RALT":     ebiten.KeyAltRight,
}

// KeyCombo is a main key plus the modifiers that must be held with it.
type KeyCombo struct {
	Modifiers []ebiten.Key
	MainKey   ebiten.Key
	RawString string
}

// ParseKeyCombo parses strings like "SHIFT+5" or "ctrl+alt+f1".
func ParseKeyCombo(keyStr string) (KeyCombo, error) {
	combo := KeyCombo{RawString: keyStr}

	norm := strings.ToUpper(strings.TrimSpace(keyStr))
	if norm == "" {
		return combo, fmt.Errorf("empty key combo")
	}
	parts := strings.Split(norm, "+")

	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return combo, fmt.Errorf("key combo %q: empty part", keyStr)
		}
		if i == len(parts)-1 {
			code, ok := keyCodeMap[part]
			if !ok {
				return combo, fmt.Errorf("key combo %q: unknown key %s", keyStr, part)
			}
			combo.MainKey = code
			continue
		}
		if mod, ok := modifierMap[part]; ok {
			combo.Modifiers = append(combo.Modifiers, mod)
		} else if code, ok := keyCodeMap[part]; ok {
			combo.Modifiers = append(combo.Modifiers, code)
		} else {
			return combo, fmt.Errorf("key combo %q: unknown modifier %s", keyStr, part)
		}
	}

	return combo, nil
}

func (k KeyCombo) String() string { return k.RawString }

// JustPressed reports whether the main key went down this tick with every
// modifier held.
func (k KeyCombo) JustPressed() bool {
	if !inpututil.IsKeyJustPressed(k.MainKey) {
		return false
	}
	for _, mod := range k.Modifiers {
		if !ebiten.IsKeyPressed(mod) {
			return false
		}
	}
	return true
}
