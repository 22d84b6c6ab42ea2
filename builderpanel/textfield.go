package builderpanel

import (
	"unicode/utf8"
)

// textField is a single-line editable value with a cursor.  The cursor
// indexes runes, not bytes, so multi-byte input edits cleanly.
type textField struct {
	value  []rune
	cursor int
	max    int
}

func newTextField(value string, max int) textField {
	if max <= 0 {
		max = 100
	}
	runes := []rune(value)
	return textField{
		value:  runes,
		cursor: len(runes),
		max:    max,
	}
}

// handleKey applies an edit key, reporting whether the value changed.
func (tf textField) handleKey(key string) (textField, bool) {

	before := tf.String()
	switch key {
	case "backspace":
		if tf.cursor > 0 {
			tf.value = append(tf.value[:tf.cursor-1:tf.cursor-1], tf.value[tf.cursor:]...)
			tf.cursor--
		}
	case "delete":
		if tf.cursor < len(tf.value) {
			tf.value = append(tf.value[:tf.cursor:tf.cursor], tf.value[tf.cursor+1:]...)
		}
	case "left":
		if tf.cursor > 0 {
			tf.cursor--
		}
	case "right":
		if tf.cursor < len(tf.value) {
			tf.cursor++
		}
	case "home", "ctrl+a":
		tf.cursor = 0
	case "end":
		tf.cursor = len(tf.value)
	case "space":
		tf = tf.insert(' ')
	default:
		if utf8.RuneCountInString(key) == 1 {
			r, _ := utf8.DecodeRuneInString(key)
			tf = tf.insert(r)
		}
	}

	return tf, tf.String() != before
}

func (tf textField) insert(r rune) textField {
	if len(tf.value) >= tf.max {
		return tf
	}
	value := make([]rune, 0, len(tf.value)+1)
	value = append(value, tf.value[:tf.cursor]...)
	value = append(value, r)
	value = append(value, tf.value[tf.cursor:]...)
	tf.value = value
	tf.cursor++
	return tf
}

func (tf textField) set(value string) textField {
	tf.value = []rune(value)
	tf.cursor = len(tf.value)
	return tf
}

func (tf textField) String() string {
	return string(tf.value)
}

func (tf textField) render(focused bool) string {
	if len(tf.value) == 0 && !focused {
		return "."
	}
	if focused {
		return tf.String() + "_"
	}
	return tf.String()
}
